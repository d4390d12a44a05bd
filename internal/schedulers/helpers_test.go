package schedulers

import (
	"testing"

	"rr-edf-scheduler/internal/core"
)

type expectedRun struct {
	name      string
	startTime int
	endTime   int
	status    core.Status
}

func assertRuns(t *testing.T, got []*core.Process, want []expectedRun) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d completed processes, got %d", len(want), len(got))
	}
	for i, w := range want {
		p := got[i]
		if p.Name != w.name || p.StartTime != w.startTime || p.EndTime != w.endTime || p.Status != w.status {
			t.Errorf("position %d: expected %+v, got name=%s start=%d end=%d status=%q",
				i, w, p.Name, p.StartTime, p.EndTime, p.Status)
		}
	}
}

func assertTimeline(t *testing.T, got []core.Slice, want []core.Slice) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected timeline %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected timeline %v, got %v", want, got)
		}
	}
}

// assertTimingInvariants checks properties every completed schedule has,
// whatever the policy.
func assertTimingInvariants(t *testing.T, completed []*core.Process) {
	t.Helper()
	for _, p := range completed {
		if p.RemainingTime != 0 {
			t.Errorf("%s: remaining time %d after completion", p.Name, p.RemainingTime)
		}
		if !(p.EndTime >= p.StartTime && p.StartTime >= p.ArrivalTime) {
			t.Errorf("%s: expected end >= start >= arrival, got %d %d %d", p.Name, p.EndTime, p.StartTime, p.ArrivalTime)
		}
		if p.EndTime-p.StartTime < p.BurstTime {
			t.Errorf("%s: ran %d units but needs %d", p.Name, p.EndTime-p.StartTime, p.BurstTime)
		}
		if p.ResponseTime != p.StartTime-p.ArrivalTime {
			t.Errorf("%s: response time %d, want %d", p.Name, p.ResponseTime, p.StartTime-p.ArrivalTime)
		}
	}
}

func scenarioA() []core.Process {
	return []core.Process{core.NewProcess("P1", 0, 5, 10)}
}

func scenarioB() []core.Process {
	return []core.Process{
		core.NewProcess("P1", 0, 4, 10),
		core.NewProcess("P2", 1, 2, 3),
	}
}
