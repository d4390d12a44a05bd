package core

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func names(processes []*Process) []string {
	out := make([]string, 0, len(processes))
	for _, p := range processes {
		out = append(out, p.Name)
	}
	return out
}

func equalNames(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestNewCPUSortsByArrivalStable(t *testing.T) {
	cpu := NewCPU([]Process{
		NewProcess("C", 3, 1, 10),
		NewProcess("A", 0, 1, 10),
		NewProcess("B", 3, 1, 10),
		NewProcess("D", 0, 1, 10),
	}, zaptest.NewLogger(t))

	if got := names(cpu.pending); !equalNames(got, "A", "D", "C", "B") {
		t.Fatalf("unexpected pending order %v", got)
	}
}

func TestNewCPUCopiesInput(t *testing.T) {
	input := []Process{NewProcess("P1", 0, 2, 5)}
	cpu := NewCPU(input, nil)

	p := cpu.pending[0]
	p.RemainingTime = 0
	p.Dispatched = true

	if input[0].RemainingTime != 2 || input[0].Dispatched {
		t.Fatalf("input record was modified: %+v", input[0])
	}
}

func TestAdmitMovesEveryArrivedProcess(t *testing.T) {
	// consecutive admissions must not be skipped while the pool shrinks
	cpu := NewCPU([]Process{
		NewProcess("P1", 0, 1, 10),
		NewProcess("P2", 0, 1, 10),
		NewProcess("P3", 0, 1, 10),
		NewProcess("P4", 2, 1, 10),
	}, zaptest.NewLogger(t))

	cpu.Admit()
	if got := names(cpu.ready); !equalNames(got, "P1", "P2", "P3") {
		t.Fatalf("expected P1 P2 P3 ready, got %v", got)
	}
	if got := names(cpu.pending); !equalNames(got, "P4") {
		t.Fatalf("expected P4 pending, got %v", got)
	}

	cpu.Idle()
	cpu.Admit()
	if cpu.ReadyLen() != 3 {
		t.Fatalf("P4 admitted too early")
	}
	cpu.Idle()
	cpu.Admit()
	if got := names(cpu.ready); !equalNames(got, "P1", "P2", "P3", "P4") {
		t.Fatalf("expected P4 at the tail, got %v", got)
	}
	if cpu.Metric.IdleTime != 2 || cpu.Clock != 2 {
		t.Fatalf("unexpected clock state %+v clock=%d", cpu.Metric, cpu.Clock)
	}
}

func TestDispatchRecordsFirstDispatchOnce(t *testing.T) {
	cpu := NewCPU([]Process{NewProcess("P1", 1, 3, 10)}, zaptest.NewLogger(t))
	cpu.Idle()
	cpu.Idle()
	cpu.Admit()

	p := cpu.Dispatch()
	if !p.Dispatched || p.StartTime != 2 || p.ResponseTime != 1 {
		t.Fatalf("unexpected first dispatch state %+v", p)
	}
	cpu.Run(p)
	cpu.Requeue(p)

	p = cpu.Dispatch()
	if p.StartTime != 2 || p.ResponseTime != 1 {
		t.Fatalf("second dispatch must not move start time: %+v", p)
	}
}

func TestRunMergesTimeline(t *testing.T) {
	cpu := NewCPU([]Process{
		NewProcess("P1", 0, 3, 10),
		NewProcess("P2", 0, 1, 10),
	}, zaptest.NewLogger(t))
	cpu.Admit()

	p1 := cpu.Dispatch()
	cpu.Run(p1)
	cpu.Requeue(p1)
	cpu.SortReady(func(a, b *Process) bool { return a.Name < b.Name })
	p1 = cpu.Dispatch()
	cpu.Run(p1)
	cpu.Requeue(p1)

	p2 := cpu.Dispatch()
	cpu.Run(p2)
	cpu.Complete(p2, StatusSuccess)

	p1 = cpu.Dispatch()
	cpu.Run(p1)
	cpu.Complete(p1, StatusSuccess)

	want := []Slice{{"P1", 0, 2}, {"P2", 2, 3}, {"P1", 3, 4}}
	got := cpu.Timeline()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if cpu.Metric.BusyTime != 4 || cpu.Metric.TotalTime != 4 {
		t.Fatalf("unexpected metric %+v", cpu.Metric)
	}
	if cpu.Busy() {
		t.Fatalf("cpu should be drained")
	}
}

func TestCompletedOrderedByStartTime(t *testing.T) {
	cpu := NewCPU([]Process{
		NewProcess("long", 0, 2, 10),
		NewProcess("short", 0, 1, 10),
	}, zaptest.NewLogger(t))
	cpu.Admit()

	long := cpu.Dispatch()
	cpu.Run(long)
	cpu.Requeue(long)
	short := cpu.Dispatch()
	cpu.Run(short)
	cpu.Complete(short, StatusSuccess)
	long = cpu.Dispatch()
	cpu.Run(long)
	cpu.Complete(long, StatusSuccess)

	if got := names(cpu.Completed()); !equalNames(got, "long", "short") {
		t.Fatalf("expected start time order, got %v", got)
	}
	if short.EndTime != 2 || long.EndTime != 3 {
		t.Fatalf("unexpected end times short=%d long=%d", short.EndTime, long.EndTime)
	}
}

func TestRunKeepsSameNamedProcessesApart(t *testing.T) {
	cpu := NewCPU([]Process{
		NewProcess("dup", 0, 1, 10),
		NewProcess("dup", 0, 1, 10),
	}, zaptest.NewLogger(t))
	cpu.Admit()

	for cpu.ReadyLen() > 0 {
		p := cpu.Dispatch()
		cpu.Run(p)
		cpu.Complete(p, StatusSuccess)
	}

	want := []Slice{{"dup", 0, 1}, {"dup", 1, 2}}
	got := cpu.Timeline()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
