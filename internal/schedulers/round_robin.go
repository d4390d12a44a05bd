package schedulers

import (
	"fmt"

	"go.uber.org/zap"
	"rr-edf-scheduler/internal/core"
)

const (
	PolicyRoundRobin            = "RR"
	PolicyEarliestDeadlineFirst = "EDF"
)

// Schedule is the outcome of one simulated run.
type Schedule struct {
	Policy    string
	Processes []*core.Process // completed processes ordered by start time
	Timeline  []core.Slice
	Cpu       core.CpuMetric
}

func newSchedule(policy string, cpu *core.CPU) *Schedule {
	return &Schedule{
		Policy:    policy,
		Processes: cpu.Completed(),
		Timeline:  cpu.Timeline(),
		Cpu:       cpu.Metric,
	}
}

// ScheduleRoundRobin simulates round robin with the given time quantum. The
// input slice is not modified; the run works on its own copies.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int, logger *zap.Logger) (*Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	if err := ValidateProcesses(processes, logger); err != nil {
		return nil, err
	}
	logger.Info("running roundRobin algorithm", zap.Int("time_quantum", timeQuantum), zap.Int("processes", len(processes)))

	cpu := core.NewCPU(processes, logger)
	for cpu.Busy() {
		cpu.Admit()

		if cpu.ReadyLen() == 0 {
			cpu.Idle()
			continue
		}

		proccess := cpu.Dispatch()
		runningTime := min(timeQuantum, proccess.RemainingTime)
		for ; runningTime > 0; runningTime-- {
			cpu.Run(proccess)
		}

		if proccess.RemainingTime == 0 {
			cpu.Complete(proccess, core.StatusSuccess)
		} else {
			cpu.Requeue(proccess) // context switch
		}
	}

	schedule := newSchedule(PolicyRoundRobin, cpu)
	logger.Info("roundRobin finished", zap.Int("total_time", schedule.Cpu.TotalTime), zap.Int("idle_time", schedule.Cpu.IdleTime))
	return schedule, nil
}
