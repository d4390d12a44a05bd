package schedulers

import (
	"go.uber.org/zap"
	"rr-edf-scheduler/internal/core"
)

func byDeadline(a, b *core.Process) bool {
	return a.Deadline < b.Deadline
}

// ScheduleEarliestDeadlineFirst simulates preemptive EDF. The earliest
// deadline is picked again after every single time unit. A process that
// finishes after its deadline is marked failed but still runs to completion.
func ScheduleEarliestDeadlineFirst(processes []core.Process, logger *zap.Logger) (*Schedule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ValidateProcesses(processes, logger); err != nil {
		return nil, err
	}
	logger.Info("running edf algorithm", zap.Int("processes", len(processes)))

	cpu := core.NewCPU(processes, logger)
	for cpu.Busy() {
		cpu.Admit()

		if cpu.ReadyLen() == 0 {
			cpu.Idle()
			continue
		}

		cpu.SortReady(byDeadline)
		proccess := cpu.Dispatch()
		cpu.Run(proccess)

		if proccess.RemainingTime == 0 {
			cpu.Complete(proccess, deadlineStatus(cpu.Clock, proccess))
		} else {
			cpu.Requeue(proccess)
		}
	}

	schedule := newSchedule(PolicyEarliestDeadlineFirst, cpu)
	logger.Info("edf finished", zap.Int("total_time", schedule.Cpu.TotalTime), zap.Int("idle_time", schedule.Cpu.IdleTime))
	return schedule, nil
}

func deadlineStatus(endTime int, p *core.Process) core.Status {
	if endTime <= p.Deadline {
		return core.StatusSuccess
	}
	return core.StatusFailed
}
