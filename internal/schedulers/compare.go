package schedulers

import (
	"go.uber.org/zap"
	"rr-edf-scheduler/internal/core"
	"rr-edf-scheduler/internal/responses"
)

// Compare runs round robin and EDF over the same input and returns one report
// per policy in run order. Each policy gets its own copy of the processes.
func Compare(processes []core.Process, timeQuantum int, logger *zap.Logger) ([]responses.PolicyReport, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyProcessSet
	}

	roundRobin, err := ScheduleRoundRobin(processes, timeQuantum, logger)
	if err != nil {
		return nil, err
	}
	edf, err := ScheduleEarliestDeadlineFirst(processes, logger)
	if err != nil {
		return nil, err
	}

	reports := make([]responses.PolicyReport, 0, 2)
	for _, schedule := range []*Schedule{roundRobin, edf} {
		report, err := GenerateReport(schedule)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
