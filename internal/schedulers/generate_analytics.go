package schedulers

import (
	"fmt"

	"rr-edf-scheduler/internal/core"
	"rr-edf-scheduler/internal/responses"
	"rr-edf-scheduler/internal/util"
)

// CalculateMetrics fills in turnaround and waiting time of every completed
// process and derives the aggregate metrics of the run. Calling it twice on
// the same list gives the same result.
func CalculateMetrics(completed []*core.Process) (responses.Metrics, error) {
	processCount := len(completed)
	if processCount == 0 {
		return responses.Metrics{}, fmt.Errorf("%w: %w", ErrEmptyProcessSet, ErrDivisionUndefined)
	}

	var (
		totalTime       int
		totalBurstTime  int
		deadlineMisses  int
		proportionality float64
		waitingTimes    = make([]int, 0, processCount)
		responseTimes   = make([]int, 0, processCount)
		turnAroundTimes = make([]int, 0, processCount)
	)
	for _, p := range completed {
		p.TurnaroundTime = p.EndTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime

		totalTime = max(totalTime, p.EndTime) // last process finish time
		totalBurstTime += p.BurstTime
		if p.Status == core.StatusFailed {
			deadlineMisses++
		}
		if p.BurstTime > 0 {
			proportionality = max(proportionality, float64(p.TurnaroundTime)/float64(p.BurstTime))
		}

		waitingTimes = append(waitingTimes, p.WaitingTime)
		responseTimes = append(responseTimes, p.ResponseTime)
		turnAroundTimes = append(turnAroundTimes, p.TurnaroundTime)
	}
	if totalTime <= 0 {
		return responses.Metrics{}, fmt.Errorf("%w: total time is %d", ErrDivisionUndefined, totalTime)
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(waitingTimes, responseTimes, turnAroundTimes)
	return responses.Metrics{
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Throughput:            util.Round2(float64(processCount) / float64(totalTime)),
		CpuUtilization:        util.Round2(float64(totalBurstTime) / float64(totalTime) * 100),
		Proportionality:       util.Round2(proportionality),
		TotalTime:             totalTime,
		IdleTime:              totalTime - totalBurstTime,
		DeadlineMisses:        deadlineMisses,
	}, nil
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		Name:           process.Name,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Deadline:       process.Deadline,
		StartTime:      process.StartTime,
		EndTime:        process.EndTime,
		ResponseTime:   process.ResponseTime,
		WaitingTime:    process.WaitingTime,
		TurnAroundTime: process.TurnaroundTime,
		Status:         string(process.Status),
	}
}

// GenerateReport computes the metrics of a finished schedule and flattens it
// for the presentation layer.
func GenerateReport(schedule *Schedule) (responses.PolicyReport, error) {
	metrics, err := CalculateMetrics(schedule.Processes)
	if err != nil {
		return responses.PolicyReport{}, fmt.Errorf("%s: %w", schedule.Policy, err)
	}

	details := make([]responses.ProcessResponse, 0, len(schedule.Processes))
	for _, p := range schedule.Processes {
		details = append(details, generateProcessDetails(p))
	}
	return responses.PolicyReport{
		Policy:   schedule.Policy,
		Metrics:  metrics,
		Details:  details,
		Timeline: schedule.Timeline,
	}, nil
}
