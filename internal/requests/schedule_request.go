package requests

import "rr-edf-scheduler/internal/core"

type Job struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Deadline    int    `json:"deadline"`
}

type ScheduleRequest struct {
	Quantum int   `json:"quantum"`
	Jobs    []Job `json:"jobs"`
}

func (r *ScheduleRequest) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.Name, job.ArrivalTime, job.BurstTime, job.Deadline))
	}
	return processes
}
