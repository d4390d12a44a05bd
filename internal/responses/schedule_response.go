package responses

import (
	"sort"

	"rr-edf-scheduler/internal/core"
)

type ProcessResponse struct {
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Deadline       int    `json:"deadline"`
	StartTime      int    `json:"start_time"`
	EndTime        int    `json:"end_time"`
	ResponseTime   int    `json:"response_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	Status         string `json:"status"`
}

type Metrics struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	Throughput            float64 `json:"throughput"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	Proportionality       float64 `json:"proportionality"`
	TotalTime             int     `json:"total_time"`
	IdleTime              int     `json:"idle_time"`
	DeadlineMisses        int     `json:"deadline_misses"`
}

// Values returns the ranked metrics in display order.
func (m Metrics) Values() []float64 {
	return []float64{
		m.AverageWaitingTime,
		m.AverageResponseTime,
		m.AverageTurnAroundTime,
		m.Throughput,
		m.CpuUtilization,
		m.Proportionality,
	}
}

// MetricNames matches the order of Metrics.Values.
var MetricNames = []string{"AWT", "ART", "ATT", "Throughput", "Utilization", "Proportionality"}

type PolicyReport struct {
	Policy   string            `json:"policy"`
	Metrics  Metrics           `json:"metrics"`
	Details  []ProcessResponse `json:"details"`
	Timeline []core.Slice      `json:"timeline"`
}

type ScheduleResponse struct {
	RunId string `json:"run_id"`
	PolicyReport
}

type CompareResponse struct {
	RunId    string         `json:"run_id"`
	Quantum  int            `json:"quantum"`
	Ranking  []string       `json:"ranking"`
	Policies []PolicyReport `json:"policies"`
}

// Rank orders reports by AWT, then ART, ATT, Throughput, Utilization and
// Proportionality, all ascending. Equal reports keep their input order.
func Rank(reports []PolicyReport) []PolicyReport {
	ranked := make([]PolicyReport, len(reports))
	copy(ranked, reports)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Metrics.Values(), ranked[j].Metrics.Values()
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return ranked
}
