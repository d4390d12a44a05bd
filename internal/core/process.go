package core

type Status string

const (
	StatusUnset   Status = ""
	StatusSuccess Status = "S"
	StatusFailed  Status = "F"
)

// Process holds the input attributes of a job plus the run-time state a
// scheduler accumulates while simulating it.
type Process struct {
	Name        string
	ArrivalTime int
	BurstTime   int
	Deadline    int

	RemainingTime  int
	Dispatched     bool
	StartTime      int
	EndTime        int
	ResponseTime   int
	WaitingTime    int
	TurnaroundTime int
	Status         Status
}

func NewProcess(name string, arrivalTime, burstTime, deadline int) Process {
	return Process{
		Name:          name,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Deadline:      deadline,
		RemainingTime: burstTime,
	}
}

// fresh returns a copy of p with all run-time state reset.
func (p Process) fresh() *Process {
	proccess := NewProcess(p.Name, p.ArrivalTime, p.BurstTime, p.Deadline)
	return &proccess
}

// Slice is one contiguous stretch of CPU time given to a single process.
type Slice struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
}
