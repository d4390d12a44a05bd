package core

import (
	"sort"

	"go.uber.org/zap"
)

type CpuMetric struct {
	TotalTime int `json:"total_time"`
	BusyTime  int `json:"busy_time"`
	IdleTime  int `json:"idle_time"`
}

// CPU is the simulated processor of a single scheduler run. It owns the clock,
// the not-yet-arrived pool, the ready queue and the completed list, so two runs
// never share any state.
type CPU struct {
	Clock  int
	Metric CpuMetric

	pending   []*Process
	ready     []*Process
	completed []*Process
	timeline  []Slice
	lastRun   *Process // owner of the open timeline slice
	logger    *zap.Logger
}

// NewCPU copies processes into fresh records and orders them by arrival time.
// Ties keep the input order.
func NewCPU(processes []Process, logger *zap.Logger) *CPU {
	if logger == nil {
		logger = zap.NewNop()
	}
	pending := make([]*Process, 0, len(processes))
	for _, p := range processes {
		pending = append(pending, p.fresh())
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})
	return &CPU{
		pending:   pending,
		ready:     make([]*Process, 0, len(pending)),
		completed: make([]*Process, 0, len(pending)),
		logger:    logger,
	}
}

// Busy reports whether any process is still waiting to arrive or to run.
func (c *CPU) Busy() bool {
	return len(c.pending) > 0 || len(c.ready) > 0
}

func (c *CPU) ReadyLen() int {
	return len(c.ready)
}

// Admit moves every arrived process from the pending pool to the tail of the
// ready queue, keeping pending order.
func (c *CPU) Admit() {
	kept := c.pending[:0]
	for _, p := range c.pending {
		if p.ArrivalTime <= c.Clock {
			c.ready = append(c.ready, p)
			c.logger.Debug("process admitted", zap.String("process", p.Name), zap.Int("clock", c.Clock))
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(c.pending); i++ {
		c.pending[i] = nil
	}
	c.pending = kept
}

// Idle advances the clock by one unit with nothing running.
func (c *CPU) Idle() {
	c.Clock++
	c.Metric.IdleTime++
	c.Metric.TotalTime = c.Clock
}

// SortReady reorders the ready queue. The sort is stable so equal keys keep
// their current queue order.
func (c *CPU) SortReady(less func(a, b *Process) bool) {
	sort.SliceStable(c.ready, func(i, j int) bool {
		return less(c.ready[i], c.ready[j])
	})
}

// Dispatch removes the head of the ready queue. The first dispatch of a
// process fixes its start and response time.
func (c *CPU) Dispatch() *Process {
	p := c.ready[0]
	c.ready[0] = nil
	c.ready = c.ready[1:]
	if !p.Dispatched {
		p.Dispatched = true
		p.StartTime = c.Clock
		p.ResponseTime = c.Clock - p.ArrivalTime
		c.logger.Debug("first dispatch", zap.String("process", p.Name), zap.Int("clock", c.Clock))
	}
	return p
}

// Run executes p for one time unit and admits whatever arrived meanwhile.
func (c *CPU) Run(p *Process) {
	p.RemainingTime--
	if n := len(c.timeline); n > 0 && c.lastRun == p && c.timeline[n-1].Stop == c.Clock {
		c.timeline[n-1].Stop++
	} else {
		c.timeline = append(c.timeline, Slice{Name: p.Name, Start: c.Clock, Stop: c.Clock + 1})
		c.lastRun = p
	}
	c.Clock++
	c.Metric.BusyTime++
	c.Metric.TotalTime = c.Clock
	c.Admit()
}

// Requeue puts an unfinished process back at the tail of the ready queue,
// behind anything that arrived up to now.
func (c *CPU) Requeue(p *Process) {
	c.Admit()
	c.ready = append(c.ready, p)
}

// Complete stamps the end time and moves p to the completed list.
func (c *CPU) Complete(p *Process, status Status) {
	p.EndTime = c.Clock
	p.Status = status
	c.completed = append(c.completed, p)
	c.logger.Debug("process completed",
		zap.String("process", p.Name),
		zap.Int("clock", c.Clock),
		zap.String("status", string(status)),
	)
}

// Completed returns the finished processes ordered by start time.
func (c *CPU) Completed() []*Process {
	out := make([]*Process, len(c.completed))
	copy(out, c.completed)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// Timeline returns the executed slices in time order.
func (c *CPU) Timeline() []Slice {
	out := make([]Slice, len(c.timeline))
	copy(out, c.timeline)
	return out
}
