package schedulers

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"rr-edf-scheduler/internal/core"
)

var (
	ErrInvalidQuantum     = errors.New("time quantum must be a positive integer")
	ErrEmptyProcessSet    = errors.New("no processes to schedule")
	ErrDivisionUndefined  = errors.New("metric division is undefined")
	ErrInvalidBurstTime   = errors.New("burst time must be a positive integer")
	ErrInvalidArrivalTime = errors.New("arrival time must not be negative")
)

// ValidateProcesses rejects input that could never terminate or that has no
// meaning on the simulated clock. Duplicate names are allowed but make the
// per-process output ambiguous, so they are only logged.
func ValidateProcesses(processes []core.Process, logger *zap.Logger) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %q has burst time %d", ErrInvalidBurstTime, p.Name, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q has arrival time %d", ErrInvalidArrivalTime, p.Name, p.ArrivalTime)
		}
		if _, ok := seen[p.Name]; ok && logger != nil {
			logger.Warn("duplicate process name", zap.String("process", p.Name))
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
