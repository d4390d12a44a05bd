// Package loader reads process descriptors from the whitespace separated text
// format: a header line followed by "name arrival burst deadline" rows.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rr-edf-scheduler/internal/core"
)

var (
	ErrInvalidFileType = errors.New("input file must be a .txt file")
	ErrMalformedLine   = errors.New("malformed process line")
)

// LoadFile opens path and parses it with ReadProcesses.
func LoadFile(path string) ([]core.Process, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".txt") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileType, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	return ReadProcesses(f)
}

// ReadProcesses skips the first line and parses every non-blank line after it.
func ReadProcesses(r io.Reader) ([]core.Process, error) {
	scanner := bufio.NewScanner(r)
	processes := make([]core.Process, 0)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber == 1 {
			continue // header
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: expected 4 fields, got %d", ErrMalformedLine, lineNumber, len(fields))
		}

		values := make([]int, 3)
		for i, field := range fields[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedLine, lineNumber, field)
			}
			values[i] = v
		}
		processes = append(processes, core.NewProcess(fields[0], values[0], values[1], values[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading processes: %w", err)
	}
	return processes, nil
}
