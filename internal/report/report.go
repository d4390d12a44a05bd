package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"rr-edf-scheduler/internal/core"
	"rr-edf-scheduler/internal/responses"
)

// WriteComparison prints one line per metric listing every policy, best
// first, followed by the full metrics table.
func WriteComparison(w io.Writer, reports []responses.PolicyReport) {
	ranked := responses.Rank(reports)

	for i, name := range responses.MetricNames {
		line := name + " "
		for _, r := range ranked {
			line += fmt.Sprintf("%s (%s) ", r.Policy, formatFloat(r.Metrics.Values()[i]))
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	_, _ = fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	header := []string{"Policy"}
	header = append(header, responses.MetricNames...)
	table.SetHeader(append(header, "Deadline misses"))
	for _, r := range ranked {
		row := []string{r.Policy}
		for _, v := range r.Metrics.Values() {
			row = append(row, formatFloat(v))
		}
		row = append(row, strconv.Itoa(r.Metrics.DeadlineMisses))
		table.Append(row)
	}
	table.Render()
}

// WriteSchedule prints the completion order of one policy and its gantt chart.
func WriteSchedule(w io.Writer, r responses.PolicyReport) {
	_, _ = fmt.Fprintf(w, "\nPolicy: %s\n", r.Policy)

	rows := make([][]string, 0, len(r.Details))
	for _, p := range r.Details {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.EndTime),
			strconv.Itoa(p.BurstTime),
			p.Status,
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start Time", "End Time", "Duration", "Status"})
	table.AppendBulk(rows)
	table.Render()

	writeGantt(w, r.Timeline)
}

func writeGantt(w io.Writer, timeline []core.Slice) {
	if len(timeline) == 0 {
		return
	}
	var names, ticks strings.Builder
	names.WriteString("|")
	for _, s := range timeline {
		width := max(len(s.Name)+2, 6)
		padding := width - len(s.Name)
		names.WriteString(strings.Repeat(" ", padding/2) + s.Name + strings.Repeat(" ", padding-padding/2) + "|")

		start := strconv.Itoa(s.Start)
		ticks.WriteString(start + strings.Repeat(" ", width+1-len(start)))
	}
	ticks.WriteString(strconv.Itoa(timeline[len(timeline)-1].Stop))

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, names.String())
	_, _ = fmt.Fprintln(w, ticks.String())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
