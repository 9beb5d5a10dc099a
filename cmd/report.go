package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	sim "github.com/disk-sim/disk-sim/sim"
)

// printMetrics renders the per-trial table of one experiment.
func printMetrics(w io.Writer, m *sim.Metrics) {
	_, _ = fmt.Fprintf(w, "=== %s Disk Scheduling ===\n", strings.ToUpper(m.Policy))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Trial", "Seed", "File Requests", "Serviced", "Head Movement", "Average"})
	for _, t := range m.Trials {
		table.Append([]string{
			strconv.Itoa(t.Trial + 1),
			strconv.FormatInt(t.Seed, 10),
			strconv.Itoa(t.FileRequests),
			strconv.Itoa(t.Serviced),
			strconv.Itoa(t.TotalHeadMovement),
			strconv.Itoa(t.AverageHeadMovement),
		})
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(m.TotalServiced), strconv.Itoa(m.TotalHeadMovement),
		fmt.Sprintf("Final %d", m.OverallAverage)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Mean %.2f, stddev %.2f, min %.0f, max %.0f\n",
		m.MeanAverage, m.StdDevAverage, m.MinAverage, m.MaxAverage)
}

// printComparison renders per-trial averages of several policies side by side.
// All experiments must have been run over the same seeds.
func printComparison(w io.Writer, results []*sim.Metrics) {
	if len(results) == 0 {
		return
	}
	header := []string{"Trial", "Seed"}
	footer := []string{"", "Final"}
	for _, m := range results {
		header = append(header, strings.ToUpper(m.Policy)+" Average")
		footer = append(footer, strconv.Itoa(m.OverallAverage))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for i, t := range results[0].Trials {
		row := []string{strconv.Itoa(i + 1), strconv.FormatInt(t.Seed, 10)}
		for _, m := range results {
			row = append(row, strconv.Itoa(m.Trials[i].AverageHeadMovement))
		}
		table.Append(row)
	}
	table.SetFooter(footer)
	table.Render()
}
