// Package report renders pipeline measures for humans.
package report

import (
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/askiada/go-lineedit/pkg/pipeline/measure"
	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

// WriteMetrics writes a table with a row per step of msr, sorted by step name. The total duration of the pipeline
// goes in the footer.
func WriteMetrics(w io.Writer, msr measure.Measure) {
	all := msr.AllMetrics()

	names := make([]string, 0, len(all))
	for name := range all {
		if name == model.StartStep.Name || name == model.EndStep.Name {
			continue
		}

		names = append(names, name)
	}

	slices.Sort(names)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Step", "Count", "Average", "Transport", "Total"})

	for _, name := range names {
		mt := all[name]
		tw.AppendRow(table.Row{name, mt.Count(), mt.AVGDuration(), transports(mt), mt.GetTotalDuration()})
	}

	if end, ok := all[model.EndStep.Name]; ok {
		tw.AppendFooter(table.Row{"", "", "", "Pipeline", end.GetTotalDuration()})
	}

	tw.Render()
}

func transports(mt measure.Metric) string {
	avg := mt.AVGTransportDuration()

	from := make([]string, 0, len(avg))
	for name := range avg {
		from = append(from, name)
	}

	slices.Sort(from)

	parts := make([]string, 0, len(from))
	for _, name := range from {
		parts = append(parts, name+"="+avg[name].String())
	}

	return strings.Join(parts, " ")
}
