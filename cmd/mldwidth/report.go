package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/mldwidth/analysis"
)

// writeReport renders rep in the configured format.
func writeReport(w io.Writer, rep *analysis.Report, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport{Report: rep, Best: bestName(rep)})
	}
	return writeText(w, rep)
}

type jsonReport struct {
	*analysis.Report
	Best string `json:"best"`
}

func bestName(rep *analysis.Report) string {
	if b := rep.Best(); b != nil {
		return b.Strategy.String()
	}
	return ""
}

func writeText(w io.Writer, rep *analysis.Report) error {
	lines := []string{
		fmt.Sprintf("%-12s %d", "detectors", rep.DetectorCount),
		fmt.Sprintf("%-12s %d", "observables", rep.ObservableCount),
		fmt.Sprintf("%-12s %d (%d empty)", "hyperedges", rep.HyperedgeCount, rep.EmptyHyperedges),
		fmt.Sprintf("%-12s %d (max degree %d)", "edges", rep.ConnectivityEdges, rep.MaxDegree),
		fmt.Sprintf("%-12s %d (largest %d, isolated %d)", "components", rep.Components, rep.LargestComponent, rep.Isolated),
	}
	for _, res := range rep.Results {
		lines = append(lines, fmt.Sprintf("%-12s max_width=%d count=%d table=2^%d",
			res.Strategy, res.MaxWidth, res.MaxWidthCount, res.MaxWidth))
	}
	lines = append(lines, fmt.Sprintf("%-12s %s", "best", bestName(rep)))

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
