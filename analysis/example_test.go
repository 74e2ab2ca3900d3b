package analysis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mldwidth/analysis"
	"github.com/katalvlaran/mldwidth/dem"
)

// ExampleAnalyze parses a small model and prints the peak width per strategy.
func ExampleAnalyze() {
	m, err := dem.ParseString(`
error(0.01) D0 D1
error(0.01) D0 D2
error(0.01) D0 D3
detector D4
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rep, err := analysis.Analyze(context.Background(), m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("detectors=%d edges=%d components=%d isolated=%d\n",
		rep.DetectorCount, rep.ConnectivityEdges, rep.Components, rep.Isolated)
	for _, res := range rep.Results {
		fmt.Printf("%s: max=%d table=%s\n", res.Strategy, res.MaxWidth, res.TableSize())
	}
	fmt.Println("best:", rep.Best().Strategy)
	// Output:
	// detectors=5 edges=3 components=2 isolated=1
	// greedy: max=2 table=4
	// sequential: max=3 table=8
	// best: greedy
}
