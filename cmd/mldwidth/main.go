// Command mldwidth estimates the exact maximum-likelihood decoding cost of a
// detector error model: it reads a DEM (or builds a synthetic one), derives
// the detector connectivity and reports the peak frontier width of each
// elimination strategy.
//
// Usage:
//
//	mldwidth --dem circuit.dem
//	mldwidth --fixture repetition:7x7 --format json --metrics-file mldwidth.prom
//	stim ... | mldwidth --strategy greedy --log-level debug
//
// Every flag may also come from a --config file or a MLDWIDTH_<FLAG> variable
// (dashes become underscores). Exit status is 1 on any error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mldwidth/analysis"
	"github.com/katalvlaran/mldwidth/dem"
	"github.com/katalvlaran/mldwidth/diag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals; it returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, func(fs *pflag.FlagSet) {
		fmt.Fprintln(stderr, "Usage: mldwidth [flags]")
		fs.SetOutput(stderr)
		fs.PrintDefaults()
	})
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "mldwidth:", err)
		return 1
	}

	level, _ := cfg.LogLevel()
	logger := log.NewWithOptions(stderr, log.Options{
		Level:           level,
		Prefix:          "mldwidth",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})

	if err := execute(ctx, cfg, logger, stdin, stdout); err != nil {
		logger.Error("failed", "err", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, cfg *Config, logger *log.Logger, stdin io.Reader, stdout io.Writer) error {
	m, source, err := loadModel(cfg, stdin)
	if err != nil {
		return err
	}
	logger.Info("model loaded", "source", source, "events", len(m.Events),
		"detectors", m.DetectorCount, "observables", m.ObservableCount)

	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}

	sinks := []diag.Sink{diag.NewLogSink(logger)}
	var reg *prometheus.Registry
	if cfg.MetricsFile() != "" {
		reg = prometheus.NewRegistry()
		sinks = append(sinks, diag.NewMetricsSink(reg))
	}

	opts := []analysis.Option{
		analysis.WithStrategies(strategies...),
		analysis.WithWorkers(cfg.Workers()),
		analysis.WithSink(diag.Multi(sinks...)),
	}
	if cfg.Observables() {
		opts = append(opts, analysis.WithLogicalObservables())
	}

	start := time.Now()
	rep, err := analysis.Analyze(ctx, m, opts...)
	if err != nil {
		return err
	}
	logger.Debug("analysis finished", "elapsed", time.Since(start))

	if err := writeReport(stdout, rep, cfg.Format()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if path := cfg.DOTFile(); path != "" {
		data, err := rep.Hypergraph.MarshalDOT("mechanisms")
		if err != nil {
			return fmt.Errorf("encode dot: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write dot: %w", err)
		}
		logger.Info("dot written", "path", path)
	}
	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile(), reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", cfg.MetricsFile())
	}
	return nil
}

// loadModel builds the --fixture model if one is set, otherwise parses --dem.
func loadModel(cfg *Config, stdin io.Reader) (*dem.Model, string, error) {
	if desc := cfg.Fixture(); desc != "" {
		m, err := buildFixture(desc, cfg.Probability(), cfg.Seed())
		return m, "fixture " + desc, err
	}

	path := cfg.DEM()
	if path == "" || path == "-" {
		m, err := dem.Parse(stdin)
		return m, "stdin", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	defer f.Close()
	m, err := dem.Parse(f)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return m, path, nil
}
