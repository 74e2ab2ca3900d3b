package analysis

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mldwidth/connectivity"
	"github.com/katalvlaran/mldwidth/dem"
	"github.com/katalvlaran/mldwidth/diag"
	"github.com/katalvlaran/mldwidth/frontier"
	"github.com/katalvlaran/mldwidth/hypergraph"
)

var analysisTracer = otel.Tracer("mldwidth.analysis")

// Analyze runs the pipeline over m and returns its Report.
//
// ctx is checked before every stage and between elimination steps.
func Analyze(ctx context.Context, m *dem.Model, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidInput)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := analysisTracer.Start(ctx, "analysis.Analyze",
		trace.WithAttributes(
			attribute.Int("detector_count", m.DetectorCount),
			attribute.Int("observable_count", m.ObservableCount),
			attribute.Int("event_count", len(m.Events)),
			attribute.Bool("observables", o.LogicalObservables),
		),
	)
	defer span.End()

	rep, err := run(ctx, m, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if best := rep.Best(); best != nil {
		span.SetAttributes(
			attribute.String("best_strategy", best.Strategy.String()),
			attribute.Int("best_max_width", best.MaxWidth),
		)
	}
	o.Sink.Record(diag.Event{
		Level:     diag.LevelInfo,
		Component: "analysis",
		Name:      "done",
		Attrs: []diag.Attr{
			diag.Int("detectors", rep.DetectorCount),
			diag.Int("hyperedges", rep.HyperedgeCount),
			diag.Int("components", rep.Components),
			diag.Int("results", len(rep.Results)),
		},
	})
	return rep, nil
}

func run(ctx context.Context, m *dem.Model, o Options) (*Report, error) {
	h, err := buildHypergraph(ctx, m, o)
	if err != nil {
		return nil, err
	}
	cm, err := buildConnectivity(ctx, h, o)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		DetectorCount:     h.DetectorCount(),
		ObservableCount:   h.ObservableCount(),
		VariableCount:     cm.Len(),
		HyperedgeCount:    h.HyperedgeCount(),
		ConnectivityEdges: cm.EdgeCount(),
		MaxDegree:         cm.MaxDegree(),
		Isolated:          len(cm.Isolated()),
		Hypergraph:        h,
		Map:               cm,
	}
	for _, e := range h.Hyperedges() {
		if len(e) == 0 {
			rep.EmptyHyperedges++
		}
	}
	comps := cm.Components()
	rep.Components = len(comps)
	for _, c := range comps {
		if len(c) > rep.LargestComponent {
			rep.LargestComponent = len(c)
		}
	}

	for _, s := range o.Strategies {
		res, err := estimate(ctx, cm, s, o)
		if err != nil {
			return nil, err
		}
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

func buildHypergraph(ctx context.Context, m *dem.Model, o Options) (*hypergraph.Hypergraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis: hypergraph: %w", err)
	}
	_, span := analysisTracer.Start(ctx, "analysis.hypergraph")
	defer span.End()

	hopts := []hypergraph.Option{hypergraph.WithSink(o.Sink)}
	if o.LogicalObservables {
		hopts = append(hopts, hypergraph.WithLogicalObservables())
	}
	h, err := hypergraph.FromModel(m, hopts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("analysis: hypergraph: %w", err)
	}
	span.AddEvent("hypergraph_built", trace.WithAttributes(
		attribute.Int("node_count", h.NodeCount()),
		attribute.Int("hyperedge_count", h.HyperedgeCount()),
	))
	return h, nil
}

func buildConnectivity(ctx context.Context, h *hypergraph.Hypergraph, o Options) (*connectivity.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis: connectivity: %w", err)
	}
	_, span := analysisTracer.Start(ctx, "analysis.connectivity",
		trace.WithAttributes(attribute.Int("workers", o.Workers)),
	)
	defer span.End()

	copts := []connectivity.Option{connectivity.WithWorkers(o.Workers), connectivity.WithSink(o.Sink)}
	if o.LogicalObservables {
		copts = append(copts, connectivity.WithLogicalObservables(h.ObservableCount()))
	}
	cm, err := connectivity.FromHypergraph(h, copts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("analysis: connectivity: %w", err)
	}
	span.AddEvent("connectivity_built", trace.WithAttributes(
		attribute.Int("variable_count", cm.Len()),
		attribute.Int("edge_count", cm.EdgeCount()),
		attribute.Int("max_degree", cm.MaxDegree()),
	))
	return cm, nil
}

func estimate(ctx context.Context, cm *connectivity.Map, s frontier.Strategy, o Options) (*frontier.Result, error) {
	ctx, span := analysisTracer.Start(ctx, "analysis.frontier",
		trace.WithAttributes(attribute.String("strategy", s.String())),
	)
	defer span.End()

	res, err := frontier.Estimate(cm, cm.Len(), s,
		frontier.WithContext(ctx),
		frontier.WithSink(o.Sink),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("analysis: %s: %w", s, err)
	}
	span.AddEvent("estimate_complete", trace.WithAttributes(
		attribute.Int("max_width", res.MaxWidth),
		attribute.Int("max_width_count", res.MaxWidthCount),
	))
	return res, nil
}
