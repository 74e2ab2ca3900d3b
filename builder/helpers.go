// Package builder provides internal helpers used by constructors to reserve
// detector blocks and emit mechanisms.
package builder

import (
	"fmt"

	"github.com/katalvlaran/mldwidth/dem"
)

// block is a contiguous range of detectors [base, base+size) reserved by one
// constructor call. Local indices 0..size-1 map to base+i.
type block struct {
	m      *dem.Model
	cfg    builderConfig
	method string
	base   int
	size   int
}

// reserve declares size fresh detectors after the model's current ones.
// Each gets a `detector` instruction so it counts even when no mechanism
// touches it.
// Complexity: O(size).
func reserve(m *dem.Model, cfg builderConfig, method string, size int) block {
	b := block{m: m, cfg: cfg, method: method, base: m.DetectorCount, size: size}
	for i := 0; i < size; i++ {
		m.Append(dem.Event{
			Type:    dem.InstructionDetector,
			Targets: []dem.Target{dem.Detector(b.base + i)},
		})
	}
	return b
}

// detector maps a local index to its absolute target.
func (b block) detector(i int) dem.Target {
	return dem.Detector(b.base + i)
}

// pair emits error(p) D(base+u) D(base+v).
func (b block) pair(u, v int) error {
	return b.mechanism(b.detector(u), b.detector(v))
}

// mechanism emits one error(p) instruction over targets, drawing p from cfg.
func (b block) mechanism(targets ...dem.Target) error {
	return emit(b.m, b.cfg, b.method, targets)
}

// emit appends one error mechanism to m. targets is copied.
func emit(m *dem.Model, cfg builderConfig, method string, targets []dem.Target) error {
	if len(targets) == 0 {
		return fmt.Errorf("%s: mechanism with no targets: %w", method, ErrTooFewVertices)
	}
	p, err := cfg.probability(method)
	if err != nil {
		return err
	}
	m.Append(dem.Event{
		Type:    dem.InstructionError,
		Args:    []float64{p},
		Targets: append([]dem.Target(nil), targets...),
	})
	return nil
}
