// Package builder produces deterministic synthetic detector error models for
// tests, benchmarks and examples.
//
// A fixture is assembled by BuildModel from a list of Constructors applied in
// order. Every topology Constructor reserves a fresh, contiguous block of
// detectors starting at the model's current DetectorCount, declares each of
// them with a `detector` instruction (so isolated detectors still count) and
// then appends `error(p)` mechanisms between them. Composing Path(3) and
// Star(4) therefore yields 7 detectors in two disconnected components.
//
// Constructors:
//
//   - Topologies:   Path, Cycle, Star, Wheel, Grid, Complete, Isolated.
//   - Stochastic:   RandomSparse (Erdős–Rényi pairs), RandomRegular (stub matching).
//   - Raw:          Hyperedge, one mechanism over absolute detector indices.
//   - Codes:        RepetitionCode, a phenomenological repetition-code memory
//     experiment with data and measurement errors.
//
// Options:
//
//   - WithSeed / WithRand:   RNG for stochastic constructors and probability draws.
//   - WithProbability:       constant error probability for every mechanism.
//   - WithProbabilityFn:     per-mechanism probability generator (see ProbabilityFn).
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical models.
//   - Constructors validate before mutating; option constructors panic on
//     meaningless values.
//   - Errors are wrapped builder sentinels; branch with errors.Is.
package builder
