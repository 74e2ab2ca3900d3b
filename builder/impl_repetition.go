// SPDX-License-Identifier: MIT
// Package: mldwidth/builder
//
// impl_repetition.go - implementation of RepetitionCode(distance, rounds).
//
// Model (phenomenological noise, one logical observable):
//   - distance data qubits q=0..d-1 and d-1 parity checks k=0..d-2, where
//     check k compares qubits k and k+1.
//   - rounds rounds of syndrome extraction. Local detector of check k in
//     round t is t*(d-1) + k.
//   - Data error on qubit q in round t flips checks q-1 and q of that round
//     (whichever exist); qubit 0 additionally flips L0.
//   - Measurement error on check k in round t < rounds-1 flips the check in
//     rounds t and t+1.
//
// Emission order: for each round t asc: data errors q asc, then measurement
// errors k asc.
//
// Contract:
//   - distance ≥ 2 and rounds ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(distance*rounds) time and mechanisms.

package builder

import "github.com/katalvlaran/mldwidth/dem"

const (
	minRepetitionRounds = 1
	repetitionLogical   = 0
)

// RepetitionCode returns a Constructor for a repetition-code memory experiment.
// Its detector connectivity is a (distance-1)×rounds lattice.
func RepetitionCode(distance, rounds int) Constructor {
	return func(m *dem.Model, cfg builderConfig) error {
		if err := validateMin(MethodRepetitionCode, "distance", distance, MinRepetitionDistance); err != nil {
			return err
		}
		if err := validateMin(MethodRepetitionCode, "rounds", rounds, minRepetitionRounds); err != nil {
			return err
		}

		checks := distance - 1
		b := reserve(m, cfg, MethodRepetitionCode, checks*rounds)
		at := func(t, k int) dem.Target { return b.detector(t*checks + k) }

		for t := 0; t < rounds; t++ {
			for q := 0; q < distance; q++ {
				var targets []dem.Target
				if q > 0 {
					targets = append(targets, at(t, q-1))
				}
				if q < checks {
					targets = append(targets, at(t, q))
				}
				if q == 0 {
					targets = append(targets, dem.Observable(repetitionLogical))
				}
				if err := b.mechanism(targets...); err != nil {
					return err
				}
			}
			if t+1 == rounds {
				continue
			}
			for k := 0; k < checks; k++ {
				if err := b.mechanism(at(t, k), at(t+1, k)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
