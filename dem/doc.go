// Package dem reads detector error models (DEMs) in their line-oriented text form.
//
// A detector error model lists the independent error mechanisms of a noisy
// circuit together with the detectors ("D<k>") and logical observables ("L<k>")
// each mechanism flips:
//
//	# two rounds of a distance-3 repetition code
//	error(0.01) D0 L0
//	error(0.01) D0 D1
//	detector(1, 0) D0
//	repeat 2 {
//	    error(0.002) D0 D2
//	    shift_detectors 2
//	}
//	logical_observable L0
//
// What
//
//   - Parse flattens repeat blocks and applies shift_detectors offsets, so every
//     Event carries absolute detector indices.
//   - Model.DetectorCount / ObservableCount are derived from the largest index
//     seen (error targets and detector/logical_observable declarations).
//   - Model.WriteTo renders the flattened model back into the same text format.
//
// Supported instructions (names are case-insensitive):
//
//	error(p) targets...                  one independent mechanism with probability p
//	detector[(coords...)] D<k>...        declares detectors (coordinates are kept as Args)
//	logical_observable L<k>...           declares observables
//	shift_detectors[(coords...)] <k>     adds k to the detector offset
//	repeat <n> { ... }                   repeats the enclosed block n times
//	detector_separator <k>               accepted and ignored
//
// Targets are D<k>, L<k>, and the "^" separator of suggested decompositions.
//
// Errors
//
//   - ErrSyntax              malformed line, argument, or count
//   - ErrUnknownInstruction  instruction name not listed above
//   - ErrBadTarget           target that is not D<k>, L<k>, or ^ (or wrong kind for the instruction)
//   - ErrMissingProbability  error instruction without a probability argument
//   - ErrUnbalancedBlock     unmatched "{" or "}"
//   - ErrTooManyEvents       flattening exceeded WithMaxEvents (events, or repeat
//     iterations plus shifts)
//   - ErrIndexTooLarge       detector/observable index or shift offset beyond WithMaxDetectors
//
// Complexity: O(L + E) where L is the number of input lines and E the number
// of flattened events.
package dem
