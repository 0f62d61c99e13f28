// Package align turns two pairwise diffs against a shared base document into
// the alignment model that drives a synchronized multi-pane comparison view.
//
// Inputs: two mapping.PairwiseDiff values (base -> side 1, base -> side 2)
// that share the same base document, plus the base document's line count.
// The diffs themselves come from an upstream diff computation (see package
// textdiff); this package never reads document content.
//
// Outputs, in dependency order:
//   - MappingAlignment: a partition of the base document into contiguous,
//     non-overlapping regions. Each region carries the contributing line
//     mappings from both sides and is classified as conflicting exactly when
//     both sides changed it. Regions untouched by either side are included
//     too, so the sequence is total over the base document and callers never
//     special-case coverage gaps.
//   - LineAlignment: per-region synchronization points relating a side-1
//     line, a base line, and a side-2 line that should occupy the same
//     visual row. Derived from the character-level inner changes of all
//     mappings in the region, flattened across the whole region.
//   - Filler: per-side blank-line insertion instructions that realize the
//     synchronization points: after applying fillers, every full alignment
//     point sits on the same visual row in all panes.
//
// Compute runs the whole pipeline and is the usual entry point:
//
//	res, err := align.Compute(diff1, diff2, baseLineCount)
//
// Everything here is a pure function over immutable values: no I/O, no
// hidden state, deterministic output. Concurrent calls need no coordination.
// Invalid inputs fail with an error wrapping mapping.ErrMalformedDiff before
// any output is produced; there is no partial-result mode.
package align
