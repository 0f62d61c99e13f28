// Package mapping defines the pairwise diff model consumed by the alignment
// engine: line-level edit correspondences between a base document and one
// side document, optionally refined by character-level inner changes.
//
// A PairwiseDiff is produced by an upstream diff computation (see package
// textdiff for an adapter) and is immutable once produced. Validate is the
// defensive boundary between that upstream and the engine: the upstream is
// trusted, but not blindly trusted.
//
// Invariants:
//   - Mappings are ascending by base start line and non-overlapping.
//   - Inner changes of a mapping are ascending, non-overlapping, and lie
//     within the mapping's declared input/output line ranges.
package mapping

import (
	"errors"
	"fmt"

	"github.com/mergealign/mergealign/textpos"
)

// ErrMalformedDiff reports that a PairwiseDiff violates its ordering or
// containment invariants. This indicates an upstream programming error, not
// a user-recoverable condition; the alignment computation is aborted.
var ErrMalformedDiff = errors.New("malformed diff")

// RangeMapping is one character-level edit correspondence: the base span
// Input was replaced by the side span Output. Either span may be empty
// (pure insertion or deletion).
type RangeMapping struct {
	Input  textpos.Range // span in the base document
	Output textpos.Range // span in the side document
}

func (m RangeMapping) String() string {
	return fmt.Sprintf("%v -> %v", m.Input, m.Output)
}

// LineRangeMapping is one line-level edit correspondence: the base lines
// Input were replaced by the side lines Output. Inner, if non-empty, refines
// the correspondence at character granularity; if empty, the whole line
// ranges are considered changed.
type LineRangeMapping struct {
	Input  textpos.LineRange // lines in the base document
	Output textpos.LineRange // lines in the side document
	Inner  []RangeMapping
}

func (m LineRangeMapping) String() string {
	return fmt.Sprintf("%v -> %v", m.Input, m.Output)
}

// PairwiseDiff is the full diff from the base document to one side document.
type PairwiseDiff struct {
	Mappings []LineRangeMapping
}

// IsEmpty reports whether the diff contains no changes.
func (d PairwiseDiff) IsEmpty() bool {
	return len(d.Mappings) == 0
}
