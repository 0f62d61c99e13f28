package mapping

import (
	"fmt"

	"github.com/mergealign/mergealign/textpos"
)

// Validate checks the PairwiseDiff invariants and returns an error wrapping
// ErrMalformedDiff on the first violation. A nil return means the diff is in
// canonical form and safe to feed to the alignment engine. An empty diff is
// valid.
func (d PairwiseDiff) Validate() error {
	for i, m := range d.Mappings {
		if !m.Input.IsValid() {
			return fmt.Errorf("mapping[%d]: input range %v is invalid: %w", i, m.Input, ErrMalformedDiff)
		}
		if !m.Output.IsValid() {
			return fmt.Errorf("mapping[%d]: output range %v is invalid: %w", i, m.Output, ErrMalformedDiff)
		}
		if i > 0 {
			prev := d.Mappings[i-1]
			if m.Input.Start < prev.Input.Start {
				return fmt.Errorf("mapping[%d]: input range %v is not sorted after %v: %w", i, m.Input, prev.Input, ErrMalformedDiff)
			}
			if m.Input.Start < prev.Input.EndEx {
				return fmt.Errorf("mapping[%d]: input range %v overlaps %v: %w", i, m.Input, prev.Input, ErrMalformedDiff)
			}
			if m.Output.Start < prev.Output.EndEx {
				return fmt.Errorf("mapping[%d]: output range %v overlaps %v: %w", i, m.Output, prev.Output, ErrMalformedDiff)
			}
		}
		if err := validateInner(i, m); err != nil {
			return err
		}
	}
	return nil
}

// validateInner checks ordering of inner changes and containment in the
// parent's declared line ranges. An inner span may end at column 1 of the
// line just past its parent range (that position covers a trailing newline).
func validateInner(i int, m LineRangeMapping) error {
	inputEnd := textpos.Pos(m.Input.EndEx, 1)
	outputEnd := textpos.Pos(m.Output.EndEx, 1)
	inputStart := textpos.Pos(m.Input.Start, 1)
	outputStart := textpos.Pos(m.Output.Start, 1)

	for j, inner := range m.Inner {
		if inner.Input.End.Before(inner.Input.Start) {
			return fmt.Errorf("mapping[%d].inner[%d]: input range %v is inverted: %w", i, j, inner.Input, ErrMalformedDiff)
		}
		if inner.Output.End.Before(inner.Output.Start) {
			return fmt.Errorf("mapping[%d].inner[%d]: output range %v is inverted: %w", i, j, inner.Output, ErrMalformedDiff)
		}
		if inner.Input.Start.Before(inputStart) || inputEnd.Before(inner.Input.End) {
			return fmt.Errorf("mapping[%d].inner[%d]: input range %v outside parent %v: %w", i, j, inner.Input, m.Input, ErrMalformedDiff)
		}
		if inner.Output.Start.Before(outputStart) || outputEnd.Before(inner.Output.End) {
			return fmt.Errorf("mapping[%d].inner[%d]: output range %v outside parent %v: %w", i, j, inner.Output, m.Output, ErrMalformedDiff)
		}
		if j > 0 {
			prev := m.Inner[j-1]
			if inner.Input.Start.Before(prev.Input.End) {
				return fmt.Errorf("mapping[%d].inner[%d]: input range %v overlaps %v: %w", i, j, inner.Input, prev.Input, ErrMalformedDiff)
			}
			if inner.Output.Start.Before(prev.Output.End) {
				return fmt.Errorf("mapping[%d].inner[%d]: output range %v overlaps %v: %w", i, j, inner.Output, prev.Output, ErrMalformedDiff)
			}
		}
	}
	return nil
}
