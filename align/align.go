package align

import (
	"fmt"
	"sort"

	"github.com/mergealign/mergealign/internal/tracelog"
	"github.com/mergealign/mergealign/mapping"
	"github.com/mergealign/mergealign/textpos"
)

// MappingAlignment is a merged base region plus the contributions from both
// sides. BaseRange is the union of the base ranges of all contributing
// mappings that overlap or touch; Side1Range/Side2Range are the
// corresponding regions in the side documents. A side with no contributing
// mappings gets the unchanged span that corresponds line-for-line to
// BaseRange.
type MappingAlignment struct {
	BaseRange  textpos.LineRange
	Side1Range textpos.LineRange
	Side2Range textpos.LineRange

	Side1Mappings []mapping.LineRangeMapping
	Side2Mappings []mapping.LineRangeMapping

	// Conflicting is true exactly when both sides contributed mappings to
	// this region. It does not consider whether the edits are textually
	// identical.
	Conflicting bool
}

// Unchanged reports whether no side contributed a mapping to this region.
func (a MappingAlignment) Unchanged() bool {
	return len(a.Side1Mappings) == 0 && len(a.Side2Mappings) == 0
}

func (a MappingAlignment) String() string {
	return fmt.Sprintf("base %v / side1 %v / side2 %v", a.BaseRange, a.Side1Range, a.Side2Range)
}

// Result is the complete alignment model for one pair of diffs.
type Result struct {
	// Alignments partition the base document into ascending, contiguous
	// regions covering lines [1, baseLineCount+1).
	Alignments []MappingAlignment

	// LineAlignments[i] holds the synchronization points of Alignments[i].
	LineAlignments [][]LineAlignment

	// Side1Fillers and Side2Fillers are the blank-line insertions, in
	// ascending anchor order, that keep the panes vertically aligned.
	Side1Fillers []Filler
	Side2Fillers []Filler
}

// Compute validates both diffs and runs the full alignment pipeline. On a
// malformed diff it returns an error wrapping mapping.ErrMalformedDiff and
// no result. Two empty diffs yield a single unchanged alignment and no
// fillers.
func Compute(side1, side2 mapping.PairwiseDiff, baseLineCount int) (*Result, error) {
	if err := side1.Validate(); err != nil {
		return nil, fmt.Errorf("side1: %w", err)
	}
	if err := side2.Validate(); err != nil {
		return nil, fmt.Errorf("side2: %w", err)
	}

	alignments := ComputeAlignments(side1, side2, baseLineCount)

	lineAlignments := make([][]LineAlignment, len(alignments))
	var all []LineAlignment
	for i, a := range alignments {
		lineAlignments[i] = ComputeLineAlignments(a)
		all = append(all, lineAlignments[i]...)
	}

	side1Fillers, side2Fillers := ComputeFillers(all)

	return &Result{
		Alignments:     alignments,
		LineAlignments: lineAlignments,
		Side1Fillers:   side1Fillers,
		Side2Fillers:   side2Fillers,
	}, nil
}

// ComputeAlignments merge-walks both mapping sequences by ascending base
// start line and groups mappings whose base ranges overlap or touch (are
// adjacent with zero gap). Base regions untouched by either side are emitted
// as unchanged alignments, so the returned sequence is contiguous and total
// over lines [1, baseLineCount+1).
//
// Both diffs must already be valid (see PairwiseDiff.Validate); Compute does
// this for you.
func ComputeAlignments(side1, side2 mapping.PairwiseDiff, baseLineCount int) []MappingAlignment {
	type tagged struct {
		side int // 0 or 1
		m    mapping.LineRangeMapping
	}
	combined := make([]tagged, 0, len(side1.Mappings)+len(side2.Mappings))
	for _, m := range side1.Mappings {
		combined = append(combined, tagged{side: 0, m: m})
	}
	for _, m := range side2.Mappings {
		combined = append(combined, tagged{side: 1, m: m})
	}
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].m.Input.Start < combined[j].m.Input.Start
	})

	var out []MappingAlignment

	// delta[s] is the running line offset from base to side s: a base line b
	// outside any change corresponds to side line b+delta[s].
	delta := [2]int{}
	cursor := 1 // next base line not yet covered by an emitted alignment
	var cur [2][]mapping.LineRangeMapping
	var curBase textpos.LineRange
	open := false

	emitUnchanged := func(gap textpos.LineRange) {
		out = append(out, MappingAlignment{
			BaseRange:  gap,
			Side1Range: gap.Delta(delta[0]),
			Side2Range: gap.Delta(delta[1]),
		})
	}

	closeGroup := func() {
		a := MappingAlignment{
			BaseRange:     curBase,
			Side1Range:    groupSideRange(curBase, cur[0], delta[0]),
			Side2Range:    groupSideRange(curBase, cur[1], delta[1]),
			Side1Mappings: cur[0],
			Side2Mappings: cur[1],
			Conflicting:   len(cur[0]) > 0 && len(cur[1]) > 0,
		}
		tracelog.Log("align: group %v conflicting=%v (%d/%d mappings)", a.BaseRange, a.Conflicting, len(cur[0]), len(cur[1]))
		out = append(out, a)
		cursor = curBase.EndEx
		cur[0] = nil
		cur[1] = nil
		open = false
	}

	for _, t := range combined {
		r := t.m.Input
		if open && !curBase.Touches(r) {
			closeGroup()
		}
		if !open {
			// Mappings are sorted by start, so r.Start is the final start of
			// the new group; the gap before it is settled now.
			if r.Start > cursor {
				emitUnchanged(textpos.Lines(cursor, r.Start))
			}
			curBase = r
			open = true
		} else {
			curBase = curBase.Join(r)
		}
		delta[t.side] = t.m.Output.EndEx - t.m.Input.EndEx
		cur[t.side] = append(cur[t.side], t.m)
	}
	if open {
		closeGroup()
	}

	if end := baseLineCount + 1; cursor < end {
		emitUnchanged(textpos.Lines(cursor, end))
	}
	if len(out) == 0 {
		// Zero-line base with empty diffs: still return total coverage.
		emitUnchanged(textpos.Lines(1, baseLineCount+1))
	}
	return out
}

// groupSideRange returns the side region corresponding to groupBase. For a
// side with mappings it is the join of their output ranges, extended so that
// base lines the group gained from the other side keep their line-for-line
// correspondence. For a side without mappings it is groupBase shifted by the
// running offset.
func groupSideRange(groupBase textpos.LineRange, ms []mapping.LineRangeMapping, offset int) textpos.LineRange {
	if len(ms) == 0 {
		return groupBase.Delta(offset)
	}
	inputJoin := ms[0].Input
	outputJoin := ms[0].Output
	for _, m := range ms[1:] {
		inputJoin = inputJoin.Join(m.Input)
		outputJoin = outputJoin.Join(m.Output)
	}
	startDelta := groupBase.Start - inputJoin.Start // <= 0
	endDelta := groupBase.EndEx - inputJoin.EndEx   // >= 0
	return textpos.Lines(outputJoin.Start+startDelta, outputJoin.EndEx+endDelta)
}
