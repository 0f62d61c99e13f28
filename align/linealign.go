package align

import (
	"github.com/mergealign/mergealign/mapping"
	"github.com/mergealign/mergealign/textpos"
)

// LineAlignment is one synchronization point: the named lines should occupy
// the same visual row across all panes. A field of 0 means that document
// does not participate in this point. Within one alignment's sequence every
// present field is monotonically non-decreasing.
type LineAlignment struct {
	Side1Line int
	BaseLine  int
	Side2Line int
}

// significanceThreshold filters one-line noise: a common equal range only
// contributes a synchronization point if its length strictly exceeds one
// full line.
var significanceThreshold = textpos.TextLength{Lines: 1, Cols: 0}

// ComputeLineAlignments computes the ordered synchronization points of one
// alignment region, spanning its base and side ranges inclusively from start
// to end.
//
// The character-level inner changes of all mappings in the region are
// flattened per side (across the whole region, not per mapping), inverted
// into equal-range correspondences anchored at the region's exact boundary
// positions, and intersected on the base coordinate. Each sufficiently large
// common equal range yields a point at its start; the region's start and end
// always yield boundary points so downstream filler computation has anchors
// at region edges.
func ComputeLineAlignments(a MappingAlignment) []LineAlignment {
	eq1 := equalRangeMappings(flattenInner(a.Side1Mappings), a.BaseRange.ToRange(), a.Side1Range.ToRange())
	eq2 := equalRangeMappings(flattenInner(a.Side2Mappings), a.BaseRange.ToRange(), a.Side2Range.ToRange())

	result := []LineAlignment{{
		Side1Line: a.Side1Range.Start,
		BaseLine:  a.BaseRange.Start,
		Side2Line: a.Side2Range.Start,
	}}

	for _, c := range commonEqualRanges(eq1, eq2) {
		if !c.length.GreaterThan(significanceThreshold) {
			continue
		}
		appendMonotonic(&result, LineAlignment{
			Side1Line: c.side1.Line,
			BaseLine:  c.base.Line,
			Side2Line: c.side2.Line,
		})
	}

	appendMonotonic(&result, LineAlignment{
		Side1Line: a.Side1Range.EndEx,
		BaseLine:  a.BaseRange.EndEx,
		Side2Line: a.Side2Range.EndEx,
	})

	return result
}

// flattenInner concatenates the inner changes of all mappings into one
// ascending character-level sequence. A mapping without inner changes is
// treated as one whole-range change.
func flattenInner(ms []mapping.LineRangeMapping) []mapping.RangeMapping {
	var out []mapping.RangeMapping
	for _, m := range ms {
		if len(m.Inner) > 0 {
			out = append(out, m.Inner...)
			continue
		}
		out = append(out, mapping.RangeMapping{
			Input:  m.Input.ToRange(),
			Output: m.Output.ToRange(),
		})
	}
	return out
}

// equalRangeMappings inverts a sequence of change mappings into the
// correspondences of the text between them: the base spans untouched by this
// side, each paired with its span in the side document. The first and last
// equal ranges are anchored at the exact start and end positions of
// inputRange/outputRange, which may lie mid-line.
func equalRangeMappings(changes []mapping.RangeMapping, inputRange, outputRange textpos.Range) []mapping.RangeMapping {
	var out []mapping.RangeMapping
	inStart := inputRange.Start
	outStart := outputRange.Start
	push := func(inEnd, outEnd textpos.Position) {
		eq := mapping.RangeMapping{
			Input:  textpos.RangeOf(inStart, inEnd),
			Output: textpos.RangeOf(outStart, outEnd),
		}
		if !eq.Input.IsEmpty() {
			out = append(out, eq)
		}
	}
	for _, c := range changes {
		push(c.Input.Start, c.Output.Start)
		inStart = c.Input.End
		outStart = c.Output.End
	}
	push(inputRange.End, outputRange.End)
	return out
}

// commonRange is a base span left unmodified by either side, with the side
// positions corresponding to its start.
type commonRange struct {
	base   textpos.Position
	length textpos.TextLength
	side1  textpos.Position
	side2  textpos.Position
}

// commonEqualRanges intersects the two sides' equal ranges on the base
// coordinate. Both inputs are ascending and non-overlapping, so a two-pointer
// sweep suffices.
func commonEqualRanges(eq1, eq2 []mapping.RangeMapping) []commonRange {
	var out []commonRange
	i, j := 0, 0
	for i < len(eq1) && j < len(eq2) {
		start := textpos.MaxPos(eq1[i].Input.Start, eq2[j].Input.Start)
		end := textpos.MinPos(eq1[i].Input.End, eq2[j].Input.End)
		if start.Before(end) {
			out = append(out, commonRange{
				base:   start,
				length: textpos.RangeOf(start, end).Length(),
				side1:  projectThrough(eq1[i], start),
				side2:  projectThrough(eq2[j], start),
			})
		}
		switch eq1[i].Input.End.Compare(eq2[j].Input.End) {
		case -1:
			i++
		case 1:
			j++
		default:
			i++
			j++
		}
	}
	return out
}

// projectThrough maps a base position inside eq's input span to the
// corresponding position in its output span.
func projectThrough(eq mapping.RangeMapping, basePos textpos.Position) textpos.Position {
	return textpos.LengthBetween(eq.Input.Start, basePos).AddTo(eq.Output.Start)
}

// appendMonotonic appends la unless it duplicates the previous point or
// would move a present field backwards.
func appendMonotonic(result *[]LineAlignment, la LineAlignment) {
	if n := len(*result); n > 0 {
		last := (*result)[n-1]
		if la == last {
			return
		}
		if fieldRegresses(last.Side1Line, la.Side1Line) ||
			fieldRegresses(last.BaseLine, la.BaseLine) ||
			fieldRegresses(last.Side2Line, la.Side2Line) {
			return
		}
	}
	*result = append(*result, la)
}

func fieldRegresses(prev, next int) bool {
	return prev != 0 && next != 0 && next < prev
}
