package textpos

import "fmt"

// LineRange is a span of whole lines: [Start, EndEx). Start is 1-based and
// EndEx is exclusive. A LineRange may be empty (Start == EndEx), which
// denotes a point between lines rather than any content.
//
// Invariant: EndEx >= Start.
type LineRange struct {
	Start int
	EndEx int
}

// Lines constructs a LineRange covering [start, endEx).
func Lines(start, endEx int) LineRange {
	return LineRange{Start: start, EndEx: endEx}
}

// Len returns the number of lines in the range.
func (l LineRange) Len() int {
	return l.EndEx - l.Start
}

// IsEmpty reports whether the range covers no lines.
func (l LineRange) IsEmpty() bool {
	return l.Start == l.EndEx
}

// IsValid reports whether EndEx >= Start and Start >= 1.
func (l LineRange) IsValid() bool {
	return l.Start >= 1 && l.EndEx >= l.Start
}

// Touches reports whether l and other overlap or are adjacent with zero gap.
// Empty ranges touch anything that contains or borders their position; two
// empty ranges at the same point touch each other.
func (l LineRange) Touches(other LineRange) bool {
	return l.Start <= other.EndEx && other.Start <= l.EndEx
}

// Join returns the smallest LineRange covering both l and other.
func (l LineRange) Join(other LineRange) LineRange {
	start := l.Start
	if other.Start < start {
		start = other.Start
	}
	endEx := l.EndEx
	if other.EndEx > endEx {
		endEx = other.EndEx
	}
	return LineRange{Start: start, EndEx: endEx}
}

// Delta returns l shifted down by n lines (n may be negative).
func (l LineRange) Delta(n int) LineRange {
	return LineRange{Start: l.Start + n, EndEx: l.EndEx + n}
}

// ToRange converts l to a character Range anchored at column 1 of the first
// line and column 1 of the line after the last.
func (l LineRange) ToRange() Range {
	return Range{
		Start: Position{Line: l.Start, Col: 1},
		End:   Position{Line: l.EndEx, Col: 1},
	}
}

func (l LineRange) String() string {
	return fmt.Sprintf("[%d,%d)", l.Start, l.EndEx)
}
