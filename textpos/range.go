package textpos

import "fmt"

// Range is a span within one document, from Start (inclusive) to End
// (exclusive). Start must not be after End in document order.
type Range struct {
	Start Position
	End   Position
}

// RangeOf constructs a Range from two positions.
func RangeOf(start, end Position) Range {
	return Range{Start: start, End: end}
}

// IsEmpty reports whether the range spans no text (Start == End).
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Length returns the TextLength spanned by r.
func (r Range) Length() TextLength {
	return LengthBetween(r.Start, r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End)
}
