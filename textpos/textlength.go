package textpos

import "fmt"

// TextLength is the size of a text span as a line count plus a column count
// on the final line. Ordering is lexicographic: Lines first, then Cols.
type TextLength struct {
	Lines int
	Cols  int
}

// Compare orders lengths lexicographically. It returns -1 if t is smaller
// than other, 0 if equal, and 1 if greater.
func (t TextLength) Compare(other TextLength) int {
	if t.Lines != other.Lines {
		if t.Lines < other.Lines {
			return -1
		}
		return 1
	}
	if t.Cols != other.Cols {
		if t.Cols < other.Cols {
			return -1
		}
		return 1
	}
	return 0
}

// GreaterThan reports whether t is strictly greater than other.
func (t TextLength) GreaterThan(other TextLength) bool {
	return t.Compare(other) > 0
}

// LengthBetween returns the TextLength from start to end. For a same-line
// span it is (0, end.Col-start.Col); across lines the column count restarts,
// so it is (end.Line-start.Line, end.Col-1).
func LengthBetween(start, end Position) TextLength {
	if start.Line == end.Line {
		return TextLength{Lines: 0, Cols: end.Col - start.Col}
	}
	return TextLength{Lines: end.Line - start.Line, Cols: end.Col - 1}
}

// AddTo returns the position reached by advancing t from p. The inverse of
// LengthBetween: LengthBetween(p, t.AddTo(p)) == t.
func (t TextLength) AddTo(p Position) Position {
	if t.Lines == 0 {
		return Position{Line: p.Line, Col: p.Col + t.Cols}
	}
	return Position{Line: p.Line + t.Lines, Col: t.Cols + 1}
}

func (t TextLength) String() string {
	return fmt.Sprintf("(%d,%d)", t.Lines, t.Cols)
}
