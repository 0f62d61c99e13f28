// Package textpos provides the geometric primitives shared by the alignment
// engine: 1-based positions, end-exclusive character ranges, whole-line
// ranges, and lexicographically ordered text lengths.
package textpos

import "fmt"

// Position is a point in a document. Line and Col are both 1-based. A column
// is only meaningful relative to the content of its line; column 1 is the
// position before the first character.
type Position struct {
	Line int
	Col  int
}

// Pos is shorthand for constructing a Position.
func Pos(line, col int) Position {
	return Position{Line: line, Col: col}
}

// Compare orders positions in document order: by line, then by column.
// It returns -1 if p is before other, 0 if equal, and 1 if after.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether p is strictly before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// MinPos returns the earlier of a and b.
func MinPos(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxPos returns the later of a and b.
func MaxPos(a, b Position) Position {
	if a.Before(b) {
		return b
	}
	return a
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
