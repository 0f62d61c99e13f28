// Package uni measures terminal cell widths of text using grapheme clusters,
// so pane padding stays columnar for combining marks, CJK, and emoji.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// cond is the width condition for a non-East-Asian locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

// TextWidth returns the text width of s for monospace fonts in terminals.
func TextWidth(s string) int {
	return cond.StringWidth(s)
}

// Fit returns s truncated at a grapheme boundary so that its width does not
// exceed width cells, along with the width of the returned string. A
// grapheme that would straddle the limit is dropped entirely.
func Fit(s string, width int) (string, int) {
	if TextWidth(s) <= width {
		return s, TextWidth(s)
	}
	var b strings.Builder
	used := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		g := iter.Value()
		w := cond.StringWidth(g)
		if used+w > width {
			break
		}
		b.WriteString(g)
		used += w
	}
	return b.String(), used
}

// Pad returns s truncated and right-padded with spaces to exactly width
// cells.
func Pad(s string, width int) string {
	fitted, used := Fit(s, width)
	if used < width {
		return fitted + strings.Repeat(" ", width-used)
	}
	return fitted
}
