// Package render produces a plain-text, side-by-side view of an aligned
// comparison: one fixed-width pane per side with filler rows applied, so
// corresponding lines occupy the same visual row. It is a debugging and
// testing aid for the alignment model, not a UI.
package render

import (
	"strings"

	"github.com/mergealign/mergealign/align"
	"github.com/mergealign/mergealign/internal/uni"
)

// Row markers emitted in each pane's gutter.
const (
	markerUnchanged = ' ' // line inside an unchanged region
	markerChanged   = '*' // line inside a region changed by one side
	markerConflict  = '!' // line inside a conflicting region
	markerFiller    = '~' // synthetic filler row
)

// SideBySide renders side 1 and side 2 next to each other using the filler
// lists from res. Each pane is paneWidth cells wide, preceded by a one-rune
// gutter marker, and the panes are separated by " | ". The result always has
// the same number of rows in both panes.
//
// side1Lines and side2Lines are the documents' lines without trailing
// newlines, 0-indexed (line n of the document is slice index n-1).
func SideBySide(side1Lines, side2Lines []string, res *align.Result, paneWidth int) string {
	rows1 := paneRows(side1Lines, res.Side1Fillers, sideMarkers(res, 1, len(side1Lines)))
	rows2 := paneRows(side2Lines, res.Side2Fillers, sideMarkers(res, 2, len(side2Lines)))

	for len(rows1) < len(rows2) {
		rows1 = append(rows1, paneRow{marker: markerFiller})
	}
	for len(rows2) < len(rows1) {
		rows2 = append(rows2, paneRow{marker: markerFiller})
	}

	var b strings.Builder
	for i := range rows1 {
		b.WriteRune(rows1[i].marker)
		b.WriteByte(' ')
		b.WriteString(uni.Pad(rows1[i].text, paneWidth))
		b.WriteString(" | ")
		b.WriteRune(rows2[i].marker)
		b.WriteByte(' ')
		b.WriteString(uni.Pad(rows2[i].text, paneWidth))
		b.WriteByte('\n')
	}
	return b.String()
}

type paneRow struct {
	marker rune
	text   string
}

// sideMarkers classifies each line of one side (1-based index into the
// returned slice) by the alignment region containing it.
func sideMarkers(res *align.Result, side int, lineCount int) []rune {
	markers := make([]rune, lineCount+1)
	for i := range markers {
		markers[i] = markerUnchanged
	}
	for _, a := range res.Alignments {
		if a.Unchanged() {
			continue
		}
		marker := markerChanged
		if a.Conflicting {
			marker = markerConflict
		}
		r := a.Side1Range
		if side == 2 {
			r = a.Side2Range
		}
		for line := r.Start; line < r.EndEx && line <= lineCount; line++ {
			markers[line] = marker
		}
	}
	return markers
}

// paneRows expands a document into visual rows, inserting filler rows after
// each filler's anchor line. Fillers are in ascending anchor order; anchor 0
// inserts before the first line.
func paneRows(lines []string, fillers []align.Filler, markers []rune) []paneRow {
	var rows []paneRow
	fi := 0
	emitFillers := func(afterLine int) {
		for fi < len(fillers) && fillers[fi].AnchorLine == afterLine {
			for n := 0; n < fillers[fi].Count; n++ {
				rows = append(rows, paneRow{marker: markerFiller})
			}
			fi++
		}
	}
	emitFillers(0)
	for n, text := range lines {
		line := n + 1
		rows = append(rows, paneRow{marker: markers[line], text: text})
		emitFillers(line)
	}
	return rows
}
