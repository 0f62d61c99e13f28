// Package textdiff adapts the upstream diff engine (sergi/go-diff) into the
// pairwise diff model consumed by the alignment engine.
//
// The alignment engine itself never computes diffs; it trusts an upstream
// collaborator to emit canonical mapping.PairwiseDiff values. This package
// is that collaborator for plain strings: it computes a line-granularity
// diff, groups contiguous changes into line mappings, and refines each
// replacement block with character-level inner changes.
//
// Line convention: lines include their trailing '\n'. A document that ends
// with '\n' does not have an extra empty final line, and the empty document
// has zero lines. Lines reports the count under this convention.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mergealign/mergealign/mapping"
	"github.com/mergealign/mergealign/textpos"
)

// Lines returns the number of lines in s: the number of '\n' characters,
// plus one if the final line is unterminated. The empty string has zero
// lines.
func Lines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if s[len(s)-1] != '\n' {
		n++
	}
	return n
}

// Diff computes the pairwise diff from base to side at line granularity,
// with character-level inner changes for replacement blocks. The result is
// always in canonical form: ascending, non-overlapping, non-touching line
// mappings that pass mapping.PairwiseDiff.Validate.
func Diff(base, side string) mapping.PairwiseDiff {
	dmp := diffmatchpatch.New()

	// Diff based on lines: each line becomes one rune so the diff operates
	// on whole lines, then runs are decoded back through lineArray.
	rBase, rSide, lineArray := dmp.DiffLinesToRunes(base, side)
	lineDiffs := dmp.DiffMainRunes(rBase, rSide, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var mappings []mapping.LineRangeMapping
	baseLine := 1
	sideLine := 1
	var dels []string
	var ins []string

	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		m := mapping.LineRangeMapping{
			Input:  textpos.Lines(baseLine, baseLine+len(dels)),
			Output: textpos.Lines(sideLine, sideLine+len(ins)),
		}
		if len(dels) > 0 && len(ins) > 0 {
			m.Inner = innerChanges(dmp, strings.Join(dels, ""), strings.Join(ins, ""), m.Input.Start, m.Output.Start)
		}
		mappings = append(mappings, m)
		baseLine = m.Input.EndEx
		sideLine = m.Output.EndEx
		dels = nil
		ins = nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			eqLines := decode(d.Text)
			if len(eqLines) == 0 {
				continue
			}
			flush()
			baseLine += len(eqLines)
			sideLine += len(eqLines)
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	d := mapping.PairwiseDiff{Mappings: mappings}
	if err := d.Validate(); err != nil {
		panic(fmt.Errorf("textdiff.Diff: validate failed with %v", err))
	}
	return d
}

// innerChanges computes character-level range mappings for one replacement
// block. baseStart/sideStart anchor the block's first lines; runs of changed
// text are coalesced so each mapping pairs one base span with one side span,
// and the spans between mappings are equal text.
func innerChanges(dmp *diffmatchpatch.DiffMatchPatch, oldBlock, newBlock string, baseStartLine, sideStartLine int) []mapping.RangeMapping {
	charDiffs := dmp.DiffMain(oldBlock, newBlock, false)
	charDiffs = dmp.DiffCleanupSemantic(charDiffs)
	charDiffs = dmp.DiffCleanupMerge(charDiffs)

	var out []mapping.RangeMapping
	basePos := textpos.Pos(baseStartLine, 1)
	sidePos := textpos.Pos(sideStartLine, 1)

	i := 0
	for i < len(charDiffs) {
		d := charDiffs[i]
		if d.Type == diffmatchpatch.DiffEqual {
			basePos = advance(basePos, d.Text)
			sidePos = advance(sidePos, d.Text)
			i++
			continue
		}
		// Coalesce a run of deletes/inserts into one change mapping.
		baseRunStart := basePos
		sideRunStart := sidePos
		for i < len(charDiffs) && charDiffs[i].Type != diffmatchpatch.DiffEqual {
			switch charDiffs[i].Type {
			case diffmatchpatch.DiffDelete:
				basePos = advance(basePos, charDiffs[i].Text)
			case diffmatchpatch.DiffInsert:
				sidePos = advance(sidePos, charDiffs[i].Text)
			}
			i++
		}
		out = append(out, mapping.RangeMapping{
			Input:  textpos.RangeOf(baseRunStart, basePos),
			Output: textpos.RangeOf(sideRunStart, sidePos),
		})
	}
	return out
}

// advance walks p forward over s. Columns count runes; '\n' starts the next
// line at column 1.
func advance(p textpos.Position, s string) textpos.Position {
	for _, r := range s {
		if r == '\n' {
			p.Line++
			p.Col = 1
		} else {
			p.Col++
		}
	}
	return p
}
