package textdiff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergealign/mergealign/align"
	"github.com/mergealign/mergealign/textpos"
)

func TestLines(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Lines(c.in), "Lines(%q)", c.in)
	}
}

func TestDiff_EqualDocuments(t *testing.T) {
	d := Diff("a\nb\nc\n", "a\nb\nc\n")
	require.True(t, d.IsEmpty())
	require.NoError(t, d.Validate())
}

func TestDiff_ReplaceLine(t *testing.T) {
	base := "one\ntwo\nthree\n"
	side := "one\n2a\n2b\nthree\n"

	d := Diff(base, side)
	require.NoError(t, d.Validate())
	require.Len(t, d.Mappings, 1)

	m := d.Mappings[0]
	require.Equal(t, textpos.Lines(2, 3), m.Input)
	require.Equal(t, textpos.Lines(2, 4), m.Output)
	require.NotEmpty(t, m.Inner)
}

func TestDiff_InsertAtEnd(t *testing.T) {
	d := Diff("a\n", "a\nb\n")
	require.Len(t, d.Mappings, 1)
	m := d.Mappings[0]
	require.Equal(t, textpos.Lines(2, 2), m.Input)
	require.Equal(t, textpos.Lines(2, 3), m.Output)
	require.Empty(t, m.Inner)
}

func TestDiff_DeleteLine(t *testing.T) {
	d := Diff("a\nb\nc\n", "a\nc\n")
	require.Len(t, d.Mappings, 1)
	m := d.Mappings[0]
	require.Equal(t, textpos.Lines(2, 3), m.Input)
	require.Equal(t, textpos.Lines(2, 2), m.Output)
	require.Empty(t, m.Inner)
}

// End-to-end: real diffs drive the alignment engine to a total, synchronized
// model.
func TestDiff_DrivesAlignment(t *testing.T) {
	base := "one\ntwo\nthree\n"
	side1 := "one\n2a\n2b\nthree\n"
	side2 := base

	res, err := align.Compute(Diff(base, side1), Diff(base, side2), Lines(base))
	require.NoError(t, err)

	cursor := 1
	for _, a := range res.Alignments {
		require.Equal(t, cursor, a.BaseRange.Start)
		cursor = a.BaseRange.EndEx
	}
	require.Equal(t, Lines(base)+1, cursor)

	require.Empty(t, res.Side1Fillers)
	require.Equal(t, []align.Filler{{AnchorLine: 2, Count: 1}}, res.Side2Fillers)

	// Equal pane heights after padding.
	sum := func(fs []align.Filler) int {
		n := 0
		for _, f := range fs {
			n += f.Count
		}
		return n
	}
	require.Equal(t, Lines(side1)+sum(res.Side1Fillers), Lines(side2)+sum(res.Side2Fillers))
}

func TestDiff_BothSidesEditDisjointLines(t *testing.T) {
	base := "alpha\nbravo\ncharlie\ndelta\necho\n"
	side1 := "alpha\nBRAVO\ncharlie\ndelta\necho\n"
	side2 := "alpha\nbravo\ncharlie\nDELTA\necho\n"

	res, err := align.Compute(Diff(base, side1), Diff(base, side2), Lines(base))
	require.NoError(t, err)

	var changed []int
	for i, a := range res.Alignments {
		if !a.Unchanged() {
			changed = append(changed, i)
			require.False(t, a.Conflicting)
		}
	}
	require.Len(t, changed, 2)
	require.Empty(t, res.Side1Fillers)
	require.Empty(t, res.Side2Fillers)
}

func TestDiff_BothSidesEditSameLine(t *testing.T) {
	base := "alpha\nbravo\ncharlie\n"
	side1 := "alpha\nBRAVO!\ncharlie\n"
	side2 := "alpha\nbra-vo\ncharlie\n"

	res, err := align.Compute(Diff(base, side1), Diff(base, side2), Lines(base))
	require.NoError(t, err)

	var conflicts int
	for _, a := range res.Alignments {
		if a.Conflicting {
			conflicts++
			require.Equal(t, textpos.Lines(2, 3), a.BaseRange)
		}
	}
	require.Equal(t, 1, conflicts)
}
