package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergealign/mergealign/textpos"
)

func lineMapping(inStart, inEndEx, outStart, outEndEx int) LineRangeMapping {
	return LineRangeMapping{
		Input:  textpos.Lines(inStart, inEndEx),
		Output: textpos.Lines(outStart, outEndEx),
	}
}

func TestValidate_EmptyDiffIsValid(t *testing.T) {
	require.NoError(t, PairwiseDiff{}.Validate())
	require.True(t, PairwiseDiff{}.IsEmpty())
}

func TestValidate_CanonicalDiff(t *testing.T) {
	d := PairwiseDiff{Mappings: []LineRangeMapping{
		lineMapping(2, 4, 2, 5),
		lineMapping(7, 8, 8, 8),
	}}
	require.NoError(t, d.Validate())
}

func TestValidate_AdjacentMappingsAllowed(t *testing.T) {
	// Touching line mappings are merged later by the alignment builder; the
	// normalizer only rejects overlap.
	d := PairwiseDiff{Mappings: []LineRangeMapping{
		lineMapping(2, 4, 2, 4),
		lineMapping(4, 6, 4, 6),
	}}
	require.NoError(t, d.Validate())
}

func TestValidate_Unsorted(t *testing.T) {
	d := PairwiseDiff{Mappings: []LineRangeMapping{
		lineMapping(7, 8, 7, 8),
		lineMapping(2, 4, 2, 4),
	}}
	err := d.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedDiff)
}

func TestValidate_Overlapping(t *testing.T) {
	d := PairwiseDiff{Mappings: []LineRangeMapping{
		lineMapping(2, 5, 2, 5),
		lineMapping(4, 6, 5, 7),
	}}
	err := d.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedDiff)
	require.Contains(t, err.Error(), "mapping[1]")
}

func TestValidate_InvertedLineRange(t *testing.T) {
	d := PairwiseDiff{Mappings: []LineRangeMapping{lineMapping(4, 2, 4, 5)}}
	require.ErrorIs(t, d.Validate(), ErrMalformedDiff)
}

func TestValidate_InnerInsideParent(t *testing.T) {
	m := lineMapping(2, 4, 2, 3)
	m.Inner = []RangeMapping{
		{
			Input:  textpos.RangeOf(textpos.Pos(2, 3), textpos.Pos(2, 7)),
			Output: textpos.RangeOf(textpos.Pos(2, 3), textpos.Pos(2, 5)),
		},
		{
			// Ending at column 1 of the line past the parent range is allowed:
			// the span covers the trailing newline.
			Input:  textpos.RangeOf(textpos.Pos(3, 1), textpos.Pos(4, 1)),
			Output: textpos.RangeOf(textpos.Pos(3, 1), textpos.Pos(3, 1)),
		},
	}
	require.NoError(t, PairwiseDiff{Mappings: []LineRangeMapping{m}}.Validate())
}

func TestValidate_InnerOutsideParent(t *testing.T) {
	m := lineMapping(2, 4, 2, 3)
	m.Inner = []RangeMapping{{
		Input:  textpos.RangeOf(textpos.Pos(4, 1), textpos.Pos(4, 2)),
		Output: textpos.RangeOf(textpos.Pos(2, 1), textpos.Pos(2, 2)),
	}}
	err := PairwiseDiff{Mappings: []LineRangeMapping{m}}.Validate()
	require.ErrorIs(t, err, ErrMalformedDiff)
	require.Contains(t, err.Error(), "inner[0]")
}

func TestValidate_InnerUnsorted(t *testing.T) {
	m := lineMapping(2, 4, 2, 4)
	m.Inner = []RangeMapping{
		{
			Input:  textpos.RangeOf(textpos.Pos(3, 1), textpos.Pos(3, 4)),
			Output: textpos.RangeOf(textpos.Pos(3, 1), textpos.Pos(3, 4)),
		},
		{
			Input:  textpos.RangeOf(textpos.Pos(2, 1), textpos.Pos(2, 4)),
			Output: textpos.RangeOf(textpos.Pos(2, 1), textpos.Pos(2, 4)),
		},
	}
	err := PairwiseDiff{Mappings: []LineRangeMapping{m}}.Validate()
	require.ErrorIs(t, err, ErrMalformedDiff)
}
