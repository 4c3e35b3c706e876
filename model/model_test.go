package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Geometry Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{0.3, 0}, 0.3},
		{"diagonal 3-4-5", Point{0, 0}, Point{0.3, 0.4}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.p1.Distance(tt.p2), 1e-9)
		})
	}
}

func TestInZone(t *testing.T) {
	x := Range{Min: 0.25, Max: 0.5}
	y := Range{Min: 0.5, Max: 0.75}

	tests := []struct {
		name string
		word Word
		want bool
	}{
		{"inside", NewWord("A", 0.3, 0.55, 0.4, 0.6), true},
		{"center on min edge", NewWord("A", 0.125, 0.375, 0.375, 0.625), true},
		{"center on max edge", NewWord("A", 0.375, 0.625, 0.625, 0.875), true},
		{"box overlaps but center outside", NewWord("A", 0.45, 0.55, 0.6, 0.6), false},
		{"below", NewWord("A", 0.3, 0.8, 0.4, 0.9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InZone(tt.word, x, y))
		})
	}
}

func TestRegionExpandClamps(t *testing.T) {
	r := NewRegion(0.02, 0.5, 0.3, 0.97)
	got := r.Expand(0.05)

	assert.InDelta(t, 0.0, got.X.Min, 1e-9)
	assert.InDelta(t, 0.55, got.X.Max, 1e-9)
	assert.InDelta(t, 0.25, got.Y.Min, 1e-9)
	assert.InDelta(t, 1.0, got.Y.Max, 1e-9)
	assert.True(t, got.Valid())
}

func TestRegionCenter(t *testing.T) {
	r := NewRegion(0.1, 0.3, 0.40, 0.43)
	c := r.Center()
	assert.InDelta(t, 0.2, c.X, 1e-9)
	assert.InDelta(t, 0.415, c.Y, 1e-9)
}

func TestAggregateRegion(t *testing.T) {
	words := []Word{
		NewWord("JOHN", 0.10, 0.20, 0.18, 0.23),
		NewWord("SMITH", 0.20, 0.21, 0.30, 0.24),
	}

	r, ok := AggregateRegion(words, 0.01)
	require.True(t, ok)
	assert.Equal(t, NewRegion(0.09, 0.31, 0.19, 0.25), r)

	_, ok = AggregateRegion(nil, 0.01)
	assert.False(t, ok)
}

func TestSortReadingOrder(t *testing.T) {
	words := []Word{
		NewWord("SECOND", 0.40, 0.31, 0.50, 0.33),
		NewWord("THIRD", 0.10, 0.52, 0.20, 0.54),
		NewWord("FIRST", 0.10, 0.30, 0.20, 0.32),
	}
	SortReadingOrder(words)

	got := []string{words[0].Text, words[1].Text, words[2].Text}
	assert.Equal(t, []string{"FIRST", "SECOND", "THIRD"}, got)
}

func TestWordExtents(t *testing.T) {
	w := NewWord("X", 0.1, 0.2, 0.4, 0.25)
	assert.InDelta(t, 0.3, w.Width(), 1e-9)
	assert.InDelta(t, 0.05, w.Height(), 1e-9)
	assert.InDelta(t, 0.25, w.CenterX, 1e-9)
	assert.False(t, math.IsNaN(w.CenterY))
}

// ============================================================================
// Format Tests
// ============================================================================

func TestParseFieldFormatRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		parsed, err := ParseFieldFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFieldFormat("colour")
	assert.Error(t, err)

	empty, err := ParseFieldFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatString, empty)
}

func TestFieldFormatText(t *testing.T) {
	var f FieldFormat
	require.NoError(t, f.UnmarshalText([]byte("Height")))
	assert.Equal(t, FormatHeight, f)

	b, err := FormatRestrictions.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "restrictions", string(b))
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]FieldFormat{
		"date_of_birth":   FormatDate,
		"expiration_date": FormatDate,
		"height":          FormatHeight,
		"wgt":             FormatWeight,
		"sex":             FormatSex,
		"eye_color":       FormatEyes,
		"hair":            FormatHair,
		"endorsements":    FormatEndorsements,
		"restrictions":    FormatRestrictions,
		"license_number":  FormatNumber,
		"first_name":      FormatString,
	}
	for name, want := range tests {
		assert.Equal(t, want, DetectFormat(name), name)
	}
}

func TestDetectKind(t *testing.T) {
	assert.Equal(t, KindName, DetectKind("first_name"))
	assert.Equal(t, KindName, DetectKind("last_name"))
	assert.Equal(t, KindAddress, DetectKind("address_line_1"))
	assert.Equal(t, KindCode, DetectKind("document_number"))
	assert.Equal(t, KindGeneric, DetectKind("class"))
}

func TestDefaultTieBreak(t *testing.T) {
	assert.Equal(t, TieBreakAlpha, DefaultTieBreak(FormatEyes, KindGeneric))
	assert.Equal(t, TieBreakDigit, DefaultTieBreak(FormatDate, KindGeneric))
	assert.Equal(t, TieBreakAlpha, DefaultTieBreak(FormatString, KindName))
	assert.Equal(t, TieBreakDigit, DefaultTieBreak(FormatString, KindCode))
	assert.Equal(t, TieBreakFirst, DefaultTieBreak(FormatString, KindAddress))

	// middle_name is detected as a number format but is still a name
	name := "middle_name"
	assert.Equal(t, TieBreakAlpha, DefaultTieBreak(DetectFormat(name), DetectKind(name)))
}

func TestDateLayout(t *testing.T) {
	tests := []struct {
		layout DateLayout
		order  string
		sep    string
	}{
		{LayoutDayMonthYearDots, "DD", "."},
		{LayoutMonthDayYearSlash, "MM", "/"},
		{LayoutYearMonthDayHyphen, "YYYY", "-"},
		{"dd mm yyyy", "DD", "."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.order, tt.layout.Order(), string(tt.layout))
		assert.Equal(t, tt.sep, tt.layout.Separator(), string(tt.layout))
	}
	assert.False(t, DateLayout("Y-M-D").Valid())
}

// ============================================================================
// Zone Tests
// ============================================================================

func TestZoneValidate(t *testing.T) {
	valid := NewZone("dob", NewRegion(0.1, 0.3, 0.2, 0.25), FormatDate)
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(z *Zone)
	}{
		{"reversed x", func(z *Zone) { z.Region.X = Range{Min: 0.4, Max: 0.1} }},
		{"outside unit square", func(z *Zone) { z.Region.Y.Max = 1.2 }},
		{"options mismatch", func(z *Zone) { z.Options = HeightOptions{} }},
		{"bad layout", func(z *Zone) { z.Options = DateOptions{Layout: "Y/M/D"} }},
		{"zero tolerance", func(z *Zone) { z.Cluster = &ClusterConfig{Tolerance: FixedTolerance(0)} }},
		{"unknown format", func(z *Zone) { z.Format = FieldFormat(42) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := valid
			tt.mutate(&z)
			err := z.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidZone)
		})
	}
}

func TestZoneDefaults(t *testing.T) {
	z := Zone{Name: "weight", Format: FormatWeight}
	assert.Equal(t, WeightOptions{Units: UnitsAuto}, z.FormatOptions())
	assert.Equal(t, TieBreakDigit, z.EffectiveTieBreak())

	z.TieBreak = TieBreakFirst
	assert.Equal(t, TieBreakFirst, z.EffectiveTieBreak())
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentAlignedModels(t *testing.T) {
	doc := NewDocument(
		[]Word{NewWord("A", 0, 0, 0.1, 0.1), NewWord("B", 0.2, 0, 0.3, 0.1)},
		ModelOutputSet{
			"parseq": {"A", "B"},
			"crnn":   {"A"},
			"vitstr": {"A", "8"},
		},
	)

	aligned, excluded := doc.AlignedModels()
	assert.Equal(t, []string{"parseq", "vitstr"}, aligned)
	assert.Equal(t, []string{"crnn"}, excluded)

	words, ok := doc.ModelWords("vitstr")
	require.True(t, ok)
	assert.Equal(t, "8", words[1].Text)
	assert.Equal(t, "B", doc.Words[1].Text, "reference words must not change")

	_, ok = doc.ModelWords("crnn")
	assert.False(t, ok)
}
