package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/ocrfields/model"
)

func candidates(texts ...string) []Candidate {
	out := make([]Candidate, len(texts))
	for i, t := range texts {
		out[i] = Candidate{Model: string(rune('a' + i)), Text: t}
	}
	return out
}

func TestVote(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		tie   model.TieBreak
		want  Result
	}{
		{
			name: "no candidates",
			want: Result{},
		},
		{
			name:  "only empty candidates",
			texts: []string{"", "  "},
			want:  Result{},
		},
		{
			name:  "single distinct",
			texts: []string{"SMITH", "", "SMITH"},
			want:  Result{Text: "SMITH", Votes: 2, Total: 2, Method: MethodUnanimous},
		},
		{
			name:  "majority",
			texts: []string{"BLU", "BLU", "BLO"},
			want:  Result{Text: "BLU", Votes: 2, Total: 3, Method: MethodMajority},
		},
		{
			name:  "longer reading discarded",
			texts: []string{"M 181 Eye", "M 18"},
			want:  Result{Text: "M 18", Votes: 1, Total: 1, Method: MethodMajority},
		},
		{
			name:  "length filter before majority",
			texts: []string{"01.02.1990", "01.02.19900", "01.02.1990", "01.02.1996"},
			want:  Result{Text: "01.02.1990", Votes: 2, Total: 3, Method: MethodMajority},
		},
		{
			name:  "character vote",
			texts: []string{"5'O8", "5'09", "5'08", "S'08"},
			tie:   model.TieBreakDigit,
			want:  Result{Text: "5'08", Votes: 1, Total: 4, Method: MethodCharacterVote},
		},
		{
			name:  "letter tie",
			texts: []string{"JOHM", "J0HN"},
			tie:   model.TieBreakAlpha,
			want:  Result{Text: "JOHM", Votes: 1, Total: 2, Method: MethodCharacterVote},
		},
		{
			name:  "digit preference",
			texts: []string{"B0", "8O"},
			tie:   model.TieBreakDigit,
			want:  Result{Text: "80", Votes: 0, Total: 2, Method: MethodCharacterVote},
		},
		{
			name:  "alpha preference",
			texts: []string{"B0", "8O"},
			tie:   model.TieBreakAlpha,
			want:  Result{Text: "BO", Votes: 0, Total: 2, Method: MethodCharacterVote},
		},
		{
			name:  "first candidate wins ties",
			texts: []string{"AB", "CD"},
			tie:   model.TieBreakFirst,
			want:  Result{Text: "AB", Votes: 1, Total: 2, Method: MethodCharacterVote},
		},
		{
			name:  "trailing space trimmed",
			texts: []string{"AB ", "CD "},
			tie:   model.TieBreakFirst,
			want:  Result{Text: "AB", Votes: 0, Total: 2, Method: MethodCharacterVote},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Vote(candidates(tt.texts...), tt.tie))
		})
	}
}

func TestVoteLengthTieKeepsShorter(t *testing.T) {
	// Either order discards the longer reading.
	a := Vote(candidates("M 18", "M 181 Eye"), model.TieBreakFirst)
	b := Vote(candidates("M 181 Eye", "M 18"), model.TieBreakFirst)
	assert.Equal(t, "M 18", a.Text)
	assert.Equal(t, a, b)
}

func TestVoteRuneLength(t *testing.T) {
	// Multi-byte runes count once toward the length filter.
	r := Vote(candidates("5’08", "5'08", "5'0"), model.TieBreakFirst)
	assert.Equal(t, MethodCharacterVote, r.Method)
	assert.Equal(t, "5’08", r.Text)
	assert.Equal(t, 3, r.Total)
}

func TestFromMapOrdersByModel(t *testing.T) {
	got := FromMap(map[string]string{"tesseract": "A", "doctr": "B", "easyocr": "C"})
	assert.Equal(t, []Candidate{
		{Model: "doctr", Text: "B"},
		{Model: "easyocr", Text: "C"},
		{Model: "tesseract", Text: "A"},
	}, got)
}

func TestVoteMap(t *testing.T) {
	r := VoteMap(map[string]string{"m1": "BRN", "m2": "BRN", "m3": ""}, model.TieBreakAlpha)
	assert.Equal(t, Result{Text: "BRN", Votes: 2, Total: 2, Method: MethodUnanimous}, r)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "character_vote", MethodCharacterVote.String())
	b, err := MethodMajority.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "majority", string(b))
}
