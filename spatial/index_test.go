package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/ocrfields/model"
)

func TestIndexMatchesInZone(t *testing.T) {
	words := []model.Word{
		model.NewWord("DOB", 0.10, 0.30, 0.16, 0.33),
		model.NewWord("01/02/1990", 0.18, 0.30, 0.32, 0.33),
		model.NewWord("EXP", 0.10, 0.40, 0.16, 0.43),
		model.NewWord("EDGE", 0.25, 0.375, 0.75, 0.625),
		model.NewWord("FAR", 0.80, 0.80, 0.90, 0.85),
	}
	idx := NewIndex(words)
	assert.Equal(t, len(words), idx.Len())

	regions := []model.Region{
		model.NewRegion(0.05, 0.35, 0.25, 0.36),
		model.NewRegion(0.5, 0.6, 0.5, 0.6),
		model.NewRegion(0, 1, 0, 1),
		model.NewRegion(0.95, 1, 0.95, 1),
	}

	for _, r := range regions {
		var want []int
		for i, w := range words {
			if model.InZone(w, r.X, r.Y) {
				want = append(want, i)
			}
		}
		assert.Equal(t, want, idx.Search(r), "region %+v", r)
	}
}

func TestIndexWordsInDocumentOrder(t *testing.T) {
	words := []model.Word{
		model.NewWord("B", 0.60, 0.10, 0.70, 0.12),
		model.NewWord("A", 0.10, 0.10, 0.20, 0.12),
	}
	got := NewIndex(words).Words(model.NewRegion(0, 1, 0, 0.2))
	if assert.Len(t, got, 2) {
		assert.Equal(t, "B", got[0].Text)
		assert.Equal(t, "A", got[1].Text)
	}
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(nil)
	assert.Empty(t, idx.Search(model.NewRegion(0, 1, 0, 1)))
}
