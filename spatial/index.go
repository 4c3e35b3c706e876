// Package spatial indexes a document's word centers so that many zones can
// be resolved against the same page without rescanning every word.
package spatial

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/tsawler/ocrfields/model"
)

// Index is an R-tree over word center points. It is read-only after
// construction and safe for concurrent searches.
type Index struct {
	tree  rtree.RTreeG[int]
	words []model.Word
}

// NewIndex builds an index over words. Word i is stored under index i.
func NewIndex(words []model.Word) *Index {
	idx := &Index{words: words}
	for i, w := range words {
		p := [2]float64{w.CenterX, w.CenterY}
		idx.tree.Insert(p, p, i)
	}
	return idx
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Search returns the indices of words whose center lies inside the region,
// bounds included, in ascending order.
func (idx *Index) Search(region model.Region) []int {
	minPt := [2]float64{region.X.Min, region.Y.Min}
	maxPt := [2]float64{region.X.Max, region.Y.Max}

	var hits []int
	idx.tree.Search(minPt, maxPt, func(_, _ [2]float64, i int) bool {
		// The tree already filters by rectangle; re-check with the exact
		// predicate so results match model.InZone.
		if model.InZone(idx.words[i], region.X, region.Y) {
			hits = append(hits, i)
		}
		return true
	})

	sort.Ints(hits)
	return hits
}

// Words returns the words whose center lies inside the region, in document
// order.
func (idx *Index) Words(region model.Region) []model.Word {
	hits := idx.Search(region)
	out := make([]model.Word, len(hits))
	for j, i := range hits {
		out[j] = idx.words[i]
	}
	return out
}
