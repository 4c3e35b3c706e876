package ocr

import (
	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/spatial"
)

// AlignWords returns, for every reference word, the text of the word in
// words whose center lies inside the reference box and is nearest to the
// reference center. Reference words with no such match get "". The result
// is always index-aligned with reference.
func AlignWords(reference, words []model.Word) []string {
	idx := spatial.NewIndex(words)
	out := make([]string, len(reference))
	for i, ref := range reference {
		center := ref.Center()
		best, bestDist := -1, 0.0
		for _, j := range idx.Search(ref.BBox().Region()) {
			d := center.Distance(words[j].Center())
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		if best >= 0 {
			out[i] = words[best].Text
		}
	}
	return out
}

// MergeModels builds a document from reference geometry and several
// models' independently positioned words, aligning each model to the
// reference with AlignWords.
func MergeModels(reference *model.Document, readings map[string][]model.Word) *model.Document {
	models := make(model.ModelOutputSet, len(readings))
	for name, words := range readings {
		models[name] = AlignWords(reference.Words, words)
	}
	return model.NewDocument(reference.Words, models)
}
