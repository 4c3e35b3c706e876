package model

import "sort"

// ModelOutputSet maps a recognition model identifier to that model's word
// texts. Index i of every list refers to the same physical word as index i
// of the document's reference words.
type ModelOutputSet map[string][]string

// Document is one OCR'd image: the reference words carrying geometry and the
// per-model readings of the same word positions.
type Document struct {
	// Words is the geometry-ordered reference word list used for zone and
	// cluster selection.
	Words []Word

	// Models holds each model's text for the same word positions.
	Models ModelOutputSet
}

// NewDocument creates a document from reference words and model outputs.
func NewDocument(words []Word, models ModelOutputSet) *Document {
	return &Document{Words: words, Models: models}
}

// ModelNames returns the model identifiers in sorted order.
func (d *Document) ModelNames() []string {
	names := make([]string, 0, len(d.Models))
	for name := range d.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AlignedModels splits the models into those whose word count matches the
// reference geometry and those that do not. Both lists are sorted.
func (d *Document) AlignedModels() (aligned, excluded []string) {
	for _, name := range d.ModelNames() {
		if len(d.Models[name]) == len(d.Words) {
			aligned = append(aligned, name)
		} else {
			excluded = append(excluded, name)
		}
	}
	return aligned, excluded
}

// ModelWords returns the reference words with text replaced by the named
// model's reading. The second result is false when the model is unknown or
// misaligned.
func (d *Document) ModelWords(name string) ([]Word, bool) {
	texts, ok := d.Models[name]
	if !ok || len(texts) != len(d.Words) {
		return nil, false
	}
	out := make([]Word, len(d.Words))
	for i, w := range d.Words {
		out[i] = w.WithText(texts[i])
	}
	return out, true
}

// HasModels reports whether the document carries any per-model output.
func (d *Document) HasModels() bool {
	return len(d.Models) > 0
}
