package ocrfields

import (
	"github.com/tsawler/ocrfields/consensus"
	"github.com/tsawler/ocrfields/model"
)

// Source records which extraction path produced a field.
type Source string

const (
	// SourceZone is the multi-model zone vote.
	SourceZone Source = "zone"
	// SourcePattern is the consensus pattern searched around the zone.
	SourcePattern Source = "pattern"
	// SourceText is the single-source reading used when a document has no
	// per-model output.
	SourceText Source = "text"
)

// FieldResult is the extracted value of one field of one document.
type FieldResult struct {
	Field string                `json:"field"`
	Value model.NormalizedValue `json:"value"`

	// Votes is the number of models agreeing on the winning reading and
	// Total the number of models it was chosen among.
	Votes  int              `json:"votes"`
	Total  int              `json:"total"`
	Method consensus.Method `json:"method"`
	Source Source           `json:"source"`

	// Models holds each voting model's reading after cleanup (after
	// normalization when NormalizeBeforeVote is set).
	Models map[string]string `json:"models,omitempty"`

	// Excluded lists models left out because their word count did not
	// match the document geometry.
	Excluded []string `json:"excluded,omitempty"`
}

// OK reports whether the field produced a valid normalized value.
func (r FieldResult) OK() bool {
	return r.Value.Valid
}
