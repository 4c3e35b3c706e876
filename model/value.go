package model

// NormalizedValue is the final output for one field of one document.
type NormalizedValue struct {
	// Raw is the consensus text before normalization.
	Raw string `json:"raw"`

	// Normalized is the canonical value, empty when normalization rejected
	// the raw text.
	Normalized string `json:"normalized,omitempty"`

	// Valid is true when Normalized is non-empty and passed the zone's
	// validation pattern.
	Valid bool `json:"valid"`
}

// Rejected reports whether normalization produced no value.
func (v NormalizedValue) Rejected() bool {
	return v.Normalized == ""
}
