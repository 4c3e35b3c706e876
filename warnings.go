package ocrfields

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal issue found during extraction.
type WarningKind int

const (
	// WarningPattern means a caller regex did not compile or timed out.
	// The pattern was treated as having no effect.
	WarningPattern WarningKind = iota
	// WarningModelExcluded means a model's word list did not line up with
	// the document geometry and it was left out of the vote.
	WarningModelExcluded
	// WarningEmptyZone means no word center fell inside the zone.
	WarningEmptyZone
	// WarningRejected means normalization produced no value.
	WarningRejected
	// WarningValidation means the normalized value failed the zone's
	// validation pattern.
	WarningValidation
	// WarningNoMatch means the consensus pattern matched no model.
	WarningNoMatch
)

// String returns a short name for the kind.
func (k WarningKind) String() string {
	switch k {
	case WarningPattern:
		return "pattern"
	case WarningModelExcluded:
		return "model-excluded"
	case WarningEmptyZone:
		return "empty-zone"
	case WarningRejected:
		return "rejected"
	case WarningValidation:
		return "validation"
	case WarningNoMatch:
		return "no-match"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Warning is a non-fatal issue. Extraction still returns a result.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Field   string      `json:"field,omitempty"`
	Model   string      `json:"model,omitempty"`
	Message string      `json:"message"`
}

// String formats the warning on one line.
func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Kind.String())
	if w.Field != "" {
		b.WriteString(" [")
		b.WriteString(w.Field)
		if w.Model != "" {
			b.WriteString("/")
			b.WriteString(w.Model)
		}
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(w.Message)
	return b.String()
}

// FormatWarnings joins warnings into a single multi-line string.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// warningSet collects warnings for one field, dropping exact duplicates so
// that a broken pattern is reported once rather than once per model.
type warningSet struct {
	list []Warning
	seen map[Warning]bool
}

func (s *warningSet) add(w Warning) {
	if s.seen == nil {
		s.seen = make(map[Warning]bool)
	}
	if s.seen[w] {
		return
	}
	s.seen[w] = true
	s.list = append(s.list, w)
}

func (s *warningSet) pattern(field string, err error) {
	s.add(Warning{Kind: WarningPattern, Field: field, Message: err.Error()})
}
