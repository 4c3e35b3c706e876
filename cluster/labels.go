package cluster

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/pattern"
)

// LabelThreshold is the score at which a word is treated as a label.
const LabelThreshold = 5

// Hint tells the label scorer what kind of value the zone expects.
type Hint int

const (
	// HintNone gives no context.
	HintNone Hint = iota
	// HintName expects a person's name.
	HintName
	// HintDate expects a date.
	HintDate
)

// HintFor derives a scoring hint from a zone's format and kind.
func HintFor(format model.FieldFormat, kind model.FieldKind) Hint {
	switch {
	case kind == model.KindName:
		return HintName
	case format == model.FormatDate:
		return HintDate
	}
	return HintNone
}

var (
	punctuationRe      = regexp.MustCompile(`[:.-]`)
	trailingPunctRe    = regexp.MustCompile(`[:.-]$`)
	alphanumericRe     = regexp.MustCompile(`[a-zA-Z0-9]`)
	datePartsRe        = regexp.MustCompile(`\d+[/-]\d+[/-]\d+`)
	surroundingPunctRe = regexp.MustCompile(`^[\s:,\-()]+|[\s:,\-)]+$`)
)

// IsLabelByCase reports whether text is cased like a printed label:
// all lowercase ("nom") or Title case ("Taille"). Values on such documents
// are printed in uppercase. Words of three letters or fewer never qualify.
func IsLabelByCase(text string) bool {
	if !isAlpha(text) || utf8.RuneCountInString(text) <= 3 {
		return false
	}
	if isLower(text) {
		return true
	}

	first, size := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return false
	}
	rest := text[size:]
	hasLower := false
	for _, r := range rest {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return hasLower
}

// LabelScore rates how much text looks like a label rather than a value.
// Scores of LabelThreshold or more mark a label. Empty text scores 10.
func LabelScore(text string, hint Hint) int {
	if text == "" {
		return 10
	}

	n := utf8.RuneCountInString(text)
	score := 0

	if IsLabelByCase(text) {
		score += 3
	}
	// Short code with punctuation, e.g. "SEX:" or "LN:".
	if n <= 5 && punctuationRe.MatchString(text) {
		score += 3
	}
	if trailingPunctRe.MatchString(text) {
		score += 2
	}
	if !alphanumericRe.MatchString(text) {
		score += 5
	}
	if n <= 3 && isAlpha(text) && hint == HintNone {
		score++
	}

	switch hint {
	case HintName:
		if n > 3 && isAlpha(text) && isUpper(text) {
			score -= 2
		}
	case HintDate:
		if datePartsRe.MatchString(text) {
			score -= 5
		}
	case HintNone:
	}

	if score < 0 {
		return 0
	}
	return score
}

// FilterLabels drops label words and strips residual label prefixes from
// the rest. A word is dropped when it is empty or a lone separator, when one
// of labelPatterns matches at its start (case-insensitive), or when its
// LabelScore reaches LabelThreshold. Surviving words lose any "LABEL:"
// prefix and surrounding punctuation, and are dropped if nothing
// alphanumeric remains.
//
// Patterns that fail to compile are skipped; their errors are joined into
// the returned error while filtering proceeds with the remaining patterns.
// The input words are not modified.
func FilterLabels(words []model.Word, labelPatterns []string, hint Hint) ([]model.Word, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var compiled []*pattern.Pattern
	var errs []error
	for _, expr := range labelPatterns {
		p, err := pattern.Compile(expr, pattern.IgnoreCase)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		compiled = append(compiled, p)
	}

	var out []model.Word
	for _, w := range words {
		text := strings.TrimSpace(w.Text)

		if text == "" || (len(text) == 1 && strings.Contains(":,-.()/", text)) {
			continue
		}
		if matched, err := matchesAny(compiled, text); err != nil {
			errs = append(errs, err)
		} else if matched {
			continue
		}
		if LabelScore(text, hint) >= LabelThreshold {
			continue
		}

		cleaned := text
		if _, after, ok := strings.Cut(text, ":"); ok && strings.TrimSpace(after) != "" {
			cleaned = strings.TrimSpace(after)
		}
		cleaned = surroundingPunctRe.ReplaceAllString(cleaned, "")

		if cleaned != "" && alphanumericRe.MatchString(cleaned) {
			out = append(out, w.WithText(cleaned))
		}
	}

	return out, errors.Join(errs...)
}

func matchesAny(patterns []*pattern.Pattern, text string) (bool, error) {
	for _, p := range patterns {
		ok, err := p.MatchPrefix(text)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// isLower reports whether s has at least one cased letter and no uppercase
// or titlecase letters.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isUpper reports whether s has at least one cased letter and no lowercase
// letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
