package normalize

import (
	"strings"

	"github.com/tsawler/ocrfields/model"
)

// Sex returns "M" or "F". It accepts the bare letter, a standalone M or F
// anywhere in the text, and as a last resort a text containing exactly one
// of the two letters.
func Sex(raw string) (string, bool) {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" {
		return "", false
	}
	if text == "M" || text == "F" {
		return text, true
	}
	if m := patterns().sexLetter.FindString(text); m != "" {
		return m, true
	}

	hasM, hasF := strings.Contains(text, "M"), strings.Contains(text, "F")
	switch {
	case hasF && !hasM:
		return "F", true
	case hasM && !hasF:
		return "M", true
	}
	return "", false
}

// EyeColor returns the first AAMVA eye color code after an EYES label, or
// anywhere in the text when the label is absent.
func EyeColor(raw string) (string, bool) {
	return color(raw, model.FormatEyes)
}

// HairColor returns the first AAMVA hair color code after a HAIR label, or
// anywhere in the text when the label is absent.
func HairColor(raw string) (string, bool) {
	return color(raw, model.FormatHair)
}

// color matches whole codes only, so "BRO" is not found inside "BROWN".
func color(raw string, format model.FieldFormat) (string, bool) {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" {
		return "", false
	}
	p := patterns().colors[format]
	if m := p.codes.FindStringSubmatch(afterLabel(text, p.label)); m != nil {
		return m[1], true
	}
	return "", false
}
