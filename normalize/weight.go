package normalize

import (
	"strconv"
	"strings"

	"github.com/tsawler/ocrfields/model"
)

// Plausible weight ranges.
const (
	minPounds    = 50
	maxPounds    = 400
	minKilograms = 30
	maxKilograms = 200
)

// Weight extracts a body weight as "156lb" or "70kg". When a WGT label is
// present only the text after it is searched. UnitsAuto picks metric when
// the searched text mentions KG and US otherwise. The first 2 or 3 digit
// number inside the plausible range wins.
func Weight(raw string, units model.UnitSystem) (string, bool) {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" {
		return "", false
	}
	text = afterLabel(text, "WGT")

	if units == model.UnitsAuto {
		units = model.UnitsUS
		if strings.Contains(text, "KG") {
			units = model.UnitsMetric
		}
	}

	for _, s := range patterns().weight.FindAllString(text, -1) {
		n, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		if units == model.UnitsMetric {
			if n >= minKilograms && n <= maxKilograms {
				return strconv.Itoa(n) + "kg", true
			}
		} else if n >= minPounds && n <= maxPounds {
			return strconv.Itoa(n) + "lb", true
		}
	}
	return "", false
}

// afterLabel returns the text following the first occurrence of label, or
// text itself when the label is absent.
func afterLabel(text, label string) string {
	if _, after, ok := strings.Cut(text, label); ok {
		return after
	}
	return text
}
