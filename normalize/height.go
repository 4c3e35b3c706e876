package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/ocrfields/model"
)

// Height normalizes a body height to feet and inches ("5'08") or metres
// ("1,75m"). No label is needed. With UnitsAuto the US parser runs first,
// since mixed zones more often hold a US height next to unrelated digits.
func Height(raw string, units model.UnitSystem) (string, bool) {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" {
		return "", false
	}

	switch units {
	case model.UnitsUS:
		return usHeight(text)
	case model.UnitsMetric:
		return metricHeight(text)
	case model.UnitsAuto:
	}
	if v, ok := usHeight(text); ok {
		return v, true
	}
	return metricHeight(text)
}

// usHeight tries an explicit feet/inches form, then an implicit three-digit
// form. Every match is checked in order so that a leading number such as a
// field code is skipped when its inches are out of range.
func usHeight(text string) (string, bool) {
	p := patterns().height
	for _, re := range []*regexp.Regexp{p.usExplicit, p.usImplicit} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			feet, err1 := strconv.Atoi(m[1])
			inches, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				continue
			}
			if inches >= 0 && inches <= 11 {
				return fmt.Sprintf("%d'%02d", feet, inches), true
			}
		}
	}
	return "", false
}

// metricHeight tries, in order: a decimal form (1,75 or 2.05m), an explicit
// centimetre value and finally a bare three-digit number. The centimetre
// forms only accept 140 to 219.
func metricHeight(text string) (string, bool) {
	p := patterns().height
	if m := p.metricDec.FindStringSubmatch(text); m != nil {
		return m[1][:1] + "," + m[1][2:] + "m", true
	}
	for _, re := range []*regexp.Regexp{p.metricCM, p.metricInt} {
		if m := re.FindStringSubmatch(text); m != nil {
			cm := m[1]
			return cm[:1] + "," + cm[1:] + "m", true
		}
	}
	return "", false
}
