package normalize

import (
	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/pattern"
)

// ValidationPattern returns the default validation expression for a format
// and its options, or "" when the format has none.
func ValidationPattern(format model.FieldFormat, opts model.FormatOptions) string {
	switch o := opts.(type) {
	case model.DateOptions:
		if format != model.FormatDate {
			return ""
		}
		if o.Layout.Order() == "YYYY" {
			return `^\d{4}[./\-]\d{2}[./\-]\d{2}$`
		}
		return `^\d{2}[./\-]\d{2}[./\-]\d{4}$`
	case model.HeightOptions:
		if format != model.FormatHeight {
			return ""
		}
		switch o.Units {
		case model.UnitsUS:
			return `^\d'\d{2}"?$`
		case model.UnitsMetric:
			return `^\d[.,]\d{2}m?$`
		case model.UnitsAuto:
		}
		return `^(?:\d'\d{2}|\d[.,]\d{2}m?)$`
	case model.WeightOptions:
		if format != model.FormatWeight {
			return ""
		}
		switch o.Units {
		case model.UnitsUS:
			return `^\d{2,3}lb$`
		case model.UnitsMetric:
			return `^\d{2,3}kg$`
		case model.UnitsAuto:
		}
		return `^\d{2,3}(?:lb|kg)$`
	}
	return ""
}

// Validate reports whether value matches expr at its start. An empty expr
// accepts every value. A malformed expr is returned as an error wrapping
// pattern.ErrInvalid and the value is treated as valid.
func Validate(value, expr string) (bool, error) {
	ok, err := pattern.MatchPrefix(expr, value)
	if err != nil {
		return true, err
	}
	return ok, nil
}
