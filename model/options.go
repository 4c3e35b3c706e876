package model

import (
	"fmt"
	"strings"
)

// UnitSystem selects the measurement system for height and weight fields.
type UnitSystem int

const (
	// UnitsAuto detects the system from the text.
	UnitsAuto UnitSystem = iota
	// UnitsUS uses feet/inches and pounds.
	UnitsUS
	// UnitsMetric uses metres and kilograms.
	UnitsMetric
)

// String returns the configuration name of the unit system.
func (u UnitSystem) String() string {
	switch u {
	case UnitsUS:
		return "us"
	case UnitsMetric:
		return "metric"
	default:
		return "auto"
	}
}

// ParseUnitSystem converts "us", "metric" or "auto" to a UnitSystem.
// An empty name means UnitsAuto.
func ParseUnitSystem(name string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return UnitsAuto, nil
	case "us":
		return UnitsUS, nil
	case "metric":
		return UnitsMetric, nil
	}
	return UnitsAuto, fmt.Errorf("unknown unit system %q", name)
}

// DateLayout is a target date layout such as "MM.DD.YYYY". The leading token
// (DD, MM or YYYY) fixes the component order and the first of '.', '/' or
// '-' found in the layout is the separator.
type DateLayout string

// Common date layouts.
const (
	LayoutDayMonthYearDots   DateLayout = "DD.MM.YYYY"
	LayoutMonthDayYearDots   DateLayout = "MM.DD.YYYY"
	LayoutDayMonthYearSlash  DateLayout = "DD/MM/YYYY"
	LayoutMonthDayYearSlash  DateLayout = "MM/DD/YYYY"
	LayoutYearMonthDayDots   DateLayout = "YYYY.MM.DD"
	LayoutYearMonthDayHyphen DateLayout = "YYYY-MM-DD"
)

// DateLayouts returns the layouts offered by the template tooling.
func DateLayouts() []DateLayout {
	return []DateLayout{
		LayoutDayMonthYearDots,
		LayoutMonthDayYearDots,
		LayoutDayMonthYearSlash,
		LayoutMonthDayYearSlash,
		LayoutYearMonthDayDots,
		LayoutYearMonthDayHyphen,
	}
}

// Order returns the leading token of the layout: "DD", "MM", "YYYY", or ""
// when the layout starts with none of them.
func (l DateLayout) Order() string {
	upper := strings.ToUpper(string(l))
	switch {
	case strings.HasPrefix(upper, "YYYY"):
		return "YYYY"
	case strings.HasPrefix(upper, "DD"):
		return "DD"
	case strings.HasPrefix(upper, "MM"):
		return "MM"
	}
	return ""
}

// Separator returns the component separator of the layout, '.' by default.
func (l DateLayout) Separator() string {
	for _, sep := range []string{".", "/", "-"} {
		if strings.Contains(string(l), sep) {
			return sep
		}
	}
	return "."
}

// Valid reports whether the layout starts with a known token.
func (l DateLayout) Valid() bool {
	return l.Order() != ""
}

// FormatOptions carries format-specific settings. The set of variants is
// closed: DateOptions, HeightOptions, WeightOptions and NoOptions.
type FormatOptions interface {
	// Format returns the field format the options belong to. NoOptions
	// returns FormatString and fits every format without settings.
	Format() FieldFormat
	isFormatOptions()
}

// DateOptions configures FormatDate.
type DateOptions struct {
	Layout DateLayout
}

// HeightOptions configures FormatHeight.
type HeightOptions struct {
	Units UnitSystem
}

// WeightOptions configures FormatWeight.
type WeightOptions struct {
	Units UnitSystem
}

// NoOptions is used by formats without settings.
type NoOptions struct{}

func (DateOptions) Format() FieldFormat   { return FormatDate }
func (HeightOptions) Format() FieldFormat { return FormatHeight }
func (WeightOptions) Format() FieldFormat { return FormatWeight }
func (NoOptions) Format() FieldFormat     { return FormatString }

func (DateOptions) isFormatOptions()   {}
func (HeightOptions) isFormatOptions() {}
func (WeightOptions) isFormatOptions() {}
func (NoOptions) isFormatOptions()     {}

// DefaultOptions returns the default settings for a format: MM.DD.YYYY for
// dates, auto units for height and weight.
func DefaultOptions(format FieldFormat) FormatOptions {
	switch format {
	case FormatDate:
		return DateOptions{Layout: LayoutMonthDayYearDots}
	case FormatHeight:
		return HeightOptions{Units: UnitsAuto}
	case FormatWeight:
		return WeightOptions{Units: UnitsAuto}
	case FormatString, FormatNumber, FormatSex, FormatEyes, FormatHair,
		FormatEndorsements, FormatRestrictions:
	}
	return NoOptions{}
}

// optionsMatch reports whether opts is an acceptable variant for format.
func optionsMatch(format FieldFormat, opts FormatOptions) bool {
	if opts == nil {
		return true
	}
	switch o := opts.(type) {
	case NoOptions:
		return format != FormatDate && format != FormatHeight && format != FormatWeight
	case DateOptions:
		return format == FormatDate && o.Layout.Valid()
	case HeightOptions, WeightOptions:
		return o.Format() == format
	}
	return false
}
