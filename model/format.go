package model

import (
	"fmt"
	"strings"
)

// FieldFormat is the closed set of value formats a zone can declare. Each
// format owns one normalization rule.
type FieldFormat int

const (
	// FormatString is free text, trimmed.
	FormatString FieldFormat = iota
	// FormatNumber is an uppercase alphanumeric code.
	FormatNumber
	// FormatDate is a calendar date rewritten to a DateLayout.
	FormatDate
	// FormatHeight is a body height in feet/inches or metres.
	FormatHeight
	// FormatWeight is a body weight in pounds or kilograms.
	FormatWeight
	// FormatSex is M or F.
	FormatSex
	// FormatEyes is an AAMVA eye color code.
	FormatEyes
	// FormatHair is an AAMVA hair color code.
	FormatHair
	// FormatEndorsements is a set of US driver license endorsement codes.
	FormatEndorsements
	// FormatRestrictions is a set of US driver license restriction codes.
	FormatRestrictions
)

var formatNames = [...]string{
	FormatString:       "string",
	FormatNumber:       "number",
	FormatDate:         "date",
	FormatHeight:       "height",
	FormatWeight:       "weight",
	FormatSex:          "sex",
	FormatEyes:         "eyes",
	FormatHair:         "hair",
	FormatEndorsements: "endorsements",
	FormatRestrictions: "restrictions",
}

// Formats returns every field format in declaration order.
func Formats() []FieldFormat {
	out := make([]FieldFormat, len(formatNames))
	for i := range formatNames {
		out[i] = FieldFormat(i)
	}
	return out
}

// String returns the configuration name of the format.
func (f FieldFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("FieldFormat(%d)", int(f))
	}
	return formatNames[f]
}

// Valid reports whether f is one of the declared formats.
func (f FieldFormat) Valid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

// ParseFieldFormat converts a configuration name to a FieldFormat.
// An empty name means FormatString.
func ParseFieldFormat(name string) (FieldFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatString, nil
	}
	for i, n := range formatNames {
		if n == name {
			return FieldFormat(i), nil
		}
	}
	return FormatString, fmt.Errorf("unknown field format %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (f FieldFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid field format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FieldFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// DetectFormat guesses a format from a caller-defined field name such as
// "date_of_birth" or "eye_color". Unrecognized names are FormatString.
func DetectFormat(fieldName string) FieldFormat {
	name := strings.ToLower(fieldName)

	switch {
	case strings.Contains(name, "date"):
		return FormatDate
	case strings.Contains(name, "height") || name == "hgt" || name == "ht":
		return FormatHeight
	case strings.Contains(name, "weight") || name == "wgt" || name == "wt":
		return FormatWeight
	case name == "sex" || name == "gender":
		return FormatSex
	case strings.Contains(name, "eye"):
		return FormatEyes
	case strings.Contains(name, "hair"):
		return FormatHair
	case strings.Contains(name, "endorsement"):
		return FormatEndorsements
	case strings.Contains(name, "restriction"):
		return FormatRestrictions
	}

	for _, kw := range []string{"number", "code", "dl", "license"} {
		if strings.Contains(name, kw) {
			return FormatNumber
		}
	}
	return FormatString
}

// FieldKind describes what a field holds beyond its format. It selects the
// extra cleaning applied after normalization and the default character
// tie-break used by consensus voting.
type FieldKind int

const (
	// KindGeneric applies no extra cleaning.
	KindGeneric FieldKind = iota
	// KindName keeps uppercase letters, apostrophes and hyphens.
	KindName
	// KindAddress keeps uppercase letters, digits and , - # /.
	KindAddress
	// KindCode marks document numbers and other ID-like codes.
	KindCode
)

var kindNames = [...]string{
	KindGeneric: "generic",
	KindName:    "name",
	KindAddress: "address",
	KindCode:    "code",
}

// String returns the configuration name of the kind.
func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseFieldKind converts a configuration name to a FieldKind.
// An empty name means KindGeneric.
func ParseFieldKind(name string) (FieldKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KindGeneric, nil
	}
	for i, n := range kindNames {
		if n == name {
			return FieldKind(i), nil
		}
	}
	return KindGeneric, fmt.Errorf("unknown field kind %q", name)
}

// DetectKind guesses a kind from a caller-defined field name.
func DetectKind(fieldName string) FieldKind {
	name := strings.ToLower(fieldName)

	for _, n := range []string{"first_name", "last_name", "middle_name", "surname", "given_name"} {
		if strings.Contains(name, n) {
			return KindName
		}
	}
	if strings.Contains(name, "address") {
		return KindAddress
	}
	for _, n := range []string{"document_number", "license_number", "id_number", "dd_number"} {
		if strings.Contains(name, n) {
			return KindCode
		}
	}
	return KindGeneric
}

// TieBreak selects how the consensus voter resolves a tie between
// characters at one position.
type TieBreak int

const (
	// TieBreakAuto derives the rule from the zone's format and kind.
	TieBreakAuto TieBreak = iota
	// TieBreakFirst keeps the character of the earliest candidate.
	TieBreakFirst
	// TieBreakAlpha prefers the first tied letter.
	TieBreakAlpha
	// TieBreakDigit prefers the first tied digit.
	TieBreakDigit
)

var tieBreakNames = [...]string{
	TieBreakAuto:  "auto",
	TieBreakFirst: "first",
	TieBreakAlpha: "alpha",
	TieBreakDigit: "digit",
}

// String returns the configuration name of the tie-break rule.
func (t TieBreak) String() string {
	if t < 0 || int(t) >= len(tieBreakNames) {
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
	return tieBreakNames[t]
}

// ParseTieBreak converts a configuration name to a TieBreak.
func ParseTieBreak(name string) (TieBreak, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TieBreakAuto, nil
	}
	for i, n := range tieBreakNames {
		if n == name {
			return TieBreak(i), nil
		}
	}
	return TieBreakAuto, fmt.Errorf("unknown tie-break %q", name)
}

// DefaultTieBreak maps a format and kind to the tie-break rule used when a
// zone leaves it on auto. Name fields and alphabetic formats prefer letters,
// numeric fields prefer digits, everything else keeps the first candidate.
// KindName wins over the format.
func DefaultTieBreak(format FieldFormat, kind FieldKind) TieBreak {
	if kind == KindName {
		return TieBreakAlpha
	}

	switch format {
	case FormatSex, FormatEyes, FormatHair:
		return TieBreakAlpha
	case FormatDate, FormatHeight, FormatWeight, FormatNumber:
		return TieBreakDigit
	case FormatString, FormatEndorsements, FormatRestrictions:
	}

	switch kind {
	case KindCode:
		return TieBreakDigit
	case KindName, KindGeneric, KindAddress:
	}
	return TieBreakFirst
}
