package normalize

import "strings"

// String trims surrounding whitespace. Blank text is rejected.
func String(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	return v, v != ""
}

// Number trims and uppercases an alphanumeric code. Blank text is rejected.
func Number(raw string) (string, bool) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	return v, v != ""
}

// Name cleans a person's name printed in capitals. Lowercase letters are
// treated as OCR noise and removed, as are stray separators and standalone
// punctuation. Apostrophes and hyphens inside names are kept:
// "GEORGE a NICHOLAS" becomes "GEORGE NICHOLAS" and "O'BRIEN" is unchanged.
func Name(raw string) (string, bool) {
	p := patterns().name
	v := p.separators.ReplaceAllString(raw, " ")
	v = p.invalid.ReplaceAllString(v, "")
	v = p.standalone.ReplaceAllString(v, " ")
	v = p.edges.ReplaceAllString(v, "")
	v = strings.TrimSpace(p.spaces.ReplaceAllString(v, " "))
	return v, v != ""
}

// Address cleans an address printed in capitals, keeping letters, digits
// and the punctuation addresses use: comma, hyphen, '#' and '/'.
func Address(raw string) (string, bool) {
	p := patterns().address
	v := p.invalid.ReplaceAllString(raw, "")
	v = p.standalone.ReplaceAllString(v, " ")
	v = p.commaSpacing.ReplaceAllString(v, ", ")
	v = p.edges.ReplaceAllString(v, "")
	v = strings.TrimSpace(p.spaces.ReplaceAllString(v, " "))
	return v, v != ""
}
