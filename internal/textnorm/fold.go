package textnorm

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quoteFold maps the quote-like runes OCR engines emit for feet and inches
// marks onto ASCII.
func quoteFold(r rune) rune {
	switch r {
	case '‘', '’', '‚', '‛', '′', '´', '`':
		return '\''
	case '“', '”', '„', '‟', '″':
		return '"'
	case '\u00a0', '\u2009', '\u202f':
		return ' '
	}
	return r
}

func isStrayControl(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}

// Fold returns s in canonical form. ASCII input without control characters
// is returned as is.
func Fold(s string) string {
	if isPlain(s) {
		return s
	}
	// Quotes are folded ahead of NFKC, which would split a double prime
	// into two primes. Chains keep state, so each call builds its own.
	t := transform.Chain(
		runes.Map(quoteFold),
		norm.NFKC,
		runes.Remove(runes.Predicate(isStrayControl)),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isPlain(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || c == '`' || (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7F {
			return false
		}
	}
	return true
}
