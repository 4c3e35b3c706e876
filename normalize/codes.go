package normalize

import (
	"sort"
	"strings"

	"github.com/tsawler/ocrfields/model"
)

// Endorsement parses US driver license endorsement codes from text that may
// carry a garbled "Endorsements" label in front and bleed-in from the
// restrictions or vehicle class field behind. The result is the sorted,
// de-duplicated, comma-joined code set, or "NONE".
func Endorsement(raw string) (string, bool) {
	return licenseCodes(raw, model.FormatEndorsements)
}

// Restriction parses US driver license restriction codes the same way as
// Endorsement, trimming a "Restrictions" label in front and vehicle class
// bleed-in behind.
func Restriction(raw string) (string, bool) {
	return licenseCodes(raw, model.FormatRestrictions)
}

func licenseCodes(raw string, format model.FieldFormat) (string, bool) {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" {
		return "", false
	}

	t := patterns()
	// A lone printed label is not a value.
	if t.codeReject.MatchString(text) {
		return "", false
	}
	p := t.codes[format]

	// Step 1: cut the field label
	if loc := p.start.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}

	// Step 2: cut the neighbouring field
	if trimmed, err := p.end.ReplaceAll(text, ""); err == nil {
		text = trimmed
	}
	text = strings.TrimSpace(text)

	// Step 3: explicit NONE
	if strings.Contains(text, "NONE") {
		return "NONE", true
	}

	// Step 4: parse codes
	codes := parseCodes(text, p)
	if len(codes) == 0 {
		return "", false
	}
	return strings.Join(codes, ","), true
}

// parseCodes splits text on commas, dots and whitespace. A token that is a
// valid code is taken as is; otherwise it is consumed greedily by the
// longest matching code prefix, skipping one character of noise whenever
// nothing matches. The result is sorted and de-duplicated.
func parseCodes(text string, p codePatterns) []string {
	seen := make(map[string]bool)
	for _, token := range strings.Fields(patterns().codeSplit.ReplaceAllString(text, " ")) {
		if p.valid[token] {
			seen[token] = true
			continue
		}

		rest := token
		for rest != "" {
			matched := false
			for _, code := range p.prefixes {
				if strings.HasPrefix(rest, code) {
					seen[code] = true
					rest = rest[len(code):]
					matched = true
					break
				}
			}
			if !matched {
				rest = rest[1:]
			}
		}
	}

	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
