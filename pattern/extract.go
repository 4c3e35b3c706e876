package pattern

import "strings"

// Match is the result of Extract.
type Match struct {
	// Text is the extracted value, already passed through the cleanup
	// pattern when one was applied.
	Text string

	// Found is false when the pattern matched nothing.
	Found bool

	// Group is true when Text came from capturing group 1.
	Group bool
}

// Cleanup removes every case-insensitive match of expr from text and trims
// the result. An empty expr leaves text untouched.
// When expr is invalid the untouched text is returned along with the error,
// so callers can treat the pattern as having no effect.
func Cleanup(expr, text string) (string, error) {
	if strings.TrimSpace(expr) == "" {
		return text, nil
	}
	p, err := Compile(expr, IgnoreCase)
	if err != nil {
		return text, err
	}
	out, err := p.ReplaceAll(text, "")
	if err != nil {
		return text, err
	}
	return strings.TrimSpace(out), nil
}

// Extract searches text with expr (case-insensitive, multiline). When the
// pattern has a capturing group, group 1 trimmed is the value; otherwise the full
// match is used and cleanupExpr is applied to it to strip residual label
// text. A failure of cleanupExpr is returned together with the uncleaned
// match.
func Extract(expr, cleanupExpr, text string) (Match, error) {
	p, err := Compile(expr, IgnoreCase|Multiline)
	if err != nil {
		return Match{}, err
	}

	m, ok, err := p.Find(text)
	if err != nil || !ok {
		return Match{}, err
	}

	if p.HasGroups() {
		g := m.GroupByNumber(1)
		value := ""
		if g != nil {
			value = strings.TrimSpace(g.String())
		}
		return Match{Text: value, Found: value != "", Group: true}, nil
	}

	value := m.String()
	cleaned, err := Cleanup(cleanupExpr, value)
	return Match{Text: cleaned, Found: cleaned != ""}, err
}

// MatchPrefix compiles expr case-sensitively and reports whether it matches
// at the start of s. An empty expr matches everything.
func MatchPrefix(expr, s string) (bool, error) {
	if strings.TrimSpace(expr) == "" {
		return true, nil
	}
	p, err := Compile(expr, 0)
	if err != nil {
		return false, err
	}
	return p.MatchPrefix(s)
}
