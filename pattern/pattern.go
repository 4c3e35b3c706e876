package pattern

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

var (
	// ErrInvalid is returned for a pattern that does not compile.
	ErrInvalid = errors.New("invalid pattern")

	// ErrTimeout is returned when matching exceeds MatchTimeout.
	ErrTimeout = errors.New("pattern match timed out")
)

// MatchTimeout bounds a single match against a caller pattern so that a
// pathological backtracking expression cannot stall an extraction.
const MatchTimeout = 250 * time.Millisecond

// Flags select compile options.
type Flags int

const (
	// IgnoreCase matches letters case-insensitively.
	IgnoreCase Flags = 1 << iota
	// Multiline makes ^ and $ match at line boundaries.
	Multiline
)

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	return opts
}

// Error describes a pattern that failed to compile or match.
type Error struct {
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pattern is a compiled caller-supplied expression.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

type cacheKey struct {
	expr  string
	flags Flags
}

type cacheEntry struct {
	p   *Pattern
	err error
}

// cache holds every compiled pattern, including failures, for the life of
// the process. Entries are never replaced.
var cache sync.Map

// Compile returns the compiled pattern for expr, reusing a previous
// compilation when available. Syntax errors wrap ErrInvalid.
func Compile(expr string, flags Flags) (*Pattern, error) {
	key := cacheKey{expr: expr, flags: flags}
	if v, ok := cache.Load(key); ok {
		e := v.(cacheEntry)
		return e.p, e.err
	}

	var entry cacheEntry
	re, err := regexp2.Compile(expr, flags.options())
	if err != nil {
		entry.err = &Error{Pattern: expr, Err: fmt.Errorf("%w: %v", ErrInvalid, err)}
	} else {
		re.MatchTimeout = MatchTimeout
		entry.p = &Pattern{expr: expr, re: re}
	}

	v, _ := cache.LoadOrStore(key, entry)
	e := v.(cacheEntry)
	return e.p, e.err
}

// MustCompile is like Compile but panics on error. It is intended for
// built-in patterns.
func MustCompile(expr string, flags Flags) *Pattern {
	p, err := Compile(expr, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// Check reports whether expr compiles. An empty expression is valid.
func Check(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := Compile(expr, IgnoreCase)
	return err
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// HasGroups reports whether the pattern declares at least one capturing
// group.
func (p *Pattern) HasGroups() bool {
	return len(p.re.GetGroupNumbers()) > 1
}

// ReplaceAll replaces every match in s with repl.
func (p *Pattern) ReplaceAll(s, repl string) (string, error) {
	out, err := p.re.Replace(s, repl, -1, -1)
	if err != nil {
		return s, p.wrap(err)
	}
	return out, nil
}

// Find returns the first match. The second result is false when nothing
// matched.
func (p *Pattern) Find(s string) (*regexp2.Match, bool, error) {
	m, err := p.re.FindStringMatch(s)
	if err != nil {
		return nil, false, p.wrap(err)
	}
	return m, m != nil, nil
}

// MatchPrefix reports whether the pattern matches at the start of s.
func (p *Pattern) MatchPrefix(s string) (bool, error) {
	m, ok, err := p.Find(s)
	if err != nil || !ok {
		return false, err
	}
	// A backtracking search tries position 0 first, so a match anywhere
	// else means none exists at the start.
	return m.Index == 0, nil
}

func (p *Pattern) wrap(err error) error {
	if strings.Contains(err.Error(), "timeout") {
		return &Error{Pattern: p.expr, Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
	}
	return &Error{Pattern: p.expr, Err: err}
}
