package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/tsawler/ocrfields/model"
	"github.com/tsawler/ocrfields/pattern"
)

// AAMVA color codes. BRN is not in the standard but is printed on many
// licenses in place of BRO.
var (
	EyeColors  = []string{"BLK", "BLU", "BRO", "GRY", "GRN", "HAZ", "MAR", "PNK", "DIC", "UNK", "BRN"}
	HairColors = []string{"BAL", "BLK", "BLN", "BRO", "GRY", "RED", "SDY", "WHI", "UNK", "BRN"}
)

// Endorsements lists the valid US driver license endorsement codes.
var Endorsements = []string{
	"NONE",
	"H", "N", "P", "S", "T", "X", "M", "L", "F", "G", "R", "W", "Z", "O", "A",
	"M1", "M2", "M3", "P1", "P2",
}

// Restrictions lists the valid US driver license restriction codes.
var Restrictions = restrictionCodes()

func restrictionCodes() []string {
	codes := []string{"NONE"}
	for c := 'A'; c <= 'Z'; c++ {
		codes = append(codes, string(c))
	}
	for i := 1; i <= 40; i++ {
		codes = append(codes, "P"+strconv.Itoa(i))
	}
	for i := 1; i <= 11; i++ {
		codes = append(codes, fmt.Sprintf("J%02d", i))
	}
	return append(codes, "J99", "S1", "A1", "A2")
}

type heightPatterns struct {
	usExplicit *regexp.Regexp
	usImplicit *regexp.Regexp
	metricDec  *regexp.Regexp
	metricCM   *regexp.Regexp
	metricInt  *regexp.Regexp
}

type colorPatterns struct {
	label string
	codes *regexp.Regexp
}

// codeEndAnchor trims trailing bleed-in from a neighbouring field.
type codeEndAnchor interface {
	ReplaceAll(s, repl string) (string, error)
}

type stdAnchor struct{ re *regexp.Regexp }

func (a stdAnchor) ReplaceAll(s, repl string) (string, error) {
	return a.re.ReplaceAllString(s, repl), nil
}

type codePatterns struct {
	start *regexp.Regexp
	end   codeEndAnchor
	valid map[string]bool
	// longest first, stable within one length
	prefixes []string
}

type cleanPatterns struct {
	separators   *regexp.Regexp
	invalid      *regexp.Regexp
	standalone   *regexp.Regexp
	edges        *regexp.Regexp
	commaSpacing *regexp.Regexp
	spaces       *regexp.Regexp
}

// patternTable holds every built-in expression, grouped by the format that
// uses it. It is built once and never modified.
type patternTable struct {
	digit      *regexp.Regexp
	height     heightPatterns
	weight     *regexp.Regexp
	sexLetter  *regexp.Regexp
	colors     map[model.FieldFormat]colorPatterns
	codeReject *regexp.Regexp
	codeSplit  *regexp.Regexp
	codes      map[model.FieldFormat]codePatterns
	name       cleanPatterns
	address    cleanPatterns
}

var (
	tableOnce sync.Once
	table     *patternTable
)

func patterns() *patternTable {
	tableOnce.Do(func() {
		table = buildPatternTable()
	})
	return table
}

func buildPatternTable() *patternTable {
	return &patternTable{
		digit: regexp.MustCompile(`[0-9]`),
		height: heightPatterns{
			usExplicit: regexp.MustCompile("([4-7])\\s*(?:['’`\\-\\s])+\\s*([0-9]{1,2})\\b"),
			usImplicit: regexp.MustCompile(`([4-7])([0-9]{2})\b`),
			metricDec:  regexp.MustCompile(`(1[,.]\d{2}|2[,.][01]\d)\s*M?\b`),
			metricCM:   regexp.MustCompile(`(1[4-9]\d|2[0-1]\d)\s*CM\b`),
			metricInt:  regexp.MustCompile(`(1[4-9]\d|2[0-1]\d)\b`),
		},
		weight:    regexp.MustCompile(`(\d{2,3})`),
		sexLetter: regexp.MustCompile(`\b[MF]\b`),
		colors: map[model.FieldFormat]colorPatterns{
			model.FormatEyes: {label: "EYES", codes: codeAlternation(EyeColors)},
			model.FormatHair: {label: "HAIR", codes: codeAlternation(HairColors)},
		},
		codeReject: regexp.MustCompile(`^(?:DRIVER\s*LICENSE|USA|AMERICA|CLASS)$`),
		codeSplit:  regexp.MustCompile(`[,.]`),
		codes: map[model.FieldFormat]codePatterns{
			model.FormatEndorsements: {
				start:    regexp.MustCompile(`^(?:[9SDo0-9]+[a-zA-Z]?\s*)?E[NM]D\w*\.?\s*`),
				end:      stdAnchor{regexp.MustCompile(`(?:12\s*)?(?:R[EO]?ST\w*|RE\b|V[EHICO]\w*|CLASS).*$`)},
				valid:    codeSet(Endorsements),
				prefixes: longestFirst(Endorsements),
			},
			model.FormatRestrictions: {
				start: regexp.MustCompile(`(?:12\s*)?(?:R[EO]?ST\w*|RE\b)\.?\s*`),
				// Needs lookbehind, which RE2 lacks.
				end:      pattern.MustCompile(`(?<=[\s.,A-Z0-9])(?:(?:[9GS5]\s*)?V[EHICO]|CLASS|9\s*V\b).*$`, 0),
				valid:    codeSet(Restrictions),
				prefixes: longestFirst(Restrictions),
			},
		},
		name: cleanPatterns{
			separators: regexp.MustCompile(`[._:;,]`),
			invalid:    regexp.MustCompile(`[^A-Z\s'\-]`),
			standalone: regexp.MustCompile(`\s+['\-]+\s+`),
			edges:      regexp.MustCompile(`^\s*['\-]+\s*|\s*['\-]+\s*$`),
			spaces:     regexp.MustCompile(`\s+`),
		},
		address: cleanPatterns{
			invalid:      regexp.MustCompile(`[^A-Z0-9\s,\-#/]`),
			standalone:   regexp.MustCompile(`\s+[,\-]+\s+`),
			commaSpacing: regexp.MustCompile(`\s*,\s*`),
			edges:        regexp.MustCompile(`^\s*[,\-#/]+\s*|\s*[,\-#/]+\s*$`),
			spaces:       regexp.MustCompile(`\s+`),
		},
	}
}

// codeAlternation matches any of codes as a whole word.
func codeAlternation(codes []string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + strings.Join(codes, "|") + `)\b`)
}

func codeSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

func longestFirst(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c != "NONE" {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
