package consensus

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/ocrfields/model"
)

// Candidate is one model's reading of a field.
type Candidate struct {
	Model string
	Text  string
}

// FromMap converts a model-to-text map into candidates ordered by model
// name, giving map input a deterministic tie-break order.
func FromMap(texts map[string]string) []Candidate {
	names := make([]string, 0, len(texts))
	for name := range texts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Candidate, len(names))
	for i, name := range names {
		out[i] = Candidate{Model: name, Text: texts[name]}
	}
	return out
}

// Method records which stage produced a result.
type Method int

const (
	// MethodNone means there was nothing to vote on.
	MethodNone Method = iota
	// MethodUnanimous means every candidate agreed.
	MethodUnanimous
	// MethodMajority means one string held a strict majority.
	MethodMajority
	// MethodCharacterVote means the result was assembled position by
	// position.
	MethodCharacterVote
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodUnanimous:
		return "unanimous"
	case MethodMajority:
		return "majority"
	case MethodCharacterVote:
		return "character_vote"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Result is the outcome of a vote.
type Result struct {
	Text string `json:"text"`

	// Votes is the number of candidates whose text equals Text exactly.
	// A character vote that matches no candidate has zero votes.
	Votes int `json:"votes"`

	// Total is the number of candidates the result was decided among: the
	// length-filtered set for a majority, every non-empty candidate
	// otherwise.
	Total int `json:"total"`

	Method Method `json:"method"`
}

// Vote reconciles candidates into a single string. Candidate order matters
// only when the character vote has to break a tie.
func Vote(candidates []Candidate, tie model.TieBreak) Result {
	// Step 1: drop empty readings
	texts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Text) != "" {
			texts = append(texts, c.Text)
		}
	}
	if len(texts) == 0 {
		return Result{}
	}

	// Step 2: unanimous
	if allEqual(texts) {
		return Result{Text: texts[0], Votes: len(texts), Total: len(texts), Method: MethodUnanimous}
	}

	// Step 3: keep the most common length
	filtered := filterByLength(texts)

	// Step 4: strict majority
	if text, n := mostCommon(filtered); 2*n > len(filtered) {
		return Result{Text: text, Votes: n, Total: len(filtered), Method: MethodMajority}
	}

	// Step 5: per-character vote
	text := voteCharacters(filtered, tie)
	votes := 0
	for _, t := range texts {
		if t == text {
			votes++
		}
	}
	return Result{Text: text, Votes: votes, Total: len(texts), Method: MethodCharacterVote}
}

// VoteMap is Vote over a model-to-text map.
func VoteMap(texts map[string]string, tie model.TieBreak) Result {
	return Vote(FromMap(texts), tie)
}

func allEqual(texts []string) bool {
	for _, t := range texts[1:] {
		if t != texts[0] {
			return false
		}
	}
	return true
}

// filterByLength keeps the texts whose rune length is the most common one.
// Equally common lengths resolve to the shorter, since extra characters are
// usually bleed-in from a neighbouring field.
func filterByLength(texts []string) []string {
	counts := make(map[int]int)
	for _, t := range texts {
		counts[utf8.RuneCountInString(t)]++
	}

	modal, best := -1, 0
	for length, n := range counts {
		if n > best || (n == best && length < modal) {
			modal, best = length, n
		}
	}

	out := make([]string, 0, best)
	for _, t := range texts {
		if utf8.RuneCountInString(t) == modal {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return texts
	}
	return out
}

// mostCommon returns the most frequent text and its count. Ties go to the
// text seen first.
func mostCommon(texts []string) (string, int) {
	counts := make(map[string]int, len(texts))
	for _, t := range texts {
		counts[t]++
	}
	best, n := "", 0
	for _, t := range texts {
		if counts[t] > n {
			best, n = t, counts[t]
		}
	}
	return best, n
}

// voteCharacters picks the most voted rune at every position. Shorter
// candidates do not vote past their end.
func voteCharacters(texts []string, tie model.TieBreak) string {
	runes := make([][]rune, len(texts))
	width := 0
	for i, t := range texts {
		runes[i] = []rune(t)
		if len(runes[i]) > width {
			width = len(runes[i])
		}
	}

	var b strings.Builder
	for pos := 0; pos < width; pos++ {
		var order []rune
		counts := make(map[rune]int)
		for _, rs := range runes {
			if pos >= len(rs) {
				continue
			}
			r := rs[pos]
			if counts[r] == 0 {
				order = append(order, r)
			}
			counts[r]++
		}
		if len(order) == 0 {
			continue
		}
		b.WriteRune(pickRune(order, counts, tie))
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// pickRune chooses among the runes with the highest count. order lists the
// runes in the order candidates first contributed them.
func pickRune(order []rune, counts map[rune]int, tie model.TieBreak) rune {
	top := 0
	for _, r := range order {
		if counts[r] > top {
			top = counts[r]
		}
	}

	var tied []rune
	for _, r := range order {
		if counts[r] == top {
			tied = append(tied, r)
		}
	}

	switch tie {
	case model.TieBreakAlpha:
		for _, r := range tied {
			if unicode.IsLetter(r) {
				return r
			}
		}
	case model.TieBreakDigit:
		for _, r := range tied {
			if unicode.IsDigit(r) {
				return r
			}
		}
	case model.TieBreakAuto, model.TieBreakFirst:
	}
	return tied[0]
}
