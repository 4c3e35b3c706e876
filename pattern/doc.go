// Package pattern compiles and applies caller-supplied regular expressions:
// zone cleanup patterns, validation patterns, label patterns and the
// consensus extraction patterns of pattern mode.
//
// Templates are commonly authored against a backtracking regex dialect, so
// patterns may use lookahead and lookbehind. Compiled patterns are cached
// for the life of the process.
//
// # Errors
//
// Every operation separates "the pattern is broken" from "the pattern did
// not match":
//
//	out, err := pattern.Cleanup(`^(LN|FN)\s*`, "LN SMITH")
//	if errors.Is(err, pattern.ErrInvalid) {
//	    // out is the untouched input; report and carry on
//	}
//
// A non-match is never an error. [Extract] returns a [Match] with Found set
// to false.
package pattern
