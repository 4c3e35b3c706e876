// Package consensus reconciles the readings several OCR models produced for
// the same word sequence into one string.
//
// Voting runs in stages, each able to short-circuit:
//
//  1. Empty candidates are dropped; none left gives an empty result.
//  2. A single distinct candidate is returned as is.
//  3. Candidates whose rune length differs from the most common length are
//     discarded, so one inserted or dropped character cannot shift every
//     following position.
//  4. A string held by a strict majority of the remaining candidates wins.
//  5. Otherwise each character position is voted on separately, with ties
//     settled by a [model.TieBreak] rule.
package consensus
