// Package textnorm folds OCR output into a canonical form before field
// normalization: compatibility characters are decomposed (NFKC), typographic
// quotes and primes become ASCII quotes, and control characters other than
// whitespace are removed.
package textnorm
