// Package ocrfields provides a fluent API for extracting normalized field
// values from the output of several OCR models run over one document image.
//
// Basic usage:
//
//	tmpl, err := template.Load("us_dl.yaml")
//	if err != nil {
//	    // handle error
//	}
//	results, warnings, err := ocrfields.Open("scan.json").Fields(tmpl.Zones...)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ocrfields.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := ocrfields.FromDocument(doc).
//	    Logger(logger).
//	    NormalizeBeforeVote().
//	    Field(zone)
//
// Each field is resolved in the same order: the zone selects word
// positions, label words are filtered, the best spatial cluster is kept,
// every model's reading of those positions is joined and cleaned, the
// readings are reconciled by vote, and the winner is normalized to the
// zone's format and validated.
//
// For lower-level control the cluster, consensus, normalize and pattern
// packages can be used directly.
package ocrfields

import (
	"github.com/tsawler/ocrfields/model"
)

// Open returns an Extractor for an OCR output file (a JSON service
// response or hOCR). The file is read on the first terminal operation.
//
// Example:
//
//	result, warnings, err := ocrfields.Open("scan.json").Field(zone)
func Open(filename string) *Extractor {
	return &Extractor{
		src:     &source{filename: filename},
		options: defaultOptions(),
	}
}

// FromDocument creates an Extractor for an already-decoded document.
//
// Example:
//
//	doc, err := ocr.ReadFile("scan.hocr")
//	if err != nil {
//	    // handle error
//	}
//	text, _, err := ocrfields.FromDocument(doc).Text(zone)
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		src:     &source{doc: doc},
		options: defaultOptions(),
	}
}

// New returns an Extractor without a document. It carries configuration
// for ExtractBatch.
func New() *Extractor {
	return &Extractor{options: defaultOptions()}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a terminal operation such as Field() or
// Fields() and panics if the error is non-nil. It discards warnings and
// returns just the value.
//
// Example:
//
//	result := ocrfields.MustValue(ocrfields.Open("scan.json").Field(zone))
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
