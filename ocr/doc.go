// Package ocr reads the output of OCR recognition services into a
// [model.Document]: reference words with normalized geometry plus the
// per-model readings of the same word positions.
//
// Two inputs are supported. [ReadJSON] decodes the multi-model service
// response, whose words already carry [0, 1] geometry and whose
// model_comparison section lists every model's word texts index-aligned to
// the reference words. [ReadHOCR] decodes a single engine's hOCR page and
// scales its pixel boxes by the page size.
//
// Readings that were not aligned upstream, such as one hOCR file per
// engine, are aligned geometrically with [MergeModels]:
//
//	ref, _ := ocr.ReadHOCR(tesseractFile)
//	other, _ := ocr.ReadHOCR(otherEngineFile)
//	doc := ocr.MergeModels(ref, map[string][]model.Word{
//	    "tesseract": ref.Words,
//	    "other":     other.Words,
//	})
//
// This package performs no recognition itself.
package ocr
