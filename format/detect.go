// Package format detects which OCR output format a file holds.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported OCR output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates an OCR service response with per-model outputs.
	JSON
	// HOCR indicates an hOCR (HTML) document.
	HOCR
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case HOCR:
		return "hOCR"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case HOCR:
		return ".hocr"
	default:
		return ""
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON
	case ".hocr", ".html", ".htm", ".xhtml":
		return HOCR
	default:
		return Unknown
	}
}

// DetectFromMagic inspects the first bytes of the content. A leading '{' or
// '[' means JSON; an XML declaration, doctype or html tag means hOCR.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '{', '[':
		return JSON
	case '<':
		if detectHTMLMagic(data) {
			return HOCR
		}
	}
	return Unknown
}

// detectHTMLMagic checks if the data looks like an HTML or XHTML document.
func detectHTMLMagic(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	upper := strings.ToUpper(string(head))

	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content is XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}

// DetectFromReader reads the start of r and detects the format from its
// content. The returned reader yields the full content, including the bytes
// consumed for detection.
func DetectFromReader(r io.Reader) (Format, io.Reader, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, nil, err
	}
	magic = magic[:n]

	return DetectFromMagic(magic), io.MultiReader(bytes.NewReader(magic), r), nil
}
