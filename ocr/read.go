package ocr

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/ocrfields/format"
	"github.com/tsawler/ocrfields/model"
)

// ErrUnsupportedFormat is returned when the input is neither an OCR JSON
// response nor hOCR.
var ErrUnsupportedFormat = errors.New("ocr: unsupported input format")

// Read detects the format of r from its content and decodes it.
func Read(r io.Reader) (*model.Document, error) {
	f, rr, err := format.DetectFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OCR input: %w", err)
	}
	return ReadFormat(rr, f)
}

// ReadFormat decodes r as the given format.
func ReadFormat(r io.Reader, f format.Format) (*model.Document, error) {
	switch f {
	case format.JSON:
		return ReadJSON(r)
	case format.HOCR:
		return ReadHOCR(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadFile opens and decodes an OCR output file. The format is taken from
// the extension, or from the content when the extension is not recognized.
func ReadFile(path string) (*model.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OCR file: %w", err)
	}
	defer file.Close()

	if f := format.Detect(path); f != format.Unknown {
		return ReadFormat(file, f)
	}
	return Read(file)
}
