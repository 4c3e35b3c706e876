package ocr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/ocrfields/model"
)

// ErrEmptyResponse is returned when a response array holds no result.
var ErrEmptyResponse = errors.New("ocr: empty response")

type jsonResponse struct {
	Items           []jsonPage           `json:"items"`
	ModelComparison *jsonModelComparison `json:"model_comparison"`
}

type jsonPage struct {
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	Lines []jsonLine `json:"lines"`
}

type jsonLine struct {
	Words []jsonWord `json:"words"`
}

type jsonWord struct {
	Value    string    `json:"value"`
	Geometry []float64 `json:"geometry"`
}

type jsonModelComparison struct {
	PerModelOutputs map[string]jsonModelOutput `json:"per_model_outputs"`
}

type jsonModelOutput struct {
	Words []string `json:"words"`
}

// ReadJSON decodes a service response. The response may be a single result
// object or an array of them, in which case the first is used. Only the
// first page is read, and words without a four-value geometry or with
// blank text are skipped.
func ReadJSON(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OCR response: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON is ReadJSON over a byte slice.
func ParseJSON(data []byte) (*model.Document, error) {
	var resp jsonResponse

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []jsonResponse
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode OCR response: %w", err)
		}
		if len(list) == 0 {
			return nil, ErrEmptyResponse
		}
		resp = list[0]
	} else if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode OCR response: %w", err)
	}

	var words []model.Word
	if len(resp.Items) > 0 {
		for _, block := range resp.Items[0].Blocks {
			for _, line := range block.Lines {
				for _, w := range line.Words {
					if len(w.Geometry) != 4 || strings.TrimSpace(w.Value) == "" {
						continue
					}
					g := w.Geometry
					words = append(words, model.NewWord(w.Value, g[0], g[1], g[2], g[3]))
				}
			}
		}
	}

	var models model.ModelOutputSet
	if mc := resp.ModelComparison; mc != nil && len(mc.PerModelOutputs) > 0 {
		models = make(model.ModelOutputSet, len(mc.PerModelOutputs))
		for name, out := range mc.PerModelOutputs {
			models[name] = out.Words
		}
	}

	return model.NewDocument(words, models), nil
}
