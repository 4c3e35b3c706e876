package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/ocrfields/model"
)

const serviceResponse = `[{
  "items": [{
    "blocks": [{
      "lines": [{
        "words": [
          {"value": "DOB", "geometry": [0.10, 0.30, 0.16, 0.33]},
          {"value": "01/02/1990", "geometry": [0.18, 0.30, 0.32, 0.33]},
          {"value": "  ", "geometry": [0.40, 0.30, 0.42, 0.33]},
          {"value": "broken", "geometry": [0.5, 0.5]}
        ]
      }]
    }]
  }],
  "model_comparison": {
    "per_model_outputs": {
      "doctr": {"words": ["DOB", "01/02/1990"]},
      "parseq": {"words": ["D0B", "01/02/1996"]}
    }
  }
}]`

func TestParseJSON(t *testing.T) {
	doc, err := ParseJSON([]byte(serviceResponse))
	require.NoError(t, err)

	require.Len(t, doc.Words, 2)
	assert.Equal(t, "01/02/1990", doc.Words[1].Text)
	assert.InDelta(t, 0.25, doc.Words[1].CenterX, 1e-9)
	assert.InDelta(t, 0.315, doc.Words[1].CenterY, 1e-9)

	assert.Equal(t, []string{"doctr", "parseq"}, doc.ModelNames())
	assert.Equal(t, []string{"D0B", "01/02/1996"}, doc.Models["parseq"])
}

func TestReadJSONSingleObject(t *testing.T) {
	in := `{"items": [{"blocks": [{"lines": [{"words": [{"value": "M", "geometry": [0.1, 0.1, 0.2, 0.2]}]}]}]}]}`
	doc, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, doc.Words, 1)
	assert.False(t, doc.HasModels())
}

func TestParseJSONErrors(t *testing.T) {
	_, err := ParseJSON([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = ParseJSON([]byte(`{"items": `))
	assert.Error(t, err)

	doc, err := ParseJSON([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Words)
}

const hocrPage = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<body>
  <div class="ocr_page" id="page_1" title="image &quot;id.png&quot;; bbox 0 0 1000 500; ppageno 0">
    <div class="ocr_carea" title="bbox 100 150 400 170">
      <p class="ocr_par">
        <span class="ocr_line" title="bbox 100 150 400 170">
          <span class="ocrx_word" title="bbox 100 150 160 165; x_wconf 91">DOB</span>
          <span class="ocrx_word" title="bbox 180 150 320 165; x_wconf 88"><strong>01/02/1990</strong></span>
          <span class="ocrx_word" title="x_wconf 10">nobox</span>
          <span class="ocrx_word" title="bbox 330 150 340 165"> </span>
        </span>
      </p>
    </div>
  </div>
</body>
</html>`

func TestReadHOCR(t *testing.T) {
	doc, err := ReadHOCR(strings.NewReader(hocrPage))
	require.NoError(t, err)
	require.Len(t, doc.Words, 2)

	w := doc.Words[1]
	assert.Equal(t, "01/02/1990", w.Text)
	assert.InDelta(t, 0.18, w.X1, 1e-9)
	assert.InDelta(t, 0.30, w.Y1, 1e-9)
	assert.InDelta(t, 0.32, w.X2, 1e-9)
	assert.InDelta(t, 0.33, w.Y2, 1e-9)
	assert.False(t, doc.HasModels())
}

func TestReadHOCRNoPage(t *testing.T) {
	_, err := ReadHOCR(strings.NewReader(`<html><body><p>plain</p></body></html>`))
	assert.ErrorIs(t, err, ErrNoPage)

	_, err = ReadHOCR(strings.NewReader(`<div class="ocr_page" title="bbox 0 0 0 0"></div>`))
	assert.ErrorIs(t, err, ErrNoPage)
}

func TestTitleBBox(t *testing.T) {
	box, ok := titleBBox("image \"x.png\"; bbox 1 2 3 4; ppageno 0")
	require.True(t, ok)
	assert.Equal(t, [4]float64{1, 2, 3, 4}, box)

	_, ok = titleBBox("bbox 1 2 three 4")
	assert.False(t, ok)
	_, ok = titleBBox("x_wconf 90")
	assert.False(t, ok)
}

func TestAlignWords(t *testing.T) {
	reference := []model.Word{
		model.NewWord("DOB", 0.10, 0.30, 0.16, 0.33),
		model.NewWord("01/02/1990", 0.18, 0.30, 0.32, 0.33),
		model.NewWord("EXP", 0.10, 0.40, 0.16, 0.43),
	}
	other := []model.Word{
		// slightly shifted boxes, different order, one word missing
		model.NewWord("01/02/1996", 0.185, 0.301, 0.318, 0.329),
		model.NewWord("D0B", 0.102, 0.302, 0.158, 0.331),
		model.NewWord("noise", 0.80, 0.80, 0.90, 0.85),
	}

	assert.Equal(t, []string{"D0B", "01/02/1996", ""}, AlignWords(reference, other))
}

func TestMergeModels(t *testing.T) {
	ref := model.NewDocument([]model.Word{
		model.NewWord("SEX", 0.1, 0.1, 0.2, 0.2),
		model.NewWord("F", 0.3, 0.1, 0.35, 0.2),
	}, nil)

	doc := MergeModels(ref, map[string][]model.Word{
		"a": ref.Words,
		"b": {model.NewWord("E", 0.3, 0.1, 0.35, 0.2)},
	})

	aligned, excluded := doc.AlignedModels()
	assert.Equal(t, []string{"a", "b"}, aligned)
	assert.Empty(t, excluded)
	assert.Equal(t, []string{"", "E"}, doc.Models["b"])
}
