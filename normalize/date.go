package normalize

import (
	"strings"

	"github.com/tsawler/ocrfields/model"
)

var dateConfusions = strings.NewReplacer("O", "0", "l", "1", "I", "1")

// Date rewrites a date into layout. Common OCR letter/digit confusions are
// repaired first, then exactly eight digits must remain. The digits keep
// their order: the layout's leading token only decides whether they are read
// as two 2-digit parts and a year or as a year and two 2-digit parts.
func Date(raw string, layout model.DateLayout) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	cleaned := dateConfusions.Replace(raw)
	digits := strings.Join(patterns().digit.FindAllString(cleaned, -1), "")
	if len(digits) != 8 {
		return "", false
	}

	sep := layout.Separator()
	switch layout.Order() {
	case "DD", "MM":
		return digits[0:2] + sep + digits[2:4] + sep + digits[4:8], true
	case "YYYY":
		return digits[0:4] + sep + digits[4:6] + sep + digits[6:8], true
	}
	return "", false
}
