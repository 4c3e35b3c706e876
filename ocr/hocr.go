package ocr

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/ocrfields/model"
)

// ErrNoPage is returned when an hOCR document has no ocr_page element with
// a usable bounding box.
var ErrNoPage = errors.New("ocr: no hOCR page")

// ReadHOCR parses an hOCR document. Word boxes of the first ocr_page are
// divided by the page size to give [0, 1] coordinates. The returned
// document carries no per-model readings.
func ReadHOCR(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	page := findClass(root, "ocr_page")
	if page == nil {
		return nil, ErrNoPage
	}
	box, ok := titleBBox(attr(page, "title"))
	if !ok || box[2] <= box[0] || box[3] <= box[1] {
		return nil, fmt.Errorf("%w: page bbox %q", ErrNoPage, attr(page, "title"))
	}
	width, height := box[2]-box[0], box[3]-box[1]

	var words []model.Word
	walk(page, func(n *html.Node) bool {
		if !hasClass(n, "ocrx_word") {
			return true
		}
		text := strings.TrimSpace(textContent(n))
		wb, ok := titleBBox(attr(n, "title"))
		if ok && text != "" {
			words = append(words, model.NewWord(text,
				(wb[0]-box[0])/width, (wb[1]-box[1])/height,
				(wb[2]-box[0])/width, (wb[3]-box[1])/height,
			))
		}
		return false
	})

	return model.NewDocument(words, nil), nil
}

// titleBBox extracts the "bbox x1 y1 x2 y2" property from an hOCR title
// attribute such as "bbox 10 20 110 40; x_wconf 93".
func titleBBox(title string) ([4]float64, bool) {
	var box [4]float64
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(prop)
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return box, false
			}
			box[i] = v
		}
		return box, true
	}
	return box, false
}

// walk visits n and its descendants depth first. Children are skipped when
// visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findClass(n *html.Node, class string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if hasClass(c, class) {
			found = c
			return false
		}
		return true
	})
	return found
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
