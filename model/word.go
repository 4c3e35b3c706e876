package model

import (
	"math"
	"sort"
)

// Word is a single recognized word with its box in normalized [0, 1] image
// coordinates. Words are produced once per document and never modified by
// this module; operations that rewrite text work on copies.
type Word struct {
	Text string

	X1, Y1 float64 // top-left corner
	X2, Y2 float64 // bottom-right corner

	CenterX float64
	CenterY float64
}

// NewWord creates a word and computes its center point.
func NewWord(text string, x1, y1, x2, y2 float64) Word {
	return Word{
		Text:    text,
		X1:      x1,
		Y1:      y1,
		X2:      x2,
		Y2:      y2,
		CenterX: (x1 + x2) / 2,
		CenterY: (y1 + y2) / 2,
	}
}

// Center returns the center point of the word.
func (w Word) Center() Point {
	return Point{X: w.CenterX, Y: w.CenterY}
}

// Width returns the horizontal extent of the word.
func (w Word) Width() float64 {
	return w.X2 - w.X1
}

// Height returns the vertical extent of the word.
func (w Word) Height() float64 {
	return w.Y2 - w.Y1
}

// BBox returns the word's bounding box.
func (w Word) BBox() BBox {
	return NewBBoxFromCorners(w.X1, w.Y1, w.X2, w.Y2)
}

// WithText returns a copy of the word carrying different text.
func (w Word) WithText(text string) Word {
	w.Text = text
	return w
}

// SortReadingOrder sorts words the way a reader scans a zone: by center Y
// rounded to one decimal (coarse line grouping), then by center X.
func SortReadingOrder(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		yi, yj := round1(words[i].CenterY), round1(words[j].CenterY)
		if yi != yj {
			return yi < yj
		}
		return words[i].CenterX < words[j].CenterX
	})
}

// SortLeftToRight sorts words by center X.
func SortLeftToRight(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].CenterX < words[j].CenterX
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
