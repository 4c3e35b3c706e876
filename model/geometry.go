package model

import "math"

// Point represents a 2D point in normalized image coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box in normalized image coordinates.
// The origin is the top-left corner of the image and Y grows downward.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (image coordinate system)
	Width  float64
	Height float64
}

// NewBBoxFromCorners creates a bounding box from its top-left and bottom-right corners
func NewBBoxFromCorners(x1, y1, x2, y2 float64) BBox {
	x := math.Min(x1, x2)
	y := math.Min(y1, y2)
	return BBox{X: x, Y: y, Width: math.Abs(x2 - x1), Height: math.Abs(y2 - y1)}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box (edges included)
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Region converts the bounding box to a zone region
func (b BBox) Region() Region {
	return Region{
		X: Range{Min: b.Left(), Max: b.Right()},
		Y: Range{Min: b.Top(), Max: b.Bottom()},
	}
}

// Range is a closed interval [Min, Max] along one axis.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Valid reports whether the range is ordered and lies within [0, 1].
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Max <= 1 && r.Min <= r.Max
}

// Region is the rectangular part of a zone: an X range and a Y range in
// normalized coordinates.
type Region struct {
	X Range
	Y Range
}

// NewRegion creates a region from x and y bounds.
func NewRegion(xMin, xMax, yMin, yMax float64) Region {
	return Region{X: Range{Min: xMin, Max: xMax}, Y: Range{Min: yMin, Max: yMax}}
}

// Contains reports whether a point lies inside the region, edges included.
func (r Region) Contains(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// Center returns the geometric center of the region.
func (r Region) Center() Point {
	return Point{X: r.X.Mid(), Y: r.Y.Mid()}
}

// Expand grows the region by margin on all four sides, clamped to [0, 1].
func (r Region) Expand(margin float64) Region {
	return Region{
		X: Range{Min: clamp01(r.X.Min - margin), Max: clamp01(r.X.Max + margin)},
		Y: Range{Min: clamp01(r.Y.Min - margin), Max: clamp01(r.Y.Max + margin)},
	}
}

// Valid reports whether both ranges are ordered and inside the unit square.
func (r Region) Valid() bool {
	return r.X.Valid() && r.Y.Valid()
}

// InZone reports whether the word's center lies within both ranges, bounds
// included.
func InZone(w Word, xRange, yRange Range) bool {
	return xRange.Contains(w.CenterX) && yRange.Contains(w.CenterY)
}

// AggregateRegion returns the smallest region covering every word's box,
// grown by margin, clamped to [0, 1] and rounded to three decimals.
// The second result is false when words is empty.
func AggregateRegion(words []Word, margin float64) (Region, bool) {
	if len(words) == 0 {
		return Region{}, false
	}

	box := words[0].BBox()
	for _, w := range words[1:] {
		box = box.Union(w.BBox())
	}

	return Region{
		X: Range{Min: round3(clamp01(box.Left() - margin)), Max: round3(clamp01(box.Right() + margin))},
		Y: Range{Min: round3(clamp01(box.Top() - margin)), Max: round3(clamp01(box.Bottom() + margin))},
	}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
