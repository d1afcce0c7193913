package model

import "math"

// BBox represents a bounding box in the upstream coordinate shape:
// absolute min/max corners with the origin at the top-left of the page.
type BBox struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// NewBBox creates a bounding box from corner coordinates.
func NewBBox(xmin, ymin, xmax, ymax float64) BBox {
	return BBox{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.YMax - b.YMin
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero or negative extent.
// Synthesized boxes carry an empty bounding box.
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains checks if a point is inside the bounding box.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Intersects checks if two bounding boxes intersect.
func (b BBox) Intersects(other BBox) bool {
	return !(b.XMax < other.XMin ||
		b.XMin > other.XMax ||
		b.YMax < other.YMin ||
		b.YMin > other.YMax)
}

// Intersection returns the intersection of two bounding boxes.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	return BBox{
		XMin: math.Max(b.XMin, other.XMin),
		YMin: math.Max(b.YMin, other.YMin),
		XMax: math.Min(b.XMax, other.XMax),
		YMax: math.Min(b.YMax, other.YMax),
	}
}

// Union returns the union of two bounding boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		XMin: math.Min(b.XMin, other.XMin),
		YMin: math.Min(b.YMin, other.YMin),
		XMax: math.Max(b.XMax, other.XMax),
		YMax: math.Max(b.YMax, other.YMax),
	}
}

// OverlapRatio calculates the overlap ratio with another box.
// Returns value between 0 and 1.
func (b BBox) OverlapRatio(other BBox) float64 {
	if !b.Intersects(other) {
		return 0
	}

	intersection := b.Intersection(other)
	minArea := math.Min(b.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}
