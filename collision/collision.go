// Package collision decides which item a dragged ghost is over.
package collision

import (
	"math"

	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/measure"
)

// Threshold bounds and default. The default is a plain AABB test.
const (
	DefaultThreshold = 1.0
	MinThreshold     = 0.5
	MaxThreshold     = 2.0
)

// Collides reports whether a and b overlap on both axes. Touching edges do
// not collide.
func Collides(a, b geom.Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// CollidesScaled runs the overlap test after scaling both rectangles around
// their own origin by threshold.
func CollidesScaled(a, b geom.Rect, threshold float64) bool {
	t := NormalizeThreshold(threshold)
	if t == DefaultThreshold {
		return Collides(a, b)
	}
	return Collides(a.Scale(t), b.Scale(t))
}

// IntersectionArea is the area of the overlap of a and b, zero when they do
// not overlap.
func IntersectionArea(a, b geom.Rect) float64 {
	return geom.Intersect(a, b).Area()
}

// NormalizeThreshold maps unset to the default and clamps to the valid range.
func NormalizeThreshold(t float64) float64 {
	switch {
	case t == 0 || math.IsNaN(t):
		return DefaultThreshold
	case t < MinThreshold:
		return MinThreshold
	case t > MaxThreshold:
		return MaxThreshold
	}
	return t
}

// Options tune FindTarget.
type Options struct {
	// ExcludeID is never reported, normally the dragged item.
	ExcludeID string
	// Threshold scales the collision boxes; 0 means DefaultThreshold.
	Threshold float64
	// Skip drops candidates such as locked or disabled items.
	Skip func(measure.ItemRect) bool
}

// FindTarget returns the item under ghost. When several collide, the one
// with the largest intersection area wins and equal areas go to the lower
// index, so the result does not depend on the order of items.
func FindTarget(ghost geom.Rect, items []measure.ItemRect, opts Options) (measure.ItemRect, bool) {
	var (
		best     measure.ItemRect
		bestArea float64
		found    bool
	)
	for _, item := range items {
		if item.ID == opts.ExcludeID {
			continue
		}
		if opts.Skip != nil && opts.Skip(item) {
			continue
		}
		r := item.Rect()
		if !CollidesScaled(ghost, r, opts.Threshold) {
			continue
		}
		area := IntersectionArea(ghost, r)
		if !found || area > bestArea || (area == bestArea && item.Index < best.Index) {
			best, bestArea, found = item, area, true
		}
	}
	return best, found
}
