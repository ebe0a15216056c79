// Package constraint clamps ghost movement to an axis and to the list box.
package constraint

import (
	"math"

	"github.com/rileylov/sortable/geom"
)

// ClampToAxis zeroes the cross axis component of delta when locked.
func ClampToAxis(delta geom.Point, axis geom.Axis, locked bool) geom.Point {
	if !locked {
		return delta
	}
	if axis == geom.Horizontal {
		return geom.Point{X: delta.X}
	}
	return geom.Point{Y: delta.Y}
}

// ClampToBounds keeps ghost inside container inset by half of gap on every
// side. Each edge is clamped on its own. When the ghost does not fit the
// region it is pinned to the region's start edge.
func ClampToBounds(ghost, container geom.Rect, gap float64) geom.Rect {
	if math.IsNaN(gap) || gap < 0 {
		gap = 0
	}
	region := container.Inset(geom.Uniform(gap / 2))
	ghost.X = clampStart(ghost.X, ghost.Width, region.Left(), region.Right())
	ghost.Y = clampStart(ghost.Y, ghost.Height, region.Top(), region.Bottom())
	return ghost
}

func clampStart(pos, size, lo, hi float64) float64 {
	if math.IsNaN(pos) {
		return lo
	}
	if pos+size > hi {
		pos = hi - size
	}
	if pos < lo {
		pos = lo
	}
	return pos
}
