package autoscroll

import (
	"math"

	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

const (
	// EdgeZoneRatio is the share of the container's extent, at each end,
	// in which auto-scroll engages.
	EdgeZoneRatio = 0.2
	// DefaultSpeedRatio divides the depth into the edge zone to get the
	// per tick scroll delta.
	DefaultSpeedRatio = 32.0
	// DefaultScrollMargin is the extra room left past an item scrolled into
	// view.
	DefaultScrollMargin = 40.0
)

// Velocity returns the signed scroll delta per tick for a pointer at p,
// using DefaultSpeedRatio.
func Velocity(container *dom.Node, p geom.Point, axis geom.Axis, isDocument bool) int {
	return VelocityWithRatio(container, p, axis, isDocument, DefaultSpeedRatio)
}

// VelocityWithRatio returns the signed scroll delta per tick. It is zero
// outside both edge zones, grows linearly toward the edge and is negative
// toward the start of the axis.
func VelocityWithRatio(container *dom.Node, p geom.Point, axis geom.Axis, isDocument bool, ratio float64) int {
	if container == nil {
		return 0
	}
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = DefaultSpeedRatio
	}
	bounds, ok := viewportOf(container, isDocument)
	if !ok {
		return 0
	}
	extent := container.ClientHeight()
	if axis == geom.Horizontal {
		extent = container.ClientWidth()
	}
	zone := extent * EdgeZoneRatio
	if zone <= 0 {
		return 0
	}
	pos := axis.Along(p)
	fromStart := pos - bounds.Start(axis)
	fromEnd := bounds.End(axis) - pos
	switch {
	case fromStart < zone:
		return int(math.Round(depth(zone, fromStart) / -ratio))
	case fromEnd < zone:
		return int(math.Round(depth(zone, fromEnd) / ratio))
	}
	return 0
}

// depth is how far into the zone the pointer is, capped at the zone size so
// the speed peaks at the edge.
func depth(zone, dist float64) float64 {
	d := zone - dist
	if d > zone {
		d = zone
	}
	return d
}

// viewportOf returns the box against which the pointer is compared.
func viewportOf(container *dom.Node, isDocument bool) (geom.Rect, bool) {
	if isDocument {
		doc := container.Root()
		return geom.Rect{Width: doc.ClientWidth(), Height: doc.ClientHeight()}, true
	}
	r, err := container.BoundingRect()
	if err != nil {
		return geom.Rect{}, false
	}
	return r, true
}
