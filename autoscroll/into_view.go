package autoscroll

import (
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

// IntoView describes a discrete scroll that brings Target fully into view,
// used after keyboard moves.
type IntoView struct {
	Container *dom.Node
	// Target is the rest box the moved item will occupy.
	Target geom.Rect
	// Margin is the item's outer margin.
	Margin geom.Insets
	Axis   geom.Axis
	// Step is +1 when moving toward the end of the list, -1 toward the start.
	Step     int
	Document bool
	// ScrollMargin is the room left past the item; 0 uses DefaultScrollMargin.
	ScrollMargin float64
}

// IsFullyVisible reports whether target, with its margins, lies strictly
// inside the visible part of container.
func IsFullyVisible(container *dom.Node, target geom.Rect, margin geom.Insets) bool {
	if container == nil {
		return true
	}
	doc := container.Root()
	limit := geom.Rect{Width: doc.ClientWidth(), Height: doc.ClientHeight()}
	if r, err := container.BoundingRect(); err == nil && !container.IsDocument() {
		if r.Height < limit.Height {
			limit.Y, limit.Height = r.Y, r.Height
		}
		if r.Width < limit.Width {
			limit.X, limit.Width = r.X, r.Width
		}
	}
	return target.Top()+margin.Top > limit.Top() &&
		target.Bottom()+margin.Bottom < limit.Bottom() &&
		target.Left()+margin.Left > limit.Left() &&
		target.Right()+margin.Right < limit.Right()
}

// ScrollIntoView scrolls the container just enough to show the target with
// ScrollMargin to spare. It reports whether the scroll position changed.
func ScrollIntoView(req IntoView) bool {
	c := req.Container
	if c == nil || req.Step == 0 {
		return false
	}
	if IsFullyVisible(c, req.Target, req.Margin) {
		return false
	}
	margin := req.ScrollMargin
	if margin == 0 {
		margin = DefaultScrollMargin
	}
	var origin geom.Rect
	if !req.Document && !c.IsDocument() {
		r, err := c.BoundingRect()
		if err != nil {
			return false
		}
		origin = r
	}
	border := c.Style().Border
	axis := req.Axis

	client, offset := c.ClientHeight(), c.ScrollTop()
	if axis == geom.Horizontal {
		client, offset = c.ClientWidth(), c.ScrollLeft()
	}

	var dest float64
	if req.Step > 0 {
		dest = req.Target.End(axis) - origin.Start(axis) - client + offset -
			border.End(axis) + req.Margin.End(axis)*2 + margin
	} else {
		dest = req.Target.Start(axis) - origin.Start(axis) + offset -
			border.Start(axis) - req.Margin.Start(axis)*2 - margin
	}

	left, top := c.ScrollLeft(), c.ScrollTop()
	if axis == geom.Horizontal {
		c.ScrollTo(dest, top)
	} else {
		c.ScrollTo(left, dest)
	}
	return c.ScrollLeft() != left || c.ScrollTop() != top
}
