// Package autoscroll finds the container that scrolls a list and drives it
// while a drag hovers near its edges.
package autoscroll

import (
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

// FindScrollAncestor returns the nearest ancestor of n that scrolls its
// content or is a dialog, falling back to the document root.
func FindScrollAncestor(n *dom.Node) *dom.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.IsDocument() {
			return p
		}
		switch p.Style().Overflow {
		case dom.OverflowAuto, dom.OverflowScroll:
			return p
		}
		if p.Tag() == "dialog" || p.AttrOr("role", "") == "dialog" || p.AttrOr("aria-modal", "") == "true" {
			return p
		}
	}
	return n.Root()
}

// IsDocumentScroll reports whether scrolling container should be measured
// against the document viewport: it is the document itself, or it is larger
// than the viewport along axis.
func IsDocumentScroll(container *dom.Node, axis geom.Axis) bool {
	if container == nil {
		return false
	}
	if container.IsDocument() {
		return true
	}
	doc := container.Root()
	if axis == geom.Horizontal {
		return container.ClientWidth() > doc.ClientWidth()
	}
	return container.ClientHeight() > doc.ClientHeight()
}

// IsScrollable reports whether the content of container overflows along axis.
func IsScrollable(container *dom.Node, axis geom.Axis) bool {
	if container == nil {
		return false
	}
	if axis == geom.Horizontal {
		return container.ScrollWidth() > container.ClientWidth()
	}
	return container.ScrollHeight() > container.ClientHeight()
}

// CanScroll reports whether container has room left to scroll in the
// direction of velocity.
func CanScroll(container *dom.Node, axis geom.Axis, velocity int) bool {
	if container == nil || velocity == 0 {
		return false
	}
	pos, limit := container.ScrollTop(), container.MaxScrollTop()
	if axis == geom.Horizontal {
		pos, limit = container.ScrollLeft(), container.MaxScrollLeft()
	}
	if velocity < 0 {
		return pos > 0
	}
	return pos < limit
}
