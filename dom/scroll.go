package dom

import "math"

// SetScrollSize records the scrollable content size.
func (n *Node) SetScrollSize(width, height float64) {
	n.scrollWidth, n.scrollHeight = width, height
	n.clampScroll()
}

// SetClientSize records the inner viewport size of a scroll container.
func (n *Node) SetClientSize(width, height float64) {
	n.clientWidth, n.clientHeight = width, height
	n.clampScroll()
}

// ClientWidth is the visible content width. Without an explicit client size
// it is the layout width minus borders.
func (n *Node) ClientWidth() float64 {
	if n.clientWidth > 0 {
		return n.clientWidth
	}
	return math.Max(0, n.layout.Width-n.style.Border.Left-n.style.Border.Right)
}

// ClientHeight is the visible content height.
func (n *Node) ClientHeight() float64 {
	if n.clientHeight > 0 {
		return n.clientHeight
	}
	return math.Max(0, n.layout.Height-n.style.Border.Top-n.style.Border.Bottom)
}

// ScrollWidth is the full content width, never less than the client width.
func (n *Node) ScrollWidth() float64 { return math.Max(n.scrollWidth, n.ClientWidth()) }

// ScrollHeight is the full content height, never less than the client height.
func (n *Node) ScrollHeight() float64 { return math.Max(n.scrollHeight, n.ClientHeight()) }

func (n *Node) ScrollLeft() float64 { return n.scrollLeft }
func (n *Node) ScrollTop() float64  { return n.scrollTop }

// MaxScrollLeft is the largest valid horizontal offset.
func (n *Node) MaxScrollLeft() float64 { return math.Max(0, n.ScrollWidth()-n.ClientWidth()) }

// MaxScrollTop is the largest valid vertical offset.
func (n *Node) MaxScrollTop() float64 { return math.Max(0, n.ScrollHeight()-n.ClientHeight()) }

// ScrollTo moves the scroll position, clamped to the scrollable range.
func (n *Node) ScrollTo(left, top float64) {
	n.scrollLeft, n.scrollTop = left, top
	n.clampScroll()
}

// ScrollBy moves the scroll position by a delta.
func (n *Node) ScrollBy(dx, dy float64) {
	n.ScrollTo(n.scrollLeft+dx, n.scrollTop+dy)
}

func (n *Node) clampScroll() {
	n.scrollLeft = clamp(n.scrollLeft, 0, n.MaxScrollLeft())
	n.scrollTop = clamp(n.scrollTop, 0, n.MaxScrollTop())
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
