package dom

import "github.com/rileylov/sortable/geom"

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// QueryAll returns the descendants of n, excluding n, that match pred, in
// document order.
func (n *Node) QueryAll(pred func(*Node) bool) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.Walk(func(m *Node) bool {
			if pred(m) {
				out = append(out, m)
			}
			return true
		})
	}
	return out
}

// Query returns the first descendant matching pred, or nil.
func (n *Node) Query(pred func(*Node) bool) *Node {
	var found *Node
	for _, c := range n.children {
		c.Walk(func(m *Node) bool {
			if found != nil {
				return false
			}
			if pred(m) {
				found = m
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// Closest returns n or its nearest ancestor matching pred.
func (n *Node) Closest(pred func(*Node) bool) *Node {
	for p := n; p != nil; p = p.parent {
		if pred(p) {
			return p
		}
	}
	return nil
}

// HitTest returns the deepest node under p. Later siblings are painted on
// top of earlier ones and win ties.
func (n *Node) HitTest(p geom.Point) *Node {
	r, err := n.BoundingRect()
	if err != nil {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	if n.document || r.Contains(p) {
		return n
	}
	return nil
}

// ByClass matches nodes carrying class c.
func ByClass(c string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(c) }
}

// ByData matches nodes whose data-key attribute equals value.
func ByData(key, value string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.Data(key)
		return ok && v == value
	}
}
