// Package dom is a small retained layout tree. Hosts mirror what they render
// into Nodes (boxes, attributes, transforms, scroll state) and the sortable
// engine reads geometry from it the way a browser engine reads the DOM.
package dom

import (
	"errors"
	"strings"

	"github.com/rileylov/sortable/geom"
)

// ErrDetached is returned when geometry is requested from a node that is
// not connected to a document.
var ErrDetached = errors.New("dom: node is not attached to a document")

// Overflow mirrors the CSS overflow property.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

func (o Overflow) String() string {
	switch o {
	case OverflowHidden:
		return "hidden"
	case OverflowAuto:
		return "auto"
	case OverflowScroll:
		return "scroll"
	}
	return "visible"
}

// Style is the subset of computed style the engine needs.
type Style struct {
	Overflow Overflow
	Margin   geom.Insets
	Border   geom.Insets
}

// Node is one element of the layout tree.
type Node struct {
	tag       string
	attrs     map[string]string
	layout    geom.Rect
	transform geom.Matrix
	style     Style

	scrollLeft, scrollTop     float64
	scrollWidth, scrollHeight float64
	clientWidth, clientHeight float64

	parent   *Node
	children []*Node
	document bool
}

// Option configures a node at construction.
type Option func(*Node)

// WithAttr sets an attribute.
func WithAttr(name, value string) Option {
	return func(n *Node) { n.attrs[name] = value }
}

// WithClass adds classes to the class attribute.
func WithClass(classes ...string) Option {
	return func(n *Node) {
		for _, c := range classes {
			n.AddClass(c)
		}
	}
}

// WithLayout sets the node's layout box.
func WithLayout(r geom.Rect) Option {
	return func(n *Node) { n.layout = r }
}

// WithStyle sets the computed style.
func WithStyle(s Style) Option {
	return func(n *Node) { n.style = s }
}

// WithTransform sets the node's transform.
func WithTransform(m geom.Matrix) Option {
	return func(n *Node) { n.transform = m }
}

// NewNode creates a detached node.
func NewNode(tag string, opts ...Option) *Node {
	n := &Node{
		tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewDocument creates a document root whose client area is the viewport.
func NewDocument(width, height float64) *Node {
	n := NewNode("html", WithLayout(geom.Rect{Width: width, Height: height}))
	n.document = true
	n.clientWidth, n.clientHeight = width, height
	return n
}

// Tag returns the lower case tag name.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.tag
}

// IsDocument reports whether n is a document root.
func (n *Node) IsDocument() bool { return n != nil && n.document }

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.attrs[name]
	return v, ok
}

// AttrOr returns an attribute value or def when unset.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// HasAttr reports whether name is set.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) { n.attrs[name] = value }

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) { delete(n.attrs, name) }

// Data reads a data-* attribute.
func (n *Node) Data(key string) (string, bool) { return n.Attr("data-" + key) }

// DataBool reads a data-* attribute as a flag. Present with no value or
// "true" is true.
func (n *Node) DataBool(key string) bool {
	v, ok := n.Data(key)
	return ok && (v == "" || v == "true")
}

// HasClass reports whether the class attribute lists c.
func (n *Node) HasClass(c string) bool {
	for _, have := range strings.Fields(n.AttrOr("class", "")) {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass appends c to the class attribute when missing.
func (n *Node) AddClass(c string) {
	if n.HasClass(c) {
		return
	}
	classes := strings.Fields(n.AttrOr("class", ""))
	n.attrs["class"] = strings.Join(append(classes, c), " ")
}

// Style returns the computed style.
func (n *Node) Style() Style { return n.style }

// SetStyle replaces the computed style.
func (n *Node) SetStyle(s Style) { n.style = s }

// Layout returns the untransformed, unscrolled box in document coordinates.
func (n *Node) Layout() geom.Rect { return n.layout }

// SetLayout updates the node's box.
func (n *Node) SetLayout(r geom.Rect) { n.layout = r }

// Transform returns the node's transform, identity when none is set.
func (n *Node) Transform() geom.Matrix {
	if n.transform.IsZero() {
		return geom.Identity()
	}
	return n.transform
}

// HasTransform reports whether a non identity transform is applied.
func (n *Node) HasTransform() bool {
	return !n.transform.IsZero() && !n.transform.IsIdentity()
}

// SetTransform replaces the node's transform.
func (n *Node) SetTransform(m geom.Matrix) { n.transform = m }

// ClearTransform removes the node's transform.
func (n *Node) ClearTransform() { n.transform = geom.Matrix{} }

// BoundingRect returns the box as currently painted in viewport
// coordinates: layout box, moved by the scroll offsets of every scrolling
// ancestor and by the translation of the node and its ancestors.
func (n *Node) BoundingRect() (geom.Rect, error) {
	if n == nil || !n.IsConnected() {
		return geom.Rect{}, ErrDetached
	}
	r := n.layout.Translate(n.Transform().Offset())
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.Transform().Offset())
		r = r.Translate(geom.Point{X: -p.scrollLeft, Y: -p.scrollTop})
	}
	return r, nil
}

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AppendChild attaches c as the last child, detaching it from any previous
// parent first.
func (n *Node) AppendChild(c *Node) {
	c.Detach()
	c.parent = n
	n.children = append(n.children, c)
}

// SetChildren replaces the child list, keeping order.
func (n *Node) SetChildren(children []*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	for _, c := range children {
		n.AppendChild(c)
	}
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	for n != nil && n.parent != nil {
		n = n.parent
	}
	return n
}

// IsConnected reports whether n belongs to a document.
func (n *Node) IsConnected() bool {
	return n.Root().IsDocument()
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
