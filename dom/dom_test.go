package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/sortable/geom"
)

func tree() (doc, scroller, item *Node) {
	doc = NewDocument(800, 600)
	scroller = NewNode("DIV",
		WithStyle(Style{Overflow: OverflowAuto}),
		WithLayout(geom.Rect{X: 10, Y: 10, Width: 200, Height: 100}))
	item = NewNode("li", WithClass("ssl-item"), WithAttr("data-item-id", "a"),
		WithLayout(geom.Rect{X: 10, Y: 50, Width: 200, Height: 20}))
	doc.AppendChild(scroller)
	scroller.AppendChild(item)
	scroller.SetScrollSize(200, 400)
	return doc, scroller, item
}

func TestBoundingRectAppliesScrollAndTransforms(t *testing.T) {
	_, scroller, item := tree()

	r, err := item.BoundingRect()
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 10, Y: 50, Width: 200, Height: 20}, r)

	scroller.ScrollTo(0, 30)
	item.SetTransform(geom.Translate(5, 0))
	r, err = item.BoundingRect()
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 15, Y: 20, Width: 200, Height: 20}, r)

	// The container's own scroll does not move the container.
	r, err = scroller.BoundingRect()
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 10, Y: 10, Width: 200, Height: 100}, r)
}

func TestDetachedNode(t *testing.T) {
	_, _, item := tree()
	item.Detach()
	_, err := item.BoundingRect()
	assert.True(t, errors.Is(err, ErrDetached))
	assert.False(t, item.IsConnected())
}

func TestScrollClamps(t *testing.T) {
	_, scroller, _ := tree()
	assert.Equal(t, 300.0, scroller.MaxScrollTop())
	scroller.ScrollBy(0, 1000)
	assert.Equal(t, 300.0, scroller.ScrollTop())
	scroller.ScrollBy(0, -5000)
	assert.Zero(t, scroller.ScrollTop())
	assert.Zero(t, scroller.MaxScrollLeft())
}

func TestClientSizeSubtractsBorders(t *testing.T) {
	n := NewNode("div",
		WithLayout(geom.Rect{Width: 100, Height: 50}),
		WithStyle(Style{Border: geom.Uniform(2)}))
	assert.Equal(t, 96.0, n.ClientWidth())
	assert.Equal(t, 46.0, n.ClientHeight())
	n.SetClientSize(80, 40)
	assert.Equal(t, 80.0, n.ClientWidth())
}

func TestAttributes(t *testing.T) {
	n := NewNode("LI", WithClass("a", "b"), WithAttr("data-is-locked", ""))
	assert.Equal(t, "li", n.Tag())
	assert.True(t, n.HasClass("b"))
	assert.False(t, n.HasClass("c"))
	assert.True(t, n.DataBool("is-locked"))
	n.SetAttr("data-is-locked", "false")
	assert.False(t, n.DataBool("is-locked"))
	assert.Equal(t, "x", n.AttrOr("missing", "x"))
	n.RemoveAttr("data-is-locked")
	assert.False(t, n.HasAttr("data-is-locked"))
}

func TestQueries(t *testing.T) {
	doc, scroller, item := tree()
	second := NewNode("li", WithClass("ssl-item"), WithAttr("data-item-id", "b"))
	scroller.AppendChild(second)

	assert.Equal(t, []*Node{item, second}, doc.QueryAll(ByClass("ssl-item")))
	assert.Equal(t, second, doc.Query(ByData("item-id", "b")))
	assert.Nil(t, item.Query(ByClass("ssl-item")))
	assert.Equal(t, scroller, item.Closest(func(n *Node) bool { return n.Style().Overflow == OverflowAuto }))
	assert.Equal(t, item, item.Closest(ByClass("ssl-item")))
	assert.True(t, scroller.Contains(item))
	assert.False(t, item.Contains(scroller))
}

func TestHitTest(t *testing.T) {
	doc, scroller, item := tree()
	assert.Equal(t, item, doc.HitTest(geom.Point{X: 20, Y: 55}))
	assert.Equal(t, scroller, doc.HitTest(geom.Point{X: 20, Y: 15}))
	assert.Equal(t, doc, doc.HitTest(geom.Point{X: 500, Y: 500}))
}

func TestSetChildrenReorders(t *testing.T) {
	parent := NewNode("ul")
	a, b := NewNode("li"), NewNode("li")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.SetChildren([]*Node{b, a})
	assert.Equal(t, []*Node{b, a}, parent.Children())
	assert.Equal(t, parent, a.Parent())
}
