package measure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

func newList(ids ...string) (*dom.Node, []*dom.Node) {
	doc := dom.NewDocument(400, 400)
	list := dom.NewNode("ul", dom.WithClass(ClassList))
	doc.AppendChild(list)
	var items []*dom.Node
	for i, id := range ids {
		n := dom.NewNode("li",
			dom.WithClass(ClassItem),
			dom.WithAttr("data-item-id", id),
			dom.WithAttr("data-item-index", string(rune('0'+i))),
			dom.WithLayout(geom.Rect{Y: float64(i) * 30, Width: 100, Height: 20}))
		list.AppendChild(n)
		items = append(items, n)
	}
	return list, items
}

func TestMeasureItemSubtractsTranslation(t *testing.T) {
	_, items := newList("a", "b")
	items[1].SetTransform(geom.Translate(0, -30))

	r, err := MeasureItem(items[1])
	require.NoError(t, err)
	assert.Equal(t, NewItemRect("b", 1, geom.Rect{Y: 30, Width: 100, Height: 20}), r)
	assert.Equal(t, 50.0, r.Bottom)

	items[1].SetTransform(geom.Translate(4, 5))
	r, err = MeasureItem(items[1])
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{Y: 30, Width: 100, Height: 20}, r.Rect())
}

func TestMeasureItemDetached(t *testing.T) {
	_, items := newList("a")
	items[0].Detach()
	_, err := MeasureItem(items[0])
	assert.True(t, errors.Is(err, ErrUnmeasurable))
	assert.True(t, errors.Is(err, dom.ErrDetached))

	_, err = MeasureItem(nil)
	assert.True(t, errors.Is(err, ErrUnmeasurable))
}

func TestMeasureAllFiltersGroup(t *testing.T) {
	list, items := newList("a", "b", "c")
	items[1].SetAttr("data-group", "done")

	rects, err := MeasureAll(list, "")
	require.NoError(t, err)
	require.Len(t, rects, 2)
	assert.Equal(t, "a", rects[0].ID)
	assert.Equal(t, "c", rects[1].ID)

	rects, err = MeasureAll(list, "done")
	require.NoError(t, err)
	require.Len(t, rects, 1)
	assert.Equal(t, "b", rects[0].ID)
}

func TestItemIndex(t *testing.T) {
	n := dom.NewNode("li", dom.WithAttr("data-item-index", "x"))
	assert.Equal(t, -1, ItemIndex(n))
	n.SetAttr("data-item-index", "12")
	assert.Equal(t, 12, ItemIndex(n))
	assert.Equal(t, -1, ItemIndex(dom.NewNode("li")))
}

func TestFlags(t *testing.T) {
	_, items := newList("a")
	assert.False(t, IsLocked(items[0]))
	items[0].SetAttr("data-is-locked", "true")
	items[0].SetAttr("data-is-disabled", "")
	assert.True(t, IsLocked(items[0]))
	assert.True(t, IsDisabled(items[0]))
	assert.False(t, IsLocked(nil))
}

func TestTextDirection(t *testing.T) {
	list, items := newList("a")
	assert.Equal(t, Auto, ResolveTextDirection(items[0]))
	list.SetAttr("dir", "rtl")
	assert.Equal(t, RTL, ResolveTextDirection(items[0]))
	items[0].SetAttr("dir", "ltr")
	assert.Equal(t, LTR, ResolveTextDirection(items[0]))
	assert.Equal(t, Auto, ResolveTextDirection(nil))

	assert.Equal(t, LTR, DetectDirection("123 hello"))
	assert.Equal(t, RTL, DetectDirection("  שלום"))
	assert.Equal(t, RTL, DetectDirection("مرحبا"))
	assert.Equal(t, LTR, DetectDirection("42"))
}

func TestDirectionFromLabels(t *testing.T) {
	list, items := newList("a", "b")
	items[0].SetAttr("data-label", "12")
	items[1].SetAttr("data-label", "שלום")

	// No dir at all: the item's own label decides.
	assert.Equal(t, LTR, Direction(items[0]))
	assert.Equal(t, RTL, Direction(items[1]))

	// dir="auto" on the list: the first strong character in the list decides.
	list.SetAttr("dir", "auto")
	assert.Equal(t, RTL, Direction(items[0]))
	assert.Equal(t, RTL, Direction(list))

	items[0].SetAttr("data-label", "hello")
	assert.Equal(t, LTR, Direction(items[1]))

	list.SetAttr("dir", "rtl")
	assert.Equal(t, RTL, Direction(items[0]))
	assert.Equal(t, LTR, Direction(nil))
}

func TestIsInteractive(t *testing.T) {
	list, items := newList("a")
	item := items[0]

	button := dom.NewNode("button")
	item.AppendChild(button)
	icon := dom.NewNode("svg")
	button.AppendChild(icon)
	check := dom.NewNode("span", dom.WithAttr("role", "Checkbox"))
	item.AppendChild(check)
	label := dom.NewNode("label", dom.WithAttr("for", "x"))
	item.AppendChild(label)
	handle := dom.NewNode("span", dom.WithAttr("data-role", "handle"))
	button.AppendChild(handle)
	text := dom.NewNode("span")
	item.AppendChild(text)

	assert.True(t, IsInteractive(button, list))
	assert.True(t, IsInteractive(icon, list))
	assert.True(t, IsInteractive(check, list))
	assert.True(t, IsInteractive(label, list))
	assert.False(t, IsInteractive(handle, list))
	assert.False(t, IsInteractive(text, list))
	assert.False(t, IsInteractive(nil, list))

	assert.Equal(t, handle, Handle(item))
	assert.Nil(t, Handle(nil))
}
