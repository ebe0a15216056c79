// Package measure captures item geometry from the layout tree: rest
// rectangles with in-flight translations removed, text direction and the
// interactive-control walk used to veto drag starts.
package measure

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

// Attribute and class names of the markup contract.
const (
	ClassItem      = "ssl-item"
	ClassList      = "ssl-list"
	AttrItemID     = "item-id"
	AttrItemIndex  = "item-index"
	AttrGroup      = "group"
	AttrIsLocked   = "is-locked"
	AttrIsDisabled = "is-disabled"
	AttrRole       = "role"
	AttrLabel      = "label"
)

// ErrUnmeasurable is returned when an item cannot be measured.
var ErrUnmeasurable = errors.New("measure: item cannot be measured")

// ItemRect is one item's geometry at rest, captured at a point in time.
type ItemRect struct {
	ID    string
	Index int

	X, Y          float64
	Width, Height float64
	Top, Right    float64
	Bottom, Left  float64
}

// Rect converts to the canonical rectangle.
func (r ItemRect) Rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// NewItemRect builds an ItemRect from a rectangle.
func NewItemRect(id string, index int, r geom.Rect) ItemRect {
	return ItemRect{
		ID:     id,
		Index:  index,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Top:    r.Top(),
		Right:  r.Right(),
		Bottom: r.Bottom(),
		Left:   r.Left(),
	}
}

// ItemID returns the item's stable key.
func ItemID(n *dom.Node) string {
	id, _ := n.Data(AttrItemID)
	return id
}

// ItemIndex returns the item's ordinal position, -1 when missing or invalid.
func ItemIndex(n *dom.Node) int {
	v, ok := n.Data(AttrItemIndex)
	if !ok {
		return -1
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return i
}

// Translation returns the translate part of the node's transform, or false
// when the node carries no transform.
func Translation(n *dom.Node) (geom.Point, bool) {
	if n == nil || !n.HasTransform() {
		return geom.Point{}, false
	}
	return n.Transform().Offset(), true
}

// MeasureItem returns the item's bounding box with its own translation
// subtracted, so a sibling mid-slide reports where it rests.
func MeasureItem(item *dom.Node) (ItemRect, error) {
	r, err := item.BoundingRect()
	if err != nil {
		return ItemRect{}, fmt.Errorf("%w: %w", ErrUnmeasurable, err)
	}
	if t, ok := Translation(item); ok {
		r = r.Translate(geom.Point{X: -t.X, Y: -t.Y})
	}
	return NewItemRect(ItemID(item), ItemIndex(item), r), nil
}

// Items returns the item nodes of list that belong to group, in document
// order. The empty group matches items without a data-group attribute.
func Items(list *dom.Node, group string) []*dom.Node {
	if list == nil {
		return nil
	}
	return list.QueryAll(func(n *dom.Node) bool {
		if !n.HasClass(ClassItem) {
			return false
		}
		g, ok := n.Data(AttrGroup)
		if group == "" {
			return !ok
		}
		return ok && g == group
	})
}

// MeasureAll measures every item of the group.
func MeasureAll(list *dom.Node, group string) ([]ItemRect, error) {
	items := Items(list, group)
	rects := make([]ItemRect, 0, len(items))
	for _, item := range items {
		r, err := MeasureItem(item)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// IsLocked reports whether the item refuses to be dragged or focused.
func IsLocked(item *dom.Node) bool { return item != nil && item.DataBool(AttrIsLocked) }

// IsDisabled reports whether the item refuses to be dragged.
func IsDisabled(item *dom.Node) bool { return item != nil && item.DataBool(AttrIsDisabled) }
