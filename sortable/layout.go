package sortable

import (
	"fmt"

	"github.com/rileylov/sortable/collision"
	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/measure"
)

// snapshot captures the rest geometry of every item of the group and
// locates the dragged item and the target in it.
func (e *Engine) snapshot() error {
	nodes := measure.Items(e.list, e.drag.Group)
	rects := make([]measure.ItemRect, 0, len(nodes))
	blocked := make(map[string]bool)
	for i, n := range nodes {
		r, err := measure.MeasureItem(n)
		if err != nil {
			return err
		}
		if r.Index < 0 {
			r.Index = i
		}
		rects = append(rects, r)
		if measure.IsLocked(n) || measure.IsDisabled(n) {
			blocked[r.ID] = true
		}
	}
	slot := -1
	for i, r := range rects {
		if r.ID == e.item.ref.ID {
			slot = i
			break
		}
	}
	if slot < 0 {
		return fmt.Errorf("%w: item %q is not in the list", measure.ErrUnmeasurable, e.item.ref.ID)
	}
	e.rects, e.nodes, e.blocked = rects, nodes, blocked
	e.item.slot = slot
	e.item.node = nodes[slot]
	e.item.ref.Index = rects[slot].Index

	e.forward = 1
	if len(rects) > 1 {
		axis := e.drag.Direction
		if rects[1].Rect().Start(axis) < rects[0].Rect().Start(axis) {
			e.forward = -1
		}
	}

	e.projected = slot
	if e.target != nil {
		if t := e.slotOf(e.target.ID); t >= 0 && !e.blocked[e.target.ID] {
			e.projected = t
			e.target.Index = rects[t].Index
		} else {
			e.target = nil
		}
	}
	return nil
}

func (e *Engine) slotOf(id string) int {
	for i, r := range e.rects {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) refAt(slot int) ItemRef {
	return ItemRef{ID: e.rects[slot].ID, Index: e.rects[slot].Index}
}

// resolveTarget finds the item under the ghost. The dragged item's own slot
// competes too: when it overlaps at least as much as the best candidate the
// item is back home and there is no target.
func (e *Engine) resolveTarget() *ItemRef {
	threshold := e.drag.SwapThreshold
	own := e.rects[e.item.slot].Rect()
	ownArea := 0.0
	if collision.CollidesScaled(e.ghostRect, own, threshold) {
		ownArea = collision.IntersectionArea(e.ghostRect, own)
	}
	best, ok := collision.FindTarget(e.ghostRect, e.rects, collision.Options{
		ExcludeID: e.item.ref.ID,
		Threshold: threshold,
		Skip:      func(r measure.ItemRect) bool { return e.blocked[r.ID] },
	})
	switch {
	case ok && ownArea < collision.IntersectionArea(e.ghostRect, best.Rect()):
		ref := ItemRef{ID: best.ID, Index: best.Index}
		return &ref
	case ok || ownArea > 0:
		return nil
	case !e.betweenBounds && e.drag.CanClearTargetOnDragOut:
		return nil
	}
	return e.target
}

// setTarget moves the projected position and lays the siblings out for it.
func (e *Engine) setTarget(t *ItemRef) {
	e.target = t
	e.projected = e.item.slot
	if t != nil {
		if s := e.slotOf(t.ID); s >= 0 {
			e.projected = s
		}
	}
	e.layoutSiblings()
}

func (e *Engine) layoutSiblings() {
	for k, n := range e.nodes {
		off := e.offsetFor(k)
		if off == (geom.Point{}) {
			n.ClearTransform()
			continue
		}
		n.SetTransform(geom.Translate(off.X, off.Y))
	}
}

func (e *Engine) clearTransforms() {
	for _, n := range e.nodes {
		n.ClearTransform()
	}
}

// offsetFor returns the translation of the item in slot k for the current
// projection. Items between the origin and the projected slot shift by one
// place toward the origin; the dragged item takes the projected slot.
func (e *Engine) offsetFor(k int) geom.Point {
	o, p := e.item.slot, e.projected
	if o == p {
		return geom.Point{}
	}
	r := e.rects
	axis := e.drag.Direction
	switch {
	case k == o:
		if e.drag.HasWrapping {
			return r[p].Rect().Origin().Sub(r[o].Rect().Origin())
		}
		if p > o {
			return axis.Vector(e.trail(p) - e.trail(o))
		}
		return axis.Vector(e.lead(p) - e.lead(o))
	case o < k && k <= p:
		if e.drag.HasWrapping {
			return r[k-1].Rect().Origin().Sub(r[k].Rect().Origin())
		}
		return axis.Vector(e.lead(o) - e.lead(o+1))
	case p <= k && k < o:
		if e.drag.HasWrapping {
			return r[k+1].Rect().Origin().Sub(r[k].Rect().Origin())
		}
		return axis.Vector(e.trail(o) - e.trail(o-1))
	}
	return geom.Point{}
}

// lead is the edge of slot k that faces the start of the list.
func (e *Engine) lead(k int) float64 {
	r := e.rects[k].Rect()
	if e.forward < 0 {
		return r.End(e.drag.Direction)
	}
	return r.Start(e.drag.Direction)
}

// trail is the edge of slot k that faces the end of the list.
func (e *Engine) trail(k int) float64 {
	r := e.rects[k].Rect()
	if e.forward < 0 {
		return r.Start(e.drag.Direction)
	}
	return r.End(e.drag.Direction)
}

// slotRect is where the dragged item comes to rest for the projection.
func (e *Engine) slotRect() geom.Rect {
	o := e.item.slot
	return e.rects[o].Rect().Translate(e.offsetFor(o))
}
