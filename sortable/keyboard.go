package sortable

import (
	"github.com/rileylov/sortable/autoscroll"
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/measure"
)

func (e *Engine) keyPress(k Key) {
	switch {
	case e.phase == PhaseIdle:
		e.idleKey(k)
	case e.phase.IsSettling():
	case e.phase.Device() == DevicePointer:
		if k == KeyEscape {
			e.cancel(PhasePointerCancel)
		}
	default:
		e.dragKey(k)
	}
}

func (e *Engine) idleKey(k Key) {
	if k == KeySpace {
		e.lift()
		return
	}
	items := e.focusable()
	if len(items) == 0 {
		return
	}
	cur := -1
	for i, n := range items {
		if measure.ItemID(n) == e.focused {
			cur = i
			break
		}
	}
	next := cur
	switch k {
	case KeyHome:
		next = 0
	case KeyEnd:
		next = len(items) - 1
	default:
		step, ok := e.focusStep(k)
		if !ok {
			return
		}
		if cur < 0 {
			next = 0
		} else {
			next = min(max(cur+step, 0), len(items)-1)
		}
	}
	if next == cur {
		return
	}
	e.focused = measure.ItemID(items[next])
	e.push(SetFocus{ID: e.focused})
	if cur >= 0 {
		e.revealNode(items[cur], items[next])
	}
}

// focusable returns the items that take part in roving focus.
func (e *Engine) focusable() []*dom.Node {
	var out []*dom.Node
	for _, n := range measure.Items(e.list, e.cfg.Group) {
		if !measure.IsLocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// focusStep accepts arrows of either axis for focus moves.
func (e *Engine) focusStep(k Key) (int, bool) {
	rtl := e.cfg.Direction == geom.Horizontal && measure.Direction(e.list) == measure.RTL
	switch k {
	case KeyArrowUp:
		return -1, true
	case KeyArrowDown:
		return 1, true
	case KeyArrowLeft:
		if rtl {
			return 1, true
		}
		return -1, true
	case KeyArrowRight:
		if rtl {
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

// dragStep accepts only the arrows of the list's axis. Horizontal arrows
// are mirrored in right-to-left lists.
func (e *Engine) dragStep(k Key) (int, bool) {
	if e.drag.Direction == geom.Vertical {
		switch k {
		case KeyArrowUp:
			return -1, true
		case KeyArrowDown:
			return 1, true
		}
		return 0, false
	}
	step := 0
	switch k {
	case KeyArrowLeft:
		step = -1
	case KeyArrowRight:
		step = 1
	default:
		return 0, false
	}
	if e.rtl {
		step = -step
	}
	return step, true
}

func (e *Engine) lift() {
	item := e.itemNode(e.focused)
	if item == nil || !e.canDrag(item) {
		return
	}
	e.drag = e.cfg
	e.item = &draggedItem{ref: ItemRef{ID: e.focused}, node: item}
	e.target = nil
	if err := e.snapshot(); err != nil {
		e.abort(err)
		return
	}
	e.canceled = false
	e.ghostOrigin = e.rects[e.item.slot].Rect()
	e.ghostRect = e.ghostOrigin
	e.betweenBounds = true
	e.rtl = measure.Direction(item) == measure.RTL

	e.setPhase(PhaseKeyboardDragStart)
	e.emit(EventDragStart)
	e.say(e.announcer.Lifted(e.item.ref))
}

func (e *Engine) dragKey(k Key) {
	switch k {
	case KeySpace:
		e.drop(PhaseKeyboardDrop)
	case KeyEscape:
		e.cancel(PhaseKeyboardCancel)
	case KeyHome:
		e.project(e.edgeSlot(-1))
	case KeyEnd:
		e.project(e.edgeSlot(1))
	default:
		if step, ok := e.dragStep(k); ok {
			e.project(e.nextSlot(step))
		}
	}
}

// targetable reports whether the dragged item may take slot s.
func (e *Engine) targetable(s int) bool {
	return s == e.item.slot || !e.blocked[e.rects[s].ID]
}

func (e *Engine) nextSlot(step int) int {
	for s := e.projected + step; s >= 0 && s < len(e.rects); s += step {
		if e.targetable(s) {
			return s
		}
	}
	return -1
}

func (e *Engine) edgeSlot(dir int) int {
	if dir < 0 {
		for s := 0; s < len(e.rects); s++ {
			if e.targetable(s) {
				return s
			}
		}
		return -1
	}
	for s := len(e.rects) - 1; s >= 0; s-- {
		if e.targetable(s) {
			return s
		}
	}
	return -1
}

// project moves the keyboard-dragged item to slot s.
func (e *Engine) project(s int) {
	if s < 0 || s == e.projected {
		return
	}
	before := e.slotRect()
	var target *ItemRef
	if s != e.item.slot {
		ref := e.refAt(s)
		target = &ref
	}
	e.setTarget(target)
	e.setPhase(PhaseKeyboardDrag)
	e.emit(EventDrag)
	e.say(e.announcer.Dragged(e.item.ref, e.refAt(s)))
	e.reveal(before, e.slotRect(), e.item.node)
}

func (e *Engine) revealNode(from, to *dom.Node) {
	a, err := measure.MeasureItem(from)
	if err != nil {
		return
	}
	b, err := measure.MeasureItem(to)
	if err != nil {
		return
	}
	e.reveal(a.Rect(), b.Rect(), to)
}

// reveal scrolls the nearest scroll container so that rect is fully
// visible, stepping in the direction the item travelled.
func (e *Engine) reveal(from, to geom.Rect, node *dom.Node) {
	cfg := e.cfg
	if e.item != nil {
		cfg = e.drag
	}
	axis := cfg.Direction
	step := 1
	if to.Start(axis) < from.Start(axis) {
		step = -1
	}
	container := autoscroll.FindScrollAncestor(node)
	moved := autoscroll.ScrollIntoView(autoscroll.IntoView{
		Container:    container,
		Target:       to,
		Margin:       node.Style().Margin,
		Axis:         axis,
		Step:         step,
		Document:     autoscroll.IsDocumentScroll(container, axis),
		ScrollMargin: cfg.ScrollMargin,
	})
	if !moved {
		return
	}
	e.push(Scrolled{Container: container})
	if e.item != nil {
		if err := e.snapshot(); err != nil {
			e.abort(err)
		}
	}
}

func (e *Engine) focus(id string) {
	if e.item != nil {
		return
	}
	if id == "" {
		e.focused = ""
		return
	}
	if n := e.itemNode(id); n != nil && !measure.IsLocked(n) {
		e.focused = id
	}
}
