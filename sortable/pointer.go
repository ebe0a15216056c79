package sortable

import (
	"github.com/rileylov/sortable/collision"
	"github.com/rileylov/sortable/constraint"
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/measure"
)

func (e *Engine) pointerDown(in PointerDown) {
	if in.Button != 0 || e.phase != PhaseIdle {
		return
	}
	e.pending = nil
	e.cancelTimer(TimerDragDelay)

	item := in.Target.Closest(e.owns)
	if item == nil {
		return
	}
	if !measure.IsLocked(item) {
		e.focused = measure.ItemID(item)
	}
	if !e.canDrag(item) || measure.IsInteractive(in.Target, e.list) {
		return
	}
	if h := measure.Handle(item); h != nil && !h.Contains(in.Target) {
		return
	}
	if e.cfg.DragStartDelay > 0 {
		e.pending = &press{node: item, point: in.Point}
		e.schedule(TimerDragDelay, e.cfg.DragStartDelay)
		return
	}
	e.startPointer(item, in.Point)
}

func (e *Engine) startPointer(item *dom.Node, p geom.Point) {
	e.drag = e.cfg
	e.item = &draggedItem{ref: ItemRef{ID: measure.ItemID(item)}, node: item}
	if err := e.snapshot(); err != nil {
		e.abort(err)
		return
	}
	if _, err := e.list.BoundingRect(); err != nil {
		e.abort(err)
		return
	}
	e.target = nil
	e.canceled = false
	e.origin, e.pointer = p, p
	e.ghostOrigin = e.rects[e.item.slot].Rect()
	e.ghostRect = e.ghostOrigin
	e.betweenBounds = true
	e.rtl = measure.Direction(item) == measure.RTL

	e.setPhase(PhasePointerDragStart)
	e.emit(EventDragStart)
	e.say(e.announcer.Lifted(e.item.ref))
	e.startScroller()
}

func (e *Engine) pointerMove(p geom.Point) {
	if e.pending != nil {
		if p != e.pending.point {
			e.pending = nil
			e.cancelTimer(TimerDragDelay)
		}
		return
	}
	switch e.phase {
	case PhasePointerDragStart:
		if err := e.snapshot(); err != nil {
			e.abort(err)
			return
		}
		e.setPhase(PhasePointerDrag)
		e.movePointer(p, true)
	case PhasePointerDrag:
		e.movePointer(p, false)
	}
}

// movePointer places the ghost under the pointer and resolves the target.
// A drag event fires on the first move and whenever the target or the
// bounds state changes.
func (e *Engine) movePointer(p geom.Point, first bool) {
	e.pointer = p
	listRect, err := e.list.BoundingRect()
	if err != nil {
		e.abort(err)
		return
	}
	delta := constraint.ClampToAxis(p.Sub(e.origin), e.drag.Direction, e.drag.HasLockedAxis)
	e.ghostRect = e.ghostOrigin.Translate(delta)
	if e.drag.HasBoundaries {
		e.ghostRect = constraint.ClampToBounds(e.ghostRect, listRect, e.drag.Gap)
	}

	between := collision.Collides(e.ghostRect, listRect)
	boundsChanged := between != e.betweenBounds
	e.betweenBounds = between

	prev := e.target
	next := e.resolveTarget()
	changed := !sameRef(prev, next)
	e.setTarget(next)

	if first || changed || boundsChanged {
		e.emit(EventDrag)
	}
	if changed {
		to := e.item.ref
		if next != nil {
			to = *next
		}
		e.say(e.announcer.Dragged(e.item.ref, to))
	}

	if token, ok := e.scroller.Update(p); ok {
		e.push(Schedule{Timer: TimerAutoScroll, Token: token, After: e.drag.AutoScrollInterval})
	}
}

func (e *Engine) autoScroll(token uint64) {
	if e.phase != PhasePointerDrag {
		return
	}
	scrolled, again := e.scroller.Tick(token)
	if again {
		e.push(Schedule{Timer: TimerAutoScroll, Token: token, After: e.drag.AutoScrollInterval})
	}
	if !scrolled {
		return
	}
	e.push(Scrolled{Container: e.scroller.Container()})
	if err := e.snapshot(); err != nil {
		e.abort(err)
		return
	}
	e.movePointer(e.pointer, false)
}

func (e *Engine) pointerUp() {
	if e.pending != nil {
		e.pending = nil
		e.cancelTimer(TimerDragDelay)
		return
	}
	switch e.phase {
	case PhasePointerDragStart, PhasePointerDrag:
		if !e.betweenBounds && e.drag.CanRemoveOnDropOut && e.phase == PhasePointerDrag {
			e.drop(PhasePointerRemove)
			return
		}
		e.drop(PhasePointerDrop)
	}
}

func (e *Engine) pointerCancel() {
	if e.pending != nil {
		e.pending = nil
		e.cancelTimer(TimerDragDelay)
		return
	}
	if e.phase == PhasePointerDragStart || e.phase == PhasePointerDrag {
		e.cancel(PhasePointerCancel)
	}
}

func sameRef(a, b *ItemRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
