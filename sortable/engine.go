// Package sortable implements the drag state machine of a sortable list.
//
// An Engine owns the interaction state of one list. The host feeds it
// inputs (pointer, keyboard, focus and timer events) and carries out the
// effects it returns: lifecycle events, announcements, reorders, removals
// and timers. The engine never mutates the host's data; it writes only
// transforms and state attributes on the layout tree it was given.
package sortable

import (
	"time"

	"go.uber.org/zap"

	"github.com/rileylov/sortable/announce"
	"github.com/rileylov/sortable/autoscroll"
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/measure"
)

// Attributes written by the engine.
const (
	AttrDragState  = "data-drag-state"
	AttrGhostState = "data-ghost-state"
	AttrTabIndex   = "tabindex"
)

// Option configures an Engine.
type Option func(*Engine)

// WithAnnouncer replaces the English announcer.
func WithAnnouncer(a announce.Announcer) Option {
	return func(e *Engine) {
		if a != nil {
			e.announcer = a
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithGhost sets the node that follows the pointer during a drag. It is
// positioned relative to the document viewport.
func WithGhost(n *dom.Node) Option {
	return func(e *Engine) { e.ghost = n }
}

type draggedItem struct {
	ref  ItemRef
	node *dom.Node
	slot int
}

type press struct {
	node  *dom.Node
	point geom.Point
}

// Engine is the drag state of one list. It is not safe for concurrent use.
type Engine struct {
	list  *dom.Node
	ghost *dom.Node

	cfg  Config
	drag Config

	announcer announce.Announcer
	logger    *zap.Logger
	scroller  *autoscroll.Controller

	phase   Phase
	item    *draggedItem
	target  *ItemRef
	focused string

	// Rest geometry captured for the current drag, aligned with nodes.
	rects     []measure.ItemRect
	nodes     []*dom.Node
	blocked   map[string]bool
	forward   float64
	projected int

	origin, pointer geom.Point
	ghostOrigin     geom.Rect
	ghostRect       geom.Rect
	betweenBounds   bool
	rtl             bool
	canceled        bool

	pending *press
	tokens  map[Timer]uint64
	mounted bool

	out []Effect
}

// New creates the engine of list.
func New(list *dom.Node, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		list:      list,
		cfg:       cfg.normalized(),
		announcer: announce.English{},
		logger:    zap.NewNop(),
		phase:     PhaseIdle,
		tokens:    make(map[Timer]uint64),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.drag = e.cfg
	e.scroller = autoscroll.NewController(e.cfg.AutoScrollSpeedRatio)
	return e
}

// Mount writes the initial attributes and emits the mounted event.
func (e *Engine) Mount() []Effect {
	if e.mounted {
		return nil
	}
	e.mounted = true
	e.push(Emit{Event: Event{Type: EventMounted}})
	return e.flush()
}

// Destroy abandons any drag, cancels timers and emits the destroyed event.
func (e *Engine) Destroy() []Effect {
	if !e.mounted {
		return nil
	}
	if e.phase != PhaseIdle {
		e.reset()
	}
	e.pending = nil
	e.cancelTimer(TimerDragDelay)
	e.cancelTimer(TimerTransition)
	e.mounted = false
	e.push(Emit{Event: Event{Type: EventDestroyed}})
	return e.flush()
}

// Handle applies one input and returns the effects the host must carry
// out, in order.
func (e *Engine) Handle(in Input) []Effect {
	switch in := in.(type) {
	case PointerDown:
		e.pointerDown(in)
	case PointerMove:
		e.pointerMove(in.Point)
	case PointerUp:
		e.pointerUp()
	case PointerCancel:
		e.pointerCancel()
	case KeyPress:
		e.keyPress(in.Key)
	case Focus:
		e.focus(in.ID)
	case TimerFired:
		e.timerFired(in)
	case LayoutChanged:
		e.layoutChanged()
	}
	return e.flush()
}

// SetConfig replaces the configuration. A drag in progress keeps the
// configuration it started with.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg.normalized()
	if e.phase == PhaseIdle {
		e.drag = e.cfg
	}
}

// Config returns the configuration the next drag will use.
func (e *Engine) Config() Config { return e.cfg }

// List returns the list root.
func (e *Engine) List() *dom.Node { return e.list }

// Phase returns the current drag state.
func (e *Engine) Phase() Phase { return e.phase }

// GhostState returns the state of the ghost. Keyboard drags have no ghost.
func (e *Engine) GhostState() Phase {
	if e.phase.Device() == DeviceKeyboard {
		return PhaseIdle
	}
	return e.phase
}

// DragState returns the state of the item with id.
func (e *Engine) DragState(id string) Phase {
	if e.item != nil && e.item.ref.ID == id {
		return e.phase
	}
	return PhaseIdle
}

// DraggedItem returns the item being dragged.
func (e *Engine) DraggedItem() (ItemRef, bool) {
	if e.item == nil {
		return ItemRef{}, false
	}
	return e.item.ref, true
}

// TargetItem returns the item the dragged one would take the place of.
func (e *Engine) TargetItem() (ItemRef, bool) {
	if e.target == nil {
		return ItemRef{}, false
	}
	return *e.target, true
}

// FocusedItem returns the id of the focused item, or "".
func (e *Engine) FocusedItem() string { return e.focused }

// Ghost returns the ghost rectangle in viewport coordinates. It is only
// meaningful during a pointer drag.
func (e *Engine) Ghost() geom.Rect { return e.ghostRect }

// IsBetweenBounds reports whether the ghost overlaps the list.
func (e *Engine) IsBetweenBounds() bool { return e.betweenBounds }

func (e *Engine) push(fx Effect) { e.out = append(e.out, fx) }

func (e *Engine) say(msg string) {
	if msg != "" {
		e.push(Announce{Message: msg})
	}
}

// emit sends a lifecycle event describing the current drag.
func (e *Engine) emit(t EventType) {
	ev := Event{
		Type:               t,
		Device:             e.phase.Device(),
		IsBetweenBounds:    e.betweenBounds,
		CanRemoveOnDropOut: e.drag.CanRemoveOnDropOut,
		IsCanceled:         t == EventDragEnd && e.canceled,
	}
	if e.item != nil {
		ev.Dragged = e.item.ref
	}
	if e.target != nil && t != EventDragStart {
		target := *e.target
		ev.Target = &target
	}
	e.push(Emit{Event: ev})
}

func (e *Engine) flush() []Effect {
	e.sync()
	out := e.out
	e.out = nil
	return out
}

func (e *Engine) setPhase(p Phase) {
	if p == e.phase {
		return
	}
	e.logger.Debug("Drag state changed.",
		zap.String("from", e.phase.String()),
		zap.String("to", p.String()),
	)
	e.phase = p
}

func (e *Engine) schedule(t Timer, after time.Duration) {
	e.tokens[t]++
	e.push(Schedule{Timer: t, Token: e.tokens[t], After: after})
}

func (e *Engine) cancelTimer(t Timer) { e.tokens[t]++ }

func (e *Engine) timerFired(in TimerFired) {
	switch in.Timer {
	case TimerDragDelay:
		if in.Token != e.tokens[TimerDragDelay] || e.pending == nil {
			return
		}
		p := e.pending
		e.pending = nil
		e.startPointer(p.node, p.point)
	case TimerTransition:
		if in.Token != e.tokens[TimerTransition] || !e.phase.IsSettling() {
			return
		}
		e.finish()
	case TimerAutoScroll:
		e.autoScroll(in.Token)
	}
}

func (e *Engine) group() string {
	if e.phase != PhaseIdle {
		return e.drag.Group
	}
	return e.cfg.Group
}

// owns reports whether n is an item of this list and group.
func (e *Engine) owns(n *dom.Node) bool {
	if n == nil || n == e.list || !n.HasClass(measure.ClassItem) || !e.list.Contains(n) {
		return false
	}
	g, ok := n.Data(measure.AttrGroup)
	if e.group() == "" {
		return !ok
	}
	return ok && g == e.group()
}

func (e *Engine) itemNode(id string) *dom.Node {
	if id == "" {
		return nil
	}
	for _, n := range measure.Items(e.list, e.group()) {
		if measure.ItemID(n) == id {
			return n
		}
	}
	return nil
}

func (e *Engine) canDrag(item *dom.Node) bool {
	return !e.cfg.IsLocked && !e.cfg.IsDisabled &&
		!measure.IsLocked(item) && !measure.IsDisabled(item)
}

func (e *Engine) startScroller() {
	container := autoscroll.FindScrollAncestor(e.item.node)
	axis := e.drag.Direction
	e.scroller.SetRatio(e.drag.AutoScrollSpeedRatio)
	e.scroller.Start(container, axis, autoscroll.IsDocumentScroll(container, axis))
}

// settle releases the item. The drag ends when the transition timer fires,
// or immediately without transitions.
func (e *Engine) settle() {
	if e.drag.TransitionDuration <= 0 {
		e.finish()
		return
	}
	e.schedule(TimerTransition, e.drag.TransitionDuration)
}

func (e *Engine) drop(p Phase) {
	e.scroller.Stop()
	e.setPhase(p)
	if p == PhasePointerRemove {
		e.target = nil
		e.clearTransforms()
	} else if e.item != nil && len(e.rects) > 0 {
		e.ghostRect = e.slotRect()
	}
	e.emit(EventDrop)
	if p == PhasePointerRemove {
		e.push(Remove{Index: e.item.ref.Index})
	} else {
		e.say(e.announcer.Dropped(e.item.ref, e.target))
	}
	e.settle()
}

func (e *Engine) cancel(p Phase) {
	e.scroller.Stop()
	e.pending = nil
	e.canceled = true
	e.target = nil
	e.clearTransforms()
	if e.item != nil {
		e.projected = e.item.slot
	}
	e.ghostRect = e.ghostOrigin
	e.setPhase(p)
	e.say(e.announcer.Canceled(e.item.ref))
	e.settle()
}

// finish ends a released drag: transforms go, the reorder is requested and
// dragend fires.
func (e *Engine) finish() {
	e.clearTransforms()
	removed := e.phase == PhasePointerRemove
	if !e.canceled && !removed && e.target != nil && e.target.Index != e.item.ref.Index {
		e.push(Reorder{From: e.item.ref.Index, To: e.target.Index})
	}
	e.emit(EventDragEnd)
	if !removed {
		e.focused = e.item.ref.ID
		e.push(SetFocus{ID: e.item.ref.ID})
	}
	e.reset()
}

// abort drops the drag without events. It is used when the layout can no
// longer be measured.
func (e *Engine) abort(err error) {
	e.logger.Debug("Drag aborted.", zap.String("state", e.phase.String()), zap.Error(err))
	e.cancelTimer(TimerTransition)
	e.reset()
}

func (e *Engine) reset() {
	e.clearTransforms()
	e.scroller.Stop()
	e.item = nil
	e.target = nil
	e.rects, e.nodes, e.blocked = nil, nil, nil
	e.canceled = false
	e.betweenBounds = false
	e.setPhase(PhaseIdle)
	e.drag = e.cfg
}

func (e *Engine) layoutChanged() {
	if e.item == nil || e.rects == nil {
		return
	}
	if err := e.snapshot(); err != nil {
		if e.phase.IsSettling() {
			// The dragged item may already be gone after a removal.
			e.rects, e.nodes = nil, nil
			return
		}
		e.abort(err)
		return
	}
	if e.phase.IsDragging() {
		e.layoutSiblings()
	}
}

// sync writes the state attributes and the roving tab stop.
func (e *Engine) sync() {
	nodes := measure.Items(e.list, e.group())
	stop := e.focused
	if e.item != nil {
		stop = e.item.ref.ID
	}
	first, found := "", false
	for _, n := range nodes {
		id := measure.ItemID(n)
		if measure.IsLocked(n) {
			continue
		}
		if first == "" {
			first = id
		}
		if id == stop {
			found = true
		}
	}
	if !found {
		stop = first
	}
	for _, n := range nodes {
		id := measure.ItemID(n)
		n.SetAttr(AttrDragState, e.DragState(id).String())
		switch {
		case measure.IsLocked(n):
			n.RemoveAttr(AttrTabIndex)
		case id == stop:
			n.SetAttr(AttrTabIndex, "0")
		default:
			n.SetAttr(AttrTabIndex, "-1")
		}
	}
	if e.ghost != nil {
		e.ghost.SetAttr(AttrGhostState, e.GhostState().String())
		if e.item != nil && e.phase.Device() == DevicePointer {
			doc := e.list.Root()
			e.ghost.SetLayout(e.ghostRect.Translate(geom.Point{X: doc.ScrollLeft(), Y: doc.ScrollTop()}))
		}
	}
}
