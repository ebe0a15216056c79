package sortable

import (
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

// Input is something that happened to the list. Handle consumes inputs in
// arrival order.
type Input interface{ input() }

// PointerDown is a button press. Target is the deepest node under the
// pointer.
type PointerDown struct {
	Point  geom.Point
	Target *dom.Node
	// Button is 0 for the primary button.
	Button int
}

// PointerMove is pointer motion, with or without a button held.
type PointerMove struct{ Point geom.Point }

// PointerUp is a button release.
type PointerUp struct{ Point geom.Point }

// PointerCancel interrupts a pointer gesture.
type PointerCancel struct{}

// Key is a key the engine reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeySpace
	KeyEscape
)

// KeyPress is a key press while the list has focus.
type KeyPress struct{ Key Key }

// Focus reports that the host moved focus to the item with ID. The empty
// ID clears focus.
type Focus struct{ ID string }

// TimerFired delivers a timer scheduled through a Schedule effect.
type TimerFired struct {
	Timer Timer
	Token uint64
}

// LayoutChanged reports a structural change: items were added, removed or
// reordered, or the list was resized.
type LayoutChanged struct{}

func (PointerDown) input()   {}
func (PointerMove) input()   {}
func (PointerUp) input()     {}
func (PointerCancel) input() {}
func (KeyPress) input()      {}
func (Focus) input()         {}
func (TimerFired) input()    {}
func (LayoutChanged) input() {}
