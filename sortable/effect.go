package sortable

import (
	"time"

	"github.com/rileylov/sortable/dom"
)

// Effect is work the host must carry out after Handle returns, in order.
type Effect interface{ effect() }

// Emit delivers a lifecycle event.
type Emit struct{ Event Event }

// Announce is a sentence for the live region.
type Announce struct{ Message string }

// Reorder asks the list owner to move the element at From to To, shifting
// the elements in between.
type Reorder struct{ From, To int }

// Remove asks the list owner to delete the element at Index.
type Remove struct{ Index int }

// Timer names the engine's timers.
type Timer int

const (
	TimerDragDelay Timer = iota
	TimerTransition
	TimerAutoScroll
)

func (t Timer) String() string {
	switch t {
	case TimerDragDelay:
		return "drag-delay"
	case TimerTransition:
		return "transition"
	case TimerAutoScroll:
		return "auto-scroll"
	}
	return "unknown"
}

// Schedule asks the host to send TimerFired{Timer, Token} after After.
// Tokens the engine no longer expects are dropped when they arrive, which
// is how timers get cancelled.
type Schedule struct {
	Timer Timer
	Token uint64
	After time.Duration
}

// SetFocus asks the host to focus the item with ID.
type SetFocus struct{ ID string }

// Scrolled reports that the engine changed a container's scroll offset.
type Scrolled struct{ Container *dom.Node }

func (Emit) effect()     {}
func (Announce) effect() {}
func (Reorder) effect()  {}
func (Remove) effect()   {}
func (Schedule) effect() {}
func (SetFocus) effect() {}
func (Scrolled) effect() {}
