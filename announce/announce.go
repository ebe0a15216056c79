// Package announce turns drag transitions into sentences for a screen
// reader live region.
package announce

import "fmt"

// Item identifies a list item by key and zero based position.
type Item struct {
	ID    string
	Index int
}

// Position is the 1-based position shown to people.
func (i Item) Position() int { return i.Index + 1 }

// Announcer renders the four drag transitions. Dragged receives the item
// itself as target when the item is back at its starting position; Dropped
// receives nil when there is no target.
type Announcer interface {
	Lifted(item Item) string
	Dragged(item, target Item) string
	Dropped(item Item, target *Item) string
	Canceled(item Item) string
}

// English is the default announcer.
type English struct{}

var _ Announcer = English{}

func (English) Lifted(item Item) string {
	return fmt.Sprintf("You have lifted an item at position %d.", item.Position())
}

func (English) Dragged(item, target Item) string {
	from, to := item.Position(), target.Position()
	if from == to {
		return fmt.Sprintf("You have moved the item back to its starting position of %d.", from)
	}
	return fmt.Sprintf("You have moved the item %s from position %d to position %d.", direction(from, to), from, to)
}

func (English) Dropped(item Item, target *Item) string {
	from := item.Position()
	switch {
	case target == nil:
		return fmt.Sprintf("You have dropped the item. It has remained at its starting position of %d.", from)
	case target.Position() == from:
		return fmt.Sprintf("You have dropped the item. It has returned to its starting position of %d.", from)
	}
	return fmt.Sprintf("You have dropped the item. It has moved from position %d to position %d.", from, target.Position())
}

func (English) Canceled(item Item) string {
	return fmt.Sprintf("You have canceled the dragging. The item has returned to its starting position of %d.", item.Position())
}

func direction(from, to int) string {
	if to < from {
		return "up"
	}
	return "down"
}

// Funcs adapts plain functions to an Announcer. Nil fields fall back to
// English.
type Funcs struct {
	LiftedFunc   func(Item) string
	DraggedFunc  func(item, target Item) string
	DroppedFunc  func(item Item, target *Item) string
	CanceledFunc func(Item) string
}

func (f Funcs) Lifted(item Item) string {
	if f.LiftedFunc == nil {
		return English{}.Lifted(item)
	}
	return f.LiftedFunc(item)
}

func (f Funcs) Dragged(item, target Item) string {
	if f.DraggedFunc == nil {
		return English{}.Dragged(item, target)
	}
	return f.DraggedFunc(item, target)
}

func (f Funcs) Dropped(item Item, target *Item) string {
	if f.DroppedFunc == nil {
		return English{}.Dropped(item, target)
	}
	return f.DroppedFunc(item, target)
}

func (f Funcs) Canceled(item Item) string {
	if f.CanceledFunc == nil {
		return English{}.Canceled(item)
	}
	return f.CanceledFunc(item)
}
