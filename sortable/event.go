package sortable

import "github.com/rileylov/sortable/announce"

// ItemRef identifies an item by key and zero based index.
type ItemRef = announce.Item

// EventType names a lifecycle event.
type EventType string

const (
	EventMounted   EventType = "mounted"
	EventDragStart EventType = "dragstart"
	EventDrag      EventType = "drag"
	EventDrop      EventType = "drop"
	EventDragEnd   EventType = "dragend"
	EventDestroyed EventType = "destroyed"
)

// Event is a lifecycle notification. Mounted and Destroyed carry only
// their type; DragStart never carries a target.
type Event struct {
	Type   EventType
	Device Device

	Dragged ItemRef
	Target  *ItemRef

	IsBetweenBounds    bool
	CanRemoveOnDropOut bool
	// IsCanceled is set on DragEnd when the drag was canceled.
	IsCanceled bool
}
