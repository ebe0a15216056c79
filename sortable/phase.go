package sortable

// Phase is the drag state of a list. Its string form is the value written
// to the data-drag-state attribute.
type Phase string

const (
	PhaseIdle Phase = "idle"

	PhasePointerDragStart Phase = "ptr-drag-start"
	PhasePointerDrag      Phase = "ptr-drag"
	PhasePointerDrop      Phase = "ptr-drop"
	PhasePointerRemove    Phase = "ptr-remove"
	PhasePointerCancel    Phase = "ptr-cancel"

	PhaseKeyboardDragStart Phase = "kbd-drag-start"
	PhaseKeyboardDrag      Phase = "kbd-drag"
	PhaseKeyboardDrop      Phase = "kbd-drop"
	PhaseKeyboardCancel    Phase = "kbd-cancel"
)

func (p Phase) String() string { return string(p) }

// Device returns the input device driving the phase.
func (p Phase) Device() Device {
	switch p {
	case PhaseKeyboardDragStart, PhaseKeyboardDrag, PhaseKeyboardDrop, PhaseKeyboardCancel:
		return DeviceKeyboard
	}
	return DevicePointer
}

// IsDragging reports whether an item is held and can still move.
func (p Phase) IsDragging() bool {
	switch p {
	case PhasePointerDragStart, PhasePointerDrag, PhaseKeyboardDragStart, PhaseKeyboardDrag:
		return true
	}
	return false
}

// IsSettling reports whether the item was released and the list is waiting
// for the transition to end.
func (p Phase) IsSettling() bool {
	switch p {
	case PhasePointerDrop, PhasePointerRemove, PhasePointerCancel, PhaseKeyboardDrop, PhaseKeyboardCancel:
		return true
	}
	return false
}

// Device is the kind of input that drives a drag.
type Device int

const (
	DevicePointer Device = iota
	DeviceKeyboard
)

func (d Device) String() string {
	if d == DeviceKeyboard {
		return "keyboard"
	}
	return "pointer"
}
