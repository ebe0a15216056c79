package announce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglish(t *testing.T) {
	a := English{}
	item := Item{ID: "a", Index: 0}
	third := Item{ID: "c", Index: 2}

	assert.Equal(t, "You have lifted an item at position 1.", a.Lifted(item))
	assert.Equal(t, "You have moved the item down from position 1 to position 3.", a.Dragged(item, third))
	assert.Equal(t, "You have moved the item up from position 3 to position 1.", a.Dragged(third, item))
	assert.Equal(t, "You have moved the item back to its starting position of 1.", a.Dragged(item, item))
	assert.Equal(t, "You have dropped the item. It has moved from position 1 to position 3.", a.Dropped(item, &third))
	assert.Equal(t, "You have dropped the item. It has remained at its starting position of 1.", a.Dropped(item, nil))
	assert.Equal(t, "You have dropped the item. It has returned to its starting position of 1.", a.Dropped(item, &item))
	assert.Equal(t, "You have canceled the dragging. The item has returned to its starting position of 3.", a.Canceled(third))
}

func TestFuncsFallBackToEnglish(t *testing.T) {
	a := Funcs{
		LiftedFunc: func(i Item) string { return "picked up " + i.ID },
	}
	item := Item{ID: "a"}
	assert.Equal(t, "picked up a", a.Lifted(item))
	assert.Equal(t, English{}.Canceled(item), a.Canceled(item))
	assert.Equal(t, English{}.Dropped(item, nil), a.Dropped(item, nil))
	assert.Equal(t, English{}.Dragged(item, item), a.Dragged(item, item))
}
