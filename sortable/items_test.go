package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortItems(t *testing.T) {
	in := []string{"A", "B", "C", "D", "E"}
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"B", "C", "A", "D", "E"}},
		{name: "backward", from: 4, to: 1, want: []string{"A", "E", "B", "C", "D"}},
		{name: "to end", from: 0, to: 4, want: []string{"B", "C", "D", "E", "A"}},
		{name: "negative counts from end", from: 0, to: -1, want: []string{"B", "C", "D", "E", "A"}},
		{name: "same index", from: 2, to: 2, want: in},
		{name: "out of range", from: 7, to: 1, want: in},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortItems(in, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"A", "B", "C", "D", "E"}, in)
		})
	}
}

func TestSortItemsRoundTrip(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	for from := range in {
		for to := range in {
			assert.Equal(t, in, SortItems(SortItems(in, from, to), to, from), "from %d to %d", from, to)
		}
	}
}

func TestRemoveItem(t *testing.T) {
	in := []string{"A", "B", "C"}
	assert.Equal(t, []string{"A", "C"}, RemoveItem(in, 1))
	assert.Equal(t, []string{"A", "B", "C"}, in)
	assert.Equal(t, in, RemoveItem(in, 3))
	assert.Equal(t, in, RemoveItem(in, -1))
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{
		Direction:          7,
		Gap:                -3,
		TransitionDuration: -1,
		SwapThreshold:      5,
	}.normalized()
	assert.Equal(t, DefaultConfig().Direction, cfg.Direction)
	assert.Zero(t, cfg.Gap)
	assert.Zero(t, cfg.TransitionDuration)
	assert.Equal(t, 2.0, cfg.SwapThreshold)
	assert.Equal(t, DefaultConfig().AutoScrollInterval, cfg.AutoScrollInterval)
	assert.Equal(t, DefaultConfig().ScrollMargin, cfg.ScrollMargin)
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "ptr-drag-start", PhasePointerDragStart.String())
	assert.Equal(t, "kbd-cancel", PhaseKeyboardCancel.String())
	assert.Equal(t, DeviceKeyboard, PhaseKeyboardDrop.Device())
	assert.True(t, PhasePointerRemove.IsSettling())
	assert.False(t, PhaseIdle.IsDragging())
}
