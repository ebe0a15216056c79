package sortable

import (
	"math"
	"time"

	"github.com/rileylov/sortable/autoscroll"
	"github.com/rileylov/sortable/collision"
	"github.com/rileylov/sortable/geom"
)

// Config is the behaviour of one list. The engine snapshots it when a drag
// starts; changes made during a drag apply to the next one.
type Config struct {
	Direction          geom.Axis
	Gap                float64
	TransitionDuration time.Duration
	// DragStartDelay requires the pointer to stay pressed and still before
	// a drag starts.
	DragStartDelay time.Duration

	HasLockedAxis           bool
	HasBoundaries           bool
	HasWrapping             bool
	CanClearTargetOnDragOut bool
	CanRemoveOnDropOut      bool

	// SwapThreshold scales the collision boxes; 1 is a plain overlap test.
	SwapThreshold float64

	IsLocked   bool
	IsDisabled bool

	// Group partitions items of lists that share an ancestor.
	Group string

	AutoScrollInterval   time.Duration
	AutoScrollSpeedRatio float64
	// ScrollMargin is the room kept past an item scrolled into view after a
	// keyboard move.
	ScrollMargin float64
}

// DefaultConfig returns the stock list behaviour.
func DefaultConfig() Config {
	return Config{
		Direction:            geom.Vertical,
		Gap:                  12,
		TransitionDuration:   320 * time.Millisecond,
		SwapThreshold:        collision.DefaultThreshold,
		AutoScrollInterval:   16 * time.Millisecond,
		AutoScrollSpeedRatio: autoscroll.DefaultSpeedRatio,
		ScrollMargin:         autoscroll.DefaultScrollMargin,
	}
}

// normalized clamps values the engine cannot work with instead of failing.
func (c Config) normalized() Config {
	if c.Direction != geom.Horizontal {
		c.Direction = geom.Vertical
	}
	c.Gap = nonNegative(c.Gap)
	if c.TransitionDuration < 0 {
		c.TransitionDuration = 0
	}
	if c.DragStartDelay < 0 {
		c.DragStartDelay = 0
	}
	c.SwapThreshold = collision.NormalizeThreshold(c.SwapThreshold)
	if c.AutoScrollInterval <= 0 {
		c.AutoScrollInterval = 16 * time.Millisecond
	}
	if c.AutoScrollSpeedRatio <= 0 || math.IsNaN(c.AutoScrollSpeedRatio) {
		c.AutoScrollSpeedRatio = autoscroll.DefaultSpeedRatio
	}
	if c.ScrollMargin <= 0 || math.IsNaN(c.ScrollMargin) {
		c.ScrollMargin = autoscroll.DefaultScrollMargin
	}
	return c
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
