package geom

import (
	"fmt"
	"strings"
)

// Axis is the direction a list is laid out in.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseAxis accepts "vertical" or "horizontal", case insensitive. The empty
// string is vertical.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown direction %q", s)
}

// Along returns the component of p along the axis.
func (a Axis) Along(p Point) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Vector returns a point with v on the axis and zero across it.
func (a Axis) Vector(v float64) Point {
	if a == Horizontal {
		return Point{X: v}
	}
	return Point{Y: v}
}
