package autoscroll

import (
	"github.com/rileylov/sortable/dom"
	"github.com/rileylov/sortable/geom"
)

// Controller runs the continuous scroll loop of one list. It owns no timer:
// Update and Tick tell the caller when the next tick is due and the caller
// feeds the tick back with its token. Any restart or stop changes the token,
// so ticks scheduled for an earlier loop are ignored.
type Controller struct {
	ratio float64

	container *dom.Node
	axis      geom.Axis
	document  bool

	pointer  geom.Point
	velocity int
	token    uint64
	running  bool
}

// NewController creates a controller. A non positive ratio uses
// DefaultSpeedRatio.
func NewController(ratio float64) *Controller {
	if ratio <= 0 {
		ratio = DefaultSpeedRatio
	}
	return &Controller{ratio: ratio}
}

// SetRatio changes the speed divisor used by later updates. A non positive
// ratio uses DefaultSpeedRatio.
func (c *Controller) SetRatio(ratio float64) {
	if ratio <= 0 {
		ratio = DefaultSpeedRatio
	}
	c.ratio = ratio
}

// Start binds the controller to a container, cancelling any running loop.
func (c *Controller) Start(container *dom.Node, axis geom.Axis, document bool) {
	c.Stop()
	c.container, c.axis, c.document = container, axis, document
}

// Stop cancels the loop and releases the container.
func (c *Controller) Stop() {
	c.token++
	c.running = false
	c.velocity = 0
	c.container = nil
}

// Container returns the bound scroll container, nil when stopped.
func (c *Controller) Container() *dom.Node { return c.container }

// Velocity returns the last computed velocity.
func (c *Controller) Velocity() int { return c.velocity }

// Running reports whether a tick is outstanding.
func (c *Controller) Running() bool { return c.running }

// Token identifies the current loop.
func (c *Controller) Token() uint64 { return c.token }

// Update records a new pointer position. It returns a token and true when
// the caller must schedule the first tick of a new loop.
func (c *Controller) Update(p geom.Point) (uint64, bool) {
	if c.container == nil {
		return 0, false
	}
	c.pointer = p
	c.velocity = VelocityWithRatio(c.container, p, c.axis, c.document, c.ratio)
	if !CanScroll(c.container, c.axis, c.velocity) {
		if c.running {
			c.token++
			c.running = false
		}
		return 0, false
	}
	if c.running {
		return 0, false
	}
	c.token++
	c.running = true
	return c.token, true
}

// Tick applies one scroll step. scrolled reports whether the container
// moved; again reports whether another tick must be scheduled with the
// same token. Stale tokens do nothing.
func (c *Controller) Tick(token uint64) (scrolled, again bool) {
	if !c.running || token != c.token || c.container == nil {
		return false, false
	}
	c.velocity = VelocityWithRatio(c.container, c.pointer, c.axis, c.document, c.ratio)
	if !CanScroll(c.container, c.axis, c.velocity) {
		c.running = false
		return false, false
	}
	before := c.offset()
	d := c.axis.Vector(float64(c.velocity))
	c.container.ScrollBy(d.X, d.Y)
	scrolled = c.offset() != before
	again = CanScroll(c.container, c.axis, c.velocity)
	c.running = again
	return scrolled, again
}

func (c *Controller) offset() float64 {
	if c.axis == geom.Horizontal {
		return c.container.ScrollLeft()
	}
	return c.container.ScrollTop()
}
