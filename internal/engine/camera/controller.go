package camera

// DragMode is what a mouse drag currently does to the camera.
type DragMode int

const (
	DragNone DragMode = iota
	DragOrbit
	DragPan
)

// Controller turns mouse drags and wheel steps into camera motion.
type Controller struct {
	cam   *ArcballCamera
	mode  DragMode
	lastX float32
	lastY float32
}

// NewController returns a controller driving cam.
func NewController(cam *ArcballCamera) *Controller {
	return &Controller{cam: cam}
}

// Camera returns the driven camera.
func (c *Controller) Camera() *ArcballCamera {
	return c.cam
}

// Begin starts a drag of the given mode at (x, y).
func (c *Controller) Begin(mode DragMode, x, y float32) {
	c.mode = mode
	c.lastX, c.lastY = x, y
}

// Move applies the motion since the last call.
func (c *Controller) Move(x, y float32) {
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	switch c.mode {
	case DragOrbit:
		c.cam.Orbit(dx, dy)
	case DragPan:
		c.cam.Pan(dx, dy)
	}
}

// End finishes the drag.
func (c *Controller) End() {
	c.mode = DragNone
}

// Mode returns the active drag mode.
func (c *Controller) Mode() DragMode {
	return c.mode
}

// Wheel zooms by the given number of steps, positive toward the target.
func (c *Controller) Wheel(steps float32) {
	c.cam.Zoom(steps)
}
