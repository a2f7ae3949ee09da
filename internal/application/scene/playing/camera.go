package playing

import "github.com/younwookim/skyfall/internal/domain/entity"

// Camera projects world positions onto the screen. It sits on +Z looking
// down -Z, so enemies further away shrink toward the vanishing point.
type Camera struct {
	ScreenW, ScreenH float64
	Distance         float64 // camera Z
	PixelsPerUnit    float64
	CenterY          float64 // world Y drawn at mid screen
}

// NewCamera creates the default camera for a screen
func NewCamera(screenW, screenH int) Camera {
	return Camera{
		ScreenW:       float64(screenW),
		ScreenH:       float64(screenH),
		Distance:      600,
		PixelsPerUnit: float64(screenH) / 600,
		CenterY:       -50,
	}
}

// Project returns the screen position of p and its perspective scale.
// ok is false for points at or behind the camera.
func (c Camera) Project(p entity.Vec3) (x, y, scale float64, ok bool) {
	depth := c.Distance - p.Z
	if depth <= 1 {
		return 0, 0, 0, false
	}
	scale = c.Distance / depth * c.PixelsPerUnit
	x = c.ScreenW/2 + p.X*scale
	y = c.ScreenH/2 - (p.Y-c.CenterY)*scale
	return x, y, scale, true
}

// ProjectBox returns the screen rectangle of a world box, using the near
// face for perspective.
func (c Camera) ProjectBox(min, max entity.Vec3) (x, y, w, h float64, ok bool) {
	x0, y0, _, ok0 := c.Project(entity.Vec3{X: min.X, Y: max.Y, Z: max.Z})
	x1, y1, _, ok1 := c.Project(entity.Vec3{X: max.X, Y: min.Y, Z: max.Z})
	if !ok0 || !ok1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}
