package system

import (
	"math"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// forward is the direction enemy shots travel, toward the camera
var forward = entity.Vec3{Z: 1}

// fanDirection returns a unit direction rotated angle radians about Y
// from forward.
func fanDirection(angle float64) entity.Vec3 {
	return entity.Vec3{X: math.Sin(angle), Z: math.Cos(angle)}
}

// steerToward sets e's velocity to point at target with the given speed.
// Returns the distance that was left before the step.
func steerToward(e *entity.Enemy, target entity.Vec3, speed float64) float64 {
	delta := target.Sub(e.Position())
	dist := delta.Len()
	if dir, ok := delta.Normalize(); ok {
		e.Velocity = dir.Scale(speed)
	} else {
		e.Velocity = entity.Vec3{}
	}
	return dist
}

// integrate moves e along its velocity
func integrate(e *entity.Enemy, dt float64) {
	e.SetPosition(e.Position().Add(e.Velocity.Scale(dt)))
}

// snapTo places e at target and stops it
func snapTo(e *entity.Enemy, target entity.Vec3) {
	e.SetPosition(target)
	e.Velocity = entity.Vec3{}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
