package system

import (
	"math"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

const (
	stickDeadzone = 8.0
	stickRange    = 80.0
)

// PlayerBounds is the box the ship is kept inside
type PlayerBounds struct {
	Min entity.Vec3
	Max entity.Vec3
}

// DefaultPlayerBounds keeps the ship in the lower part of the view
var DefaultPlayerBounds = PlayerBounds{
	Min: entity.Vec3{X: -150, Y: -250, Z: -10},
	Max: entity.Vec3{X: 150, Y: -50, Z: 10},
}

// DefaultPlayerStart is where the ship appears
var DefaultPlayerStart = entity.Vec3{X: 0, Y: -200, Z: 0}

// DefaultPlayerSpeed is the ship's top speed
const DefaultPlayerSpeed = 250.0

// ControlInput is one frame of player input. StickX and StickY use the
// analog stick range, roughly -80..80.
type ControlInput struct {
	StickX float64
	StickY float64
	Fire   bool // normal shot, held
	Slash  bool // slash shot, held
	Skip   bool // jump to the next level
}

// PlayerController moves the ship with eased acceleration
type PlayerController struct {
	Position entity.Vec3
	Velocity entity.Vec3
	Bounds   PlayerBounds
	Speed    float64
	Accel    float64
	Decel    float64
}

// NewPlayerController creates a controller at start. Acceleration and
// deceleration derive from speed.
func NewPlayerController(start entity.Vec3, bounds PlayerBounds, speed float64) *PlayerController {
	if speed <= 0 {
		speed = DefaultPlayerSpeed
	}
	pc := &PlayerController{
		Position: start,
		Bounds:   bounds,
		Speed:    speed,
		Accel:    speed * 8,
		Decel:    speed * 6,
	}
	pc.clamp()
	return pc
}

// normalizeStick applies the deadzone and scales to -1..1
func normalizeStick(v float64) float64 {
	if math.Abs(v) < stickDeadzone {
		return 0
	}
	return math.Max(-1, math.Min(1, v/stickRange))
}

// approach moves v toward target by at most step
func approach(v, target, step float64) float64 {
	diff := target - v
	if math.Abs(diff) <= 0.01 {
		return v
	}
	if math.Abs(diff) < step {
		return target
	}
	if diff > 0 {
		return v + step
	}
	return v - step
}

// Update moves the ship for one frame of input
func (pc *PlayerController) Update(in ControlInput, dt float64) {
	dt = ClampDelta(dt)

	sx := normalizeStick(in.StickX)
	sy := normalizeStick(in.StickY)

	rate := pc.Decel
	if math.Abs(sx) > 0.01 || math.Abs(sy) > 0.01 {
		rate = pc.Accel
	}
	pc.Velocity.X = approach(pc.Velocity.X, sx*pc.Speed, rate*dt)
	pc.Velocity.Y = approach(pc.Velocity.Y, sy*pc.Speed, rate*dt)

	pc.Position.X += pc.Velocity.X * dt
	pc.Position.Y += pc.Velocity.Y * dt
	pc.clamp()
}

// SetPosition teleports the ship and stops it
func (pc *PlayerController) SetPosition(p entity.Vec3) {
	pc.Position = p
	pc.Velocity = entity.Vec3{}
	pc.clamp()
}

// CenterX moves the ship to the horizontal middle of its bounds
func (pc *PlayerController) CenterX() {
	p := pc.Position
	p.X = (pc.Bounds.Min.X + pc.Bounds.Max.X) / 2
	pc.SetPosition(p)
}

// Muzzle is where player shots leave the ship
func (pc *PlayerController) Muzzle() entity.Vec3 {
	return pc.Position.Add(entity.Vec3{Y: 100})
}

// Transform returns the ship's model transform. The model faces away
// from the camera.
func (pc *PlayerController) Transform() entity.Transform {
	t := entity.NewTransform(pc.Position, 1)
	t.Rotation.Y = math.Pi
	return t
}

// clamp keeps the ship in bounds and stops it on any axis that hit one
func (pc *PlayerController) clamp() {
	clampAxis(&pc.Position.X, &pc.Velocity.X, pc.Bounds.Min.X, pc.Bounds.Max.X)
	clampAxis(&pc.Position.Y, &pc.Velocity.Y, pc.Bounds.Min.Y, pc.Bounds.Max.Y)
	clampAxis(&pc.Position.Z, &pc.Velocity.Z, pc.Bounds.Min.Z, pc.Bounds.Max.Z)
}

func clampAxis(pos, vel *float64, lo, hi float64) {
	if *pos < lo {
		*pos = lo
		*vel = 0
	} else if *pos > hi {
		*pos = hi
		*vel = 0
	}
}
