package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

func newTestController() *PlayerController {
	return NewPlayerController(DefaultPlayerStart, DefaultPlayerBounds, DefaultPlayerSpeed)
}

func TestNormalizeStick(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside deadzone", 7, 0},
		{"negative deadzone", -7.9, 0},
		{"half", 40, 0.5},
		{"full", 80, 1},
		{"over range", 120, 1},
		{"full left", -90, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeStick(tt.in))
		})
	}
}

func TestPlayerController_Accelerates(t *testing.T) {
	pc := newTestController()

	pc.Update(ControlInput{StickX: 80}, 0.05)

	assert.InDelta(t, 100.0, pc.Velocity.X, 1e-9, "accel is speed*8")
	assert.InDelta(t, 5.0, pc.Position.X, 1e-9)

	pc.Update(ControlInput{StickX: 80}, 0.5)
	assert.Equal(t, DefaultPlayerSpeed, pc.Velocity.X, "capped at speed")
}

func TestPlayerController_Decelerates(t *testing.T) {
	pc := newTestController()
	pc.Velocity.X = 250

	pc.Update(ControlInput{}, 0.1)

	assert.InDelta(t, 100.0, pc.Velocity.X, 1e-9, "decel is speed*6")
}

func TestPlayerController_ClampsToBounds(t *testing.T) {
	pc := newTestController()

	for i := 0; i < 120; i++ {
		pc.Update(ControlInput{StickX: -80, StickY: 80}, NominalDelta)
	}

	assert.Equal(t, -150.0, pc.Position.X)
	assert.Equal(t, -50.0, pc.Position.Y)
	assert.Equal(t, 0.0, pc.Position.Z)
}

func TestPlayerController_CenterX(t *testing.T) {
	pc := newTestController()
	pc.SetPosition(entity.Vec3{X: 120, Y: -100})
	pc.Velocity.X = 50

	pc.CenterX()

	assert.Equal(t, entity.Vec3{X: 0, Y: -100}, pc.Position)
	assert.Equal(t, entity.Vec3{}, pc.Velocity)
}

func TestPlayerController_MuzzleAndTransform(t *testing.T) {
	pc := newTestController()

	assert.Equal(t, entity.Vec3{Y: -100}, pc.Muzzle())
	tr := pc.Transform()
	assert.Equal(t, math.Pi, tr.Rotation.Y)
	assert.Equal(t, DefaultPlayerStart, tr.Position)
}

func TestScriptedInput(t *testing.T) {
	in := NewScriptedInput(ControlInput{Fire: true}, ControlInput{StickX: 80})

	assert.True(t, in.Read().Fire)
	assert.Equal(t, 80.0, in.Read().StickX)
	assert.Equal(t, 80.0, in.Read().StickX, "last frame is held")

	assert.Equal(t, ControlInput{}, NewScriptedInput().Read())
}

// TestPlayerController_StableWhenIdle checks the ship does not drift with
// no input over many frames.
func TestPlayerController_StableWhenIdle(t *testing.T) {
	pc := newTestController()

	for i := 0; i < 600; i++ {
		pc.Update(ControlInput{StickX: 5, StickY: -5}, NominalDelta)
		assert.Equal(t, entity.Vec3{}, pc.Velocity, "frame %d", i)
	}
	assert.Equal(t, DefaultPlayerStart, pc.Position)
}
