package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVitals_TakeDamage(t *testing.T) {
	v := NewVitals(5)

	assert.False(t, v.TakeDamage(1, DefaultFlashDuration))
	assert.False(t, v.TakeDamage(1, DefaultFlashDuration))
	assert.False(t, v.TakeDamage(1, DefaultFlashDuration))
	assert.Equal(t, 2, v.Health)

	assert.True(t, v.TakeDamage(2, DefaultFlashDuration))
	assert.Equal(t, 0, v.Health)
	assert.False(t, v.Active)
	assert.Equal(t, 2, v.LastDamage)
	assert.True(t, v.IsFlashing())

	assert.False(t, v.TakeDamage(1, DefaultFlashDuration), "dead record ignores damage")
}

func TestNewVitals_FallsBackToOne(t *testing.T) {
	assert.Equal(t, 1, NewVitals(0).MaxHealth)
	assert.Equal(t, 1, NewVitals(-3).Health)
}

func TestVitals_Tick(t *testing.T) {
	v := NewVitals(3)
	v.TakeDamage(1, 0.15)

	v.Tick(0.1)
	assert.True(t, v.IsFlashing())
	v.Tick(0.1)
	assert.False(t, v.IsFlashing())
	assert.Equal(t, 0.0, v.FlashTimer)
}

func TestEnemy_ExplosionLifecycle(t *testing.T) {
	e := Enemy{Active: false}
	e.SetPosition(Vec3{10, -20, -300})

	e.Explode(DefaultExplosionDuration, 3)
	assert.True(t, e.Explosion.Active)
	assert.Equal(t, Vec3{10, -20, -300}, e.Explosion.Position)
	assert.False(t, e.Free(), "slot is held while the explosion shows")

	e.TickExplosion(0.2)
	assert.True(t, e.Explosion.Active)

	e.TickExplosion(0.1)
	assert.False(t, e.Explosion.Active)
	assert.Equal(t, ExplosionParking, e.Explosion.Position)
	assert.True(t, e.Free())
}

func TestEnemy_Tick(t *testing.T) {
	e := Enemy{Active: true, Vitals: NewVitals(2), HitTimer: 0.5}

	e.Tick(0.3)
	assert.True(t, e.IsShowingHit())
	assert.InDelta(t, 0.3, e.Age, 1e-9)

	e.Tick(0.3)
	assert.False(t, e.IsShowingHit())
}

func TestEnemy_EnterPhase(t *testing.T) {
	e := Enemy{Phase: 1, PhaseTimer: 3.5}
	e.EnterPhase(2)
	assert.Equal(t, 2, e.Phase)
	assert.Equal(t, 0.0, e.PhaseTimer)
}
