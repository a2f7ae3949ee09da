package entity

// Explosion is the death display left behind by an enemy
type Explosion struct {
	Active   bool
	Timer    float64
	Position Vec3
	Scale    float64
}

// Enemy is one enemy slot. Phase, PhaseTimer and ShootTimer are owned by
// the level script driving it and mean different things per level.
type Enemy struct {
	Transform Transform
	Vitals    Vitals
	Velocity  Vec3
	Target    Vec3
	HasTarget bool

	Phase      int
	PhaseTimer float64
	ShootTimer float64
	Age        float64
	Side       float64 // -1 or 1, spawn side for scripts that mirror motion

	HitTimer  float64
	Boxes     BoxRange
	Active    bool
	Explosion Explosion
}

// Position returns the enemy's world position
func (e *Enemy) Position() Vec3 {
	return e.Transform.Position
}

// SetPosition moves the enemy
func (e *Enemy) SetPosition(p Vec3) {
	e.Transform.Position = p
}

// IsAlive returns true if the enemy is active with health left
func (e *Enemy) IsAlive() bool {
	return e.Active && e.Vitals.Active
}

// IsShowingHit returns true while the hit indicator is showing
func (e *Enemy) IsShowingHit() bool {
	return e.HitTimer > 0
}

// Free reports whether the slot can be reused by a new spawn
func (e *Enemy) Free() bool {
	return !e.Active && !e.Explosion.Active
}

// Explode arms the explosion display at the current position
func (e *Enemy) Explode(duration, scale float64) {
	e.Explosion = Explosion{
		Active:   true,
		Timer:    duration,
		Position: e.Transform.Position,
		Scale:    scale,
	}
}

// TickExplosion counts the explosion down and parks it once finished
func (e *Enemy) TickExplosion(dt float64) {
	if !e.Explosion.Active {
		return
	}
	e.Explosion.Timer -= dt
	if e.Explosion.Timer <= 0 {
		e.Explosion.Active = false
		e.Explosion.Timer = 0
		e.Explosion.Position = ExplosionParking
	}
}

// Tick advances the per-enemy presentation timers
func (e *Enemy) Tick(dt float64) {
	e.Age += dt
	e.Vitals.Tick(dt)
	if e.HitTimer > 0 {
		e.HitTimer -= dt
		if e.HitTimer < 0 {
			e.HitTimer = 0
		}
	}
}

// EnterPhase switches to phase and resets the phase timer
func (e *Enemy) EnterPhase(phase int) {
	e.Phase = phase
	e.PhaseTimer = 0
}
