package entity

// DefaultReloadDelay is how long the player stays destroyed before the
// level should be reloaded.
const DefaultReloadDelay = 5.0

// PlayerHealth tracks the player's health, hit display and death timer
type PlayerHealth struct {
	Vitals          Vitals
	Dead            bool
	DeathTimer      float64
	HitDisplayTimer float64

	FlashDuration float64
	HitDuration   float64
	ReloadDelay   float64
}

// NewPlayerHealth creates a living player with maxHealth.
// Non-positive max health falls back to 1.
func NewPlayerHealth(maxHealth int) *PlayerHealth {
	return &PlayerHealth{
		Vitals:        NewVitals(maxHealth),
		FlashDuration: DefaultFlashDuration,
		HitDuration:   DefaultHitDuration,
		ReloadDelay:   DefaultReloadDelay,
	}
}

// TakeDamage applies damage and returns true if the player died from it.
// A dead player takes no further damage.
func (p *PlayerHealth) TakeDamage(damage int) bool {
	if p.Dead {
		return false
	}
	p.HitDisplayTimer = p.HitDuration
	if p.Vitals.TakeDamage(damage, p.FlashDuration) {
		p.Dead = true
		p.DeathTimer = 0
		return true
	}
	return false
}

// Update counts down the hit display and flash, and counts up the death timer
func (p *PlayerHealth) Update(dt float64) {
	if p.HitDisplayTimer > 0 {
		p.HitDisplayTimer -= dt
		if p.HitDisplayTimer < 0 {
			p.HitDisplayTimer = 0
		}
	}
	p.Vitals.Tick(dt)
	if p.Dead && p.DeathTimer < p.ReloadDelay {
		p.DeathTimer += dt
	}
}

// Health returns the current health
func (p *PlayerHealth) Health() int {
	return p.Vitals.Health
}

// MaxHealth returns the maximum health
func (p *PlayerHealth) MaxHealth() int {
	return p.Vitals.MaxHealth
}

// IsDead returns true once health has reached zero
func (p *PlayerHealth) IsDead() bool {
	return p.Dead
}

// ShouldReload returns true once the player has been dead for ReloadDelay
func (p *PlayerHealth) ShouldReload() bool {
	return p.Dead && p.DeathTimer >= p.ReloadDelay
}

// IsShowingHit returns true while the hit banner should be drawn
func (p *PlayerHealth) IsShowingHit() bool {
	return p.HitDisplayTimer > 0
}

// IsFlashing returns true while the damage flash is showing
func (p *PlayerHealth) IsFlashing() bool {
	return p.Vitals.IsFlashing()
}
