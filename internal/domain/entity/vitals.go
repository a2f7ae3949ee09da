package entity

// Default presentation timers, in seconds
const (
	DefaultFlashDuration     = 0.15
	DefaultHitDuration       = 0.5
	DefaultExplosionDuration = 0.25
)

// Vitals is the health-and-activity record shared by enemies and the player
type Vitals struct {
	Health     int
	MaxHealth  int
	Active     bool
	FlashTimer float64
	LastDamage int
}

// NewVitals creates an active record with full health.
// Non-positive max health falls back to 1.
func NewVitals(maxHealth int) Vitals {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	return Vitals{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Active:    true,
	}
}

// TakeDamage subtracts damage, records it and starts the flash.
// Returns true when this hit brought health to zero or below.
// Damage to an inactive record is ignored.
func (v *Vitals) TakeDamage(damage int, flash float64) (killed bool) {
	if !v.Active {
		return false
	}
	v.Health -= damage
	v.LastDamage = damage
	v.FlashTimer = flash
	if v.Health <= 0 {
		v.Health = 0
		v.Active = false
		return true
	}
	return false
}

// Tick counts down the flash timer
func (v *Vitals) Tick(dt float64) {
	if v.FlashTimer > 0 {
		v.FlashTimer -= dt
		if v.FlashTimer < 0 {
			v.FlashTimer = 0
		}
	}
}

// IsFlashing returns true while the hit flash is showing
func (v *Vitals) IsFlashing() bool {
	return v.FlashTimer > 0
}

// HealthRatio returns current health over max health
func (v *Vitals) HealthRatio() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return float64(v.Health) / float64(v.MaxHealth)
}
