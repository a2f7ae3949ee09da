package system

import (
	"github.com/younwookim/skyfall/internal/domain/entity"
)

// ApplyDamage subtracts damage from v, starts its flash and reports death.
// Inactive targets are ignored.
func ApplyDamage(v *entity.Vitals, damage int, flash float64) (killed bool) {
	if v == nil {
		return false
	}
	return v.TakeDamage(damage, flash)
}

// DamageEnemy applies damage to e. On death the enemy and its whole
// hitbox range are deactivated before returning.
func DamageEnemy(reg *HitboxRegistry, e *entity.Enemy, damage int) (killed bool) {
	if e == nil || !e.Active {
		return false
	}
	e.HitTimer = entity.DefaultHitDuration
	if !ApplyDamage(&e.Vitals, damage, entity.DefaultFlashDuration) {
		return false
	}
	e.Active = false
	if reg != nil {
		reg.SetRangeActive(e.Boxes, false)
	}
	return true
}

// DamagePlayer applies damage to the player. On death every Player box is
// deactivated so nothing can hit the wreck.
func DamagePlayer(reg *HitboxRegistry, p *entity.PlayerHealth, damage int) (killed bool) {
	if p == nil || !p.TakeDamage(damage) {
		return false
	}
	if reg != nil {
		reg.DeactivateType(entity.HitboxPlayer)
	}
	return true
}
