package system

import (
	"github.com/younwookim/skyfall/internal/domain/entity"
)

// CollisionStrategy selects how projectile hits are found each frame
type CollisionStrategy int

const (
	// CollisionExternal moves projectiles first and resolves hits in a
	// separate pass by projectile type
	CollisionExternal CollisionStrategy = iota
	// CollisionInline tests hits inside the projectile update
	CollisionInline
)

// String returns the strategy name
func (c CollisionStrategy) String() string {
	switch c {
	case CollisionExternal:
		return "external"
	case CollisionInline:
		return "inline"
	default:
		return "unknown"
	}
}

// enemyShotDamage is what one enemy projectile costs the player
const enemyShotDamage = 1

// ResolveExternal walks the active projectiles after a plain pool update.
// Enemy projectiles are tested against Player boxes, player projectiles
// against the active enemies. Every projectile that hits is deactivated.
func ResolveExternal(pool *ProjectilePool, orch *Orchestrator, reg *HitboxRegistry, player *entity.PlayerHealth) []ProjectileHit {
	var hits []ProjectileHit
	if pool == nil {
		return hits
	}

	for i := 0; i < pool.Capacity(); i++ {
		proj, _ := pool.Projectile(i)
		if !proj.Active {
			continue
		}

		if !proj.Type.FromPlayer() {
			if reg == nil || player == nil || player.IsDead() {
				continue
			}
			hit, name := reg.CheckPoint(proj.Position, entity.HitboxPlayer)
			if !hit {
				continue
			}
			hits = append(hits, ProjectileHit{
				Slot: i, Type: proj.Type, Damage: enemyShotDamage,
				Target: entity.HitboxPlayer, Box: name, Position: proj.Position,
			})
			DamagePlayer(reg, player, enemyShotDamage)
			pool.Deactivate(i)
			continue
		}

		if orch == nil {
			continue
		}
		if _, _, ok := orch.CheckHit(proj.Position, proj.Damage); ok {
			hits = append(hits, ProjectileHit{
				Slot: i, Type: proj.Type, Damage: proj.Damage,
				Target: entity.HitboxEnemy, Position: proj.Position,
			})
			pool.Deactivate(i)
		}
	}
	return hits
}

// ApplyReport attributes the hits found by an inline update. Enemy hits
// are routed to the enemy that owns the box; player hits damage the player.
func ApplyReport(report CollisionReport, orch *Orchestrator, reg *HitboxRegistry, player *entity.PlayerHealth) {
	for _, hit := range report.Hits {
		switch hit.Target {
		case entity.HitboxEnemy:
			if orch != nil {
				orch.CheckHit(hit.Position, hit.Damage)
			}
		case entity.HitboxPlayer:
			if player != nil {
				DamagePlayer(reg, player, enemyShotDamage)
			}
		}
	}
}
