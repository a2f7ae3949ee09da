package system

import (
	"log"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// MaxProjectiles is the fixed projectile pool capacity
const MaxProjectiles = 32

// Hit indicator durations reported by inline collision
const (
	EnemyHitIndicator  = 0.5
	PlayerHitIndicator = 2.0
)

// PoolConfig configures a ProjectilePool
type PoolConfig struct {
	Speed     float64
	Lifetime  float64
	Cooldowns [entity.ProjectileTypeCount]float64
}

// Shooter spawns projectiles. Satisfied by *ProjectilePool.
type Shooter interface {
	Spawn(pos, dir entity.Vec3, typ entity.ProjectileType) bool
}

// ProjectileHit describes one projectile that struck a hitbox
type ProjectileHit struct {
	Slot     int
	Type     entity.ProjectileType
	Damage   int
	Target   entity.HitboxType
	Box      string
	Position entity.Vec3
}

// CollisionReport is the result of UpdateWithCollision
type CollisionReport struct {
	EnemyHit       bool
	EnemyHitTimer  float64
	EnemyDamage    int
	PlayerHit      bool
	PlayerHitTimer float64
	PlayerDamage   int
	Hits           []ProjectileHit
}

// ProjectilePool is a fixed-capacity pool of point projectiles with a
// cooldown per projectile type.
type ProjectilePool struct {
	projectiles [MaxProjectiles]entity.Projectile
	speed       float64
	lifetime    float64
	cooldowns   [entity.ProjectileTypeCount]float64
	timers      [entity.ProjectileTypeCount]float64
	enabled     bool
	logger      *log.Logger
}

// NewProjectilePool creates a pool with every slot parked off-screen.
// A non-positive speed or lifetime leaves the pool disabled.
func NewProjectilePool(cfg PoolConfig, logger *log.Logger) *ProjectilePool {
	if logger == nil {
		logger = log.Default()
	}
	p := &ProjectilePool{
		speed:     cfg.Speed,
		lifetime:  cfg.Lifetime,
		cooldowns: cfg.Cooldowns,
		logger:    logger,
	}
	for i := range p.projectiles {
		p.projectiles[i].Deactivate()
	}
	if cfg.Speed <= 0 || cfg.Lifetime <= 0 {
		logger.Printf("[Projectile] invalid speed %.1f or lifetime %.2f, pool disabled", cfg.Speed, cfg.Lifetime)
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether the pool accepted its configuration
func (p *ProjectilePool) Enabled() bool {
	return p.enabled
}

// Capacity returns the fixed number of slots
func (p *ProjectilePool) Capacity() int {
	return MaxProjectiles
}

// CanShoot returns true when typ's cooldown has elapsed
func (p *ProjectilePool) CanShoot(typ entity.ProjectileType) bool {
	return p.enabled && typ.Valid() && p.timers[typ] <= 0
}

// Spawn fires a projectile of typ from pos along dir. It returns false when
// the type is cooling down or no slot is free; existing projectiles are
// never touched.
func (p *ProjectilePool) Spawn(pos, dir entity.Vec3, typ entity.ProjectileType) bool {
	if !p.enabled || !typ.Valid() {
		return false
	}
	if p.timers[typ] > 0 {
		return false
	}

	for i := range p.projectiles {
		proj := &p.projectiles[i]
		if proj.Active {
			continue
		}

		velocity := entity.Vec3{Z: -p.speed}
		if unit, ok := dir.Normalize(); ok {
			velocity = unit.Scale(p.speed)
		}
		proj.Launch(pos, velocity, p.lifetime, typ)
		p.timers[typ] = p.cooldowns[typ]
		return true
	}

	p.logger.Printf("[Projectile] no free slot for %s projectile", typ)
	return false
}

// tickCooldowns counts every type's cooldown toward zero
func (p *ProjectilePool) tickCooldowns(dt float64) {
	for i := range p.timers {
		if p.timers[i] > 0 {
			p.timers[i] -= dt
			if p.timers[i] < 0 {
				p.timers[i] = 0
			}
		}
	}
}

// Update moves active projectiles and expires those out of lifetime.
// dt is not clamped beyond rejecting NaN and negative values.
func (p *ProjectilePool) Update(dt float64) {
	if !p.enabled {
		return
	}
	dt = sanitizeDelta(dt)
	p.tickCooldowns(dt)

	for i := range p.projectiles {
		proj := &p.projectiles[i]
		if proj.Active && proj.Advance(dt) {
			proj.Deactivate()
		}
	}
}

// UpdateWithCollision is Update with the hit test folded into the same
// pass. Player projectiles are tested against Enemy boxes and enemy
// projectiles against Player boxes; a projectile that hits is deactivated
// and reported.
func (p *ProjectilePool) UpdateWithCollision(dt float64, reg *HitboxRegistry) CollisionReport {
	var report CollisionReport
	if !p.enabled {
		return report
	}
	dt = sanitizeDelta(dt)
	p.tickCooldowns(dt)

	for i := range p.projectiles {
		proj := &p.projectiles[i]
		if !proj.Active {
			continue
		}
		proj.Move(dt)
		if reg != nil && p.collide(i, reg, &report) {
			continue
		}
		if proj.Expire(dt) {
			proj.Deactivate()
		}
	}

	return report
}

// collide tests slot i against the boxes its owner can hit and records a
// hit in report.
func (p *ProjectilePool) collide(i int, reg *HitboxRegistry, report *CollisionReport) bool {
	proj := &p.projectiles[i]
	target := entity.HitboxPlayer
	if proj.Type.FromPlayer() {
		target = entity.HitboxEnemy
	}
	hit, name := reg.CheckPoint(proj.Position, target)
	if !hit {
		return false
	}

	report.Hits = append(report.Hits, ProjectileHit{
		Slot:     i,
		Type:     proj.Type,
		Damage:   proj.Damage,
		Target:   target,
		Box:      name,
		Position: proj.Position,
	})
	if target == entity.HitboxEnemy {
		report.EnemyHit = true
		report.EnemyHitTimer = EnemyHitIndicator
		report.EnemyDamage += proj.Damage
	} else {
		report.PlayerHit = true
		report.PlayerHitTimer = PlayerHitIndicator
		report.PlayerDamage += proj.Damage
	}
	proj.Deactivate()
	return true
}

// Projectile returns the projectile in slot i
func (p *ProjectilePool) Projectile(i int) (*entity.Projectile, bool) {
	if i < 0 || i >= MaxProjectiles {
		return nil, false
	}
	return &p.projectiles[i], true
}

// Deactivate frees slot i
func (p *ProjectilePool) Deactivate(i int) {
	if i < 0 || i >= MaxProjectiles {
		return
	}
	p.projectiles[i].Deactivate()
}

// ActiveCount returns the number of projectiles in flight
func (p *ProjectilePool) ActiveCount() int {
	n := 0
	for i := range p.projectiles {
		if p.projectiles[i].Active {
			n++
		}
	}
	return n
}
