package entity

// Projectile is a pooled point projectile
type Projectile struct {
	Position Vec3
	Velocity Vec3
	Lifetime float64 // Remaining seconds
	Active   bool
	Type     ProjectileType
	Damage   int
}

// Launch activates the projectile at pos with the given velocity
func (p *Projectile) Launch(pos, velocity Vec3, lifetime float64, typ ProjectileType) {
	p.Position = pos
	p.Velocity = velocity
	p.Lifetime = lifetime
	p.Type = typ
	p.Damage = typ.Damage()
	p.Active = true
}

// Advance moves the projectile by dt and returns true once its lifetime
// has run out.
func (p *Projectile) Advance(dt float64) (expired bool) {
	if !p.Active {
		return false
	}
	p.Move(dt)
	return p.Expire(dt)
}

// Move integrates position over dt
func (p *Projectile) Move(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// Expire spends dt of lifetime and reports whether none is left
func (p *Projectile) Expire(dt float64) bool {
	p.Lifetime -= dt
	return p.Lifetime <= 0
}

// Deactivate marks the projectile as inactive and parks it off-screen so a
// stale render or same-frame collision check cannot match it.
func (p *Projectile) Deactivate() {
	p.Active = false
	p.Position = OffscreenPosition
	p.Velocity = Vec3{}
	p.Lifetime = 0
}
