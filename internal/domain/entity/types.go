package entity

// HitboxType classifies who owns a hitbox
type HitboxType int

const (
	HitboxProjectile HitboxType = iota
	HitboxPlayer
	HitboxEnemy
)

// String returns the string representation of the hitbox type
func (t HitboxType) String() string {
	switch t {
	case HitboxProjectile:
		return "Projectile"
	case HitboxPlayer:
		return "Player"
	case HitboxEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Geometry name prefixes that declare hitboxes
const (
	PrefixProjectile = "PROJ_"
	PrefixPlayer     = "PLAYER_"
	PrefixEnemy      = "ENEMY_"
)

// Prefix returns the geometry naming prefix for the hitbox type
func (t HitboxType) Prefix() string {
	switch t {
	case HitboxProjectile:
		return PrefixProjectile
	case HitboxPlayer:
		return PrefixPlayer
	case HitboxEnemy:
		return PrefixEnemy
	default:
		return ""
	}
}

// ProjectileType selects damage and cooldown of a projectile
type ProjectileType int

const (
	ProjectileNormal ProjectileType = iota
	ProjectileSlash
	ProjectileEnemy

	// ProjectileTypeCount is the number of projectile types
	ProjectileTypeCount
)

// String returns the string representation of the projectile type
func (t ProjectileType) String() string {
	switch t {
	case ProjectileNormal:
		return "Normal"
	case ProjectileSlash:
		return "Slash"
	case ProjectileEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known projectile type
func (t ProjectileType) Valid() bool {
	return t >= ProjectileNormal && t < ProjectileTypeCount
}

// Damage returns the damage dealt by a projectile of this type
func (t ProjectileType) Damage() int {
	if t == ProjectileSlash {
		return 3
	}
	return 1
}

// FromPlayer reports whether the player fires this type
func (t ProjectileType) FromPlayer() bool {
	return t == ProjectileNormal || t == ProjectileSlash
}
