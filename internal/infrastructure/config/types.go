package config

import (
	"errors"
	"fmt"
)

// CombatConfig is the root config for combat.json
type CombatConfig struct {
	Display    DisplayConfig    `json:"display"`
	Projectile ProjectileConfig `json:"projectile"`
	Player     PlayerConfig     `json:"player"`
	Timing     TimingConfig     `json:"timing"`
	Hitboxes   HitboxConfig     `json:"hitboxes"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// ProjectileConfig configures the shared projectile pool
type ProjectileConfig struct {
	Speed     float64         `json:"speed"`
	Lifetime  float64         `json:"lifetime"`
	Cooldowns CooldownsConfig `json:"cooldowns"`
}

// CooldownsConfig holds the minimum seconds between shots per type
type CooldownsConfig struct {
	Normal float64 `json:"normal"`
	Slash  float64 `json:"slash"`
	Enemy  float64 `json:"enemy"`
}

type PlayerConfig struct {
	Speed  float64      `json:"speed"`
	Start  Vec3Config   `json:"start"`
	Bounds BoundsConfig `json:"bounds"`
}

type BoundsConfig struct {
	Min Vec3Config `json:"min"`
	Max Vec3Config `json:"max"`
}

// TimingConfig holds the presentation and flow timers, in seconds
type TimingConfig struct {
	Flash     float64 `json:"flash"`
	Hit       float64 `json:"hit"`
	Explosion float64 `json:"explosion"`
	Reload    float64 `json:"reload"`
	Victory   float64 `json:"victory"`
}

// HitboxConfig sizes the hitbox arena
type HitboxConfig struct {
	Initial int `json:"initial"`
	Max     int `json:"max"`
}

// Vec3Config is a point in JSON and YAML files
type Vec3Config struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Validate checks the combat settings for values the game cannot run with
func (c *CombatConfig) Validate() error {
	var errs []error

	if c.Projectile.Speed <= 0 {
		errs = append(errs, fmt.Errorf("projectile.speed must be positive, got %.1f", c.Projectile.Speed))
	}
	if c.Projectile.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("projectile.lifetime must be positive, got %.2f", c.Projectile.Lifetime))
	}
	cd := c.Projectile.Cooldowns
	if cd.Normal < 0 || cd.Slash < 0 || cd.Enemy < 0 {
		errs = append(errs, fmt.Errorf("projectile.cooldowns must not be negative"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %.1f", c.Player.Speed))
	}
	b := c.Player.Bounds
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		errs = append(errs, fmt.Errorf("player.bounds min (%.0f, %.0f, %.0f) exceeds max (%.0f, %.0f, %.0f)",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z))
	}
	if c.Hitboxes.Initial <= 0 || c.Hitboxes.Max < c.Hitboxes.Initial {
		errs = append(errs, fmt.Errorf("hitboxes initial %d / max %d invalid", c.Hitboxes.Initial, c.Hitboxes.Max))
	}
	if c.Timing.Reload < 0 || c.Timing.Victory < 0 {
		errs = append(errs, fmt.Errorf("timing.reload and timing.victory must not be negative"))
	}

	return errors.Join(errs...)
}
