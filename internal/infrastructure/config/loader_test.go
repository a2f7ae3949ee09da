package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

const configDir = "../../../cmd/skyfall/configs"

func TestLoader_LoadCombat(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadCombat()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 1000.0, cfg.Projectile.Speed)
	assert.Equal(t, 3.0, cfg.Projectile.Lifetime)
	assert.Equal(t, 0.2, cfg.Projectile.Cooldowns.Normal)
	assert.Equal(t, 1.5, cfg.Projectile.Cooldowns.Slash)
	assert.Equal(t, 0.0, cfg.Projectile.Cooldowns.Enemy)
	assert.Equal(t, 250.0, cfg.Player.Speed)
	assert.Equal(t, -200.0, cfg.Player.Start.Y)
	assert.Equal(t, -150.0, cfg.Player.Bounds.Min.X)
	assert.Equal(t, 5.0, cfg.Timing.Reload)
	assert.Equal(t, 1024, cfg.Hitboxes.Max)
}

func TestLoader_LoadGeometry(t *testing.T) {
	loader := NewLoader(configDir)

	tests := []struct {
		name       string
		prefix     string
		wantBoxes  int
		wantHealth int
	}{
		{"player", entity.PrefixPlayer, 1, 3},
		{"fighter", entity.PrefixEnemy, 1, 2},
		{"bomber", entity.PrefixEnemy, 2, 10},
		{"boss", entity.PrefixEnemy, 1, 50},
		{"final", entity.PrefixEnemy, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := loader.LoadGeometry(tt.name)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBoxes, model.CountWithPrefix(tt.prefix))
			first := model.Objects()[0]
			assert.Equal(t, tt.wantHealth, entity.ParseHealthFromName(first.Name))
		})
	}
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Combat)
	assert.Len(t, cfg.Models, len(ModelNames))
	assert.Equal(t, 2.5, cfg.Models["bomber"].Scale)
}

func TestFSLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		load    func(l *Loader) error
		wantErr string
	}{
		{
			name:    "missing combat",
			files:   fstest.MapFS{},
			load:    func(l *Loader) error { _, err := l.LoadCombat(); return err },
			wantErr: "failed to read combat.json",
		},
		{
			name:    "malformed combat",
			files:   fstest.MapFS{"combat.json": {Data: []byte("{")}},
			load:    func(l *Loader) error { _, err := l.LoadCombat(); return err },
			wantErr: "failed to parse combat.json",
		},
		{
			name:    "invalid combat",
			files:   fstest.MapFS{"combat.json": {Data: []byte(`{"projectile":{"speed":0}}`)}},
			load:    func(l *Loader) error { _, err := l.LoadCombat(); return err },
			wantErr: "projectile.speed must be positive",
		},
		{
			name:    "missing model",
			files:   fstest.MapFS{},
			load:    func(l *Loader) error { _, err := l.LoadGeometry("ghost"); return err },
			wantErr: "failed to read model ghost",
		},
		{
			name:    "malformed model",
			files:   fstest.MapFS{"models/bad.yaml": {Data: []byte("objects: [")}},
			load:    func(l *Loader) error { _, err := l.LoadGeometry("bad"); return err },
			wantErr: "failed to parse model bad",
		},
		{
			name: "inverted box",
			files: fstest.MapFS{"models/inv.yaml": {Data: []byte(`
name: inv
objects:
  - name: ENEMY_x
    min: { x: 10, y: 0, z: 0 }
    max: { x: -10, y: 1, z: 1 }
`)}},
			load:    func(l *Loader) error { _, err := l.LoadGeometry("inv"); return err },
			wantErr: "ENEMY_x: min exceeds max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(NewFSLoader(tt.files, "."))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFSLoader_LoadGeometry(t *testing.T) {
	files := fstest.MapFS{"models/drone.yaml": {Data: []byte(`
name: drone
objects:
  - name: ENEMY_drone_4
    min: { x: -5, y: -5, z: -5 }
    max: { x: 5, y: 5, z: 5 }
  - name: PROP_rotor
    min: { x: -8, y: 5, z: -8 }
    max: { x: 8, y: 6, z: 8 }
`)}}

	model, err := NewFSLoader(files, ".").LoadGeometry("drone")
	require.NoError(t, err)

	assert.Equal(t, "drone", model.Name)
	assert.Equal(t, 1.0, model.Scale, "missing scale defaults to 1")
	require.Len(t, model.Objects(), 2)
	assert.Equal(t, entity.Vec3{X: 8, Y: 6, Z: 8}, model.Objects()[1].Max)
}

func TestCombatConfig_Validate(t *testing.T) {
	valid := func() CombatConfig {
		return CombatConfig{
			Projectile: ProjectileConfig{Speed: 1000, Lifetime: 3},
			Player: PlayerConfig{
				Speed:  250,
				Bounds: BoundsConfig{Min: Vec3Config{X: -1}, Max: Vec3Config{X: 1}},
			},
			Hitboxes: HitboxConfig{Initial: 16, Max: 32},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *CombatConfig)
		wantErr string
	}{
		{"valid", func(c *CombatConfig) {}, ""},
		{"negative cooldown", func(c *CombatConfig) { c.Projectile.Cooldowns.Slash = -1 }, "cooldowns"},
		{"player speed", func(c *CombatConfig) { c.Player.Speed = 0 }, "player.speed"},
		{"bounds", func(c *CombatConfig) { c.Player.Bounds.Min.X = 5 }, "player.bounds"},
		{"hitboxes", func(c *CombatConfig) { c.Hitboxes.Max = 8 }, "hitboxes"},
		{"lifetime", func(c *CombatConfig) { c.Projectile.Lifetime = 0 }, "projectile.lifetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
