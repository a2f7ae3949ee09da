package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

func TestNewHitboxRegistry_InvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		max      int
		wantLive bool
	}{
		{"default", DefaultHitboxCapacity, DefaultMaxHitboxCapacity, true},
		{"zero initial", 0, 10, false},
		{"max below initial", 8, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewHitboxRegistry(tt.initial, tt.max, discardLogger())
			assert.Equal(t, tt.wantLive, reg.Enabled())
		})
	}
}

func TestHitboxRegistry_DisabledIsNoop(t *testing.T) {
	reg := NewHitboxRegistry(0, 0, discardLogger())

	rng := reg.ExtractFromGeometry(createTestEnemyModel("5"), entity.PrefixEnemy, entity.HitboxEnemy)

	assert.True(t, rng.Empty())
	hit, _ := reg.CheckPoint(entity.Vec3{}, entity.HitboxEnemy)
	assert.False(t, hit)
}

func TestHitboxRegistry_ExtractFromGeometry(t *testing.T) {
	reg := newTestRegistry()
	model := entity.NewModel("mixed", 1, []entity.ModelObject{
		cube("PLAYER_body_3", 10),
		cube("ENEMY_a_2", 5),
		cube("ENEMY_b", 5),
		cube("DECOR", 5),
	})

	rng := reg.ExtractFromGeometry(model, entity.PrefixEnemy, entity.HitboxEnemy)

	assert.Equal(t, entity.BoxRange{Start: 0, Count: 2}, rng)
	require.Equal(t, 2, reg.Len())
	box, ok := reg.Box(0)
	require.True(t, ok)
	assert.Equal(t, "ENEMY_a_2", box.Name)
	assert.Equal(t, entity.HitboxEnemy, box.Type)
	assert.True(t, box.Active)
}

func TestHitboxRegistry_ExtractWithOffset(t *testing.T) {
	reg := newTestRegistry()
	off := entity.Vec3{X: 100}

	reg.ExtractFromGeometry(createTestPlayerModel(), entity.PrefixPlayer, entity.HitboxPlayer, off)

	hit, name := reg.CheckPoint(entity.Vec3{X: 110}, entity.HitboxPlayer)
	assert.True(t, hit)
	assert.Equal(t, "PLAYER_mecha_3", name)
	hit, _ = reg.CheckPoint(entity.Vec3{}, entity.HitboxPlayer)
	assert.False(t, hit)
}

func TestHitboxRegistry_RangesAreNeverReused(t *testing.T) {
	reg := newTestRegistry()
	model := createTestEnemyModel("5")

	first := reg.ExtractFromGeometry(model, entity.PrefixEnemy, entity.HitboxEnemy)
	reg.SetRangeActive(first, false)
	second := reg.ExtractFromGeometry(model, entity.PrefixEnemy, entity.HitboxEnemy)

	assert.Equal(t, first.End(), second.Start)
	assert.False(t, reg.RangeActive(first))
	assert.True(t, reg.RangeActive(second))
}

func TestHitboxRegistry_GrowsUpToMax(t *testing.T) {
	reg := NewHitboxRegistry(2, 5, discardLogger())
	objects := make([]entity.ModelObject, 8)
	for i := range objects {
		objects[i] = cube(fmt.Sprintf("ENEMY_%d", i), 1)
	}

	rng := reg.ExtractFromGeometry(entity.NewModel("many", 1, objects), entity.PrefixEnemy, entity.HitboxEnemy)

	assert.Equal(t, 5, rng.Count, "range covers only the boxes stored")
	assert.Equal(t, 5, reg.Len())
	assert.Equal(t, 5, reg.Capacity())
}

func TestHitboxRegistry_InactiveBoxNeverHits(t *testing.T) {
	reg := newTestRegistry()
	rng := reg.ExtractFromGeometry(createTestEnemyModel("5"), entity.PrefixEnemy, entity.HitboxEnemy)

	points := []entity.Vec3{{}, {X: 20, Y: 20, Z: 20}, {X: -19, Y: 5, Z: 0}}
	for _, p := range points {
		hit, _ := reg.CheckPoint(p, entity.HitboxEnemy)
		assert.True(t, hit, "active box contains %v", p)
	}

	reg.SetRangeActive(rng, false)
	for _, p := range points {
		hit, _ := reg.CheckPoint(p, entity.HitboxEnemy)
		assert.False(t, hit, "inactive box matched %v", p)
		hit, _ = reg.CheckPointInRange(p, entity.HitboxEnemy, rng)
		assert.False(t, hit)
	}
}

func TestHitboxRegistry_CheckPointFiltersType(t *testing.T) {
	reg := newTestRegistry()
	reg.ExtractFromGeometry(createTestPlayerModel(), entity.PrefixPlayer, entity.HitboxPlayer)

	hit, _ := reg.CheckPoint(entity.Vec3{}, entity.HitboxEnemy)
	assert.False(t, hit)
	hit, _ = reg.CheckPoint(entity.Vec3{}, entity.HitboxPlayer)
	assert.True(t, hit)
}

func TestHitboxRegistry_UpdateBoxRangeIsIdempotent(t *testing.T) {
	reg := newTestRegistry()
	rng := reg.ExtractFromGeometry(createTestEnemyModel("5"), entity.PrefixEnemy, entity.HitboxEnemy)
	tr := entity.NewTransform(entity.Vec3{X: 50, Y: -100, Z: -300}, 2)
	tr.Rotation.Y = 0.3

	reg.UpdateBoxRange(rng, tr)
	once, _ := reg.Box(rng.Start)
	reg.UpdateBoxRange(rng, tr)
	twice, _ := reg.Box(rng.Start)

	assert.Equal(t, once.Min, twice.Min)
	assert.Equal(t, once.Max, twice.Max)
	assert.True(t, twice.Contains(tr.Position))
}

func TestHitboxRegistry_UpdateByType(t *testing.T) {
	reg := newTestRegistry()
	reg.ExtractFromGeometry(createTestPlayerModel(), entity.PrefixPlayer, entity.HitboxPlayer)
	enemy := reg.ExtractFromGeometry(createTestEnemyModel("5"), entity.PrefixEnemy, entity.HitboxEnemy)

	reg.UpdateByType(entity.HitboxPlayer, entity.NewTransform(entity.Vec3{X: 200}, 1))

	hit, _ := reg.CheckPoint(entity.Vec3{X: 200}, entity.HitboxPlayer)
	assert.True(t, hit)
	box, _ := reg.Box(enemy.Start)
	assert.Equal(t, -20.0, box.Min.X, "other types untouched")
}

func TestHitboxRegistry_ByName(t *testing.T) {
	reg := newTestRegistry()
	reg.ExtractFromGeometry(createTestPlayerModel(), entity.PrefixPlayer, entity.HitboxPlayer)

	assert.True(t, reg.UpdateByName("PLAYER_mecha_3", entity.Vec3{Y: 50}))
	assert.False(t, reg.UpdateByName("missing", entity.Vec3{}))
	box, _ := reg.Box(0)
	assert.Equal(t, entity.Vec3{Y: 50}, box.Center())

	assert.Equal(t, 1, reg.DeactivateByName("PLAYER_mecha_3"))
	hit, _ := reg.CheckPoint(entity.Vec3{Y: 50}, entity.HitboxPlayer)
	assert.False(t, hit)
}

func TestHitboxRegistry_Health(t *testing.T) {
	reg := newTestRegistry()
	player := reg.ExtractFromGeometry(createTestPlayerModel(), entity.PrefixPlayer, entity.HitboxPlayer)
	enemy := reg.ExtractFromGeometry(createTestEnemyModel("7"), entity.PrefixEnemy, entity.HitboxEnemy)

	assert.Equal(t, 3, reg.HealthForType(entity.HitboxPlayer))
	assert.Equal(t, 3, reg.HealthForRange(player))
	assert.Equal(t, 7, reg.HealthForRange(enemy))
	assert.Equal(t, 1, reg.HealthForType(entity.HitboxProjectile))
	assert.Equal(t, 1, reg.HealthForRange(entity.BoxRange{Start: 99, Count: 1}))
}
