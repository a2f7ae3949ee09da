package system

import (
	"io"
	"log"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRegistry() *HitboxRegistry {
	return NewHitboxRegistry(DefaultHitboxCapacity, DefaultMaxHitboxCapacity, discardLogger())
}

// cube returns an object spanning -half..half on every axis
func cube(name string, half float64) entity.ModelObject {
	return entity.ModelObject{
		Name: name,
		Min:  entity.Vec3{X: -half, Y: -half, Z: -half},
		Max:  entity.Vec3{X: half, Y: half, Z: half},
	}
}

func createTestEnemyModel(health string) *entity.Model {
	return entity.NewModel("fighter", 1, []entity.ModelObject{
		cube("ENEMY_fighter_"+health, 20),
		cube("TRIM_wing", 40),
	})
}

func createTestPlayerModel() *entity.Model {
	return entity.NewModel("mecha", 1, []entity.ModelObject{
		cube("PLAYER_mecha_3", 15),
	})
}

func createTestPoolConfig() PoolConfig {
	return PoolConfig{
		Speed:     1000,
		Lifetime:  3,
		Cooldowns: [entity.ProjectileTypeCount]float64{0.2, 1.5, 0},
	}
}

type shot struct {
	pos, dir entity.Vec3
	typ      entity.ProjectileType
}

// shotRecorder is a Shooter that remembers every request
type shotRecorder struct {
	shots []shot
}

func (s *shotRecorder) Spawn(pos, dir entity.Vec3, typ entity.ProjectileType) bool {
	s.shots = append(s.shots, shot{pos: pos, dir: dir, typ: typ})
	return true
}

// runFor steps o at 60 fps for the given number of seconds
func runFor(o *Orchestrator, guns Shooter, seconds float64) {
	frames := int(seconds * 60)
	for i := 0; i < frames; i++ {
		o.Update(NominalDelta, guns)
	}
}
