package system

import (
	"math"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

const (
	zigzagInterval  = 1.2
	zigzagFireEvery = 0.8
	zigzagExitZ     = 100.0
)

// DefaultZigzagCount is how many fighters level 3 sends
const DefaultZigzagCount = 15

// ZigzagScript sends single fighters from alternating sides that weave
// toward the camera.
type ZigzagScript struct {
	MaxWaves int
}

// NewZigzagScript returns the level 3 script
func NewZigzagScript() *ZigzagScript {
	return &ZigzagScript{MaxWaves: DefaultZigzagCount}
}

// Name implements LevelScript
func (s *ZigzagScript) Name() string { return "zigzag" }

// Spawn releases one fighter per interval. Every fighter counts as a wave.
func (s *ZigzagScript) Spawn(o *Orchestrator, dt float64) {
	if o.WaveCount() >= s.MaxWaves || o.Elapsed()-o.LastSpawn() <= zigzagInterval {
		return
	}

	side := 1.0
	if o.WaveCount()%2 == 0 {
		side = -1
	}
	o.Spawn(SpawnSpec{
		Position: entity.Vec3{X: 150 * side, Y: -100, Z: -400},
		Velocity: entity.Vec3{X: -40 * side, Z: 60},
		Scale:    1,
		Side:     side,
	})
	o.AddWave()
	o.MarkSpawn()
}

// Advance implements LevelScript
func (s *ZigzagScript) Advance(o *Orchestrator, dt float64) {
	o.forEachActive(func(i int, e *entity.Enemy) {
		integrate(e, dt)
		pos := e.Position()
		pos.X += math.Sin(e.Age*3) * 50 * dt
		e.SetPosition(pos)
		if pos.Z > zigzagExitZ {
			o.Retire(i)
		}
	})
}

// Fire implements LevelScript
func (s *ZigzagScript) Fire(o *Orchestrator, guns Shooter, dt float64) {
	o.forEachActive(func(_ int, e *entity.Enemy) {
		e.ShootTimer += dt
		if e.ShootTimer >= zigzagFireEvery {
			guns.Spawn(e.Position(), forward, entity.ProjectileEnemy)
			e.ShootTimer = 0
		}
	})
}

// IsComplete implements LevelScript
func (s *ZigzagScript) IsComplete(o *Orchestrator) bool {
	return o.AllWavesComplete(s.MaxWaves)
}
