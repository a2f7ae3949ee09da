package system

import (
	"math"

	"github.com/tanema/gween/ease"
	"github.com/younwookim/skyfall/internal/domain/entity"
)

// Bomber phases
const (
	bomberRetreat = iota
	bomberApproach
	bomberStrafe
	bomberToWave
	bomberWave
)

const bomberScale = 2.5

var (
	bomberSpawn        = entity.Vec3{X: 0, Y: -20, Z: -800}
	bomberRetreatPoint = entity.Vec3{X: 0, Y: 0, Z: -1000}
	bomberAttackPoint  = entity.Vec3{X: 0, Y: -120, Z: -250}
	bomberWavePoint    = entity.Vec3{X: -200, Y: -40, Z: -420}

	// front, left, right, rear
	bomberTurrets = [4]entity.Vec3{
		{X: 0, Y: -10, Z: 60},
		{X: -90, Y: -5, Z: 20},
		{X: 90, Y: -5, Z: 20},
		{X: 0, Y: 5, Z: -40},
	}
)

// BomberScript flies one large bomber through a retreat, dive, strafe and
// sweeping barrage cycle until it is shot down.
type BomberScript struct{}

// NewBomberScript returns the level 2 script
func NewBomberScript() *BomberScript {
	return &BomberScript{}
}

// Name implements LevelScript
func (s *BomberScript) Name() string { return "bomber" }

// Spawn places the bomber once
func (s *BomberScript) Spawn(o *Orchestrator, dt float64) {
	if o.ActiveCount() != 0 || o.WaveCount() != 0 {
		return
	}
	if _, ok := o.Spawn(SpawnSpec{
		Position:       bomberSpawn,
		Scale:          bomberScale,
		Phase:          bomberRetreat,
		ExplosionScale: bomberScale,
	}); !ok {
		return
	}
	o.AddWave()
	o.MarkSpawn()
	o.Animator().Play(ClipSpin, true)
}

// Advance implements LevelScript
func (s *BomberScript) Advance(o *Orchestrator, dt float64) {
	o.forEachActive(func(_ int, e *entity.Enemy) {
		e.PhaseTimer += dt
		t := e.PhaseTimer

		switch e.Phase {
		case bomberRetreat:
			if e.Position().Dist(bomberRetreatPoint) < 20 || t > 3 {
				snapTo(e, bomberRetreatPoint)
				e.EnterPhase(bomberApproach)
				o.Animator().Play(ClipMove, true)
				return
			}
			steerToward(e, bomberRetreatPoint, math.Min(180+60*t, 240))
			integrate(e, dt)

		case bomberApproach:
			if e.Position().Dist(bomberAttackPoint) < 30 {
				e.Velocity = entity.Vec3{}
				e.EnterPhase(bomberStrafe)
				o.Animator().Play(ClipAttack, true)
				return
			}
			p := float32(math.Min(t/2.5, 1))
			steerToward(e, bomberAttackPoint, 280*float64(ease.InOutQuad(p, 0, 1, 1)))
			integrate(e, dt)

		case bomberStrafe:
			e.Velocity = entity.Vec3{X: math.Sin(3*t) * 120, Y: -15 * math.Sin(2*t)}
			integrate(e, dt)
			pos := e.Position()
			pos.X = math.Max(-180, math.Min(180, pos.X))
			e.SetPosition(pos)
			if t >= 4 {
				e.EnterPhase(bomberToWave)
				o.Animator().Play(ClipMove, true)
			}

		case bomberToWave:
			if e.Position().Dist(bomberWavePoint) < 25 {
				e.Velocity = entity.Vec3{}
				e.EnterPhase(bomberWave)
				return
			}
			steerToward(e, bomberWavePoint, math.Max(160*(1-t/2), 80))
			integrate(e, dt)

		case bomberWave:
			pos := e.Position()
			targetX := math.Sin(1.5*t) * 200
			e.Velocity = entity.Vec3{X: (targetX - pos.X) * 3}
			pos.X += e.Velocity.X * dt
			pos.Y = -40 + math.Sin(0.8*t)*15
			pos.Z = bomberWavePoint.Z
			e.SetPosition(pos)
			if t >= 7 {
				e.EnterPhase(bomberRetreat)
				o.Animator().Play(ClipMove, true)
			}
		}
	})
}

// Fire rotates through the turrets while strafing and sweeps a seven shot
// line during the wave pattern.
func (s *BomberScript) Fire(o *Orchestrator, guns Shooter, dt float64) {
	o.forEachActive(func(_ int, e *entity.Enemy) {
		e.ShootTimer += dt

		switch e.Phase {
		case bomberStrafe:
			if e.ShootTimer < 0.15 {
				return
			}
			turret := int(o.Elapsed()*6.67) % len(bomberTurrets)
			guns.Spawn(e.Position().Add(bomberTurrets[turret]), forward, entity.ProjectileEnemy)
			e.ShootTimer = 0

		case bomberWave:
			if e.ShootTimer < 0.4 {
				return
			}
			for j := -3; j <= 3; j++ {
				offset := entity.Vec3{X: float64(j) * 45, Y: -15, Z: 30}
				guns.Spawn(e.Position().Add(offset), fanDirection(float64(j)*0.15), entity.ProjectileEnemy)
			}
			e.ShootTimer = 0
		}
	})
}

// IsComplete implements LevelScript
func (s *BomberScript) IsComplete(o *Orchestrator) bool {
	return o.AllWavesComplete(1)
}
