package system

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/skyfall/internal/domain/entity"
)

// Boss phases
const (
	bossIntro = iota
	bossFan
	bossBarrage
)

const (
	bossSweep         = 240.0
	bossSweepTime     = 2.5 // one side to the other at 0.4/s
	bossFanEvery      = 2.0
	bossStreamEvery   = 0.15
	bossBarrageDelay  = 10.0
	bossBarrageLength = 3.0
	bossRecoverLength = 6.0
	bossExplosion     = 3.0
)

var bossStart = entity.Vec3{X: 0, Y: -100, Z: -300}

// BossScript is the level 4 boss: it sweeps side to side throwing slash
// fans and stops every so often for a straight barrage.
type BossScript struct {
	slot    int
	sweep   *gween.Tween
	right   bool
	side    float64 // sweep progress in [0, 1]
	barrage float64
	spin    float64
}

// NewBossScript returns the level 4 script
func NewBossScript() *BossScript {
	return &BossScript{slot: -1}
}

// Name implements LevelScript
func (s *BossScript) Name() string { return "boss" }

// Init places the boss at the centre of its sweep, moving right
func (s *BossScript) Init(o *Orchestrator) {
	slot, ok := o.Spawn(SpawnSpec{
		Position:       bossStart,
		Scale:          1,
		Phase:          bossIntro,
		ExplosionScale: bossExplosion,
	})
	if !ok {
		return
	}
	s.slot = slot
	s.right = true
	s.sweep = gween.New(0, 1, bossSweepTime, ease.Linear)
	s.sweep.Set(bossSweepTime / 2)
	s.side = 0.5
	s.barrage = bossBarrageDelay
	o.AddWave()
	o.MarkSpawn()
	o.Animator().Play(ClipIdle, true)
}

// Spawn implements LevelScript. The boss is placed by Init.
func (s *BossScript) Spawn(o *Orchestrator, dt float64) {}

// Barraging reports whether the boss is holding still for its barrage
func (s *BossScript) Barraging(e *entity.Enemy) bool {
	return e.Phase == bossBarrage && s.barrage > 0 && s.barrage < bossBarrageLength
}

// SweepProgress returns the side to side position in [0, 1]
func (s *BossScript) SweepProgress() float64 {
	return s.side
}

// Advance implements LevelScript
func (s *BossScript) Advance(o *Orchestrator, dt float64) {
	e := o.Enemy(s.slot)
	if e == nil || !e.Active {
		return
	}

	if e.Phase == bossIntro {
		e.EnterPhase(bossFan)
		o.Animator().Play(ClipMove, true)
	}

	if !s.Barraging(e) {
		s.stepSweep(dt)
	}
	s.spin += dt
	e.SetPosition(entity.Vec3{
		X: (s.side - 0.5) * bossSweep,
		Y: bossStart.Y + math.Sin(1.5*s.spin)*30,
		Z: bossStart.Z,
	})

	switch e.Phase {
	case bossFan:
		s.barrage -= dt
		if s.barrage <= 0 {
			s.barrage = 0
			e.EnterPhase(bossBarrage)
		}
	case bossBarrage:
		s.barrage += dt
		switch {
		case s.barrage < bossBarrageLength:
		case s.barrage < bossRecoverLength:
			if s.barrage > 3.1 && s.barrage < 3.2 {
				o.Animator().Play(ClipMove, true)
			}
		default:
			e.EnterPhase(bossFan)
			o.Animator().Play(ClipMove, true)
			s.barrage = bossBarrageDelay
			e.ShootTimer = 0
		}
	}
}

// stepSweep runs the sweep tween and turns around at either end
func (s *BossScript) stepSweep(dt float64) {
	current, finished := s.sweep.Update(float32(dt))
	s.side = float64(current)
	if !finished {
		return
	}
	s.right = !s.right
	if s.right {
		s.sweep = gween.New(0, 1, bossSweepTime, ease.Linear)
	} else {
		s.sweep = gween.New(1, 0, bossSweepTime, ease.Linear)
	}
}

// Fire implements LevelScript
func (s *BossScript) Fire(o *Orchestrator, guns Shooter, dt float64) {
	e := o.Enemy(s.slot)
	if e == nil || !e.Active {
		return
	}
	e.ShootTimer += dt

	switch e.Phase {
	case bossFan:
		if e.ShootTimer < bossFanEvery {
			return
		}
		if s.side < 0.5 {
			o.Animator().Play(ClipSlashLeft, false)
		} else {
			o.Animator().Play(ClipSlashRight, false)
		}
		muzzle := e.Position().Add(entity.Vec3{Y: 100})
		for i := 0; i < 4; i++ {
			guns.Spawn(muzzle, fanDirection((float64(i)-1.5)*0.3), entity.ProjectileEnemy)
		}
		e.ShootTimer = 0

	case bossBarrage:
		if !s.Barraging(e) {
			return
		}
		if s.barrage < 0.1 {
			o.Animator().Play(ClipSlashBarage, false)
		}
		if e.ShootTimer >= bossStreamEvery {
			guns.Spawn(e.Position(), forward, entity.ProjectileEnemy)
			e.ShootTimer = 0
		}
	}
}

// IsComplete implements LevelScript
func (s *BossScript) IsComplete(o *Orchestrator) bool {
	return o.AllWavesComplete(1)
}
