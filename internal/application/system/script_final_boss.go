package system

import (
	"math"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// Final boss phases
const (
	finalMachineGun = iota
	finalCannon
)

const (
	finalScale       = 1.2
	finalExplosion   = 4.0
	finalGunEvery    = 0.1
	finalCurveStep   = 0.08
	finalCurveLimit  = 0.6
	finalGunLength   = 8.0
	finalCannonLen   = 3.0
	finalFanSpread   = 0.4
	finalMuzzleRaise = 100.0
)

// finalVolleys are the cannon phase times at which a fan is fired
var finalVolleys = [...]float64{0.5, 1.5}

// FinalBossScript alternates a sweeping machine gun with cannon fans
type FinalBossScript struct {
	slot    int
	bob     float64
	curve   float64
	curveUp bool
	volleys int
	gunning bool
}

// NewFinalBossScript returns the level 5 script
func NewFinalBossScript() *FinalBossScript {
	return &FinalBossScript{slot: -1}
}

// Name implements LevelScript
func (s *FinalBossScript) Name() string { return "final" }

// Init places the boss
func (s *FinalBossScript) Init(o *Orchestrator) {
	slot, ok := o.Spawn(SpawnSpec{
		Position:       bossStart,
		Scale:          finalScale,
		Phase:          finalMachineGun,
		ExplosionScale: finalExplosion,
	})
	if !ok {
		return
	}
	s.slot = slot
	o.AddWave()
	o.MarkSpawn()
	o.Animator().Play(ClipMove, true)
}

// Spawn implements LevelScript. The boss is placed by Init.
func (s *FinalBossScript) Spawn(o *Orchestrator, dt float64) {}

// Curve returns the machine gun's current aim offset in radians
func (s *FinalBossScript) Curve() float64 {
	return s.curve
}

// Advance bobs the boss and switches between its two attacks
func (s *FinalBossScript) Advance(o *Orchestrator, dt float64) {
	e := o.Enemy(s.slot)
	if e == nil || !e.Active {
		return
	}

	s.bob += dt
	pos := e.Position()
	pos.Y = bossStart.Y + math.Sin(1.2*s.bob)*40
	e.SetPosition(pos)

	e.PhaseTimer += dt
	switch e.Phase {
	case finalMachineGun:
		if e.PhaseTimer >= finalGunLength {
			e.EnterPhase(finalCannon)
			e.ShootTimer = 0
			s.volleys = 0
			s.gunning = false
			o.Animator().Play(ClipCannon, false)
		}
	case finalCannon:
		if e.PhaseTimer >= finalCannonLen {
			e.EnterPhase(finalMachineGun)
			o.Animator().Play(ClipMove, true)
		}
	}
}

// Fire implements LevelScript
func (s *FinalBossScript) Fire(o *Orchestrator, guns Shooter, dt float64) {
	e := o.Enemy(s.slot)
	if e == nil || !e.Active {
		return
	}
	muzzle := e.Position().Add(entity.Vec3{Y: finalMuzzleRaise})

	switch e.Phase {
	case finalMachineGun:
		if !s.gunning && e.PhaseTimer < 0.1 {
			o.Animator().Play(ClipMachineGun, true)
			s.gunning = true
			s.curve = 0
			s.curveUp = true
			e.ShootTimer = 0
		}
		e.ShootTimer += dt
		if e.ShootTimer < finalGunEvery {
			return
		}
		e.ShootTimer = 0
		if s.curveUp {
			s.curve += finalCurveStep
		} else {
			s.curve -= finalCurveStep
		}
		if s.curve >= finalCurveLimit {
			s.curveUp = false
		} else if s.curve <= -finalCurveLimit {
			s.curveUp = true
		}
		guns.Spawn(muzzle, fanDirection(s.curve), entity.ProjectileEnemy)

	case finalCannon:
		if s.volleys >= len(finalVolleys) || e.PhaseTimer < finalVolleys[s.volleys] {
			return
		}
		for i := 0; i < 3; i++ {
			guns.Spawn(muzzle, fanDirection(float64(i-1)*finalFanSpread), entity.ProjectileEnemy)
		}
		s.volleys++
	}
}

// IsComplete implements LevelScript
func (s *FinalBossScript) IsComplete(o *Orchestrator) bool {
	return o.AllWavesComplete(1)
}
