package system

import (
	"math"

	"github.com/tanema/gween/ease"
	"github.com/younwookim/skyfall/internal/domain/entity"
)

// Wave phases
const (
	wavePhaseApproach = iota
	wavePhaseHold
	wavePhaseExit
)

const (
	waveInterval    = 5.0
	waveSpeed       = 200.0
	waveArriveDist  = 10.0
	waveEaseRange   = 600.0
	waveTurnRate    = 2.0
	waveHoldTime    = 4.0
	waveFireEvery   = 1.0
	waveExitRadius  = 600.0
	waveExitDepth   = -600.0
	waveMaxExitRate = 2.5
)

// DefaultWaveCount is how many formations level 1 sends
const DefaultWaveCount = 5

// waveSlot is one ship of a formation
type waveSlot struct {
	pos, vel, target entity.Vec3
}

// waveFormations are the three layouts cycled by wave number
var waveFormations = [3][3]waveSlot{
	{
		{entity.Vec3{X: 300, Y: 50, Z: -400}, entity.Vec3{X: -120, Y: -80, Z: 100}, entity.Vec3{X: -100, Y: -90, Z: -250}},
		{entity.Vec3{X: 350, Y: 20, Z: -450}, entity.Vec3{X: -130, Y: -70, Z: 110}, entity.Vec3{X: 0, Y: -100, Z: -240}},
		{entity.Vec3{X: 400, Y: -10, Z: -480}, entity.Vec3{X: -140, Y: -60, Z: 120}, entity.Vec3{X: 100, Y: -110, Z: -230}},
	},
	{
		{entity.Vec3{X: -300, Y: 60, Z: -420}, entity.Vec3{X: 110, Y: -85, Z: 105}, entity.Vec3{X: 100, Y: -85, Z: -255}},
		{entity.Vec3{X: -350, Y: 30, Z: -460}, entity.Vec3{X: 125, Y: -75, Z: 115}, entity.Vec3{X: 0, Y: -100, Z: -245}},
		{entity.Vec3{X: -380, Y: 0, Z: -490}, entity.Vec3{X: 135, Y: -65, Z: 125}, entity.Vec3{X: -100, Y: -115, Z: -235}},
	},
	{
		{entity.Vec3{X: -400, Y: -50, Z: -350}, entity.Vec3{X: 130, Y: -30, Z: 90}, entity.Vec3{X: -80, Y: -95, Z: -240}},
		{entity.Vec3{X: 0, Y: 80, Z: -500}, entity.Vec3{X: 0, Y: -90, Z: 130}, entity.Vec3{X: 0, Y: -100, Z: -250}},
		{entity.Vec3{X: 400, Y: -50, Z: -350}, entity.Vec3{X: -130, Y: -30, Z: 90}, entity.Vec3{X: 80, Y: -95, Z: -240}},
	},
}

// WaveScript flies formations of three into position, holds them there
// while they fire, then sends them off-screen.
type WaveScript struct {
	// MaxWaves is the number of formations sent before the level can end
	MaxWaves int
	// Curved eases the approach and banks toward the target instead of
	// flying straight at it
	Curved bool
}

// NewWaveScript returns the curved level 1 script
func NewWaveScript() *WaveScript {
	return &WaveScript{MaxWaves: DefaultWaveCount, Curved: true}
}

// Name implements LevelScript
func (s *WaveScript) Name() string {
	if s.Curved {
		return "waves"
	}
	return "formation"
}

// Spawn sends the next formation once the previous one is gone
func (s *WaveScript) Spawn(o *Orchestrator, dt float64) {
	if o.WaveCount() >= s.MaxWaves || o.ActiveCount() != 0 {
		return
	}
	if o.Elapsed()-o.LastSpawn() <= waveInterval {
		return
	}

	for _, slot := range waveFormations[o.WaveCount()%len(waveFormations)] {
		o.Spawn(SpawnSpec{
			Position:  slot.pos,
			Velocity:  slot.vel,
			Target:    slot.target,
			HasTarget: true,
			Scale:     1,
			Phase:     wavePhaseApproach,
		})
	}
	o.AddWave()
	o.MarkSpawn()
}

// Advance implements LevelScript
func (s *WaveScript) Advance(o *Orchestrator, dt float64) {
	o.forEachActive(func(i int, e *entity.Enemy) {
		e.PhaseTimer += dt

		switch e.Phase {
		case wavePhaseApproach:
			s.approach(e, dt)
		case wavePhaseHold:
			if e.PhaseTimer > waveHoldTime {
				vx := -waveSpeed
				if e.Position().X > 0 {
					vx = waveSpeed
				}
				e.Velocity = entity.Vec3{X: vx, Y: -100, Z: -150}
				e.EnterPhase(wavePhaseExit)
			}
		case wavePhaseExit:
			rate := math.Min(1+e.PhaseTimer*0.8, waveMaxExitRate)
			e.SetPosition(e.Position().Add(e.Velocity.Scale(rate * dt)))

			p := e.Position()
			if math.Hypot(p.X, p.Y) > waveExitRadius || p.Z < waveExitDepth {
				o.Retire(i)
			}
		}
	})
}

func (s *WaveScript) approach(e *entity.Enemy, dt float64) {
	toTarget := e.Target.Sub(e.Position())
	dist := toTarget.Len()
	if dist < waveArriveDist {
		snapTo(e, e.Target)
		e.EnterPhase(wavePhaseHold)
		return
	}
	desired, _ := toTarget.Normalize()

	if !s.Curved {
		e.Velocity = desired.Scale(waveSpeed)
		integrate(e, dt)
		return
	}

	progress := clamp01(1 - dist/waveEaseRange)
	eased := float64(ease.OutQuad(float32(progress), 0, 1, 1))
	speed := waveSpeed * (0.3 + (1-eased)*0.7)

	dir := desired
	if e.Velocity.Len() > 0.01 {
		current, _ := e.Velocity.Normalize()
		blended := current.Add(desired.Sub(current).Scale(waveTurnRate * dt))
		if blended.Len() > 0.01 {
			dir, _ = blended.Normalize()
		}
	}
	e.Velocity = dir.Scale(speed)
	integrate(e, dt)
}

// Fire shoots straight ahead once a second while approaching or holding
func (s *WaveScript) Fire(o *Orchestrator, guns Shooter, dt float64) {
	o.forEachActive(func(_ int, e *entity.Enemy) {
		if e.Phase == wavePhaseExit {
			return
		}
		e.ShootTimer += dt
		if e.ShootTimer >= waveFireEvery {
			guns.Spawn(e.Position(), forward, entity.ProjectileEnemy)
			e.ShootTimer = 0
		}
	})
}

// IsComplete implements LevelScript
func (s *WaveScript) IsComplete(o *Orchestrator) bool {
	return o.AllWavesComplete(s.MaxWaves)
}
