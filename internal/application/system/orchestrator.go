package system

import (
	"log"

	"github.com/younwookim/skyfall/internal/domain/entity"
)

// MaxEnemies is the fixed number of enemy slots per level
const MaxEnemies = 16

// LevelScript drives spawn timing and movement phases for one level.
// The orchestrator owns the enemy slots and the shared hit, health and
// explosion handling; scripts only decide where enemies go and when they
// fire.
type LevelScript interface {
	// Name identifies the script in logs
	Name() string
	// Spawn creates new enemies when the script's timing says so
	Spawn(o *Orchestrator, dt float64)
	// Advance moves active enemies and changes their phases
	Advance(o *Orchestrator, dt float64)
	// Fire spawns enemy projectiles
	Fire(o *Orchestrator, guns Shooter, dt float64)
	// IsComplete reports whether the level's enemies are all dealt with
	IsComplete(o *Orchestrator) bool
}

// ScriptInitializer is implemented by scripts that place enemies as soon
// as the level starts, such as bosses.
type ScriptInitializer interface {
	Init(o *Orchestrator)
}

// SpawnSpec describes a new enemy
type SpawnSpec struct {
	Position       entity.Vec3
	Velocity       entity.Vec3
	Target         entity.Vec3
	HasTarget      bool
	Scale          float64
	Phase          int
	Side           float64
	ExplosionScale float64
}

// Orchestrator runs a level script over a fixed array of enemy slots
type Orchestrator struct {
	enemies [MaxEnemies]entity.Enemy
	reg     *HitboxRegistry
	model   entity.ObjectSource
	script  LevelScript
	anim    Animator
	logger  *log.Logger

	explosionDuration float64

	elapsed   float64
	lastSpawn float64
	active    int
	waves     int
}

// OrchestratorOption configures an Orchestrator
type OrchestratorOption func(*Orchestrator)

// WithLogger sets the logger
func WithLogger(l *log.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAnimator sets the animation player scripts report clips to
func WithAnimator(a Animator) OrchestratorOption {
	return func(o *Orchestrator) {
		if a != nil {
			o.anim = a
		}
	}
}

// WithExplosionDuration overrides how long explosions are displayed
func WithExplosionDuration(d float64) OrchestratorOption {
	return func(o *Orchestrator) {
		if d > 0 {
			o.explosionDuration = d
		}
	}
}

// NewOrchestrator creates an orchestrator that spawns enemies with the
// ENEMY_ boxes of model and drives them with script.
func NewOrchestrator(reg *HitboxRegistry, model entity.ObjectSource, script LevelScript, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		reg:               reg,
		model:             model,
		script:            script,
		anim:              NopAnimator{},
		logger:            log.Default(),
		explosionDuration: entity.DefaultExplosionDuration,
	}
	for _, opt := range opts {
		opt(o)
	}
	for i := range o.enemies {
		o.enemies[i].Explosion.Position = entity.ExplosionParking
	}
	if s, ok := script.(ScriptInitializer); ok {
		s.Init(o)
	}
	return o
}

// Spawn places a new enemy in the first free slot. Its hitboxes are a
// freshly reserved range and its health comes from the first box name.
func (o *Orchestrator) Spawn(spec SpawnSpec) (int, bool) {
	slot := -1
	for i := range o.enemies {
		if o.enemies[i].Free() {
			slot = i
			break
		}
	}
	if slot < 0 {
		o.logger.Printf("[Enemy] all %d slots busy, spawn dropped", MaxEnemies)
		return -1, false
	}

	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	expScale := spec.ExplosionScale
	if expScale <= 0 {
		expScale = 1
	}

	var boxes entity.BoxRange
	health := 1
	if o.reg != nil {
		boxes = o.reg.ExtractFromGeometry(o.model, entity.PrefixEnemy, entity.HitboxEnemy)
		health = o.reg.HealthForRange(boxes)
	}

	e := &o.enemies[slot]
	*e = entity.Enemy{
		Transform: entity.NewTransform(spec.Position, scale),
		Vitals:    entity.NewVitals(health),
		Velocity:  spec.Velocity,
		Target:    spec.Target,
		HasTarget: spec.HasTarget,
		Phase:     spec.Phase,
		Side:      spec.Side,
		Boxes:     boxes,
		Active:    true,
		Explosion: entity.Explosion{Scale: expScale, Position: entity.ExplosionParking},
	}
	if o.reg != nil {
		o.reg.UpdateBoxRange(boxes, e.Transform)
	}
	o.active++

	o.logger.Printf("[Enemy] spawned slot %d at (%.0f, %.0f, %.0f) hp=%d boxes=%d",
		slot, spec.Position.X, spec.Position.Y, spec.Position.Z, health, boxes.Count)
	return slot, true
}

// Update advances the level by one frame: spawning, movement, shared
// bookkeeping, enemy fire and explosions. guns may be nil.
func (o *Orchestrator) Update(dt float64, guns Shooter) {
	dt = ClampDelta(dt)
	o.elapsed += dt

	if o.script != nil {
		o.script.Spawn(o, dt)
		o.script.Advance(o, dt)
	}

	for i := range o.enemies {
		e := &o.enemies[i]
		if !e.Active {
			continue
		}
		if e.Position().IsNaN() || e.Velocity.IsNaN() {
			o.logger.Printf("[Enemy] slot %d position invalid, retired", i)
			o.Retire(i)
			continue
		}
		e.Tick(dt)
		if o.reg != nil {
			o.reg.UpdateBoxRange(e.Boxes, e.Transform)
		}
	}

	if o.script != nil && guns != nil {
		o.script.Fire(o, guns, dt)
	}

	for i := range o.enemies {
		o.enemies[i].TickExplosion(dt)
	}
}

// CheckHit tests pos against the hitboxes of active enemies only. The
// first enemy hit takes damage; on death it is deactivated along with its
// boxes and its explosion is armed.
func (o *Orchestrator) CheckHit(pos entity.Vec3, damage int) (slot int, killed bool, ok bool) {
	if o.reg == nil {
		return -1, false, false
	}
	for i := range o.enemies {
		e := &o.enemies[i]
		if !e.Active {
			continue
		}
		if hit, _ := o.reg.CheckPointInRange(pos, entity.HitboxEnemy, e.Boxes); !hit {
			continue
		}

		if DamageEnemy(o.reg, e, damage) {
			e.Explode(o.explosionDuration, e.Explosion.Scale)
			o.active--
			o.logger.Printf("[Enemy] slot %d destroyed", i)
			return i, true, true
		}
		return i, false, true
	}
	return -1, false, false
}

// Retire removes an enemy that left the playable volume. No explosion.
func (o *Orchestrator) Retire(slot int) {
	if slot < 0 || slot >= MaxEnemies {
		return
	}
	e := &o.enemies[slot]
	if !e.Active {
		return
	}
	e.Active = false
	if o.reg != nil {
		o.reg.SetRangeActive(e.Boxes, false)
	}
	o.active--
}

// AllWavesComplete reports whether maxWaves waves have spawned and no
// enemy remains active.
func (o *Orchestrator) AllWavesComplete(maxWaves int) bool {
	return o.waves >= maxWaves && o.active == 0
}

// IsComplete asks the level script whether the level is cleared
func (o *Orchestrator) IsComplete() bool {
	if o.script == nil {
		return o.active == 0
	}
	return o.script.IsComplete(o)
}

// ActiveCount returns the number of active enemies
func (o *Orchestrator) ActiveCount() int {
	return o.active
}

// WaveCount returns the number of waves spawned so far
func (o *Orchestrator) WaveCount() int {
	return o.waves
}

// AddWave counts a spawned wave
func (o *Orchestrator) AddWave() {
	o.waves++
}

// Elapsed returns the seconds since the level started
func (o *Orchestrator) Elapsed() float64 {
	return o.elapsed
}

// LastSpawn returns the elapsed time of the last wave spawn
func (o *Orchestrator) LastSpawn() float64 {
	return o.lastSpawn
}

// MarkSpawn records the current time as the last wave spawn
func (o *Orchestrator) MarkSpawn() {
	o.lastSpawn = o.elapsed
}

// Enemy returns the enemy in slot i, or nil
func (o *Orchestrator) Enemy(i int) *entity.Enemy {
	if i < 0 || i >= MaxEnemies {
		return nil
	}
	return &o.enemies[i]
}

// Capacity returns the number of enemy slots
func (o *Orchestrator) Capacity() int {
	return MaxEnemies
}

// Script returns the level script
func (o *Orchestrator) Script() LevelScript {
	return o.script
}

// Animator returns the animation player scripts report clips to
func (o *Orchestrator) Animator() Animator {
	return o.anim
}

// forEachActive calls fn for every active enemy
func (o *Orchestrator) forEachActive(fn func(i int, e *entity.Enemy)) {
	for i := range o.enemies {
		if o.enemies[i].Active {
			fn(i, &o.enemies[i])
		}
	}
}
