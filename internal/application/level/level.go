package level

import (
	"fmt"
	"log"

	"github.com/younwookim/skyfall/internal/application/state"
	"github.com/younwookim/skyfall/internal/application/system"
	"github.com/younwookim/skyfall/internal/domain/entity"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
)

// Outcome tells the host what to do after a level update
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReload
	OutcomeAdvance
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeReload:
		return "Reload"
	case OutcomeAdvance:
		return "Advance"
	default:
		return "Unknown"
	}
}

// DefaultVictoryDelay is how long the victory pose holds before advancing
const DefaultVictoryDelay = 6.0

// Assets are the models a level is built from, by name
type Assets struct {
	Models map[string]entity.ObjectSource
}

// AssetsFrom collects the loaded models of cfg
func AssetsFrom(cfg *config.GameConfig) Assets {
	a := Assets{Models: make(map[string]entity.ObjectSource, len(cfg.Models))}
	for name, m := range cfg.Models {
		a.Models[name] = m
	}
	return a
}

// Stats is a snapshot of a level for logging and the debug overlay
type Stats struct {
	Elapsed       float64
	Waves         int
	ActiveEnemies int
	Projectiles   int
	PlayerHealth  int
	State         state.LevelState
}

// Level runs the combat core for one level: it owns the hitbox registry,
// the projectile pool, the enemy orchestrator and the player.
type Level struct {
	def    Definition
	reg    *system.HitboxRegistry
	pool   *system.ProjectilePool
	orch   *system.Orchestrator
	ship   *system.PlayerController
	player *entity.PlayerHealth
	boxes  entity.BoxRange

	shipAnim  system.Animator
	enemyAnim system.Animator
	logger    *log.Logger

	state         state.LevelState
	victoryDelay  float64
	victoryTimer  float64
	enemyHitTimer float64
	elapsed       float64
}

// Option configures a Level
type Option func(*Level)

// WithLogger sets the logger shared by every component of the level
func WithLogger(l *log.Logger) Option {
	return func(lv *Level) {
		if l != nil {
			lv.logger = l
		}
	}
}

// WithShipAnimator sets the animation player of the player's model
func WithShipAnimator(a system.Animator) Option {
	return func(lv *Level) {
		if a != nil {
			lv.shipAnim = a
		}
	}
}

// WithEnemyAnimator sets the animation player of the enemy model
func WithEnemyAnimator(a system.Animator) Option {
	return func(lv *Level) {
		if a != nil {
			lv.enemyAnim = a
		}
	}
}

// New builds a level from its definition, models and combat settings
func New(def Definition, assets Assets, cfg *config.CombatConfig, opts ...Option) (*Level, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to build level %d: %w", def.Number, ErrMissingConfig)
	}
	if def.NewScript == nil {
		return nil, fmt.Errorf("failed to build level %d: %w", def.Number, ErrUnknownLevel)
	}
	playerModel, ok := assets.Models[PlayerModel]
	if !ok || playerModel == nil {
		return nil, fmt.Errorf("failed to build level %d: %w: %s", def.Number, ErrMissingModel, PlayerModel)
	}
	enemyModel, ok := assets.Models[def.EnemyModel]
	if !ok || enemyModel == nil {
		return nil, fmt.Errorf("failed to build level %d: %w: %s", def.Number, ErrMissingModel, def.EnemyModel)
	}

	lv := &Level{
		def:          def,
		shipAnim:     system.NopAnimator{},
		enemyAnim:    system.NopAnimator{},
		logger:       log.Default(),
		victoryDelay: DefaultVictoryDelay,
	}
	for _, opt := range opts {
		opt(lv)
	}
	if cfg.Timing.Victory > 0 {
		lv.victoryDelay = cfg.Timing.Victory
	}

	lv.reg = system.NewHitboxRegistry(cfg.Hitboxes.Initial, cfg.Hitboxes.Max, lv.logger)
	lv.boxes = lv.reg.ExtractFromGeometry(playerModel, entity.PrefixPlayer, entity.HitboxPlayer)
	if lv.boxes.Empty() {
		return nil, fmt.Errorf("failed to build level %d: %w", def.Number, ErrNoPlayerHitbox)
	}

	lv.player = entity.NewPlayerHealth(lv.reg.HealthForRange(lv.boxes))
	if cfg.Timing.Flash > 0 {
		lv.player.FlashDuration = cfg.Timing.Flash
	}
	if cfg.Timing.Hit > 0 {
		lv.player.HitDuration = cfg.Timing.Hit
	}
	if cfg.Timing.Reload > 0 {
		lv.player.ReloadDelay = cfg.Timing.Reload
	}

	lv.pool = system.NewProjectilePool(system.PoolConfig{
		Speed:    cfg.Projectile.Speed,
		Lifetime: cfg.Projectile.Lifetime,
		Cooldowns: [entity.ProjectileTypeCount]float64{
			entity.ProjectileNormal: cfg.Projectile.Cooldowns.Normal,
			entity.ProjectileSlash:  cfg.Projectile.Cooldowns.Slash,
			entity.ProjectileEnemy:  cfg.Projectile.Cooldowns.Enemy,
		},
	}, lv.logger)

	bounds := system.PlayerBounds{Min: cfg.Player.Bounds.Min.Vec3(), Max: cfg.Player.Bounds.Max.Vec3()}
	lv.ship = system.NewPlayerController(cfg.Player.Start.Vec3(), bounds, cfg.Player.Speed)
	lv.reg.UpdateByType(entity.HitboxPlayer, lv.ship.Transform())

	lv.orch = system.NewOrchestrator(lv.reg, enemyModel, def.NewScript(def.MaxWaves),
		system.WithLogger(lv.logger),
		system.WithAnimator(lv.enemyAnim),
		system.WithExplosionDuration(cfg.Timing.Explosion),
	)

	lv.logger.Printf("[Level] %d %s ready: %d hitboxes, player hp=%d, %s collision",
		def.Number, def.Name, lv.reg.Len(), lv.player.Health(), def.Strategy)
	return lv, nil
}

// Update runs one frame and reports whether the host should reload or
// move on.
func (lv *Level) Update(dt float64, in system.ControlInput) Outcome {
	dt = system.ClampDelta(dt)
	lv.elapsed += dt

	lv.player.Update(dt)
	if lv.player.ShouldReload() {
		lv.logger.Printf("[Level] %d player destroyed, reloading", lv.def.Number)
		return OutcomeReload
	}
	if lv.player.IsDead() {
		lv.state = state.StatePlayerDown
		return OutcomeNone
	}
	if in.Skip {
		return OutcomeAdvance
	}

	if lv.state != state.StateVictory && lv.orch.IsComplete() {
		lv.state = state.StateVictory
		lv.victoryTimer = 0
		lv.ship.CenterX()
		lv.reg.UpdateByType(entity.HitboxPlayer, lv.ship.Transform())
		lv.shipAnim.Play(system.ClipBoost, false)
		lv.logger.Printf("[Level] %d cleared after %.1fs", lv.def.Number, lv.elapsed)
	}
	if lv.state == state.StateVictory {
		lv.victoryTimer += dt
		if lv.victoryTimer >= lv.victoryDelay {
			return OutcomeAdvance
		}
		return OutcomeNone
	}

	lv.ship.Update(in, dt)
	lv.orch.Update(dt, lv.pool)
	lv.reg.UpdateByType(entity.HitboxPlayer, lv.ship.Transform())
	lv.resolveProjectiles(dt)
	lv.fire(in)

	if lv.enemyHitTimer > 0 {
		lv.enemyHitTimer -= dt
	}
	return OutcomeNone
}

// resolveProjectiles moves projectiles and applies hits using the level's
// collision strategy.
func (lv *Level) resolveProjectiles(dt float64) {
	switch lv.def.Strategy {
	case system.CollisionInline:
		report := lv.pool.UpdateWithCollision(dt, lv.reg)
		system.ApplyReport(report, lv.orch, lv.reg, lv.player)
		if report.EnemyHit {
			lv.enemyHitTimer = report.EnemyHitTimer
		}
	default:
		lv.pool.Update(dt)
		for _, hit := range system.ResolveExternal(lv.pool, lv.orch, lv.reg, lv.player) {
			if hit.Target == entity.HitboxEnemy {
				lv.enemyHitTimer = system.EnemyHitIndicator
			}
		}
	}
}

// fire launches the player's shots from the ship's muzzle
func (lv *Level) fire(in system.ControlInput) {
	ahead := entity.Vec3{Z: -1}
	if in.Slash && lv.pool.CanShoot(entity.ProjectileSlash) {
		lv.pool.Spawn(lv.ship.Muzzle(), ahead, entity.ProjectileSlash)
	}
	if in.Fire && lv.pool.CanShoot(entity.ProjectileNormal) {
		lv.pool.Spawn(lv.ship.Muzzle(), ahead, entity.ProjectileNormal)
	}
}

// Definition returns what the level was built from
func (lv *Level) Definition() Definition { return lv.def }

// State returns the level's lifecycle state
func (lv *Level) State() state.LevelState { return lv.state }

// Registry returns the hitbox registry
func (lv *Level) Registry() *system.HitboxRegistry { return lv.reg }

// Pool returns the projectile pool
func (lv *Level) Pool() *system.ProjectilePool { return lv.pool }

// Orchestrator returns the enemy orchestrator
func (lv *Level) Orchestrator() *system.Orchestrator { return lv.orch }

// Player returns the player's health
func (lv *Level) Player() *entity.PlayerHealth { return lv.player }

// Ship returns the player's movement controller
func (lv *Level) Ship() *system.PlayerController { return lv.ship }

// EnemyHitShowing reports whether an enemy was hit recently
func (lv *Level) EnemyHitShowing() bool { return lv.enemyHitTimer > 0 }

// Stats returns a snapshot of the level
func (lv *Level) Stats() Stats {
	return Stats{
		Elapsed:       lv.elapsed,
		Waves:         lv.orch.WaveCount(),
		ActiveEnemies: lv.orch.ActiveCount(),
		Projectiles:   lv.pool.ActiveCount(),
		PlayerHealth:  lv.player.Health(),
		State:         lv.state,
	}
}
