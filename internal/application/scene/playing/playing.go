// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/skyfall/internal/application/level"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/application/scene/ending"
	"github.com/younwookim/skyfall/internal/application/state"
	"github.com/younwookim/skyfall/internal/application/system"
	"github.com/younwookim/skyfall/internal/domain/entity"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorEnemy       = color.RGBA{200, 100, 100, 255}
	colorFlash       = color.RGBA{255, 255, 255, 255}
	colorShot        = color.RGBA{255, 200, 100, 255}
	colorSlash       = color.RGBA{120, 200, 255, 255}
	colorEnemyShot   = color.RGBA{255, 100, 100, 255}
	colorExplosion   = color.RGBA{255, 160, 40, 200}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{100, 200, 100, 255}
	colorPauseShade  = color.RGBA{0, 0, 0, 128}
	colorDownShade   = color.RGBA{100, 0, 0, 180}
	colorVictoryText = color.RGBA{255, 215, 0, 255}
)

// Playing is the main gameplay scene. It runs one level and hands over to
// the next level, a reload of the same level, or the ending.
type Playing struct {
	cfg    *config.GameConfig
	def    level.Definition
	level  *level.Level
	input  system.InputReader
	logger *log.Logger
	camera Camera
	paused bool

	// Input recording
	recorder   *replay.Recorder
	recordPath string
	recordDT   float64

	totalTime float64
	reloads   int
}

// Option configures a Playing scene
type Option func(*Playing)

// WithInput replaces the keyboard reader
func WithInput(in system.InputReader) Option {
	return func(p *Playing) {
		if in != nil {
			p.input = in
		}
	}
}

// WithLogger sets the logger shared with the level
func WithLogger(l *log.Logger) Option {
	return func(p *Playing) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRecording records every frame of input and saves it to path when
// the scene exits. An empty path picks a timestamped name.
func WithRecording(path string, dt float64) Option {
	return func(p *Playing) {
		p.recordPath = path
		p.recordDT = dt
		if p.recordDT <= 0 {
			p.recordDT = 1.0 / 60.0
		}
	}
}

// withCarry keeps the run totals across level changes
func withCarry(totalTime float64, reloads int) Option {
	return func(p *Playing) {
		p.totalTime = totalTime
		p.reloads = reloads
	}
}

// New creates the scene for level number n
func New(cfg *config.GameConfig, n int, opts ...Option) (*Playing, error) {
	def, err := level.Lookup(n)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		cfg:    cfg,
		def:    def,
		logger: log.Default(),
		camera: NewCamera(cfg.Combat.Display.ScreenWidth, cfg.Combat.Display.ScreenHeight),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.input == nil {
		p.input = system.NewKeyboardInput()
	}

	lv, err := level.New(def, level.AssetsFrom(cfg), cfg.Combat, level.WithLogger(p.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build level %d: %w", n, err)
	}
	p.level = lv

	if p.recordDT > 0 {
		p.recorder = replay.NewRecorder(def.Number, p.recordDT)
		p.logger.Printf("[Replay] recording level %d", def.Number)
	}
	return p, nil
}

// options returns what the next scene inherits from this one
func (p *Playing) options() []Option {
	opts := []Option{
		WithInput(p.input),
		WithLogger(p.logger),
		withCarry(p.totalTime, p.reloads),
	}
	if p.recorder != nil {
		// Each level gets its own file
		opts = append(opts, WithRecording("", p.recordDT))
	}
	return opts
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	in := p.input.Read()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.totalTime += system.ClampDelta(dt)
	switch p.level.Update(dt, in) {
	case level.OutcomeReload:
		p.reloads++
		return p.load(p.def.Number, p.options())
	case level.OutcomeAdvance:
		if p.def.Number >= level.Count() {
			p.logger.Printf("[Level] all %d levels cleared in %.1fs", level.Count(), p.totalTime)
			return ending.New(ending.Summary{
				Levels:    level.Count(),
				TotalTime: p.totalTime,
				Reloads:   p.reloads,
			}, p.restart), nil
		}
		return p.load(p.def.Number+1, p.options())
	}

	return nil, nil // nil = stay on this scene
}

// restart builds a fresh run from level 1
func (p *Playing) restart() (scene.Scene, error) {
	opts := []Option{WithInput(p.input), WithLogger(p.logger)}
	if p.recorder != nil {
		opts = append(opts, WithRecording("", p.recordDT))
	}
	return p.load(1, opts)
}

// load builds the scene for level n
func (p *Playing) load(n int, opts []Option) (scene.Scene, error) {
	next, err := New(p.cfg, n, opts...)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	p.recorder.Stop()

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename(p.def.Number)
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Printf("[Replay] failed to save recording: %v", err)
	} else {
		p.logger.Printf("[Replay] saved %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawHitboxes(screen)
	p.drawExplosions(screen)
	p.drawProjectiles(screen)
	p.drawUI(screen)

	switch {
	case p.paused:
		p.drawOverlay(screen, colorPauseShade, "PAUSED\n\nPress ESC to resume")
	case p.level.State() == state.StatePlayerDown:
		p.drawOverlay(screen, colorDownShade, "SHIP DOWN\n\nReloading...")
	case p.level.State() == state.StateVictory:
		w := p.camera.ScreenW
		vector.DrawFilledRect(screen, float32(w/2-70), float32(p.camera.ScreenH/3-4), 140, 2, colorVictoryText, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d CLEAR", p.def.Number), int(w/2)-42, int(p.camera.ScreenH/3))
	}
}

// drawHitboxes draws every active box; the models themselves are not
// rendered.
func (p *Playing) drawHitboxes(screen *ebiten.Image) {
	reg := p.level.Registry()
	enemyFlash := p.level.EnemyHitShowing()
	playerFlash := p.level.Player().IsFlashing()

	for i := 0; i < reg.Len(); i++ {
		box, ok := reg.Box(i)
		if !ok || !box.Active {
			continue
		}
		x, y, w, h, ok := p.camera.ProjectBox(box.Min, box.Max)
		if !ok {
			continue
		}

		var c color.RGBA
		switch box.Type {
		case entity.HitboxPlayer:
			c = colorPlayer
			if playerFlash {
				c = colorFlash
			}
		case entity.HitboxEnemy:
			c = colorEnemy
			if enemyFlash {
				c = colorFlash
			}
		default:
			continue
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image) {
	pool := p.level.Pool()
	for i := 0; i < pool.Capacity(); i++ {
		proj, ok := pool.Projectile(i)
		if !ok || !proj.Active {
			continue
		}
		x, y, scale, ok := p.camera.Project(proj.Position)
		if !ok {
			continue
		}

		c := colorEnemyShot
		switch proj.Type {
		case entity.ProjectileNormal:
			c = colorShot
		case entity.ProjectileSlash:
			c = colorSlash
		}
		size := 4 * scale
		if size < 2 {
			size = 2
		}
		vector.DrawFilledRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), c, false)
	}
}

func (p *Playing) drawExplosions(screen *ebiten.Image) {
	orch := p.level.Orchestrator()
	for i := 0; i < orch.Capacity(); i++ {
		e := orch.Enemy(i)
		if e == nil || !e.Explosion.Active {
			continue
		}
		x, y, scale, ok := p.camera.Project(e.Explosion.Position)
		if !ok {
			continue
		}
		size := 40 * e.Explosion.Scale * scale
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size/2), colorExplosion, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := p.camera.ScreenH - 20
	barW := 100.0
	barH := 10.0

	player := p.level.Player()
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), colorHealthBG, false)

	ratio := float64(player.Health()) / float64(player.MaxHealth())
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*ratio), float32(barH), colorHealthFG, false)

	st := p.level.Stats()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("L%d %s  t=%.1f  waves=%d  enemies=%d  shots=%d",
			p.def.Number, p.def.Name, st.Elapsed, st.Waves, st.ActiveEnemies, st.Projectiles),
		10, int(p.camera.ScreenH)-35)

	ebitenutil.DebugPrint(screen, "Arrows/WASD: Move | Z: Fire | X: Slash | Enter: Skip | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, shade color.RGBA, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.camera.ScreenW), float32(p.camera.ScreenH), shade, false)
	ebitenutil.DebugPrintAt(screen, text, int(p.camera.ScreenW/2)-50, int(p.camera.ScreenH/2)-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Printf("[Scene] entering level %d %s", p.def.Number, p.def.Name)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Level returns the running level
func (p *Playing) Level() *level.Level {
	return p.level
}

// Recorder returns the input recorder, or nil when not recording
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(p.camera.ScreenW), int(p.camera.ScreenH)
}
