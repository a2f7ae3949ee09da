// Package ending provides the scene shown after the last level.
package ending

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/skyfall/internal/application/game"
	"github.com/younwookim/skyfall/internal/application/scene"
)

const fadeDuration = 1.5

var colorBG = color.RGBA{10, 10, 30, 255}

// Summary is what the run achieved
type Summary struct {
	Levels    int
	TotalTime float64
	Reloads   int
}

// Ending shows the run summary. Enter restarts, Escape quits.
type Ending struct {
	summary Summary
	restart func() (scene.Scene, error)
	fade    *gween.Tween
	alpha   float32

	// JustPressed reports a key press; replaced in tests
	JustPressed func(ebiten.Key) bool
}

// New creates the ending scene. restart builds the scene to go back to.
func New(summary Summary, restart func() (scene.Scene, error)) *Ending {
	return &Ending{
		summary:     summary,
		restart:     restart,
		fade:        gween.New(0, 1, fadeDuration, ease.OutQuad),
		JustPressed: inpututil.IsKeyJustPressed,
	}
}

// Update implements scene.Scene
func (e *Ending) Update(dt float64) (scene.Scene, error) {
	e.alpha, _ = e.fade.Update(float32(dt))

	switch {
	case e.JustPressed(ebiten.KeyEscape):
		return nil, game.ErrQuit
	case e.JustPressed(ebiten.KeyEnter) && e.restart != nil:
		return e.restart()
	}
	return nil, nil
}

// Draw implements scene.Scene
func (e *Ending) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	gold := color.RGBA{255, 215, 0, uint8(255 * e.alpha)}
	vector.DrawFilledRect(screen, float32(w/2-80), float32(h/3-6), 160, 2, gold, false)

	text := fmt.Sprintf("ALL %d LEVELS CLEARED\n\nTime: %.1fs\nReloads: %d\n\nEnter: play again | ESC: quit",
		e.summary.Levels, e.summary.TotalTime, e.summary.Reloads)
	ebitenutil.DebugPrintAt(screen, text, w/2-80, h/3)
}

// OnEnter restarts the fade in
func (e *Ending) OnEnter() {
	e.fade = gween.New(0, 1, fadeDuration, ease.OutQuad)
	e.alpha = 0
}

// OnExit implements scene.Scene
func (e *Ending) OnExit() {}

// Alpha returns the text opacity, 0 to 1
func (e *Ending) Alpha() float32 {
	return e.alpha
}

// Summary returns the run summary
func (e *Ending) Summary() Summary {
	return e.summary
}
