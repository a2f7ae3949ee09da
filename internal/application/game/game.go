// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/skyfall/internal/application/scene"
)

// ErrQuit is returned by a scene that wants the game to end normally
var ErrQuit = errors.New("quit")

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning ErrQuit ends the run loop without an error.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Step runs n updates without a window. It stops early when the run
// loop would end and reports whether it did.
func (g *Game) Step(n int) (ended bool, err error) {
	for i := 0; i < n; i++ {
		if err := g.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return true, nil
			}
			return true, err
		}
	}
	return false, nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns how many updates have run
func (g *Game) Frames() int {
	return g.frames
}
