package ending

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/skyfall/internal/application/game"
	"github.com/younwookim/skyfall/internal/application/scene"
)

type stubScene struct{}

func (stubScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (stubScene) Draw(*ebiten.Image)                  {}
func (stubScene) OnEnter()                            {}
func (stubScene) OnExit()                             {}

func pressing(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func newEnding(restart func() (scene.Scene, error)) *Ending {
	e := New(Summary{Levels: 5, TotalTime: 240, Reloads: 2}, restart)
	e.OnEnter()
	e.JustPressed = pressing()
	return e
}

func TestEnding_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Ending)(nil)
}

func TestEnding_FadesIn(t *testing.T) {
	e := newEnding(nil)
	assert.Equal(t, float32(0), e.Alpha())

	_, err := e.Update(0.5)
	require.NoError(t, err)
	mid := e.Alpha()
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	for i := 0; i < 10; i++ {
		_, err = e.Update(0.5)
		require.NoError(t, err)
	}
	assert.Equal(t, float32(1), e.Alpha())
}

func TestEnding_StaysWithoutInput(t *testing.T) {
	e := newEnding(func() (scene.Scene, error) { return stubScene{}, nil })

	next, err := e.Update(1.0 / 60.0)
	assert.NoError(t, err)
	assert.Nil(t, next)
}

func TestEnding_EnterRestarts(t *testing.T) {
	restarted := 0
	e := newEnding(func() (scene.Scene, error) {
		restarted++
		return stubScene{}, nil
	})
	e.JustPressed = pressing(ebiten.KeyEnter)

	next, err := e.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, stubScene{}, next)
	assert.Equal(t, 1, restarted)
}

func TestEnding_RestartErrorPropagates(t *testing.T) {
	e := newEnding(func() (scene.Scene, error) { return nil, assert.AnError })
	e.JustPressed = pressing(ebiten.KeyEnter)

	_, err := e.Update(1.0 / 60.0)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEnding_EscapeQuits(t *testing.T) {
	e := newEnding(nil)
	e.JustPressed = pressing(ebiten.KeyEscape, ebiten.KeyEnter)

	_, err := e.Update(1.0 / 60.0)
	assert.True(t, errors.Is(err, game.ErrQuit))
}

func TestEnding_Summary(t *testing.T) {
	e := newEnding(nil)
	assert.Equal(t, Summary{Levels: 5, TotalTime: 240, Reloads: 2}, e.Summary())
}
