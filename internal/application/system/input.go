package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputReader supplies one frame of player input
type InputReader interface {
	Read() ControlInput
}

// KeyboardInput reads the keyboard and the first standard gamepad
type KeyboardInput struct {
	gamepads []ebiten.GamepadID
}

// NewKeyboardInput creates a keyboard and gamepad reader
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Read returns the current input state. Keys map to full stick deflection.
func (k *KeyboardInput) Read() ControlInput {
	var in ControlInput

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.StickX -= stickRange
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.StickX += stickRange
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.StickY += stickRange
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.StickY -= stickRange
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Slash = ebiten.IsKeyPressed(ebiten.KeyX)
	in.Skip = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// Screen up is negative on the gamepad axis, world up is positive
		if in.StickX == 0 {
			in.StickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal) * stickRange
		}
		if in.StickY == 0 {
			in.StickY = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical) * stickRange
		}
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Slash = in.Slash || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		in.Skip = in.Skip || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		break
	}

	return in
}

// ScriptedInput replays a fixed sequence of inputs, holding the last one
// once the sequence runs out. Used by headless runs and tests.
type ScriptedInput struct {
	Frames []ControlInput
	next   int
}

// NewScriptedInput creates a reader over frames
func NewScriptedInput(frames ...ControlInput) *ScriptedInput {
	return &ScriptedInput{Frames: frames}
}

// Read implements InputReader
func (s *ScriptedInput) Read() ControlInput {
	if len(s.Frames) == 0 {
		return ControlInput{}
	}
	if s.next >= len(s.Frames) {
		return s.Frames[len(s.Frames)-1]
	}
	in := s.Frames[s.next]
	s.next++
	return in
}
