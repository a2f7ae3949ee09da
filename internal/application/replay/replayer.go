package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/skyfall/internal/application/system"
)

// Replayer plays recorded input back frame by frame
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level < 1 {
		return nil, fmt.Errorf("failed to decode replay: invalid level %d", data.Level)
	}
	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.ControlInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.ControlInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.ControlInput{
		StickX: fi.SX,
		StickY: fi.SY,
		Fire:   fi.Fi,
		Slash:  fi.Sl,
		Skip:   fi.Sk,
	}, true
}

// Read implements system.InputReader. Past the end it reports no input.
func (r *Replayer) Read() system.ControlInput {
	in, _ := r.Next()
	return in
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() int {
	return r.data.Level
}

// DT returns the recorded frame delta, or 1/60 when none was stored
func (r *Replayer) DT() float64 {
	if r.data.DT <= 0 {
		return 1.0 / 60.0
	}
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: the ship holds
// fire for every frame.
func CreateTestReplayData(level, frames int) ReplayData {
	data := ReplayData{
		Version:   CurrentVersion,
		Level:     level,
		DT:        1.0 / 60.0,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, Fi: true}
	}

	return data
}
