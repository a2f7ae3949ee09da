package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/skyfall/internal/application/system"
)

// Recorder captures per-frame input for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for the given level and frame delta
func NewRecorder(level int, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   CurrentVersion,
			Level:     level,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.ControlInput) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		SX: in.StickX,
		SY: in.StickY,
		Fi: in.Fire,
		Sl: in.Slash,
		Sk: in.Skip,
	})
	r.frame++
}

// Encode writes the recording as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Encode(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(level int) string {
	return fmt.Sprintf("replay_L%d_%s.json", level, time.Now().Format("20060102_150405"))
}
