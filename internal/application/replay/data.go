package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	SX float64 `json:"sx,omitempty"` // StickX
	SY float64 `json:"sy,omitempty"` // StickY
	Fi bool    `json:"fi,omitempty"` // Fire
	Sl bool    `json:"sl,omitempty"` // Slash
	Sk bool    `json:"sk,omitempty"` // Skip
}

// ReplayData contains all data needed to replay a level
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// CurrentVersion is written into new recordings
const CurrentVersion = "1.0"
