package state

// LevelState is where a level is in its lifecycle
type LevelState int

const (
	StatePlaying LevelState = iota
	StateVictory
	StatePlayerDown
)

// String returns the string representation of the level state
func (s LevelState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateVictory:
		return "Victory"
	case StatePlayerDown:
		return "PlayerDown"
	default:
		return "Unknown"
	}
}
