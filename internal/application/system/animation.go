package system

// Clip names understood by the model animation player
const (
	ClipIdle        = "Idle"
	ClipMove        = "Move"
	ClipAttack      = "Attack"
	ClipSlashLeft   = "SlashLeft"
	ClipSlashRight  = "SlashRight"
	ClipSlashBarage = "SlashBarage"
	ClipMachineGun  = "MachineGun"
	ClipCannon      = "Cannon"
	ClipSpin        = "spin"
	ClipBoost       = "Boost"
)

// Animator plays named clips on an external model
type Animator interface {
	Play(clip string, loop bool)
}

// NopAnimator ignores every clip request
type NopAnimator struct{}

// Play implements Animator
func (NopAnimator) Play(string, bool) {}

// ClipRecorder remembers the clips it was asked to play
type ClipRecorder struct {
	Clips   []string
	Current string
	Looping bool
}

// Play implements Animator
func (r *ClipRecorder) Play(clip string, loop bool) {
	r.Clips = append(r.Clips, clip)
	r.Current = clip
	r.Looping = loop
}

// Played reports whether clip was ever requested
func (r *ClipRecorder) Played(clip string) bool {
	for _, c := range r.Clips {
		if c == clip {
			return true
		}
	}
	return false
}
