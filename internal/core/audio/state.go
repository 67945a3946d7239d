package audio

// Phase is the coordinator's externally visible state.
type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseBackgroundPlaying Phase = "background_playing"
	PhaseBackgroundPaused  Phase = "background_paused"
	PhaseCelebration       Phase = "celebration"
)

// Snapshot is a read-only view of the coordinator for the presentation layer.
type Snapshot struct {
	Phase             Phase
	Muted             bool
	Celebrating       bool
	BackgroundPlaying bool
	ActiveTrack       SoundKey
	Volume            float64
}

type backgroundState int

const (
	backgroundIdle backgroundState = iota
	backgroundPlaying
	backgroundPaused
)
