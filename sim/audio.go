package sim

// Cue names a fire-and-forget sound effect. The simulation never waits on
// playback.
type Cue string

const (
	CueFootstep   Cue = "footstep"
	CueJump       Cue = "jump"
	CueLand       Cue = "land"
	CueChaseSting Cue = "chase_sting"
	CueThrow      Cue = "throw"
	CueExplosion  Cue = "explosion"
	CuePickup     Cue = "pickup"
	CueCaught     Cue = "caught"
	CueAdvance    Cue = "advance"
	CueVictory    Cue = "victory"
)

// AudioSink receives cues triggered by simulation events.
type AudioSink interface {
	PlayCue(cue Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) PlayCue(Cue) {}
