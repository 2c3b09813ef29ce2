package sim

// Phase is the campaign progression state. It only moves forward; getting
// caught or bombed respawns the player but never ends the run.
type Phase int

const (
	PhaseLevel1 Phase = iota
	PhaseLevel2
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseLevel2:
		return "level2"
	case PhaseWon:
		return "won"
	default:
		return "level1"
	}
}

// checkProgress evaluates the current phase's exit condition: enough
// companions collected and the player standing at the goal marker.
func (w *World) checkProgress() {
	lvl := &w.cfg.Levels[w.levelIndex]
	if w.collected < lvl.TargetCount {
		return
	}
	goal := lvl.Goal.V()
	if goal.Sub(w.player.Pos).Length() > w.tun.GoalRadius {
		return
	}

	switch w.phase {
	case PhaseLevel1:
		w.advance()
	case PhaseLevel2:
		w.win()
	}
}

// advance moves to level 2: new layout, new flock, bomber instead of
// chaser, empty bomb pool. The announced flag keeps the event one-shot.
func (w *World) advance() {
	w.phase = PhaseLevel2
	w.loadLevel(1)
	if !w.advanceAnnounced {
		w.advanceAnnounced = true
		w.audio.PlayCue(CueAdvance)
		w.events.push(Event{Kind: EventAdvance, Pos: w.player.Pos, Index: -1})
		w.log.Info("advancing to level 2", zapLevelFields(w)...)
	}
}

func (w *World) win() {
	w.phase = PhaseWon
	if !w.victoryAnnounced {
		w.victoryAnnounced = true
		w.audio.PlayCue(CueVictory)
		w.events.push(Event{Kind: EventVictory, Pos: w.player.Pos, Index: -1})
		w.log.Info("campaign won", zapLevelFields(w)...)
	}
}
