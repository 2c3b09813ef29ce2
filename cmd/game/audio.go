package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/platformer3d/sim"
)

const sampleRate = 44100

// cueVoice describes one synthesized blip.
type cueVoice struct {
	freq     float64
	duration float64
	volume   float64
}

var cueVoices = map[sim.Cue]cueVoice{
	sim.CueFootstep:   {freq: 220, duration: 0.04, volume: 0.25},
	sim.CueJump:       {freq: 440, duration: 0.12, volume: 0.5},
	sim.CueLand:       {freq: 180, duration: 0.08, volume: 0.4},
	sim.CueChaseSting: {freq: 660, duration: 0.3, volume: 0.6},
	sim.CueThrow:      {freq: 330, duration: 0.1, volume: 0.5},
	sim.CueExplosion:  {freq: 70, duration: 0.45, volume: 0.9},
	sim.CuePickup:     {freq: 880, duration: 0.12, volume: 0.6},
	sim.CueCaught:     {freq: 110, duration: 0.4, volume: 0.8},
	sim.CueAdvance:    {freq: 520, duration: 0.5, volume: 0.7},
	sim.CueVictory:    {freq: 780, duration: 0.9, volume: 0.7},
}

// Beeper is a tiny synth implementing the simulation's audio sink. Every cue
// is pre-rendered once at startup; playback just hands bytes to a player.
type Beeper struct {
	ctx  *audio.Context
	cues map[sim.Cue][]byte
}

func NewBeeper() *Beeper {
	b := &Beeper{
		ctx:  audio.NewContext(sampleRate),
		cues: make(map[sim.Cue][]byte, len(cueVoices)),
	}
	for cue, voice := range cueVoices {
		b.cues[cue] = renderVoice(voice)
	}
	return b
}

func (b *Beeper) PlayCue(cue sim.Cue) {
	pcm, ok := b.cues[cue]
	if !ok {
		return
	}
	p := b.ctx.NewPlayerFromBytes(pcm)
	p.Play()
}

// renderVoice synthesizes a sine blip with a linear fade-out, 16-bit stereo
// little-endian as the audio context expects.
func renderVoice(v cueVoice) []byte {
	samples := int(v.duration * sampleRate)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		fade := 1 - float64(i)/float64(samples)
		val := math.Sin(2*math.Pi*v.freq*t) * v.volume * fade
		s := int16(val * math.MaxInt16)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}
