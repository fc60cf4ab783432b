// Package audio plays short interaction cues through the system speaker
package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/parameter"
)

// ErrNotStarted is returned by Stop on a player that never started
var ErrNotStarted = errors.New("cue player not started")

// Cue describes one tone
type Cue struct {
	Frequency float64
	Duration  time.Duration
	Wave      WaveType
	Volume    float64 // beep exponent, base 2
}

// DefaultCues maps interaction states to their tones
func DefaultCues() map[component.Interaction]Cue {
	return map[component.Interaction]Cue{
		component.InteractionClicked: {
			Frequency: parameter.ClickCueFrequency,
			Duration:  parameter.ClickCueDuration,
			Wave:      WaveSquare,
			Volume:    parameter.ClickCueVolume,
		},
		component.InteractionHovered: {
			Frequency: parameter.HoverCueFrequency,
			Duration:  parameter.HoverCueDuration,
			Wave:      WaveSine,
			Volume:    parameter.HoverCueVolume,
		},
	}
}

// CuePlayer owns the speaker and a mixer that cues are added to
// Implements engine.AudioPlayer
type CuePlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	cues    map[component.Interaction]Cue
	rate    beep.SampleRate
	started bool

	muted  atomic.Bool
	played atomic.Int64
}

// NewCuePlayer creates a player; muted players never touch the speaker
func NewCuePlayer(muted bool) *CuePlayer {
	p := &CuePlayer{
		mixer: &beep.Mixer{},
		cues:  DefaultCues(),
		rate:  beep.SampleRate(parameter.AudioSampleRate),
	}
	p.muted.Store(muted)
	return p
}

// Start opens the speaker and begins streaming the mixer
func (p *CuePlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, parameter.AudioBufferSize); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Stop silences pending cues and releases the speaker
func (p *CuePlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return ErrNotStarted
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
	return nil
}

// PlayCue queues the tone for state; false when muted, stopped or no cue is defined
func (p *CuePlayer) PlayCue(state component.Interaction) bool {
	if p.muted.Load() {
		return false
	}
	cue, ok := p.cues[state]
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return false
	}

	streamer := &effects.Volume{
		Streamer: NewTone(cue.Frequency, cue.Duration, cue.Wave, p.rate),
		Base:     2,
		Volume:   cue.Volume,
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// ToggleMute flips mute and returns the new muted state
func (p *CuePlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted returns current mute state
func (p *CuePlayer) IsMuted() bool {
	return p.muted.Load()
}

// Played returns the number of cues queued since creation
func (p *CuePlayer) Played() int64 {
	return p.played.Load()
}
