package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// fadeSamples is the ramp length at each end of a tone to avoid clicks
const fadeSamples = 64

// tone is a fixed-length oscillator with linear fade in and out
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a finite streamer of the given shape and length
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 0.5
			} else {
				val = -0.5
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) envelope() float64 {
	fade := min(fadeSamples, t.duration/2)
	if fade == 0 {
		return 1
	}
	if t.position < fade {
		return float64(t.position) / float64(fade)
	}
	if tail := t.duration - t.position; tail < fade {
		return float64(tail) / float64(fade)
	}
	return 1
}
