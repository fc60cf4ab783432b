package parameter

import "time"

// Feedback cues
const (
	AudioSampleRate = 44100
	AudioBufferSize = AudioSampleRate / 10 // 100ms speaker buffer

	ClickCueFrequency = 880.0
	ClickCueDuration  = 50 * time.Millisecond
	ClickCueVolume    = 0.0 // beep volume exponent, 0 = unity

	HoverCueFrequency = 660.0
	HoverCueDuration  = 15 * time.Millisecond
	HoverCueVolume    = -2.0
)
