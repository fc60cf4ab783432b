package parameter

import "time"

// Frame loop
const (
	// DefaultFrameRate is the target frames per second for backend loops
	DefaultFrameRate = 60

	// MaxFrameRate bounds configured frame rates
	MaxFrameRate = 240
)

// FrameInterval converts a frame rate into a ticker period
func FrameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// Logging
const (
	LogDir      = "logs"
	LogFileName = "uifocus.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate at startup when exceeded
)
