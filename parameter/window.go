package parameter

// Window backend defaults
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "uifocus"
)
