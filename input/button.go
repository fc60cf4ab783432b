package input

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	default:
		return "None"
	}
}

// ButtonInput tracks held buttons plus the edges seen since the last Clear
type ButtonInput[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// MouseButtons is the mouse instance of ButtonInput
type MouseButtons = ButtonInput[MouseButton]

// NewButtonInput creates an empty tracker
func NewButtonInput[T comparable]() *ButtonInput[T] {
	return &ButtonInput[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Press marks b held; the first press since release also records a just-pressed edge
func (in *ButtonInput[T]) Press(b T) {
	if _, held := in.pressed[b]; held {
		return
	}
	in.pressed[b] = struct{}{}
	in.justPressed[b] = struct{}{}
}

// Release clears the held state; only a held button records a just-released edge
func (in *ButtonInput[T]) Release(b T) {
	if _, held := in.pressed[b]; !held {
		return
	}
	delete(in.pressed, b)
	in.justReleased[b] = struct{}{}
}

// Pressed reports whether b is currently held
func (in *ButtonInput[T]) Pressed(b T) bool {
	_, ok := in.pressed[b]
	return ok
}

// JustPressed reports a press edge since the last Clear
// Survives a release in the same frame
func (in *ButtonInput[T]) JustPressed(b T) bool {
	_, ok := in.justPressed[b]
	return ok
}

// JustReleased reports a release edge since the last Clear
func (in *ButtonInput[T]) JustReleased(b T) bool {
	_, ok := in.justReleased[b]
	return ok
}

// Clear drops edges, keeping held state; called once at frame start
func (in *ButtonInput[T]) Clear() {
	clear(in.justPressed)
	clear(in.justReleased)
}
