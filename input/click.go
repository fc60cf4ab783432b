package input

// ClickEdge reports whether this frame counts as a click
// True on a left press edge, while left is held, or when the primary touch was released this frame
func ClickEdge(mouse *MouseButtons, touches *Touches) bool {
	if mouse != nil && (mouse.JustPressed(MouseLeft) || mouse.Pressed(MouseLeft)) {
		return true
	}
	return touches != nil && touches.JustReleased(PrimaryTouch)
}
