package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput       = 0   // Ingests backend reports; must precede every reader of input state
	PriorityFocus       = 100 // Pointer focus resolution
	PriorityDiagnostics = 1000
)
