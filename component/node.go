package component

import "github.com/lixenwraith/uifocus/core"

// NodeComponent carries the laid-out size of a UI element
type NodeComponent struct {
	Size core.Vec2
}

// TransformComponent is the element's world placement
// X,Y is the center of the node; Z orders overlapping nodes, larger is nearer
type TransformComponent struct {
	Translation core.Vec3
}

// ClipComponent restricts the hittable area to Rect
type ClipComponent struct {
	Rect core.Rect
}

// LabelComponent names an element for logs, tables and rendering
type LabelComponent struct {
	Name string
}
