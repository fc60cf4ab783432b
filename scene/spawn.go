package scene

import (
	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
)

// Spawn creates one entity per element in file order and returns their IDs
// Optional clip and policy become components only when present in the file
func Spawn(w *engine.World, sc *Scene) []core.Entity {
	c := w.Components
	entities := make([]core.Entity, 0, len(sc.Elements))

	for _, el := range sc.Elements {
		eb := w.NewEntity()
		engine.With(eb, c.Node, component.NodeComponent{Size: core.V2(el.Width, el.Height)})
		engine.With(eb, c.Transform, component.TransformComponent{Translation: core.V3(el.X, el.Y, el.Z)})
		engine.With(eb, c.Interaction, component.InteractionComponent{})
		engine.With(eb, c.Label, component.LabelComponent{Name: el.Name})
		if el.Clip != nil {
			engine.With(eb, c.Clip, component.ClipComponent{Rect: el.Clip.Rect()})
		}
		if el.Policy != nil {
			engine.With(eb, c.Policy, component.FocusPolicyComponent{Policy: *el.Policy})
		}
		entities = append(entities, eb.Build())
	}
	return entities
}

// Default is the built-in demo scene used when no file is configured
// Cell-sized units so it fits an 80x24 terminal
func Default() *Scene {
	pass := component.FocusPass
	return &Scene{
		Name: "default",
		Elements: []Element{
			{Name: "panel", X: 30, Y: 11, Z: 0, Width: 50, Height: 18},
			{Name: "button", X: 18, Y: 8, Z: 1, Width: 14, Height: 5},
			{Name: "overlay", X: 22, Y: 10, Z: 2, Width: 10, Height: 5, Policy: &pass},
			{Name: "list", X: 44, Y: 12, Z: 1, Width: 16, Height: 12,
				Clip: &Clip{MinX: 36, MinY: 8, MaxX: 52, MaxY: 16}},
		},
	}
}
