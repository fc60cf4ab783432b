package system

import "github.com/lixenwraith/uifocus/engine"

// Options selects the optional parts of the frame pipeline
type Options struct {
	Audio       engine.AudioPlayer // nil installs no feedback handler
	HoverCue    bool
	Diagnostics bool
}

// Pipeline is the installed set of systems and their shared input state
type Pipeline struct {
	Input       InputResources
	Focus       *FocusSystem
	Feedback    *FeedbackSystem
	Diagnostics *DiagnosticsSystem
}

// Install registers input resources and systems on w in frame order:
// input ingestion, focus resolution, then diagnostics
func Install(w *engine.World, opts Options) *Pipeline {
	p := &Pipeline{Input: NewInputResources(w)}

	w.AddSystem(NewInputSystem(w))
	p.Focus = NewFocusSystem(w, p.Input.Pointer)
	w.AddSystem(p.Focus)

	if opts.Audio != nil {
		engine.AddResource(w.Resources, &engine.AudioResource{Player: opts.Audio})
		p.Feedback = NewFeedbackSystem(w, opts.HoverCue)
		w.RegisterHandler(p.Feedback)
	}

	if opts.Diagnostics {
		p.Diagnostics = NewDiagnosticsSystem(w)
		w.AddSystem(p.Diagnostics)
		w.RegisterHandler(p.Diagnostics)
	}
	return p
}
