package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/uifocus/audio"
	"github.com/lixenwraith/uifocus/config"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/scene"
	"github.com/lixenwraith/uifocus/system"
)

// app is a populated world with its pipeline
type app struct {
	world    *engine.World
	pipeline *system.Pipeline
	player   *audio.CuePlayer
}

// loadScene reads the configured scene or falls back to the built-in one
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default(), nil
	}
	return scene.LoadFile(path)
}

// newApp builds the world for an interactive backend
// Audio failures are logged and leave the app silent
func newApp(cfg config.Config, diagnostics bool) (*app, error) {
	sc, err := loadScene(cfg.Scene)
	if err != nil {
		return nil, err
	}

	a := &app{world: engine.NewWorld()}
	opts := system.Options{HoverCue: cfg.HoverCue, Diagnostics: diagnostics}

	if cfg.Audio {
		player := audio.NewCuePlayer(false)
		if err := player.Start(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without cues")
		} else {
			a.player = player
			opts.Audio = player
		}
	}

	a.pipeline = system.Install(a.world, opts)
	entities := scene.Spawn(a.world, sc)
	log.Info().Str("scene", sc.Name).Int("elements", len(entities)).Msg("scene spawned")
	return a, nil
}

// toggleMute flips the cue player if one is running
func (a *app) toggleMute() {
	if a.player == nil {
		return
	}
	muted := a.player.ToggleMute()
	log.Info().Bool("muted", muted).Msg("audio toggled")
}

func (a *app) close() {
	if a.player != nil {
		if err := a.player.Stop(); err != nil {
			log.Warn().Err(err).Msg("audio stop")
		}
		log.Info().Int64("cues", a.player.Played()).Msg("audio stopped")
	}
	log.Info().
		Int64("frames", a.world.FrameNumber()).
		Fields(metricFields(a.world)).
		Msg("shutdown")
}

func metricFields(w *engine.World) map[string]any {
	snap := w.Status.Snapshot()
	out := make(map[string]any, len(snap))
	for k, v := range snap {
		out[k] = v
	}
	return out
}

func errBackend(name string, err error) error {
	return fmt.Errorf("%s backend: %w", name, err)
}
