package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/uifocus/window"
)

func newWindowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run the focus pass in a window with mouse and touch input",
		Long:  "Scene coordinates are window pixels. M toggles audio, Q or Esc quits.",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runWindow(opts)
		},
	}
}

func runWindow(opts *rootOptions) error {
	a, err := newApp(opts.cfg, true)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := opts.cfg.Window
	game := window.New(a.world, a.pipeline.Input.Inbox, window.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Title:     cfg.Title,
		FrameRate: opts.cfg.FrameRate,
	}, log.Logger)
	game.Bind(ebiten.KeyM, a.toggleMute)

	if err := game.Run(); err != nil {
		return errBackend("window", err)
	}
	return nil
}
