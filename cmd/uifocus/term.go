package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/uifocus/terminal"
)

func newTermCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the focus pass in the terminal with mouse input",
		Long:  "Draws the scene as boxes; hover and click them with the mouse. m toggles audio, q or Esc quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTerm(cmd.Context(), opts)
		},
	}
}

func runTerm(ctx context.Context, opts *rootOptions) error {
	a, err := newApp(opts.cfg, true)
	if err != nil {
		return err
	}
	defer a.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errBackend("terminal", err)
	}
	backend := terminal.New(screen, a.pipeline.Input.Inbox, log.Logger)
	if err := backend.Init(); err != nil {
		return errBackend("terminal", err)
	}
	defer backend.Fini()
	backend.Bind('m', a.toggleMute)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = backend.Run(ctx, a.world, opts.cfg.FrameRate)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
