package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/uifocus/config"
)

// rootOptions carries persistent flags and the loaded config to subcommands
type rootOptions struct {
	configPath string
	scenePath  string
	debug      bool

	cfg     config.Config
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "uifocus",
		Short:         "Pointer focus resolution for layered UI elements",
		Long:          "Runs the configured backend (terminal or window) when no subcommand is given.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.cfg.Backend {
			case config.BackendWindow:
				return runWindow(opts)
			default:
				return runTerm(cmd.Context(), opts)
			}
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logFile != nil {
				opts.logFile.Close()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	flags.StringVarP(&opts.scenePath, "scene", "s", "", "scene file (.yaml, .yml, .toml); overrides config")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to logs/uifocus.log")

	root.AddCommand(
		newTermCmd(opts),
		newWindowCmd(opts),
		newProbeCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// load resolves config, applies flag overrides and starts logging
func (o *rootOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.scenePath != "" {
		cfg.Scene = o.scenePath
	}

	level := cfg.Level()
	if o.debug {
		level = zerolog.DebugLevel
	}
	f, err := setupLogging(level)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logFile = f

	log.Info().
		Str("backend", cfg.Backend).
		Str("scene", cfg.Scene).
		Int("frame_rate", cfg.FrameRate).
		Msg("config loaded")
	return nil
}
