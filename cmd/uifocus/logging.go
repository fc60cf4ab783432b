package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/uifocus/parameter"
)

// setupLogging points the global logger at the log file
// Disabled level discards everything and opens no file; the terminal is never written to
func setupLogging(level zerolog.Level) (*os.File, error) {
	if level == zerolog.Disabled {
		log.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil, nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > parameter.MaxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: time.StampMicro,
	}).With().Timestamp().Logger()
	return f, nil
}
