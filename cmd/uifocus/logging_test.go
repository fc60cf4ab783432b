package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/uifocus/parameter"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	f, err := setupLogging(zerolog.Disabled)
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = os.Stat(parameter.LogDir)
	assert.True(t, os.IsNotExist(err), "no log dir when disabled")
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	f, err := setupLogging(zerolog.DebugLevel)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Debug().Str("probe", "value").Msg("test message")

	data, err := os.ReadFile(filepath.Join(parameter.LogDir, parameter.LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message")
	assert.Contains(t, string(data), "probe=value")
}

func TestSetupLoggingRotation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	require.NoError(t, os.MkdirAll(parameter.LogDir, 0o755))
	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, parameter.MaxLogSize+1), 0o644))

	f, err := setupLogging(zerolog.InfoLevel)
	require.NoError(t, err)
	defer f.Close()

	old, err := os.Stat(logPath + ".old")
	require.NoError(t, err)
	assert.Equal(t, int64(parameter.MaxLogSize+1), old.Size())

	fresh, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, fresh.Size(), int64(parameter.MaxLogSize))
}
