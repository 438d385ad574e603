package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlement-engine/internal/schedule"
)

func TestParseFlags(t *testing.T) {
	path, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = parseFlags([]string{"--config", "/etc/settlement.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/settlement.yaml", path)

	path, err = parseFlags([]string{"-c", "local.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "local.yaml", path)

	_, err = parseFlags([]string{"--port", "9000"})
	assert.Error(t, err)
}

func TestLoadScheduleFallsBackToDefault(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	assert.Same(t, schedule.Default(), loadSchedule("", log))
	assert.Same(t, schedule.Default(), loadSchedule(filepath.Join(t.TempDir(), "missing.yaml"), log))

	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pain_and_suffering:\n  floor: 900\n"), 0o600))
	s := loadSchedule(path, log)
	assert.Equal(t, 900.0, s.PainAndSuffering.Floor)
}
