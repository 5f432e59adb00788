package main

import (
	"os"
	"path/filepath"
	"testing"

	"toroidal-snake/game"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil, missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEnvThenFlags(t *testing.T) {
	t.Setenv(envBoardSize, "12")
	t.Setenv(envInitialLength, "5")
	t.Setenv(envSeed, "77")

	cfg, err := LoadConfig([]string{"-length", "3", "-rounds", "2"}, missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BoardSize)
	assert.Equal(t, 3, cfg.InitialLength)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, 2, cfg.Rounds)
}

func TestLoadConfigDotEnv(t *testing.T) {
	os.Unsetenv(envBoardSize)
	t.Cleanup(func() { os.Unsetenv(envBoardSize) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(envBoardSize+"=15\n"), 0644))

	cfg, err := LoadConfig(nil, path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.BoardSize)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	_, err := LoadConfig([]string{"-size", "3", "-length", "4"}, missingEnvFile(t))
	assert.Equal(t, game.ErrInvalidLength, errors.Cause(err))

	_, err = LoadConfig([]string{"-rounds", "0"}, missingEnvFile(t))
	assert.Error(t, err)

	_, err = LoadConfig([]string{"-log-level", "loud"}, missingEnvFile(t))
	assert.Error(t, err)

	_, err = LoadConfig([]string{"-bogus"}, missingEnvFile(t))
	assert.Error(t, err)

	t.Setenv(envRounds, "many")
	_, err = LoadConfig(nil, missingEnvFile(t))
	assert.Error(t, err)
}
