package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/first-ml/infra/config"
	"github.com/drakos74/first-ml/internal/math/ml"
)

func TestLoadConfig(t *testing.T) {
	defer func(p string) { config.Path = p }(config.Path)
	config.Path = "../../infra/config"

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Holdout)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, ml.Tree, cfg.Model)
	assert.Equal(t, ml.Gini, cfg.Criterion)
	assert.Equal(t, "info", cfg.LogLevel)

	override := filepath.Join(t.TempDir(), "override.json")
	require.NoError(t, os.WriteFile(override, []byte(`{"seed":7,"model":"forest"}`), 0644))

	cfg, err = loadConfig(override)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, ml.Forest, cfg.Model)
	assert.Equal(t, 0.2, cfg.Holdout)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingDefaults(t *testing.T) {
	defer func(p string) { config.Path = p }(config.Path)
	config.Path = t.TempDir()

	assert.Panics(t, func() { _, _ = loadConfig("") })
}
