package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
width: 640
height: 480
particles: 25
layout: grid
show_delaunay: false
`)
	cfg, err := loadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 480.0, cfg.Height)
	assert.Equal(t, 25, cfg.Particles)
	assert.Equal(t, "grid", cfg.Layout)
	assert.False(t, cfg.ShowDelaunay)
	assert.True(t, cfg.ShowVoronoi)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadConfigEnvAddr(t *testing.T) {
	t.Setenv("VORONOI_ADDR", "127.0.0.1:9999")
	cfg, err := loadConfig(writeConfig(t, "particles: 3\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "width: [1, 2"), true)
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "width: -5\n"), true)
	assert.ErrorContains(t, err, "positive")

	_, err = loadConfig(writeConfig(t, "layout: spiral\n"), true)
	assert.ErrorContains(t, err, "spiral")

	_, err = loadConfig(writeConfig(t, "height: .nan\n"), true)
	assert.ErrorContains(t, err, "positive")

	_, err = loadConfig(writeConfig(t, "particles: 100000\n"), true)
	assert.ErrorContains(t, err, "particles")

	_, err = loadConfig(writeConfig(t, "dt: -1\n"), true)
	assert.ErrorContains(t, err, "dt")
}

func TestValidateRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e308, 0} {
		cfg := defaultConfig()
		cfg.Width = v
		assert.Error(t, cfg.validate(), "width %v", v)
	}

	cfg := defaultConfig()
	cfg.Width, cfg.Height = maxSize, maxSize
	assert.NoError(t, cfg.validate())
}
