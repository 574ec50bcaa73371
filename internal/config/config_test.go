// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emberview/emberview/internal/config"
	emberr "github.com/emberview/emberview/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "surface", cfg.View.RenderMode)
	assert.Equal(t, "opaque", cfg.View.TransparencyMode)
	assert.Equal(t, "ember_assets", cfg.Assets.Bundle)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Plugins.Dir)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "emberview.yaml")

	content := `
view:
  render_mode: texture
  transparency_mode: transparent
plugins:
  dir: /opt/emberview/plugins
log:
  level: debug
`
	err := os.WriteFile(cfgPath, []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "texture", cfg.View.RenderMode)
	assert.Equal(t, "transparent", cfg.View.TransparencyMode)
	assert.Equal(t, "/opt/emberview/plugins", cfg.Plugins.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EMBERVIEW_LOG_LEVEL", "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, emberr.HasCode(err, emberr.CodeConfigLoadReadFailure))
}

func TestLoad_ValidationCalledAtLoadTime(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "emberview.yaml")

	content := `
view:
  render_mode: vulkan
`
	err := os.WriteFile(cfgPath, []byte(content), 0o644)
	require.NoError(t, err)

	_, err = config.Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render_mode")
}

// validConfig returns a minimal config that passes all validation.
func validConfig() *config.Config {
	return &config.Config{
		View: config.ViewConfig{
			RenderMode:       "surface",
			TransparencyMode: "opaque",
		},
		Assets: config.AssetsConfig{Bundle: "ember_assets"},
		Log:    config.LogConfig{Level: "info"},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.View.RenderMode = "vulkan"
	cfg.View.TransparencyMode = "frosted"
	cfg.Log.Level = "loud"

	errs := cfg.Validate()
	assert.Len(t, errs, 3)
}

func TestValidate_AssetsBundle(t *testing.T) {
	cfg := validConfig()
	cfg.Assets.Bundle = ""
	assert.NotEmpty(t, cfg.Validate())

	cfg.Assets.Bundle = "../outside"
	assert.NotEmpty(t, cfg.Validate())
}
