// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package config loads and validates emberview host configuration from
// YAML files and environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/emberview/emberview/internal/assets"
	"github.com/emberview/emberview/internal/view"
	emberr "github.com/emberview/emberview/pkg/errors"
)

// Config is the top-level emberview configuration.
type Config struct {
	View    ViewConfig    `mapstructure:"view"`
	Plugins PluginsConfig `mapstructure:"plugins"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Log     LogConfig     `mapstructure:"log"`
}

// ViewConfig selects how views paint.
type ViewConfig struct {
	RenderMode       string `mapstructure:"render_mode"`
	TransparencyMode string `mapstructure:"transparency_mode"`
}

// PluginsConfig locates plugin manifests.
type PluginsConfig struct {
	Dir string `mapstructure:"dir"`
}

// AssetsConfig names the engine asset bundle inside the application
// package.
type AssetsConfig struct {
	Bundle string `mapstructure:"bundle"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from the given path (or defaults) with
// environment variable overrides (prefix EMBERVIEW_).
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("view.render_mode", string(view.RenderModeSurface))
	v.SetDefault("view.transparency_mode", string(view.TransparencyModeOpaque))
	v.SetDefault("assets.bundle", assets.DefaultBundleName)
	v.SetDefault("log.level", "info")

	// Environment
	v.SetEnvPrefix("EMBERVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// File
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, emberr.Errorf(emberr.CodeConfigLoadReadFailure, "reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, emberr.Errorf(emberr.CodeConfigParseInvalidFormat, "unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, emberr.Errorf(emberr.CodeConfigValidateInvalidValue, "validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// Validate checks the configuration for logical errors.
// It returns a slice of all validation errors found, collecting all issues
// rather than stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	errs = append(errs, c.validateView()...)
	errs = append(errs, c.validateAssets()...)
	errs = append(errs, c.validateLog()...)

	return errs
}

func (c *Config) validateView() []error {
	var errs []error

	if _, err := view.ParseRenderMode(c.View.RenderMode); err != nil {
		errs = append(errs, emberr.Errorf(emberr.CodeConfigValidateInvalidValue,
			"config: view.render_mode: %w", err))
	}
	if _, err := view.ParseTransparencyMode(c.View.TransparencyMode); err != nil {
		errs = append(errs, emberr.Errorf(emberr.CodeConfigValidateInvalidValue,
			"config: view.transparency_mode: %w", err))
	}

	return errs
}

func (c *Config) validateAssets() []error {
	var errs []error

	if c.Assets.Bundle == "" {
		errs = append(errs, emberr.Errorf(emberr.CodeConfigValidateInvalidValue,
			"config: assets.bundle must not be empty"))
	} else if strings.Contains(c.Assets.Bundle, "..") {
		errs = append(errs, emberr.Errorf(emberr.CodeConfigValidateInvalidValue,
			"config: assets.bundle must not contain path traversal, got %q",
			c.Assets.Bundle,
		))
	}

	return errs
}

func (c *Config) validateLog() []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, emberr.Errorf(emberr.CodeConfigValidateInvalidValue,
			"config: log.level must be one of [debug, info, warn, error], got %q",
			c.Log.Level,
		))
	}

	return errs
}
