// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/emberview/emberview/internal/config"
	"github.com/emberview/emberview/internal/shim"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run diagnostics",
		Long:  "Check binary health, configuration, the plugin directory, and disk space.",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	cfg, cfgErr := loadConfig(cmd)

	checks := []struct {
		name string
		fn   func() string
	}{
		{"Binary", checkBinary},
		{"Platform", checkPlatform},
		{"Config", func() string { return checkConfig(cfg, cfgErr) }},
		{"Plugins", func() string { return checkPlugins(cfg) }},
		{"Disk Space", checkDiskSpace},
	}

	for _, c := range checks {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", c.name+":", c.fn()); err != nil {
			return err
		}
	}

	return nil
}

func checkBinary() string {
	return fmt.Sprintf("emberview %s (%s/%s)", version, runtime.GOOS, runtime.GOARCH)
}

func checkPlatform() string {
	return fmt.Sprintf("%s/%s, Go %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func checkConfig(cfg *config.Config, err error) string {
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return fmt.Sprintf("valid (render_mode=%s, bundle=%s)", cfg.View.RenderMode, cfg.Assets.Bundle)
}

func checkPlugins(cfg *config.Config) string {
	if cfg == nil {
		return "skipped (config failed to load)"
	}
	if cfg.Plugins.Dir == "" {
		return "no plugin directory configured"
	}

	manifests, err := shim.NewRegistry(nil).Discover(cfg.Plugins.Dir)
	if err != nil {
		return fmt.Sprintf("error reading plugins: %s", err)
	}
	if len(manifests) == 0 {
		return fmt.Sprintf("no plugins found in %s", cfg.Plugins.Dir)
	}
	return fmt.Sprintf("%d plugin(s) found in %s", len(manifests), cfg.Plugins.Dir)
}

func checkDiskSpace() string {
	path, err := os.UserHomeDir()
	if err != nil {
		path = "."
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return fmt.Sprintf("unable to check: %s", err)
	}

	availBytes := stat.Bavail * uint64(stat.Bsize)
	return formatBytes(availBytes) + " available"
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(b uint64) string {
	const (
		gb = 1024 * 1024 * 1024
		mb = 1024 * 1024
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/gb)
	case b >= mb:
		return fmt.Sprintf("%.0f MB", float64(b)/mb)
	default:
		return fmt.Sprintf("%d bytes", b)
	}
}
