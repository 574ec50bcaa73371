// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberview/emberview/internal/config"
)

// NewRootCmd creates the root emberview command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "emberview",
		Short:         "Emberview - embeddable engine view host",
		Long:          "Emberview hosts engine-rendered views inside native applications and bridges legacy plugins onto the lifecycle plugin contract.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(verbose)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "path to config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newVersionCmd(),
		newDoctorCmd(),
		newPluginsCmd(),
	)

	return root
}

// setupLogging installs the process-wide slog handler. The verbose flag
// wins over the configured level since it is an explicit operator request.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// loadConfig resolves the configuration for a subcommand: the --config
// flag if given, else the default path, bootstrapping a commented default
// file on first run.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}

	// The configured level applies unless --verbose already forced debug.
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel(cfg.Log.Level),
		})))
	}

	return cfg, nil
}

func readConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath != "" {
		return config.Load(cfgPath)
	}

	defaultPath, err := config.DefaultConfigPath()
	if err != nil {
		// No resolvable home directory. Defaults and env vars still apply.
		slog.Debug("no default config path", "error", err)
		return config.Load("")
	}

	if _, err := os.Stat(defaultPath); err != nil {
		if path := config.BootstrapConfig(); path != "" {
			return config.Load(path)
		}
		return config.Load("")
	}

	return config.Load(defaultPath)
}

// logLevel maps a configured level name onto its slog level. Unknown
// names fall back to info; config validation rejects them before this
// runs.
func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
