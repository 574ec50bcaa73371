// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emberview/emberview/internal/shim"
	emberr "github.com/emberview/emberview/pkg/errors"
	"github.com/emberview/emberview/pkg/plugin"
)

func newPluginsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Manage plugins",
		Long:  "List and inspect plugins found in the configured plugin directory.",
	}

	cmd.AddCommand(
		newPluginsListCmd(),
		newPluginsInspectCmd(),
	)

	return cmd
}

func newPluginsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Plugins.Dir == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No plugin directory configured")
				return err
			}

			manifests, err := shim.NewRegistry(nil).Discover(cfg.Plugins.Dir)
			if err != nil {
				return err
			}
			if len(manifests) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No plugins found")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tACTIVITY\tDESCRIPTION")
			for _, m := range manifests {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", m.Name, m.Version, m.RequiresActivity, m.Description)
			}
			return w.Flush()
		},
	}
}

func newPluginsInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [name]",
		Short: "Inspect a plugin manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			manifestPath := filepath.Join(cfg.Plugins.Dir, args[0], shim.ManifestFileName)
			data, err := os.ReadFile(manifestPath)
			if err != nil {
				return emberr.Wrap(err, emberr.CodePluginNotFound, "reading plugin manifest",
					emberr.FieldPlugin(args[0]))
			}

			m, err := plugin.ParseManifest(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Name:              %s\n", m.Name)
			fmt.Fprintf(w, "Version:           %s\n", m.Version)
			fmt.Fprintf(w, "Requires activity: %t\n", m.RequiresActivity)
			if m.Description != "" {
				fmt.Fprintf(w, "Description:       %s\n", m.Description)
			}
			return nil
		},
	}
}
