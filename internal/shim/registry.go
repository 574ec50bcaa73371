// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package shim implements the legacy plugin-registrar contract on top of
// the lifecycle-aware plugin contract. A Registry vends one Registrar per
// plugin identifier and fans lifecycle callbacks out to all of them; each
// Registrar translates the legacy operation set into lifecycle-contract
// actions, buffering listener registrations across activity transitions.
package shim

import (
	"log/slog"
	"os"
	"path/filepath"

	emberr "github.com/emberview/emberview/pkg/errors"
	"github.com/emberview/emberview/pkg/plugin"
)

// ManifestFileName is the descriptor file expected in each plugin
// directory.
const ManifestFileName = "plugin.yaml"

// Registry vends shim registrars by plugin identifier and relays engine
// and activity lifecycle events to every registrar it has vended. The
// embedding registers the Registry itself as a single lifecycle plugin;
// the legacy plugins behind it never see the new contract.
//
// Not safe for concurrent use; confined to the host UI goroutine.
type Registry struct {
	publications *PublicationMap
	registrars   map[string]*Registrar

	engineBinding   *plugin.EngineBinding
	activityBinding plugin.ActivityBinding
}

var (
	_ plugin.Plugin        = (*Registry)(nil)
	_ plugin.ActivityAware = (*Registry)(nil)
)

// NewRegistry creates a registry whose registrars share the given
// publication map. Registries handed the same map form one publication
// namespace, which is how process-wide lookup across engine instances
// works.
func NewRegistry(publications *PublicationMap) *Registry {
	if publications == nil {
		publications = NewPublicationMap()
	}
	return &Registry{
		publications: publications,
		registrars:   make(map[string]*Registrar),
	}
}

// RegistrarFor returns the registrar for the given plugin identifier,
// creating it on first use. A registrar vended while an engine or
// activity is already attached is brought up to date immediately.
func (r *Registry) RegistrarFor(pluginID string) plugin.Registrar {
	reg, ok := r.registrars[pluginID]
	if ok {
		return reg
	}

	reg = newRegistrar(pluginID, r.publications)
	r.registrars[pluginID] = reg

	if r.engineBinding != nil {
		reg.OnAttachedToEngine(*r.engineBinding)
	}
	if r.activityBinding != nil {
		reg.OnAttachedToActivity(r.activityBinding)
	}

	return reg
}

// Has reports whether a registrar exists for the given identifier.
func (r *Registry) Has(pluginID string) bool {
	_, ok := r.registrars[pluginID]
	return ok
}

// ValuePublishedByPlugin returns the value published under the given
// plugin identifier, or false for unknown identifiers.
func (r *Registry) ValuePublishedByPlugin(pluginID string) (any, bool) {
	return r.publications.Value(pluginID)
}

// Discover scans dir for plugin directories containing a plugin.yaml,
// vending a registrar for each valid manifest. Unreadable or invalid
// manifests are skipped with a warning. A missing dir yields no plugins
// and no error.
func (r *Registry) Discover(dir string) ([]*plugin.Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, emberr.Wrap(err, emberr.CodePluginDiscoveryFailure, "reading plugins directory")
	}

	var manifests []*plugin.Manifest

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		manifestPath := filepath.Join(dir, entry.Name(), ManifestFileName)
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("skipping plugin: cannot read manifest",
					"path", manifestPath, "error", err)
			}
			continue
		}

		manifest, err := plugin.ParseManifest(data)
		if err != nil {
			slog.Warn("skipping plugin: invalid manifest",
				"path", manifestPath, "error", err)
			continue
		}

		r.RegistrarFor(manifest.Name)
		manifests = append(manifests, manifest)
	}

	return manifests, nil
}

// OnAttachedToEngine relays the engine binding to every vended registrar.
func (r *Registry) OnAttachedToEngine(binding plugin.EngineBinding) {
	r.engineBinding = &binding
	for _, reg := range r.registrars {
		reg.OnAttachedToEngine(binding)
	}
}

// OnDetachedFromEngine relays the detach to every vended registrar, then
// forgets the binding.
func (r *Registry) OnDetachedFromEngine(binding plugin.EngineBinding) {
	for _, reg := range r.registrars {
		reg.OnDetachedFromEngine(binding)
	}
	r.engineBinding = nil
}

// OnAttachedToActivity relays the activity binding to every vended
// registrar.
func (r *Registry) OnAttachedToActivity(binding plugin.ActivityBinding) {
	r.activityBinding = binding
	for _, reg := range r.registrars {
		reg.OnAttachedToActivity(binding)
	}
}

// OnDetachedFromActivityForConfigChanges relays the transient detach that
// precedes a reconfiguration reattach.
func (r *Registry) OnDetachedFromActivityForConfigChanges() {
	r.activityBinding = nil
	for _, reg := range r.registrars {
		reg.OnDetachedFromActivityForConfigChanges()
	}
}

// OnReattachedToActivityForConfigChanges relays the rebuilt binding.
func (r *Registry) OnReattachedToActivityForConfigChanges(binding plugin.ActivityBinding) {
	r.activityBinding = binding
	for _, reg := range r.registrars {
		reg.OnReattachedToActivityForConfigChanges(binding)
	}
}

// OnDetachedFromActivity relays the detach.
func (r *Registry) OnDetachedFromActivity() {
	r.activityBinding = nil
	for _, reg := range r.registrars {
		reg.OnDetachedFromActivity()
	}
}
