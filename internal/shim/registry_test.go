// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package shim_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emberview/emberview/internal/shim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegistrarForIsStable(t *testing.T) {
	registry := shim.NewRegistry(nil)

	first := registry.RegistrarFor("camera")
	second := registry.RegistrarFor("camera")
	other := registry.RegistrarFor("maps")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.True(t, registry.Has("camera"))
	assert.False(t, registry.Has("share"))
}

func TestRegistry_PublicationSharedAcrossRegistrars(t *testing.T) {
	publications := shim.NewPublicationMap()
	registry := shim.NewRegistry(publications)

	api := struct{ name string }{"camera-api"}
	registry.RegistrarFor("pluginA").Publish(api)

	got, ok := registry.ValuePublishedByPlugin("pluginA")
	require.True(t, ok)
	assert.Equal(t, api, got)

	_, ok = registry.ValuePublishedByPlugin("pluginB")
	assert.False(t, ok)

	// A second registry sharing the map sees the same publications:
	// the namespace is process-wide, not per-registry.
	sibling := shim.NewRegistry(publications)
	got, ok = sibling.ValuePublishedByPlugin("pluginA")
	require.True(t, ok)
	assert.Equal(t, api, got)
}

func TestRegistry_PublishLastWriteWins(t *testing.T) {
	registry := shim.NewRegistry(nil)
	reg := registry.RegistrarFor("camera")

	reg.Publish("v1")
	reg.Publish("v2")

	got, ok := registry.ValuePublishedByPlugin("camera")
	require.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestRegistry_LifecycleFanOut(t *testing.T) {
	registry := shim.NewRegistry(nil)

	camera, _ := registry.RegistrarFor("camera").(*shim.Registrar)
	maps, _ := registry.RegistrarFor("maps").(*shim.Registrar)

	registry.OnAttachedToEngine(newEngineBinding())
	assert.Equal(t, shim.StateEngineAttached, camera.State())
	assert.Equal(t, shim.StateEngineAttached, maps.State())

	binding := &fakeActivityBinding{activity: "activity-1"}
	registry.OnAttachedToActivity(binding)
	assert.Equal(t, shim.StateActivityAttached, camera.State())
	assert.Equal(t, "activity-1", maps.ActiveContext())

	registry.OnDetachedFromActivity()
	assert.Equal(t, shim.StateEngineAttached, camera.State())
	assert.Equal(t, "app-context", maps.ActiveContext())
}

func TestRegistry_LateVendedRegistrarCatchesUp(t *testing.T) {
	registry := shim.NewRegistry(nil)

	registry.OnAttachedToEngine(newEngineBinding())
	binding := &fakeActivityBinding{activity: "activity-1"}
	registry.OnAttachedToActivity(binding)

	late, _ := registry.RegistrarFor("late").(*shim.Registrar)
	assert.Equal(t, shim.StateActivityAttached, late.State())
	assert.Equal(t, "activity-1", late.ActiveContext())
}

func TestRegistry_ReconfigurationFanOut(t *testing.T) {
	registry := shim.NewRegistry(nil)
	camera, _ := registry.RegistrarFor("camera").(*shim.Registrar)

	registry.OnAttachedToEngine(newEngineBinding())

	perm := &permissionListener{}
	camera.AddPermissionResultListener(perm)

	first := &fakeActivityBinding{activity: "activity-1"}
	registry.OnAttachedToActivity(first)
	require.Len(t, first.permissionResults, 1)

	registry.OnDetachedFromActivityForConfigChanges()

	second := &fakeActivityBinding{activity: "activity-2"}
	registry.OnReattachedToActivityForConfigChanges(second)
	assert.Len(t, second.permissionResults, 1)
}

func TestRegistry_Discover(t *testing.T) {
	dir := t.TempDir()

	writeManifest := func(name, contents string) {
		pluginDir := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(pluginDir, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(pluginDir, shim.ManifestFileName), []byte(contents), 0o644))
	}

	writeManifest("camera", "name: camera\nversion: 1.0.0\n")
	writeManifest("broken", "name: [unclosed\n")
	writeManifest("unversioned", "name: unversioned\n")
	// A plain file at top level is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644))

	registry := shim.NewRegistry(nil)
	manifests, err := registry.Discover(dir)
	require.NoError(t, err)

	require.Len(t, manifests, 1)
	assert.Equal(t, "camera", manifests[0].Name)
	assert.True(t, registry.Has("camera"))
	assert.False(t, registry.Has("broken"))
}

func TestRegistry_DiscoverMissingDir(t *testing.T) {
	registry := shim.NewRegistry(nil)

	manifests, err := registry.Discover(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Empty(t, manifests)
}
