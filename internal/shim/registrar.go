// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package shim

import (
	"log/slog"

	"github.com/emberview/emberview/internal/assets"
	"github.com/emberview/emberview/pkg/engine"
	emberr "github.com/emberview/emberview/pkg/errors"
	"github.com/emberview/emberview/pkg/host"
	"github.com/emberview/emberview/pkg/plugin"
)

// Registrar implements the legacy plugin.Registrar contract on top of the
// lifecycle-aware contract. It holds the current engine and activity
// bindings as internal state and translates each legacy operation into
// actions against them, queuing listener registrations in its
// ListenerRegistry whenever no activity is bound.
//
// Registrars are vended by a Registry, one per plugin identifier.
//
// Not safe for concurrent use; confined to the host UI goroutine.
type Registrar struct {
	pluginID     string
	publications *PublicationMap
	listeners    *ListenerRegistry

	engineBinding   *plugin.EngineBinding
	activityBinding plugin.ActivityBinding
	state           BindingState
}

var (
	_ plugin.Registrar     = (*Registrar)(nil)
	_ plugin.Plugin        = (*Registrar)(nil)
	_ plugin.ActivityAware = (*Registrar)(nil)
)

// newRegistrar creates a registrar for the given plugin identifier,
// sharing the process-wide publication map.
func newRegistrar(pluginID string, publications *PublicationMap) *Registrar {
	return &Registrar{
		pluginID:     pluginID,
		publications: publications,
		listeners:    NewListenerRegistry(),
		state:        StateDetached,
	}
}

// PluginID returns the identifier this registrar was vended for.
func (r *Registrar) PluginID() string {
	return r.pluginID
}

// State returns the registrar's current binding state.
func (r *Registrar) State() BindingState {
	return r.state
}

// Listeners exposes the durable listener registry.
func (r *Registrar) Listeners() *ListenerRegistry {
	return r.listeners
}

// Activity returns the bound activity, or nil when none is attached.
func (r *Registrar) Activity() host.Activity {
	if r.activityBinding == nil {
		return nil
	}
	return r.activityBinding.Activity()
}

// Context returns the application context, or nil when no engine is
// attached.
func (r *Registrar) Context() host.Context {
	if r.engineBinding == nil {
		return nil
	}
	return r.engineBinding.ApplicationContext
}

// ActiveContext returns the activity when one is bound, else the
// application context, else nil.
func (r *Registrar) ActiveContext() host.Context {
	if r.activityBinding == nil {
		return r.Context()
	}
	return r.activityBinding.Activity()
}

// Messenger returns the attached engine's message transport, or nil.
func (r *Registrar) Messenger() engine.Messenger {
	if r.engineBinding == nil {
		return nil
	}
	return r.engineBinding.Messenger()
}

// Textures returns the attached engine's texture registry, or nil.
func (r *Registrar) Textures() engine.TextureRegistry {
	if r.engineBinding == nil {
		return nil
	}
	return r.engineBinding.Textures()
}

// PlatformViews always returns nil; the shim has no platform view
// registry to offer.
func (r *Registrar) PlatformViews() engine.PlatformViewRegistry {
	return nil
}

// View always fails. Direct native-view access is structurally
// unsupported under the current contract, and callers historically
// dereferenced the result, so the loss must be explicit.
func (r *Registrar) View() (host.NativeView, error) {
	return nil, emberr.New(emberr.CodeShimViewUnsupported,
		"the current contract does not support the legacy native view",
		emberr.FieldPlugin(r.pluginID))
}

// LookupKeyForAsset resolves an asset name to its bundle lookup key.
func (r *Registrar) LookupKeyForAsset(asset string) string {
	return assets.LookupKey(asset)
}

// LookupKeyForAssetIn resolves an asset name within a named package.
func (r *Registrar) LookupKeyForAssetIn(asset, pkg string) string {
	return assets.LookupKeyIn(asset, pkg)
}

// Publish stores value in the process-wide publication map under this
// registrar's plugin identifier.
func (r *Registrar) Publish(value any) plugin.Registrar {
	r.publications.Publish(r.pluginID, value)
	return r
}

func (r *Registrar) AddPermissionResultListener(l plugin.PermissionResultListener) plugin.Registrar {
	r.listeners.AddPermissionResult(l)
	r.forwardOrWarn("permission_result", func(b plugin.ActivityBinding) {
		b.AddPermissionResultListener(l)
	})
	return r
}

func (r *Registrar) AddActivityResultListener(l plugin.ActivityResultListener) plugin.Registrar {
	r.listeners.AddActivityResult(l)
	r.forwardOrWarn("activity_result", func(b plugin.ActivityBinding) {
		b.AddActivityResultListener(l)
	})
	return r
}

func (r *Registrar) AddNewIntentListener(l plugin.NewIntentListener) plugin.Registrar {
	r.listeners.AddNewIntent(l)
	r.forwardOrWarn("new_intent", func(b plugin.ActivityBinding) {
		b.AddNewIntentListener(l)
	})
	return r
}

func (r *Registrar) AddUserLeaveHintListener(l plugin.UserLeaveHintListener) plugin.Registrar {
	r.listeners.AddUserLeaveHint(l)
	r.forwardOrWarn("user_leave_hint", func(b plugin.ActivityBinding) {
		b.AddUserLeaveHintListener(l)
	})
	return r
}

// AddViewDestroyListener queues l for notification on engine detach. It
// is never forwarded to an activity binding; the destroyable native view
// it serves has no analog in the current contract.
func (r *Registrar) AddViewDestroyListener(l plugin.ViewDestroyListener) plugin.Registrar {
	r.listeners.AddViewDestroy(l)
	return r
}

// forwardOrWarn forwards a just-added listener to the live activity
// binding so it takes effect without waiting for the next attach, or logs
// when the registration can only queue.
func (r *Registrar) forwardOrWarn(kind string, forward func(plugin.ActivityBinding)) {
	if r.activityBinding != nil {
		forward(r.activityBinding)
		return
	}
	slog.Warn("listener queued: no activity is attached to the engine",
		"plugin", r.pluginID, "listener", kind)
}

// OnAttachedToEngine stores the engine binding. Activity state is
// untouched.
func (r *Registrar) OnAttachedToEngine(binding plugin.EngineBinding) {
	r.transition(StateEngineAttached)
	r.engineBinding = &binding
}

// OnDetachedFromEngine notifies every queued view-destroy listener with a
// nil native view, then clears the engine binding. Detach is terminal for
// the binding, so the listener set itself is left intact.
func (r *Registrar) OnDetachedFromEngine(plugin.EngineBinding) {
	r.listeners.NotifyViewDestroyed()
	r.engineBinding = nil
	r.transition(StateDetached)
}

// OnAttachedToActivity installs the binding and replays every queued
// listener registration onto it.
func (r *Registrar) OnAttachedToActivity(binding plugin.ActivityBinding) {
	r.transition(StateActivityAttached)
	r.activityBinding = binding
	r.listeners.SyncTo(binding)
}

// OnDetachedFromActivityForConfigChanges clears the activity binding
// ahead of a reconfiguration reattach. The listener registry is untouched
// so the reattach restores forwarding in full.
func (r *Registrar) OnDetachedFromActivityForConfigChanges() {
	r.activityBinding = nil
	r.transition(StateEngineAttached)
}

// OnReattachedToActivityForConfigChanges installs the rebuilt binding and
// replays every queued listener registration onto it.
func (r *Registrar) OnReattachedToActivityForConfigChanges(binding plugin.ActivityBinding) {
	r.transition(StateActivityAttached)
	r.activityBinding = binding
	r.listeners.SyncTo(binding)
}

// OnDetachedFromActivity clears the activity binding.
func (r *Registrar) OnDetachedFromActivity() {
	r.activityBinding = nil
	r.transition(StateEngineAttached)
}

// transition moves the registrar to a new state, logging lifecycle misuse
// instead of failing: per the error policy, misordered lifecycle
// callbacks are no-ops to their caller.
func (r *Registrar) transition(to BindingState) {
	if !ValidTransition(r.state, to) {
		slog.Warn("unexpected lifecycle transition",
			"plugin", r.pluginID, "from", r.state, "to", to)
	}
	r.state = to
}
