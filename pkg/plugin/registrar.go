// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package plugin

import (
	"github.com/emberview/emberview/pkg/engine"
	"github.com/emberview/emberview/pkg/host"
)

// PermissionResultListener receives the result of a host permission
// request. It reports whether it consumed the result.
type PermissionResultListener interface {
	OnPermissionResult(requestCode int, permissions []string, grantResults []int) bool
}

// ActivityResultListener receives the result of an activity launched for a
// result. It reports whether it consumed the result.
type ActivityResultListener interface {
	OnActivityResult(requestCode int, resultCode int, data host.Intent) bool
}

// NewIntentListener receives intents delivered to an already-running
// activity. It reports whether it consumed the intent.
type NewIntentListener interface {
	OnNewIntent(intent host.Intent) bool
}

// UserLeaveHintListener is notified when the user is leaving the activity.
type UserLeaveHintListener interface {
	OnUserLeaveHint()
}

// ViewDestroyListener is a legacy contract notified when the native view a
// plugin was registered against is destroyed. Under the compatibility shim
// there is no native view; the listener is invoked with a nil NativeView
// when the engine detaches, and its return value is ignored.
type ViewDestroyListener interface {
	OnViewDestroyed(view host.NativeView) bool
}

// Registrar is the legacy per-plugin registration contract. The
// compatibility shim implements it on top of the lifecycle contract.
//
// Accessors return the zero value while the corresponding binding is
// absent. Add* methods return the Registrar for chaining and are safe to
// call before any activity exists: the registration is queued and replayed
// onto every future activity binding.
type Registrar interface {
	// Activity returns the bound activity, or nil when none is attached.
	Activity() host.Activity

	// Context returns the application context, or nil when no engine is
	// attached.
	Context() host.Context

	// ActiveContext returns the activity when one is bound, else the
	// application context, else nil.
	ActiveContext() host.Context

	// Messenger returns the attached engine's message transport, or nil.
	Messenger() engine.Messenger

	// Textures returns the attached engine's texture registry, or nil.
	Textures() engine.TextureRegistry

	// PlatformViews returns the platform view registry. The shim has
	// none to offer and always returns nil.
	PlatformViews() engine.PlatformViewRegistry

	// View returns the legacy full-screen native view. The current
	// contract has no such view, so this always fails with an
	// unsupported-capability error; callers historically dereferenced the
	// result, so the failure is explicit rather than a nil return.
	View() (host.NativeView, error)

	// LookupKeyForAsset resolves an asset name to its bundle lookup key.
	LookupKeyForAsset(asset string) string

	// LookupKeyForAssetIn resolves an asset name within a named package.
	LookupKeyForAssetIn(asset, pkg string) string

	// Publish stores a value in the process-wide publication map under
	// this registrar's plugin identifier. Last write wins.
	Publish(value any) Registrar

	AddPermissionResultListener(l PermissionResultListener) Registrar
	AddActivityResultListener(l ActivityResultListener) Registrar
	AddNewIntentListener(l NewIntentListener) Registrar
	AddUserLeaveHintListener(l UserLeaveHintListener) Registrar
	AddViewDestroyListener(l ViewDestroyListener) Registrar
}
