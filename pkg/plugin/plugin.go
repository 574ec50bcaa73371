// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package plugin provides public contracts for plugin authors: the
// lifecycle-aware plugin interface, the activity-aware extension, the
// bindings handed to plugins on attach, and the legacy registrar contract
// served by the compatibility shim.
package plugin

import (
	"github.com/emberview/emberview/pkg/engine"
	"github.com/emberview/emberview/pkg/host"
)

// Plugin is the lifecycle contract. A plugin is attached to at most one
// engine at a time and receives the matching detach before any re-attach.
type Plugin interface {
	OnAttachedToEngine(binding EngineBinding)
	OnDetachedFromEngine(binding EngineBinding)
}

// ActivityAware is implemented by plugins that care about the foreground
// host activity. The ForConfigChanges variants bracket a transient detach:
// the host tears the activity down and immediately rebuilds it, and the
// plugin should preserve state across the pair.
type ActivityAware interface {
	OnAttachedToActivity(binding ActivityBinding)
	OnDetachedFromActivityForConfigChanges()
	OnReattachedToActivityForConfigChanges(binding ActivityBinding)
	OnDetachedFromActivity()
}

// EngineBinding represents an attached rendering engine. It is created
// when the engine attaches and is invalid after the matching detach.
type EngineBinding struct {
	ApplicationContext host.Context
	Engine             engine.Engine
}

// Messenger returns the attached engine's message transport.
func (b EngineBinding) Messenger() engine.Messenger {
	if b.Engine == nil {
		return nil
	}
	return b.Engine.Messenger()
}

// Textures returns the attached engine's texture registry.
func (b EngineBinding) Textures() engine.TextureRegistry {
	if b.Engine == nil {
		return nil
	}
	return b.Engine.Textures()
}

// ActivityBinding represents a foreground host activity attached to an
// engine. The embedding implements it; listener registrations take effect
// for the lifetime of this binding only.
type ActivityBinding interface {
	Activity() host.Activity

	AddPermissionResultListener(l PermissionResultListener)
	AddActivityResultListener(l ActivityResultListener)
	AddNewIntentListener(l NewIntentListener)
	AddUserLeaveHintListener(l UserLeaveHintListener)
}
