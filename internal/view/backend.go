// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package view

import (
	"github.com/emberview/emberview/pkg/engine"
	"github.com/emberview/emberview/pkg/host"
)

// Backend constructs the native pieces a view owns: the render surface
// (once, at view construction) and the four input adapters (fresh on
// every engine attach, since adapters hold per-engine channel handles and
// are never reused across engines). Concrete backends live in the
// embedding; this module only orchestrates them.
type Backend interface {
	// CreateSurface builds the render target for the given modes.
	CreateSurface(mode RenderMode, transparency TransparencyMode) (engine.RenderSurface, error)

	TextInput(e engine.Engine) TextInputAdapter
	KeyProcessor(e engine.Engine, textInput TextInputAdapter) KeyAdapter
	TouchProcessor(r engine.Renderer) TouchAdapter
	AccessibilityBridge(e engine.Engine) AccessibilityAdapter
}

// TextInputAdapter bridges the host input-method subsystem to the
// engine's text-input channel.
type TextInputAdapter interface {
	CreateInputConnection(info host.EditorInfo) host.InputConnection
}

// KeyAdapter encodes host key events onto the engine's key-event channel.
// Key events are forwarded, never consumed; the host chain continues
// regardless.
type KeyAdapter interface {
	HandleKeyDown(ev host.KeyEvent)
	HandleKeyUp(ev host.KeyEvent)
}

// TouchAdapter forwards host pointer events to the engine, which does its
// own gesture detection. Return values report whether the engine claimed
// the event.
type TouchAdapter interface {
	HandleTouch(ev host.MotionEvent) bool
	HandleGenericMotion(ev host.MotionEvent) bool
}

// AccessibilityAdapter bridges the host accessibility framework to the
// engine's semantics tree. Hover events are claimed exclusively by this
// adapter.
type AccessibilityAdapter interface {
	HandleHover(ev host.MotionEvent) bool
	Enabled() bool
	TouchExplorationEnabled() bool

	// SetChangeListener registers the callback invoked whenever
	// accessibility or touch-exploration enablement flips.
	SetChangeListener(fn func(enabled, touchExploration bool))

	NodeProvider() host.AccessibilityNodeProvider
}
