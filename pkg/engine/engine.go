// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package engine defines the contracts emberview holds against a rendering
// engine. The engine itself lives outside this module; emberview only
// attaches surfaces, pushes viewport metrics, and hands channel handles to
// the per-attachment input adapters.
package engine

import "golang.org/x/text/language"

// Engine is a running rendering engine instance.
type Engine interface {
	Renderer() Renderer
	Messenger() Messenger
	Textures() TextureRegistry

	KeyEvents() KeyEventChannel
	Accessibility() AccessibilityChannel
	Localization() LocalizationChannel
	Settings() SettingsChannel
}

// Renderer is the engine's rendering pipeline. A renderer paints into at
// most one surface at a time; IsAttachedTo answers for a specific surface,
// which can differ from "some surface is attached" during a hand-off
// between views.
type Renderer interface {
	AttachSurface(s RenderSurface)
	DetachSurface()
	IsAttachedTo(s RenderSurface) bool
	SetViewportMetrics(m ViewportMetrics)

	// SoftwareRendering reports whether the engine rasterizes on the CPU.
	// Software rendering requires the hosting view to remain an active
	// draw target regardless of accessibility state.
	SoftwareRendering() bool
}

// RenderSurface is an opaque native target the renderer paints into.
// Implementations are surface-backed or texture-backed; emberview treats
// them uniformly.
type RenderSurface interface {
	AddFirstFrameListener(l FirstFrameListener)
	RemoveFirstFrameListener(l FirstFrameListener)
}

// FirstFrameListener is notified once when an attached engine confirms its
// first successful paint to the surface.
type FirstFrameListener interface {
	OnFirstFrameRendered()
}

// ViewportMetrics is the normalized geometry record describing how engine
// content lays out relative to host-obscured regions. Paddings and insets
// are never negative. PaddingBottom is always zero: bottom obscuring is
// modeled exclusively as ViewInsetBottom (keyboard or navigation bar
// overlap) so the bottom edge is never double-accounted.
type ViewportMetrics struct {
	DevicePixelRatio float64
	Width            int
	Height           int

	PaddingTop    int
	PaddingRight  int
	PaddingBottom int
	PaddingLeft   int

	ViewInsetTop    int
	ViewInsetRight  int
	ViewInsetBottom int
	ViewInsetLeft   int
}

// Messenger is the opaque binary message transport into the engine.
// Plugins send and receive on named channels; the transport itself is an
// external collaborator.
type Messenger interface {
	Send(channel string, message []byte)
}

// TextureRegistry is the opaque registry of external textures an engine
// exposes to plugins.
type TextureRegistry interface{}

// PlatformViewRegistry is the opaque registry of host-native views
// embedded inside engine content.
type PlatformViewRegistry interface{}

// KeyEventChannel carries encoded key events into the engine. Its wire
// format belongs to the key adapter.
type KeyEventChannel interface{}

// AccessibilityChannel carries semantic tree updates and accessibility
// actions between the engine and the accessibility bridge.
type AccessibilityChannel interface{}

// LocalizationChannel delivers the host locale preference order.
type LocalizationChannel interface {
	SendLocales(locales []language.Tag)
}

// SettingsMessage is one push of host user preferences.
type SettingsMessage struct {
	TextScaleFactor float64
	Use24HourFormat bool
}

// SettingsChannel delivers host user preferences.
type SettingsChannel interface {
	Send(msg SettingsMessage)
}
