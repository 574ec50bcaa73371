// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package view binds a host-displayed surface to a rendering engine. A
// View owns one render surface for its lifetime, attaches and detaches
// engines against it, and translates host geometry, input, configuration,
// and accessibility callbacks into engine protocol calls.
package view

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/emberview/emberview/pkg/engine"
	emberr "github.com/emberview/emberview/pkg/errors"
	"github.com/emberview/emberview/pkg/host"
)

// View displays engine-rendered content inside a host view hierarchy.
//
// A View paints through one of two render modes, fixed at construction:
// surface (fastest, cannot be layered) or texture (layerable and
// transformable). The engine connection is dynamic: AttachToEngine and
// DetachFromEngine may be called repeatedly over the view's life, and
// each attachment builds a fresh set of input adapters.
//
// Not safe for concurrent use; every method must run on the host UI
// goroutine. Host callbacks never block and run to completion
// synchronously.
type View struct {
	id string

	renderMode       RenderMode
	transparencyMode TransparencyMode

	platform host.Platform
	backend  Backend

	surface engine.RenderSurface
	insets  insetStrategy
	latch   *firstFrameLatch

	metrics        engine.ViewportMetrics
	firstFrame     bool
	drawSuppressed bool

	eng           engine.Engine
	textInput     TextInputAdapter
	keys          KeyAdapter
	touch         TouchAdapter
	accessibility AccessibilityAdapter
}

// Option configures a View at construction.
type Option func(*View)

// WithRenderMode selects the render mode. Defaults to surface.
func WithRenderMode(m RenderMode) Option {
	return func(v *View) { v.renderMode = m }
}

// WithTransparencyMode selects the transparency mode. Defaults to opaque.
func WithTransparencyMode(m TransparencyMode) Option {
	return func(v *View) { v.transparencyMode = m }
}

// firstFrameLatch sets the view's one-way first-frame flag. A separate
// type so it can be removed from the surface independently of listeners
// the embedding adds.
type firstFrameLatch struct {
	view *View
}

func (l *firstFrameLatch) OnFirstFrameRendered() {
	l.view.firstFrame = true
}

// New creates a View on the given platform, building its render surface
// through the backend. The window-inset translation path (modern vs
// legacy) is chosen here from the platform API level and never
// re-checked.
func New(platform host.Platform, backend Backend, opts ...Option) (*View, error) {
	if platform == nil {
		return nil, emberr.New(emberr.CodeViewBackendInvalid, "platform is nil")
	}
	if backend == nil {
		return nil, emberr.New(emberr.CodeViewBackendInvalid, "backend is nil")
	}

	v := &View{
		id:               uuid.NewString(),
		renderMode:       RenderModeSurface,
		transparencyMode: TransparencyModeOpaque,
		platform:         platform,
		backend:          backend,
	}

	for _, opt := range opts {
		opt(v)
	}

	if !validRenderModes[v.renderMode] {
		return nil, emberr.Errorf(emberr.CodeViewModeInvalid,
			"render mode must be one of [surface, texture], got %q", v.renderMode)
	}
	if !validTransparencyModes[v.transparencyMode] {
		return nil, emberr.Errorf(emberr.CodeViewModeInvalid,
			"transparency mode must be one of [opaque, transparent], got %q", v.transparencyMode)
	}

	surface, err := backend.CreateSurface(v.renderMode, v.transparencyMode)
	if err != nil {
		return nil, emberr.Wrap(err, emberr.CodeViewBackendInvalid, "creating render surface",
			emberr.Field("render_mode", string(v.renderMode)))
	}
	v.surface = surface

	v.latch = &firstFrameLatch{view: v}
	v.surface.AddFirstFrameListener(v.latch)

	if platform.APILevel() >= host.ModernInsetsAPILevel {
		v.insets = modernInsets{}
	} else {
		v.insets = legacyInsets{}
	}

	return v, nil
}

// ID returns the view's instance identifier, used for log correlation.
func (v *View) ID() string {
	return v.id
}

// RenderMode returns the render mode fixed at construction.
func (v *View) RenderMode() RenderMode {
	return v.renderMode
}

// TransparencyMode returns the transparency mode fixed at construction.
func (v *View) TransparencyMode() TransparencyMode {
	return v.transparencyMode
}

// Surface returns the render target this view owns.
func (v *View) Surface() engine.RenderSurface {
	return v.surface
}

// Attached reports whether this view is the attached engine's active
// render target. An engine reference alone is not enough: mid-swap to
// another view the renderer targets a different surface, and every
// dispatch path must treat that as detached.
func (v *View) Attached() bool {
	return v.eng != nil && v.eng.Renderer().IsAttachedTo(v.surface)
}

// AttachToEngine connects this view to the given engine. The view
// becomes the engine's render target and begins forwarding input,
// accessibility, and geometry to it. Attaching the already-attached
// engine is a no-op; attaching a different engine detaches the old one
// first.
func (v *View) AttachToEngine(e engine.Engine) {
	if v.Attached() {
		if e == v.eng {
			slog.Debug("already attached to this engine", "view", v.id)
			return
		}
		slog.Debug("attached to a different engine, detaching", "view", v.id)
		v.DetachFromEngine()
	}

	v.eng = e
	v.firstFrame = false
	e.Renderer().AttachSurface(v.surface)

	// Fresh adapters per attachment: each holds this engine's channel
	// handles.
	v.textInput = v.backend.TextInput(e)
	v.keys = v.backend.KeyProcessor(e, v.textInput)
	v.touch = v.backend.TouchProcessor(e.Renderer())
	v.accessibility = v.backend.AccessibilityBridge(e)

	v.accessibility.SetChangeListener(v.resetDrawSuppression)
	v.resetDrawSuppression(v.accessibility.Enabled(), v.accessibility.TouchExplorationEnabled())

	// The host must re-query the input connection: there is a target now.
	v.platform.InputMethods().RestartInput()

	// The new engine has no prior state; push everything unconditionally.
	v.sendSettingsToEngine()
	v.sendLocalesToEngine()
	v.pushViewportMetrics()
}

// DetachFromEngine disconnects this view from its engine, if any. The
// view stops forwarding all events and drops its adapter set.
func (v *View) DetachFromEngine() {
	if !v.Attached() {
		slog.Debug("not attached to an engine", "view", v.id)
		return
	}

	// The host must re-query the input connection: there is no target
	// anymore.
	v.platform.InputMethods().RestartInput()

	v.firstFrame = false
	v.eng.Renderer().DetachSurface()
	v.eng = nil
	v.textInput = nil
	v.keys = nil
	v.touch = nil
	v.accessibility = nil
}

// HasRenderedFirstFrame reports whether the currently attached engine has
// painted at least one frame to this view. The latch resets on every
// attach and detach.
func (v *View) HasRenderedFirstFrame() bool {
	return v.firstFrame
}

// AddFirstFrameListener registers a listener for the engine's first
// painted frame.
func (v *View) AddFirstFrameListener(l engine.FirstFrameListener) {
	v.surface.AddFirstFrameListener(l)
}

// RemoveFirstFrameListener removes a previously added listener.
func (v *View) RemoveFirstFrameListener(l engine.FirstFrameListener) {
	v.surface.RemoveFirstFrameListener(l)
}

// DrawSuppressed reports whether the host may skip this view's own draw
// pass. With GPU rendering the view draws nothing itself unless
// accessibility needs it; with software rendering the view must stay an
// active draw target.
func (v *View) DrawSuppressed() bool {
	return v.drawSuppressed
}

// resetDrawSuppression applies the draw-suppression policy whenever
// accessibility enablement changes.
func (v *View) resetDrawSuppression(enabled, touchExploration bool) {
	if v.eng == nil {
		return
	}
	if v.eng.Renderer().SoftwareRendering() {
		v.drawSuppressed = false
		return
	}
	v.drawSuppressed = !(enabled || touchExploration)
}

// OnConfigurationChanged pushes the host's current locales and user
// settings to the engine. Locale and preference reads are fresh; nothing
// is cached from construction.
func (v *View) OnConfigurationChanged() {
	v.sendLocalesToEngine()
	v.sendSettingsToEngine()
}

// OnSizeChanged records the view's new size and pushes viewport metrics.
// Padding and inset fields are untouched.
func (v *View) OnSizeChanged(width, height int) {
	v.metrics.Width = width
	v.metrics.Height = height
	v.pushViewportMetrics()
}

// OnApplyWindowInsets handles the modern window-inset callback. It
// reports whether the insets were consumed; on hosts below the modern
// inset API level it is inert and the legacy path applies instead.
func (v *View) OnApplyWindowInsets(insets host.Insets) bool {
	return v.insets.applyWindowInsets(v, insets)
}

// FitSystemWindows handles the legacy padding callback. It is inert on
// hosts at or above the modern inset API level.
func (v *View) FitSystemWindows(padding host.Insets) bool {
	return v.insets.fitSystemWindows(v, padding)
}

// OnKeyDown forwards a key press to the engine. The return is always
// false: key events are forwarded, not consumed, so the host chain
// continues whether or not an engine is attached.
func (v *View) OnKeyDown(ev host.KeyEvent) bool {
	if !v.Attached() {
		return false
	}
	v.keys.HandleKeyDown(ev)
	return false
}

// OnKeyUp forwards a key release to the engine. See OnKeyDown for the
// return convention.
func (v *View) OnKeyUp(ev host.KeyEvent) bool {
	if !v.Attached() {
		return false
	}
	v.keys.HandleKeyUp(ev)
	return false
}

// OnTouchEvent forwards a touch event to the engine, which runs its own
// gesture detection. Unattached views report the event unhandled so the
// host applies its default behavior.
func (v *View) OnTouchEvent(ev host.MotionEvent) bool {
	if !v.Attached() {
		return false
	}
	return v.touch.HandleTouch(ev)
}

// OnGenericMotionEvent forwards a generic pointer event (scroll wheel,
// joystick, mouse hover) to the engine.
func (v *View) OnGenericMotionEvent(ev host.MotionEvent) bool {
	return v.Attached() && v.touch.HandleGenericMotion(ev)
}

// OnHoverEvent offers a hover event to the accessibility bridge, which
// claims hover exclusively for touch exploration. Hover events the
// bridge does not consume are dropped; they are not forwarded to the
// engine's pointer pipeline.
func (v *View) OnHoverEvent(ev host.MotionEvent) bool {
	if !v.Attached() {
		return false
	}
	return v.accessibility.HandleHover(ev)
}

// CreateInputConnection returns a text-editing session for the host
// input-method subsystem, or nil while no engine is attached, which
// tells the host this view does not process input.
func (v *View) CreateInputConnection(info host.EditorInfo) host.InputConnection {
	if !v.Attached() {
		return nil
	}
	return v.textInput.CreateInputConnection(info)
}

// AccessibilityNodeProvider returns the semantic node provider while
// accessibility is enabled on an attached engine, else nil so the host
// falls back to its default traversal.
func (v *View) AccessibilityNodeProvider() host.AccessibilityNodeProvider {
	if !v.Attached() || !v.accessibility.Enabled() {
		return nil
	}
	return v.accessibility.NodeProvider()
}

// pushViewportMetrics sends the accumulated viewport metrics to the
// engine in one batch. Device pixel ratio is read fresh on every push.
// Geometry can legitimately arrive before attachment completes, so an
// unattached push is a warned no-op.
func (v *View) pushViewportMetrics() {
	if !v.Attached() {
		slog.Warn("viewport metrics not pushed: no engine attached", "view", v.id)
		return
	}

	v.metrics.DevicePixelRatio = v.platform.Display().Density()
	v.eng.Renderer().SetViewportMetrics(v.metrics)
}
