// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package host defines the contracts and value types emberview consumes
// from the embedding host platform: window geometry, input events, user
// configuration, and the opaque handles (contexts, activities, intents)
// that pass through the plugin layer untouched.
//
// Everything in this package is delivered by the host on its single UI
// goroutine; see the concurrency note on each consumer.
package host

import "golang.org/x/text/language"

// Context is an opaque handle to a host application context. Emberview
// never inspects it; it is stored and handed back to plugins verbatim.
type Context interface{}

// Activity is an opaque handle to a foreground host activity.
type Activity interface{}

// Intent is an opaque handle to a host intent delivered to an activity.
type Intent interface{}

// NativeView is an opaque handle to the legacy full-screen native view.
// The current contract has no such view; APIs returning a NativeView exist
// only for legacy-plugin compatibility and supply nil.
type NativeView interface{}

// KeyAction distinguishes key press from key release.
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// KeyEvent is a physical key press or release reported by the host.
type KeyEvent struct {
	Action    KeyAction
	Code      int
	Rune      rune
	Modifiers int
	Repeat    int
}

// MotionAction classifies a pointer event.
type MotionAction int

const (
	MotionDown MotionAction = iota
	MotionUp
	MotionMove
	MotionHoverEnter
	MotionHoverMove
	MotionHoverExit
	MotionScroll
	MotionCancel
)

// MotionEvent is a touch, hover, or generic pointer event reported by the
// host. Coordinates are in physical pixels relative to the view origin.
type MotionEvent struct {
	Action  MotionAction
	X, Y    float64
	Pointer int
	Source  int
}

// Insets is a set of window edge distances in physical pixels. It carries
// both the modern system-window-inset callback payload and the legacy
// padding rectangle, which share this shape.
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Configuration is the host user configuration emberview forwards to the
// engine: locale preference order and text/clock settings.
type Configuration struct {
	Locales         []language.Tag
	FontScale       float64
	Use24HourFormat bool
}

// Display reports display properties. Density is read fresh on every
// viewport metrics push rather than cached, since the host may migrate the
// view across displays.
type Display interface {
	Density() float64
}

// InputMethods is the host input-method subsystem. RestartInput forces the
// host to re-query the view's input connection state, which must happen
// whenever the engine attachment changes.
type InputMethods interface {
	RestartInput()
}

// Platform aggregates the host services a view needs. APILevel selects the
// window-inset callback path once at view construction: hosts at or above
// ModernInsetsAPILevel deliver modern system-window insets, older hosts
// deliver the legacy padding rectangle. The two paths are mutually
// exclusive per host version.
type Platform interface {
	Display() Display
	Configuration() Configuration
	InputMethods() InputMethods
	APILevel() int
}

// ModernInsetsAPILevel is the first host API level that delivers window
// geometry through the modern inset callback.
const ModernInsetsAPILevel = 20

// EditorInfo is an opaque descriptor the host supplies when requesting an
// input connection.
type EditorInfo interface{}

// InputConnection is an opaque text-editing session handed back to the
// host input-method subsystem.
type InputConnection interface{}

// AccessibilityNodeProvider is an opaque provider of the semantic node
// tree the host accessibility framework walks.
type AccessibilityNodeProvider interface{}
