// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package view

import emberr "github.com/emberview/emberview/pkg/errors"

// RenderMode selects the kind of native target a view paints through.
// Fixed at view construction.
type RenderMode string

const (
	// RenderModeSurface paints to a dedicated native surface. Best
	// performance, but the view cannot be layered or transformed.
	RenderModeSurface RenderMode = "surface"
	// RenderModeTexture paints to a native texture. Slower than surface,
	// but the view can be layered, animated, and transformed.
	RenderModeTexture RenderMode = "texture"
)

// validRenderModes enumerates recognized render modes.
var validRenderModes = map[RenderMode]bool{
	RenderModeSurface: true,
	RenderModeTexture: true,
}

// ParseRenderMode validates a render mode string.
func ParseRenderMode(s string) (RenderMode, error) {
	m := RenderMode(s)
	if !validRenderModes[m] {
		return "", emberr.Errorf(emberr.CodeViewModeInvalid,
			"render mode must be one of [surface, texture], got %q", s)
	}
	return m, nil
}

// TransparencyMode controls the background of a surface-mode view. Fixed
// at view construction; texture-mode targets are inherently transparent.
type TransparencyMode string

const (
	TransparencyModeOpaque      TransparencyMode = "opaque"
	TransparencyModeTransparent TransparencyMode = "transparent"
)

// validTransparencyModes enumerates recognized transparency modes.
var validTransparencyModes = map[TransparencyMode]bool{
	TransparencyModeOpaque:      true,
	TransparencyModeTransparent: true,
}

// ParseTransparencyMode validates a transparency mode string.
func ParseTransparencyMode(s string) (TransparencyMode, error) {
	m := TransparencyMode(s)
	if !validTransparencyModes[m] {
		return "", emberr.Errorf(emberr.CodeViewModeInvalid,
			"transparency mode must be one of [opaque, transparent], got %q", s)
	}
	return m, nil
}
