// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package view

import (
	"github.com/emberview/emberview/pkg/engine"
	"github.com/emberview/emberview/pkg/host"
)

// insetStrategy is the host-version branch for window geometry. Modern
// hosts deliver system-window insets through applyWindowInsets; legacy
// hosts deliver a padding rectangle through fitSystemWindows. Exactly one
// path is live per view, chosen at construction; the other reports the
// callback unconsumed so the host default applies.
type insetStrategy interface {
	applyWindowInsets(v *View, insets host.Insets) bool
	fitSystemWindows(v *View, padding host.Insets) bool
}

type modernInsets struct{}

func (modernInsets) applyWindowInsets(v *View, insets host.Insets) bool {
	applyObscuredEdges(&v.metrics, insets)
	v.pushViewportMetrics()
	return true
}

func (modernInsets) fitSystemWindows(*View, host.Insets) bool {
	return false
}

type legacyInsets struct{}

func (legacyInsets) applyWindowInsets(*View, host.Insets) bool {
	return false
}

func (legacyInsets) fitSystemWindows(v *View, padding host.Insets) bool {
	applyObscuredEdges(&v.metrics, padding)
	v.pushViewportMetrics()
	return true
}

// applyObscuredEdges maps host window insets onto viewport metrics. Top,
// right, and left system insets partially obscure content and become
// padding. The bottom edge is different: bottom obscuring (keyboard,
// navigation bar) moves the scrollable bottom edge, so it becomes
// ViewInsetBottom and PaddingBottom is forced to zero; modeling the
// bottom edge both ways would double-account it. Width, height, and
// pixel ratio are untouched.
func applyObscuredEdges(m *engine.ViewportMetrics, insets host.Insets) {
	m.PaddingTop = clampEdge(insets.Top)
	m.PaddingRight = clampEdge(insets.Right)
	m.PaddingBottom = 0
	m.PaddingLeft = clampEdge(insets.Left)

	m.ViewInsetTop = 0
	m.ViewInsetRight = 0
	m.ViewInsetBottom = clampEdge(insets.Bottom)
	m.ViewInsetLeft = 0
}

// clampEdge enforces the non-negative invariant on padding and inset
// components.
func clampEdge(edge int) int {
	if edge < 0 {
		return 0
	}
	return edge
}
