// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package view_test

import (
	"testing"

	"github.com/emberview/emberview/internal/view"
	"github.com/emberview/emberview/pkg/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowInsets_Modern(t *testing.T) {
	v, platform, _ := newTestView(t)
	require.GreaterOrEqual(t, platform.apiLevel, host.ModernInsetsAPILevel)
	eng := newFakeViewEngine()
	v.AttachToEngine(eng)

	v.OnSizeChanged(1080, 1920)
	consumed := v.OnApplyWindowInsets(host.Insets{Top: 60, Right: 0, Bottom: 48, Left: 0})
	assert.True(t, consumed)

	m := eng.renderer.metrics[len(eng.renderer.metrics)-1]
	assert.Equal(t, 1080, m.Width)
	assert.Equal(t, 1920, m.Height)
	assert.Equal(t, 60, m.PaddingTop)
	assert.Equal(t, 0, m.PaddingRight)
	assert.Equal(t, 0, m.PaddingBottom)
	assert.Equal(t, 0, m.PaddingLeft)
	assert.Equal(t, 0, m.ViewInsetTop)
	assert.Equal(t, 0, m.ViewInsetRight)
	assert.Equal(t, 48, m.ViewInsetBottom)
	assert.Equal(t, 0, m.ViewInsetLeft)
}

func TestWindowInsets_LegacyPathInertOnModernHost(t *testing.T) {
	v, _, _ := newTestView(t)
	eng := newFakeViewEngine()
	v.AttachToEngine(eng)

	pushes := len(eng.renderer.metrics)
	assert.False(t, v.FitSystemWindows(host.Insets{Top: 60, Bottom: 48}))
	assert.Len(t, eng.renderer.metrics, pushes)
}

func TestWindowInsets_Legacy(t *testing.T) {
	platform := newFakePlatform()
	platform.apiLevel = host.ModernInsetsAPILevel - 1
	backend := &fakeBackend{}
	v, err := view.New(platform, backend)
	require.NoError(t, err)
	eng := newFakeViewEngine()
	v.AttachToEngine(eng)

	assert.True(t, v.FitSystemWindows(host.Insets{Top: 24, Right: 8, Bottom: 32, Left: 8}))
	assert.False(t, v.OnApplyWindowInsets(host.Insets{Top: 24, Bottom: 32}))

	m := eng.renderer.metrics[len(eng.renderer.metrics)-1]
	assert.Equal(t, 24, m.PaddingTop)
	assert.Equal(t, 8, m.PaddingRight)
	assert.Equal(t, 0, m.PaddingBottom)
	assert.Equal(t, 8, m.PaddingLeft)
	assert.Equal(t, 32, m.ViewInsetBottom)
}

func TestWindowInsets_NegativeEdgesClamped(t *testing.T) {
	v, _, _ := newTestView(t)
	eng := newFakeViewEngine()
	v.AttachToEngine(eng)

	v.OnApplyWindowInsets(host.Insets{Top: -10, Right: -1, Bottom: -48, Left: -5})

	m := eng.renderer.metrics[len(eng.renderer.metrics)-1]
	assert.Equal(t, 0, m.PaddingTop)
	assert.Equal(t, 0, m.PaddingRight)
	assert.Equal(t, 0, m.PaddingLeft)
	assert.Equal(t, 0, m.ViewInsetBottom)
}

func TestWindowInsets_ReplacedNotAccumulated(t *testing.T) {
	v, _, _ := newTestView(t)
	eng := newFakeViewEngine()
	v.AttachToEngine(eng)

	v.OnApplyWindowInsets(host.Insets{Top: 60, Bottom: 48})
	v.OnApplyWindowInsets(host.Insets{Top: 60, Bottom: 0})

	m := eng.renderer.metrics[len(eng.renderer.metrics)-1]
	assert.Equal(t, 60, m.PaddingTop)
	assert.Equal(t, 0, m.ViewInsetBottom)
}

func TestWindowInsets_BeforeAttachArePreserved(t *testing.T) {
	v, _, _ := newTestView(t)

	// Geometry can arrive before the engine does; it is retained and
	// pushed with the first attach.
	v.OnSizeChanged(720, 1280)
	assert.True(t, v.OnApplyWindowInsets(host.Insets{Top: 36, Bottom: 24}))

	eng := newFakeViewEngine()
	v.AttachToEngine(eng)

	require.NotEmpty(t, eng.renderer.metrics)
	m := eng.renderer.metrics[len(eng.renderer.metrics)-1]
	assert.Equal(t, 720, m.Width)
	assert.Equal(t, 1280, m.Height)
	assert.Equal(t, 36, m.PaddingTop)
	assert.Equal(t, 24, m.ViewInsetBottom)
}
