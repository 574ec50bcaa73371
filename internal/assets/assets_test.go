// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package assets_test

import (
	"testing"

	"github.com/emberview/emberview/internal/assets"
	"github.com/stretchr/testify/assert"
)

func TestLookupKey(t *testing.T) {
	t.Cleanup(func() { assets.SetBundlePath("") })

	assert.Equal(t, "ember_assets/fonts/Roboto.ttf", assets.LookupKey("fonts/Roboto.ttf"))
	assert.Equal(t, "ember_assets/packages/maps/pin.png", assets.LookupKeyIn("pin.png", "maps"))

	assets.SetBundlePath("custom_bundle")
	assert.Equal(t, "custom_bundle", assets.BundlePath())
	assert.Equal(t, "custom_bundle/logo.png", assets.LookupKey("logo.png"))
	assert.Equal(t, "custom_bundle/packages/maps/pin.png", assets.LookupKeyIn("pin.png", "maps"))
}

func TestSetBundlePath_EmptyRestoresDefault(t *testing.T) {
	assets.SetBundlePath("elsewhere")
	assets.SetBundlePath("")
	assert.Equal(t, assets.DefaultBundleName, assets.BundlePath())
}
