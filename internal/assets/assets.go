// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

// Package assets resolves asset names to bundle lookup keys. Resolution
// is process-wide: the bundle path is configured once by the embedding
// before any plugin asks for a key.
package assets

import "path"

// DefaultBundleName is the bundle directory used until SetBundlePath is
// called.
const DefaultBundleName = "ember_assets"

var bundlePath = DefaultBundleName

// SetBundlePath overrides the process-wide asset bundle location. An
// empty path restores the default.
func SetBundlePath(p string) {
	if p == "" {
		bundlePath = DefaultBundleName
		return
	}
	bundlePath = p
}

// BundlePath returns the current process-wide asset bundle location.
func BundlePath() string {
	return bundlePath
}

// LookupKey returns the bundle lookup key for an asset name.
func LookupKey(asset string) string {
	return path.Join(bundlePath, asset)
}

// LookupKeyIn returns the bundle lookup key for an asset that ships
// inside a named package.
func LookupKeyIn(asset, pkg string) string {
	return path.Join(bundlePath, "packages", pkg, asset)
}
