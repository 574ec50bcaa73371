// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package shim

// PublicationMap maps plugin identifiers to arbitrary published values.
// One map is shared across every registrar in the process so legacy
// plugins can look each other up by identifier; it is injected explicitly
// rather than held as package state. Entries persist for the process
// lifetime; the last writer for an identifier wins.
//
// Not safe for concurrent use; all access happens on the host UI
// goroutine, so "last write wins" needs no further discipline.
type PublicationMap struct {
	values map[string]any
}

// NewPublicationMap creates an empty publication map.
func NewPublicationMap() *PublicationMap {
	return &PublicationMap{values: make(map[string]any)}
}

// Publish stores value under the given plugin identifier, replacing any
// previous value.
func (m *PublicationMap) Publish(pluginID string, value any) {
	m.values[pluginID] = value
}

// Value returns the value published under the given plugin identifier.
// The second return is false for unknown identifiers.
func (m *PublicationMap) Value(pluginID string) (any, bool) {
	v, ok := m.values[pluginID]
	return v, ok
}
