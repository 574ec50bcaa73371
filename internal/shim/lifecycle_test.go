// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package shim_test

import (
	"testing"

	"github.com/emberview/emberview/internal/shim"
	"github.com/stretchr/testify/assert"
)

func TestBindingState_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    shim.BindingState
		to      shim.BindingState
		allowed bool
	}{
		{"detached to engine attached", shim.StateDetached, shim.StateEngineAttached, true},
		{"engine attached to activity attached", shim.StateEngineAttached, shim.StateActivityAttached, true},
		{"activity attached to engine attached", shim.StateActivityAttached, shim.StateEngineAttached, true},
		{"engine attached to detached", shim.StateEngineAttached, shim.StateDetached, true},
		{"activity attached to detached", shim.StateActivityAttached, shim.StateDetached, true},
		// Invalid transitions
		{"detached to activity attached", shim.StateDetached, shim.StateActivityAttached, false},
		{"detached to detached", shim.StateDetached, shim.StateDetached, false},
		{"engine attached to engine attached", shim.StateEngineAttached, shim.StateEngineAttached, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, shim.ValidTransition(tt.from, tt.to))
		})
	}
}

func TestBindingState_String(t *testing.T) {
	assert.Equal(t, "detached", shim.StateDetached.String())
	assert.Equal(t, "engine_attached", shim.StateEngineAttached.String())
	assert.Equal(t, "activity_attached", shim.StateActivityAttached.String())
	assert.Equal(t, "unknown", shim.BindingState(99).String())
}
