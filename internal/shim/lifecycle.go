// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package shim

// BindingState is the lifecycle state of one shim registrar.
type BindingState int

const (
	// StateDetached means no engine is attached.
	StateDetached BindingState = iota
	// StateEngineAttached means an engine is attached but no activity is.
	// This is the headless case; listener registrations queue here.
	StateEngineAttached
	// StateActivityAttached means both an engine and a foreground
	// activity are attached.
	StateActivityAttached
)

func (s BindingState) String() string {
	switch s {
	case StateDetached:
		return "detached"
	case StateEngineAttached:
		return "engine_attached"
	case StateActivityAttached:
		return "activity_attached"
	default:
		return "unknown"
	}
}

// validTransitions defines allowed state transitions as an adjacency list.
// Activity attach/detach cycles freely between the two attached states;
// only the transition back to detached discharges queued view-destroy
// listeners.
var validTransitions = map[BindingState]map[BindingState]bool{
	StateDetached: {
		StateEngineAttached: true,
	},
	StateEngineAttached: {
		StateActivityAttached: true,
		StateDetached:         true,
	},
	StateActivityAttached: {
		StateEngineAttached: true,
		StateDetached:       true,
	},
}

// ValidTransition returns true if transitioning from one state to another
// is allowed.
func ValidTransition(from, to BindingState) bool {
	allowed, exists := validTransitions[from][to]
	return exists && allowed
}
