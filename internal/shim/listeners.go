// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package shim

import "github.com/emberview/emberview/pkg/plugin"

// ListenerRegistry is the durable store of legacy listener registrations
// for one registrar. It outlives any activity binding: entries are added
// at any time, including before an activity exists, and SyncTo replays the
// full contents onto each newly attached binding. Membership is never
// pruned; view-destroy listeners are notified on engine detach but remain
// stored, since detach is terminal for that engine binding.
//
// Adds are idempotent under set semantics. Listener values must be
// comparable (pointer implementations satisfy this).
//
// Not safe for concurrent use; confined to the host UI goroutine.
type ListenerRegistry struct {
	permissionResult map[plugin.PermissionResultListener]struct{}
	activityResult   map[plugin.ActivityResultListener]struct{}
	newIntent        map[plugin.NewIntentListener]struct{}
	userLeaveHint    map[plugin.UserLeaveHintListener]struct{}
	viewDestroy      map[plugin.ViewDestroyListener]struct{}
}

// NewListenerRegistry creates an empty listener registry.
func NewListenerRegistry() *ListenerRegistry {
	return &ListenerRegistry{
		permissionResult: make(map[plugin.PermissionResultListener]struct{}),
		activityResult:   make(map[plugin.ActivityResultListener]struct{}),
		newIntent:        make(map[plugin.NewIntentListener]struct{}),
		userLeaveHint:    make(map[plugin.UserLeaveHintListener]struct{}),
		viewDestroy:      make(map[plugin.ViewDestroyListener]struct{}),
	}
}

func (r *ListenerRegistry) AddPermissionResult(l plugin.PermissionResultListener) {
	r.permissionResult[l] = struct{}{}
}

func (r *ListenerRegistry) AddActivityResult(l plugin.ActivityResultListener) {
	r.activityResult[l] = struct{}{}
}

func (r *ListenerRegistry) AddNewIntent(l plugin.NewIntentListener) {
	r.newIntent[l] = struct{}{}
}

func (r *ListenerRegistry) AddUserLeaveHint(l plugin.UserLeaveHintListener) {
	r.userLeaveHint[l] = struct{}{}
}

func (r *ListenerRegistry) AddViewDestroy(l plugin.ViewDestroyListener) {
	r.viewDestroy[l] = struct{}{}
}

// SyncTo forwards every stored listener of the four activity-scoped kinds
// onto the given binding. It is idempotent with respect to the registry
// and is invoked on every activity attach and reattach; each binding
// tracks its own forwarded set, so repeating the sync against a new
// binding is correct by construction. Kinds are replayed in a fixed
// order; order within a kind is map iteration order, deliberately
// unspecified.
func (r *ListenerRegistry) SyncTo(binding plugin.ActivityBinding) {
	for l := range r.permissionResult {
		binding.AddPermissionResultListener(l)
	}
	for l := range r.activityResult {
		binding.AddActivityResultListener(l)
	}
	for l := range r.newIntent {
		binding.AddNewIntentListener(l)
	}
	for l := range r.userLeaveHint {
		binding.AddUserLeaveHintListener(l)
	}
}

// NotifyViewDestroyed invokes every stored view-destroy listener with a
// nil native view. The legacy contract passed the dying view here; the
// current contract has none to supply, an intentional capability loss of
// the shim. Return values are ignored and the set is left intact.
func (r *ListenerRegistry) NotifyViewDestroyed() {
	for l := range r.viewDestroy {
		l.OnViewDestroyed(nil)
	}
}

// Counts reports per-kind registry sizes.
type Counts struct {
	PermissionResult int
	ActivityResult   int
	NewIntent        int
	UserLeaveHint    int
	ViewDestroy      int
}

// Counts returns the current per-kind registry sizes.
func (r *ListenerRegistry) Counts() Counts {
	return Counts{
		PermissionResult: len(r.permissionResult),
		ActivityResult:   len(r.activityResult),
		NewIntent:        len(r.newIntent),
		UserLeaveHint:    len(r.userLeaveHint),
		ViewDestroy:      len(r.viewDestroy),
	}
}
