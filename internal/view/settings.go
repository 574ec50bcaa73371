// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package view

import (
	"log/slog"

	"github.com/emberview/emberview/pkg/engine"
	"github.com/emberview/emberview/pkg/host"
)

// settingsMessage translates host user preferences into the engine's
// settings message.
func settingsMessage(cfg host.Configuration) engine.SettingsMessage {
	return engine.SettingsMessage{
		TextScaleFactor: cfg.FontScale,
		Use24HourFormat: cfg.Use24HourFormat,
	}
}

// sendSettingsToEngine pushes the host's current user preferences. The
// configuration is read fresh from the platform on every push.
func (v *View) sendSettingsToEngine() {
	if !v.Attached() {
		slog.Warn("settings not sent: no engine attached", "view", v.id)
		return
	}
	v.eng.Settings().Send(settingsMessage(v.platform.Configuration()))
}

// sendLocalesToEngine pushes the host's current locale preference order.
func (v *View) sendLocalesToEngine() {
	if !v.Attached() {
		slog.Warn("locales not sent: no engine attached", "view", v.id)
		return
	}
	v.eng.Localization().SendLocales(v.platform.Configuration().Locales)
}
