// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Emberview Contributors

package plugin

import (
	"fmt"
	"regexp"
	"strings"

	emberr "github.com/emberview/emberview/pkg/errors"
	"gopkg.in/yaml.v3"
)

// nameRe matches valid plugin identifier characters. Identifiers key the
// process-wide publication map, so they must be stable and printable.
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)

// semverRe matches strict semver (no "v" prefix): MAJOR.MINOR.PATCH[-prerelease][+build].
// Leading zeros on numeric segments are disallowed per semver spec.
var semverRe = regexp.MustCompile(
	`^(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)` +
		`(?:-(?:[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?` +
		`(?:\+(?:[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`,
)

// Manifest is the YAML descriptor (plugin.yaml) for a legacy plugin served
// through the compatibility shim. Name doubles as the plugin identifier
// used for registrar vending and publication lookup.
type Manifest struct {
	Name             string `yaml:"name"`
	Version          string `yaml:"version"`
	Description      string `yaml:"description,omitempty"`
	RequiresActivity bool   `yaml:"requires_activity,omitempty"`
}

// ParseManifest parses YAML data into a Manifest and validates it.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, emberr.Wrapf(err, emberr.CodePluginManifestParseInvalid, "manifest parse")
	}

	if errs := m.Validate(); len(errs) > 0 {
		// Return the first validation error for simplicity.
		return nil, errs[0]
	}

	return &m, nil
}

// Validate checks that the Manifest is well-formed. It returns all
// validation errors found rather than stopping at the first one.
func (m *Manifest) Validate() []error {
	var errs []error

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, emberr.Errorf(emberr.CodePluginManifestValidateInvalid,
			"manifest validation: name must not be empty"))
	} else if err := validateName(m.Name); err != nil {
		errs = append(errs, emberr.Errorf(emberr.CodePluginManifestValidateInvalid,
			"manifest validation: %s", err))
	}

	if strings.TrimSpace(m.Version) == "" {
		errs = append(errs, emberr.Errorf(emberr.CodePluginManifestValidateInvalid,
			"manifest validation: version must not be empty"))
	} else if !semverRe.MatchString(m.Version) {
		errs = append(errs, emberr.Errorf(emberr.CodePluginManifestValidateInvalid,
			"manifest validation: version must be valid semver (MAJOR.MINOR.PATCH), got %q", m.Version))
	}

	return errs
}

// validateName checks that a plugin identifier is well-formed.
func validateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("name %q contains invalid characters", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("name %q contains consecutive dots", name)
	}
	return nil
}
