// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; validation rules will be added as the
// application matures.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Region.HTTPBaseURL == "" || cfg.Region.RequestTimeout == 0 {
		return ErrInvalidRegionConfigs
	}

	if cfg.Region.WebsocketURL == "" || !strings.HasPrefix(cfg.Region.WebsocketURL, "ws") {
		return ErrInvalidRegionConfigs
	}

	if cfg.Region.Username == "" || cfg.Region.Password == "" {
		return ErrInvalidCredentialConfigs
	}

	return nil
}
