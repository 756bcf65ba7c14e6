package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRegionConfigs indicates invalid region connection settings
	// (for example, missing HTTP base URL or a non-websocket URL).
	ErrInvalidRegionConfigs = errors.New("invalid region configuration")
	// ErrInvalidCredentialConfigs indicates missing region account
	// credentials.
	ErrInvalidCredentialConfigs = errors.New("invalid credential configuration")
)
