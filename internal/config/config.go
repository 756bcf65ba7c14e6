// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// region-mirror client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Region holds connection settings for the region controller: the HTTP
	// endpoint used for session login and the websocket endpoint used for
	// the RPC/notify protocol.
	Region Region `envPrefix:"REGION_"`

	// Mirror holds settings of the local mirror engine, such as the
	// periodic reload interval.
	Mirror Mirror `envPrefix:"MIRROR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Region holds network and credential settings for the region controller.
type Region struct {
	// HTTPBaseURL is the base URL of the region's HTTP API, used for the
	// session login that precedes the websocket dial
	// (e.g. "http://region.example:5240").
	// Env: REGION_HTTP_BASE_URL
	HTTPBaseURL string `env:"HTTP_BASE_URL"`

	// WebsocketURL is the websocket endpoint of the region's RPC/notify
	// protocol (e.g. "ws://region.example:5240/ws").
	// Env: REGION_WEBSOCKET_URL
	WebsocketURL string `env:"WEBSOCKET_URL"`

	// Username is the account name used for session login.
	// Env: REGION_USERNAME
	Username string `env:"USERNAME"`

	// Password is the account password used for session login.
	// Env: REGION_PASSWORD
	Password string `env:"PASSWORD"`

	// RequestTimeout is the maximum duration allowed for a single RPC call
	// before the client cancels it (e.g. "30s", "1m").
	// Env: REGION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mirror holds settings of the local mirror engine.
type Mirror struct {
	// ReloadInterval defines how often the periodic reload job refreshes
	// mirrored collections. Zero falls back to the 5 minute default.
	// Env: MIRROR_RELOAD_INTERVAL
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the full configuration
// from all supported sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
