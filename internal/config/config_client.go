package config

import (
	"fmt"
	"time"
)

// ClientRegion holds network settings used by the client transport layer.
type ClientRegion struct {
	// HTTPBaseURL is the HTTP endpoint used for session login.
	HTTPBaseURL string
	// WebsocketURL is the websocket endpoint of the RPC/notify protocol.
	WebsocketURL string
	// Username is the region account name.
	Username string
	// Password is the region account password.
	Password string
	// RequestTimeout is the default timeout for outbound RPC calls.
	RequestTimeout time.Duration
}

// ClientMirror groups mirror engine settings.
type ClientMirror struct {
	// ReloadInterval defines how often the periodic reload job should run.
	ReloadInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Region contains transport addresses, credentials, and timeouts.
	Region ClientRegion
	// Mirror contains mirror engine settings.
	Mirror ClientMirror
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Region: ClientRegion{
			HTTPBaseURL:    cfg.Region.HTTPBaseURL,
			WebsocketURL:   cfg.Region.WebsocketURL,
			Username:       cfg.Region.Username,
			Password:       cfg.Region.Password,
			RequestTimeout: cfg.Region.RequestTimeout,
		},
		Mirror: ClientMirror{
			ReloadInterval: cfg.Mirror.ReloadInterval,
		},
	}

	if clientCfg.Region.RequestTimeout == 0 {
		clientCfg.Region.RequestTimeout = 30 * time.Second
	}
	if clientCfg.Mirror.ReloadInterval == 0 {
		clientCfg.Mirror.ReloadInterval = 5 * time.Minute
	}

	return clientCfg, clientCfg.validate()
}
