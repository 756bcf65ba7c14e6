package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can spell durations as
// strings ("30s", "5m").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding duration: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

type structuredJSONConfig struct {
	Region struct {
		HTTPBaseURL    string   `json:"http_base_url"`
		WebsocketURL   string   `json:"websocket_url"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"region,omitempty"`

	Mirror struct {
		ReloadInterval Duration `json:"reload_interval"`
	} `json:"mirror,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Region: Region{
			HTTPBaseURL:    jsonCfg.Region.HTTPBaseURL,
			WebsocketURL:   jsonCfg.Region.WebsocketURL,
			Username:       jsonCfg.Region.Username,
			Password:       jsonCfg.Region.Password,
			RequestTimeout: time.Duration(jsonCfg.Region.RequestTimeout),
		},
		Mirror: Mirror{
			ReloadInterval: time.Duration(jsonCfg.Mirror.ReloadInterval),
		},
	}

	return cfg, nil
}
