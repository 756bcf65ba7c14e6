package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-u region HTTP base URL
//	-w region websocket URL
//	-username region account name
//	-password region account password
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-reload-interval periodic reload interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var httpBaseURL string
	var websocketURL string
	var username string
	var password string
	var requestTimeout time.Duration
	var reloadInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&httpBaseURL, "u", "", "Region HTTP base URL")
	fs.StringVar(&websocketURL, "w", "", "Region websocket URL")
	fs.StringVar(&username, "username", "", "Region account name")
	fs.StringVar(&password, "password", "", "Region account password")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&reloadInterval, "reload-interval", 0, "Periodic reload interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Region: Region{
			HTTPBaseURL:    httpBaseURL,
			WebsocketURL:   websocketURL,
			Username:       username,
			Password:       password,
			RequestTimeout: requestTimeout,
		},
		Mirror: Mirror{
			ReloadInterval: reloadInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
