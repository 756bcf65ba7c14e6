// Package config provides configuration loading, merging, and validation
// facilities for the region-mirror client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources fill remaining empty fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which returns the validated
// client runtime configuration.
package config
