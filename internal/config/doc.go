// Package config provides configuration loading, merging, and validation
// facilities for the attendance clients.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file and environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Codec secrets are mandatory: a key or IV that is missing or not exactly 16
// bytes long fails the build. The development pair is only substituted when
// APP_ALLOW_DEV_KEYS is set.
//
// The main entry points are [GetClientConfig] for the interactive client and
// [LoadClientConfig] for the command line tool.
package config
