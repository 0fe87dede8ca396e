// Package config defines the application's configuration structure and
// loads it from environment variables and an optional config file.
package config
