package config

import "github.com/clearsolutions/user-manager/internal/domain/policy"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	User     UserConfig     `mapstructure:"user"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// UserConfig contains the tunables of the user-management policies.
type UserConfig struct {
	MinimumAge int `mapstructure:"minimum_age" validate:"required,gt=0"`
}

// defaults applied before unmarshaling.
const (
	defaultPort     = 8080
	defaultLogLevel = "info"
)

// defaultMinimumAge mirrors the policy package default so an empty config
// yields the standard threshold.
const defaultMinimumAge = policy.DefaultMinimumAge
