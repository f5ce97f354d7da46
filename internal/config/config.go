package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// PaginationConfig bounds the offset/limit window accepted by list
// endpoints.
type PaginationConfig struct {
	DefaultLimit int `mapstructure:"default_limit" validate:"required,gt=0"`
	MaxLimit     int `mapstructure:"max_limit"     validate:"required,gtefield=DefaultLimit"`
}
