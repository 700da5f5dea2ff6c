package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// RedisConfig contains the optional snapshot-cache settings. When
// Enabled is false the service runs with the in-memory cache only.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig contains the freshness windows for cached data.
type CacheConfig struct {
	CatalogTTL time.Duration `mapstructure:"catalog_ttl" validate:"required"`
	CareerTTL  time.Duration `mapstructure:"career_ttl" validate:"required"`
}

// EngineConfig contains evaluation defaults.
type EngineConfig struct {
	// EnforceCompulsorySubjects is the default for the
	// "enforce compulsory subjects" preference when a request does not
	// carry an explicit value.
	EnforceCompulsorySubjects bool `mapstructure:"enforce_compulsory_subjects"`
}
