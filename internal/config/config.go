package config

import (
	"fmt"
	"time"
)

// Config holds the full service configuration.
// Hierarchy (highest to lowest priority): CLI flags, environment variables
// (TEXTWATCH_* plus the conventional MONGO_* names), config file
// (~/.textwatch/config.yaml), defaults.
type Config struct {
	ListenAddr  string `mapstructure:"listen_addr" yaml:"listen_addr"`   // HTTP bind address
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`       // debug, info, warn, error
	WeaponsPath string `mapstructure:"weapons_path" yaml:"weapons_path"` // Newline-delimited weapon term file
	TextField   string `mapstructure:"text_field" yaml:"text_field"`     // Store field holding the text under analysis

	DataCacheTTL   time.Duration `mapstructure:"data_cache_ttl" yaml:"data_cache_ttl"`     // TTL for cached raw-data reads
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps" yaml:"rate_limit_rps"`     // Requests per second across all endpoints
	RateLimitBurst int           `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst"` // Token bucket burst size

	Mongo MongoConfig `mapstructure:"mongo" yaml:"mongo"`
}

// MongoConfig holds backing-store connection settings.
type MongoConfig struct {
	AtlasURI       string        `mapstructure:"atlas_uri" yaml:"atlas_uri"` // Full connection string; overrides everything else
	Host           string        `mapstructure:"host" yaml:"host"`
	Port           int           `mapstructure:"port" yaml:"port"`
	User           string        `mapstructure:"user" yaml:"user"`
	Password       string        `mapstructure:"password" yaml:"password"`
	Database       string        `mapstructure:"database" yaml:"database"`
	Collection     string        `mapstructure:"collection" yaml:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" yaml:"connect_timeout"` // Server selection timeout
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		ListenAddr:     ":8080",
		LogLevel:       "info",
		WeaponsPath:    "data/weapons.txt",
		TextField:      "Text",
		DataCacheTTL:   30 * time.Second,
		RateLimitRPS:   20,
		RateLimitBurst: 40,
		Mongo: MongoConfig{
			Host:           "localhost",
			Port:           27017,
			Database:       "IranMalDB",
			Collection:     "tweets",
			ConnectTimeout: 30 * time.Second,
		},
	}
}

// URI composes the store connection string. Precedence: a full Atlas URI
// beats credentials, credentials beat the plain host:port form. The
// credentialed form authenticates against the admin database.
func (m MongoConfig) URI() string {
	if m.AtlasURI != "" {
		return m.AtlasURI
	}
	if m.User != "" && m.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d/?authSource=admin", m.User, m.Password, m.Host, m.Port)
	}
	return fmt.Sprintf("mongodb://%s:%d/", m.Host, m.Port)
}
