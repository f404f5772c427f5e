package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from viper into a Config. Viper must already have
// been initialized (config file path, if any) by the CLI layer; Load wires
// defaults and environment bindings before unmarshalling.
func Load() (Config, error) {
	cfg := Default()

	viper.SetDefault("listen_addr", cfg.ListenAddr)
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("weapons_path", cfg.WeaponsPath)
	viper.SetDefault("text_field", cfg.TextField)
	viper.SetDefault("data_cache_ttl", cfg.DataCacheTTL)
	viper.SetDefault("rate_limit_rps", cfg.RateLimitRPS)
	viper.SetDefault("rate_limit_burst", cfg.RateLimitBurst)
	viper.SetDefault("mongo.host", cfg.Mongo.Host)
	viper.SetDefault("mongo.port", cfg.Mongo.Port)
	viper.SetDefault("mongo.database", cfg.Mongo.Database)
	viper.SetDefault("mongo.collection", cfg.Mongo.Collection)
	viper.SetDefault("mongo.connect_timeout", cfg.Mongo.ConnectTimeout)

	// TEXTWATCH_* covers every key; the store keeps its conventional
	// MONGO_* names so existing deployments need no changes.
	viper.SetEnvPrefix("TEXTWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	bindings := map[string]string{
		"mongo.atlas_uri":  "MONGO_ATLAS_URI",
		"mongo.host":       "MONGO_HOST",
		"mongo.port":       "MONGO_PORT",
		"mongo.user":       "MONGO_USER",
		"mongo.password":   "MONGO_PASSWORD",
		"mongo.database":   "MONGO_DB_NAME",
		"mongo.collection": "MONGO_COLLECTION_NAME",
		"log_level":        "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return cfg, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
