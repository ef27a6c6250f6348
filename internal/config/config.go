// Package config decodes oracle-client configuration from the environment,
// mirroring the teacher repo's envdecode-based configuration style.
package config

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// OracleConfig controls the node RPC client.
type OracleConfig struct {
	RPCURL       string        `env:"EOSIO_RPC_URL,required"`
	Timeout      time.Duration `env:"EOSIO_RPC_TIMEOUT,default=30s"`
	RequireHTTPS bool          `env:"EOSIO_RPC_REQUIRE_HTTPS,default=false"`
}

// LoggingConfig controls the ambient structured logger.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=json"`
}

// LoadOracleConfig decodes OracleConfig from the environment.
func LoadOracleConfig() (OracleConfig, error) {
	var cfg OracleConfig
	if err := envdecode.Decode(&cfg); err != nil {
		return OracleConfig{}, err
	}
	return cfg, nil
}

// LoadLoggingConfig decodes LoggingConfig from the environment. Since every
// field has a default, this never fails.
func LoadLoggingConfig() LoggingConfig {
	var cfg LoggingConfig
	_ = envdecode.Decode(&cfg)
	return cfg
}
