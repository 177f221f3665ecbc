package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider loads a Config by merging defaults, an optional configuration
// file, environment variables and optional command-line flags. Later
// sources override earlier ones.
type Provider struct {
	configFile string
	envPrefix  string
	flags      *pflag.FlagSet
}

// NewProvider creates a provider. configFile may be empty to skip file
// loading; envPrefix namespaces environment variables (for example the
// prefix "MONGOKIT" binds database.url to MONGOKIT_DATABASE_URL).
func NewProvider(configFile, envPrefix string) *Provider {
	return &Provider{
		configFile: configFile,
		envPrefix:  envPrefix,
	}
}

// WithFlags binds a flag set whose values override all other sources.
// Flag names use dots, matching configuration keys.
func (p *Provider) WithFlags(flags *pflag.FlagSet) *Provider {
	p.flags = flags
	return p
}

// Load populates cfg from all configured sources and validates the result.
func (p *Provider) Load(cfg *Config) error {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("database.url", defaults.Database.URL)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.connect_timeout", defaults.Database.ConnectTimeout)
	v.SetDefault("database.operation_timeout", defaults.Database.OperationTimeout)
	v.SetDefault("observability.log_level", defaults.Observability.LogLevel)
	v.SetDefault("observability.log_format", defaults.Observability.LogFormat)

	if p.envPrefix != "" {
		v.SetEnvPrefix(p.envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p.configFile != "" {
		v.SetConfigFile(p.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", p.configFile, err)
		}
	}

	if p.flags != nil {
		if err := v.BindPFlags(p.flags); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg.Validate()
}
