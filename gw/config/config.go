package config

import (
	"fmt"
	"strings"

	internal "github.com/haywardlabs/groundwork/gw"

	"github.com/spf13/viper"
)

// Config stores all configuration of the library's ambient collaborators.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Locking LockingConfig `mapstructure:"locking"`
}

// LoggingConfig configures the diagnostic sink. The level is explicit
// configuration, not process-global state, so independent loggers can run
// at independent levels.
type LoggingConfig struct {
	Level          string `mapstructure:"level"`
	NoColor        bool   `mapstructure:"noColor"`
	BufferCapacity int    `mapstructure:"bufferCapacity"`
}

// LockingConfig configures default timeout-bounded lock behaviour.
type LockingConfig struct {
	AcquireTimeoutMs int `mapstructure:"acquireTimeoutMs"`
	PollIntervalMs   int `mapstructure:"pollIntervalMs"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(internal.DefaultConfigPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Set default values
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.noColor", false)
	v.SetDefault("logging.bufferCapacity", internal.DefaultBufferCapacity)
	v.SetDefault("locking.acquireTimeoutMs", int(internal.DefaultLockTimeout.Milliseconds()))
	v.SetDefault("locking.pollIntervalMs", int(internal.DefaultPollInterval.Milliseconds()))

	v.AutomaticEnv()                                   // Read in environment variables that match
	v.SetEnvPrefix(strings.ToUpper(internal.DefaultAppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // logging.level becomes GROUNDWORK_LOGGING_LEVEL

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger := internal.GetLogger()
		logger.Debug().Msg("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}
