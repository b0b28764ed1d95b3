package config

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/mutker/erroror"
)

const (
	DefaultLogLevel = "info"
	DefaultDatabase = "erroror-users.db"

	envConfigPath = "ERROROR_CONFIG"
	envPrefix     = "ERROROR"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Database string `mapstructure:"database"`
}

// Load merges defaults, an optional TOML config file (path taken from
// the ERROROR_CONFIG environment variable), ERROROR_* environment
// variables, and command line flags, in ascending precedence. Expected
// problems (bad flags, unreadable file, bad log level) come back as a
// failure result rather than a plain error.
func Load(args []string) erroror.ErrorOr[Config] {
	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("database", DefaultDatabase)

	// Define flags
	flags := pflag.NewFlagSet("errorordemo", pflag.ContinueOnError)
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.String("database", DefaultDatabase, "Path to the user database")
	if err := flags.Parse(args); err != nil {
		return erroror.FromError[Config](
			erroror.Validation("Config.Flags", err.Error()))
	}

	if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return erroror.FromError[Config](
			erroror.Unexpected("Config.BindFlags", err.Error()))
	}
	if err := v.BindPFlag("database", flags.Lookup("database")); err != nil {
		return erroror.FromError[Config](
			erroror.Unexpected("Config.BindFlags", err.Error()))
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Load configuration from file
	if path := os.Getenv(envConfigPath); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return erroror.FromError[Config](
				erroror.Unexpected("Config.Read", "Failed to read config file").
					WithMetadata(map[string]any{
						"path":  path,
						"cause": err.Error(),
					}))
		}
	}

	// Unmarshal the configuration
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return erroror.FromError[Config](
			erroror.Unexpected("Config.Unmarshal", err.Error()))
	}

	if !LogLevel(cfg.LogLevel).IsValid() {
		return erroror.FromError[Config](
			erroror.Validation("Config.LogLevel", "invalid_log_level: "+cfg.LogLevel))
	}

	return erroror.FromValue(cfg)
}
