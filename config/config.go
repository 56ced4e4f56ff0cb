// Package config provides CLI configuration and package loggers.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents tool configuration.
type Config struct {
	// LoggingLevel is one of: panic, fatal, error, warn, info, debug.
	LoggingLevel string

	// MeshCells controls the marching-cubes resolution used when a
	// detector solid is exported to STL.
	MeshCells int

	// Output is the default output path for export commands.
	Output string
}

// Read resolves the configuration from defaults, an optional config
// file and HPGES_* environment variables.
func Read(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("logging-level", "info")
	v.SetDefault("mesh-cells", 200)
	v.SetDefault("output", "")

	v.SetEnvPrefix("hpges")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	config := Config{
		LoggingLevel: strings.ToLower(v.GetString("logging-level")),
		MeshCells:    v.GetInt("mesh-cells"),
		Output:       v.GetString("output"),
	}
	return config, checkConfig(&config)
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func checkConfig(conf *Config) error {
	if !validateLoggingLevel(conf.LoggingLevel) {
		return fmt.Errorf("invalid logging level %q, expected one of: %s",
			conf.LoggingLevel, availableLoggingLevelsString)
	}
	if conf.MeshCells <= 0 {
		return fmt.Errorf("invalid mesh cell count %d", conf.MeshCells)
	}
	return nil
}

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
