package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".flowers"
	envPrefix  = "FLOWERS"

	PalettePathKey  = "palette.path"
	OutputFormatKey = "output.format"
	LogLevelKey     = "log.level"

	DefaultOutputFormat = "json"
	DefaultLogLevel     = "disabled"
)

// Load reads ~/.flowers/config.toml when it exists and layers FLOWERS_*
// environment variables on top. A missing config file is not an error.
func Load(cfg *viper.Viper) (*viper.Viper, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetDefault(PalettePathKey, "")
	cfg.SetDefault(OutputFormatKey, DefaultOutputFormat)
	cfg.SetDefault(LogLevelKey, DefaultLogLevel)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}
