package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every settings key read from the environment (CALC_LOG_LEVEL).
const EnvPrefix = "CALC"

// Settings are the application options shared by every command.
type Settings struct {
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	OutputDir   string `mapstructure:"output_dir"`
	Format      string `mapstructure:"format"`
	MetricsFile string `mapstructure:"metrics_file"`
	StartYear   int    `mapstructure:"start_year"`
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("output_dir", ".")
	v.SetDefault("format", "console")
	v.SetDefault("metrics_file", "")
	v.SetDefault("start_year", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings loads envFile (or ./.env when envFile is empty and present)
// into the process environment and resolves settings from v.
// Variables already set in the environment win over the file.
func LoadSettings(v *viper.Viper, envFile string) (*Settings, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.StartYear < 0 {
		return nil, fmt.Errorf("%w: start year cannot be negative", ErrInvalidInput)
	}
	if s.OutputDir == "" {
		s.OutputDir = "."
	}
	return &s, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
