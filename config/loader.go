package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultCurvatureDigits matches the six decimals of the reference output.
const DefaultCurvatureDigits = 6

// Log destinations
const (
	LogStdout = "stdout"
	LogStderr = "stderr"
)

// Environment variables that override the config file.
const (
	EnvConfigPath   = "TRANSITDB_CONFIG"
	EnvInputFormat  = "TRANSITDB_INPUT_FORMAT"
	EnvOutputFormat = "TRANSITDB_OUTPUT_FORMAT"
)

// Config is the global application configuration
var Config AppConfig

var searchPaths = []string{"config.yml", "./config/config.yml"}

// Default returns a configuration with every default applied.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads .env, then the first config.yml found (or the file named
// by TRANSITDB_CONFIG), applies environment overrides and stores the result in Config.
// A missing config file is not an error: defaults are used.
func LoadAppConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	paths := searchPaths
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = []string{p}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || os.Getenv(EnvConfigPath) != "" {
			return err
		}
		data = nil
	}
	cfg, err := parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// LoadAppConfigFrom reads and validates one config file without touching Config.
func LoadAppConfigFrom(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	return parse(data)
}

func parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	overrideFromEnv(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *AppConfig) {
	cfg.Input.Format = getEnv(EnvInputFormat, cfg.Input.Format)
	cfg.Output.Format = getEnv(EnvOutputFormat, cfg.Output.Format)
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Input.Format == "" {
		cfg.Input.Format = FormatJSON
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = LogStderr
	}
	if cfg.Stats.CurvatureDigits == nil {
		d := DefaultCurvatureDigits
		cfg.Stats.CurvatureDigits = &d
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
