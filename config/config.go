package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/metaperl/mcg/types"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const DEFAULT_CONFIG_FILE = "mcg.yaml"
const DEFAULT_ENV_FILE = ".env"

const DEFAULT_MODE = "A"
const DEFAULT_LOG_LEVEL = "warn"

const ENV_MODE = "MCG_MODE"
const ENV_LOG_LEVEL = "MCG_LOG_LEVEL"
const ENV_LISTEN = "MCG_LISTEN"
const ENV_REMOTE = "MCG_REMOTE"

type Config struct {
	Mode     string `yaml:"mode"`
	LogLevel string `yaml:"log_level"`
	Listen   string `yaml:"listen"`
	Remote   string `yaml:"remote"`
}

func Default() *Config {
	return &Config{
		Mode:     DEFAULT_MODE,
		LogLevel: DEFAULT_LOG_LEVEL,
	}
}

/*
 * Defaults, then the YAML file, then the .env file, then the environment.
 * Missing files are skipped. Flags are applied by the caller on top.
 */
func Load(configFile string, envFile string) (*Config, error) {
	config := Default()

	if err := config.loadYaml(configFile); err != nil {
		return nil, err
	}

	if err := config.loadEnv(envFile); err != nil {
		return nil, err
	}

	return config, nil
}

func (config *Config) loadYaml(filename string) error {
	file, err := os.Open(filename)

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return &types.ResourceError{Resource: filename, Err: err}
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(config)

	if err != nil && !errors.Is(err, io.EOF) {
		return &types.ConfigurationError{Key: "config file", Value: filename, Err: err}
	}

	return nil
}

/*
 * Variables set in the process environment win over the .env file.
 */
func (config *Config) loadEnv(filename string) error {
	values, err := godotenv.Read(filename)

	if errors.Is(err, fs.ErrNotExist) {
		values = map[string]string{}
	} else if err != nil {
		return &types.ConfigurationError{Key: "env file", Value: filename, Err: err}
	}

	lookup := func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return values[key]
	}

	fields := map[string]*string{
		ENV_MODE:      &config.Mode,
		ENV_LOG_LEVEL: &config.LogLevel,
		ENV_LISTEN:    &config.Listen,
		ENV_REMOTE:    &config.Remote,
	}

	for key, field := range fields {
		if value := lookup(key); value != "" {
			*field = value
		}
	}

	return nil
}

/*
 * The mode is not checked here: an unknown mode is reported per command.
 */
func (config *Config) Validate() error {
	if _, err := config.Level(); err != nil {
		return err
	}

	if config.Listen != "" && config.Remote != "" {
		return &types.ConfigurationError{
			Key:   "listen/remote",
			Value: config.Listen + " " + config.Remote,
			Err:   errors.New("cannot serve and send at the same time"),
		}
	}

	return nil
}

func (config *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(config.LogLevel)

	if err != nil {
		return zerolog.NoLevel, &types.ConfigurationError{Key: "log level", Value: config.LogLevel, Err: err}
	}

	return level, nil
}
