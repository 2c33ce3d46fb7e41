// Package config provides Viper-based configuration loading for the fight
// simulator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SimConfig holds simulation run settings.
type SimConfig struct {
	// Rounds is the scheduled fight length in rounds.
	Rounds int `mapstructure:"rounds"`
	// TicksPerRound is the number of combat ticks in one round.
	TicksPerRound int `mapstructure:"ticks_per_round"`
	// Seed seeds the random source; 0 draws a seed from the clock.
	Seed int64 `mapstructure:"seed"`
	// Fights is how many bouts to simulate per run.
	Fights int `mapstructure:"fights"`
	// Parallelism caps concurrently running fights.
	Parallelism int `mapstructure:"parallelism"`
}

// FightersConfig holds fighter template loading settings.
type FightersConfig struct {
	// Dir is the directory of fighter template YAML documents.
	Dir string `mapstructure:"dir"`
	// Red and Blue name the template entries for the two corners.
	Red  string `mapstructure:"red"`
	Blue string `mapstructure:"blue"`
}

// ParamsConfig holds simulation parameter document settings.
type ParamsConfig struct {
	// Dir is the root directory of versioned parameter documents. Empty
	// runs on the built-in defaults.
	Dir string `mapstructure:"dir"`
	// Version selects the parameter document set under Dir.
	Version string `mapstructure:"version"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Sim      SimConfig      `mapstructure:"sim"`
	Fighters FightersConfig `mapstructure:"fighters"`
	Params   ParamsConfig   `mapstructure:"params"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSim(c.Sim); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateFighters(c.Fighters); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateParams(c.Params); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSim(s SimConfig) error {
	var errs []string
	if s.Rounds < 1 || s.Rounds > 15 {
		errs = append(errs, fmt.Sprintf("sim.rounds must be 1-15, got %d", s.Rounds))
	}
	if s.TicksPerRound < 1 {
		errs = append(errs, fmt.Sprintf("sim.ticks_per_round must be >= 1, got %d", s.TicksPerRound))
	}
	if s.Fights < 1 {
		errs = append(errs, fmt.Sprintf("sim.fights must be >= 1, got %d", s.Fights))
	}
	if s.Parallelism < 1 {
		errs = append(errs, fmt.Sprintf("sim.parallelism must be >= 1, got %d", s.Parallelism))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateFighters(f FightersConfig) error {
	var errs []string
	if f.Dir == "" {
		errs = append(errs, "fighters.dir must not be empty")
	}
	if f.Red == "" {
		errs = append(errs, "fighters.red must not be empty")
	}
	if f.Blue == "" {
		errs = append(errs, "fighters.blue must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateParams(p ParamsConfig) error {
	if p.Dir != "" && p.Version == "" {
		return errors.New("params.version must not be empty when params.dir is set")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with RINGSIDE_ prefix
	v.SetEnvPrefix("RINGSIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.rounds", 12)
	v.SetDefault("sim.ticks_per_round", 60)
	v.SetDefault("sim.seed", 0)
	v.SetDefault("sim.fights", 1)
	v.SetDefault("sim.parallelism", 1)

	v.SetDefault("fighters.dir", "data/fighters")
	v.SetDefault("fighters.red", "")
	v.SetDefault("fighters.blue", "")

	v.SetDefault("params.dir", "")
	v.SetDefault("params.version", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
