// Package config provides Viper-based configuration loading for the
// battle core and its surrounding training loop.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BattleConfig holds game-format settings.
type BattleConfig struct {
	// Format is the game-format identifier, e.g. "gen9randombattle".
	// The core is singles-only; the format names the ruleset the session
	// layer plays.
	Format string `mapstructure:"format"`
	// WithTera extends the action space with the terastallize sub-range.
	WithTera bool `mapstructure:"with_tera"`
}

// RewardConfig holds the shaping coefficients consumed by the training
// loop. The core only forwards them; it never reads them itself.
type RewardConfig struct {
	// Win and Lose are the terminal rewards.
	Win  float64 `mapstructure:"win"`
	Lose float64 `mapstructure:"lose"`
	// FaintEnemy and OwnFaint reward per-member knockouts during play.
	FaintEnemy float64 `mapstructure:"faint_enemy"`
	OwnFaint   float64 `mapstructure:"own_faint"`
	// HPFractionCoef scales the end-of-battle HP differential.
	HPFractionCoef float64 `mapstructure:"hp_fraction_coef"`
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
	Battle  BattleConfig  `mapstructure:"battle"`
	Reward  RewardConfig  `mapstructure:"reward"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReward(c.Reward); err != nil {
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

func validateBattle(b BattleConfig) error {
	if b.Format == "" {
		return fmt.Errorf("battle.format must not be empty")
	}
	return nil
}

func validateReward(r RewardConfig) error {
	var errs []string
	if r.Win <= 0 {
		errs = append(errs, fmt.Sprintf("reward.win must be > 0, got %v", r.Win))
	}
	if r.Lose >= 0 {
		errs = append(errs, fmt.Sprintf("reward.lose must be < 0, got %v", r.Lose))
	}
	if r.FaintEnemy < 0 {
		errs = append(errs, fmt.Sprintf("reward.faint_enemy must be >= 0, got %v", r.FaintEnemy))
	}
	if r.OwnFaint > 0 {
		errs = append(errs, fmt.Sprintf("reward.own_faint must be <= 0, got %v", r.OwnFaint))
	}
	if r.HPFractionCoef < 0 {
		errs = append(errs, fmt.Sprintf("reward.hp_fraction_coef must be >= 0, got %v", r.HPFractionCoef))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
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

	// Environment variable overrides with BATTLE_ prefix
	v.SetEnvPrefix("BATTLE")
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
	v.SetDefault("battle.format", "gen9randombattle")
	v.SetDefault("battle.with_tera", false)

	v.SetDefault("reward.win", 1.0)
	v.SetDefault("reward.lose", -1.0)
	v.SetDefault("reward.faint_enemy", 0.15)
	v.SetDefault("reward.own_faint", -0.15)
	v.SetDefault("reward.hp_fraction_coef", 0.01)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
