package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Battle: BattleConfig{
			Format:   "gen9randombattle",
			WithTera: false,
		},
		Reward: RewardConfig{
			Win:            1.0,
			Lose:           -1.0,
			FaintEnemy:     0.15,
			OwnFaint:       -0.15,
			HPFractionCoef: 0.01,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
battle:
  format: gen9ou
  with_tera: true
reward:
  win: 2.0
  lose: -2.0
  faint_enemy: 0.2
  own_faint: -0.2
  hp_fraction_coef: 0.05
logging:
  level: debug
  format: console
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gen9ou", cfg.Battle.Format)
	assert.True(t, cfg.Battle.WithTera)
	assert.Equal(t, 2.0, cfg.Reward.Win)
	assert.Equal(t, -0.2, cfg.Reward.OwnFaint)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: warn
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gen9randombattle", cfg.Battle.Format)
	assert.Equal(t, 1.0, cfg.Reward.Win)
	assert.Equal(t, 0.15, cfg.Reward.FaintEnemy)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateBattleFormatEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Battle.Format = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRewardSigns(t *testing.T) {
	cfg := validConfig()
	cfg.Reward.Win = 0
	assert.Error(t, cfg.Validate(), "zero win reward should be rejected")

	cfg = validConfig()
	cfg.Reward.Lose = 0.5
	assert.Error(t, cfg.Validate(), "positive lose reward should be rejected")

	cfg = validConfig()
	cfg.Reward.FaintEnemy = -0.1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Reward.OwnFaint = 0.1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Reward.HPFractionCoef = -0.01
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyRewardCoefficients(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Reward.Win = rapid.Float64Range(0.01, 100).Draw(t, "win")
		cfg.Reward.Lose = -rapid.Float64Range(0.01, 100).Draw(t, "lose")
		cfg.Reward.FaintEnemy = rapid.Float64Range(0, 10).Draw(t, "faint_enemy")
		cfg.Reward.OwnFaint = -rapid.Float64Range(0, 10).Draw(t, "own_faint")
		cfg.Reward.HPFractionCoef = rapid.Float64Range(0, 1).Draw(t, "hp_coef")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid reward coefficients rejected: %v", err)
		}
	})
}

func TestPropertyRewardSignViolations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Reward.Win = -rapid.Float64Range(0, 100).Draw(t, "win")
		if err := cfg.Validate(); err == nil {
			t.Fatalf("non-positive win reward %v accepted", cfg.Reward.Win)
		}
	})
}
