package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown frontend", func(c *Config) { c.Frontend = "vr" }, "frontend must be one of"},
		{"negative tick", func(c *Config) { c.Tick = -time.Second }, "tick must not be negative"},
		{"zero max games", func(c *Config) { c.MaxGames = 0 }, "max_games"},
		{"max games below -1", func(c *Config) { c.MaxGames = -2 }, "max_games"},
		{"zero window", func(c *Config) { c.Width = 0 }, "width and height"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestWindowSizeIgnoredWhenHeadless(t *testing.T) {
	cfg := Default()
	cfg.Frontend = FrontendHeadless
	cfg.Width = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontend: headless\ntick: 5ms\nmax_games: 3\nseed: 42\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, FrontendHeadless, cfg.Frontend)
	assert.Equal(t, 5*time.Millisecond, cfg.Tick)
	assert.Equal(t, 3, cfg.MaxGames)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontend: terminal\nmax_games: 3\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, Default())
	require.NoError(t, fs.Parse([]string{"--max-games=7", "--log-level=debug"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, 7, cfg.MaxGames)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SNEK_FRONTEND", "headless")
	t.Setenv("SNEK_MAX_GAMES", "5")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, FrontendHeadless, cfg.Frontend)
	assert.Equal(t, 5, cfg.MaxGames)
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("frontend", "hologram")
	_, err := Load(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestBindFlagsNeedsRegisteredFlags(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	assert.Error(t, BindFlags(viper.New(), fs))
}

func TestHeadlessRunsUnlimitedGamesByDefault(t *testing.T) {
	v := viper.New()
	v.Set("frontend", FrontendHeadless)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.MaxGames)
}
