package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// EnvPrefix prefixes environment overrides, e.g. SNEK_TICK=50ms.
const EnvPrefix = "SNEK"

// Config holds all runtime configuration
type Config struct {
	// Display
	Frontend string `mapstructure:"frontend"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Sound    bool   `mapstructure:"sound"`

	// Simulation
	Tick     time.Duration `mapstructure:"tick"`
	MaxGames int           `mapstructure:"max_games"`
	Seed     uint64        `mapstructure:"seed"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Frontend: FrontendWindow,
		Width:    1100,
		Height:   900,
		Sound:    false,
		Tick:     16 * time.Millisecond, // about one animation frame
		MaxGames: -1,                    // unlimited
		Seed:     0,                     // time-based
		LogLevel: "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
	default:
		return fmt.Errorf("frontend must be one of %s, %s, %s; got %q",
			FrontendWindow, FrontendTerminal, FrontendHeadless, c.Frontend)
	}
	if c.Tick < 0 {
		return fmt.Errorf("tick must not be negative")
	}
	if c.MaxGames == 0 || c.MaxGames < -1 {
		return fmt.Errorf("max_games must be positive or -1 for unlimited")
	}
	if c.Frontend == FrontendWindow && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("width and height must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error; got %q", c.LogLevel)
	}
	return nil
}

// flagKeys maps config keys to the command-line flags that set them.
var flagKeys = map[string]string{
	"frontend":  "frontend",
	"width":     "width",
	"height":    "height",
	"sound":     "sound",
	"tick":      "tick",
	"max_games": "max-games",
	"seed":      "seed",
	"log_level": "log-level",
	"log_file":  "log-file",
}

// RegisterFlags adds one flag per config key to fs, defaulting to d.
func RegisterFlags(fs *pflag.FlagSet, d *Config) {
	fs.String("frontend", d.Frontend, "Frontend to draw with (window, terminal, headless)")
	fs.Int("width", d.Width, "Window width in pixels")
	fs.Int("height", d.Height, "Window height in pixels")
	fs.Bool("sound", d.Sound, "Play tones when food is eaten and games end")
	fs.Duration("tick", d.Tick, "Frame interval (0 runs as fast as possible)")
	fs.Int("max-games", d.MaxGames, "Stop after this many games (-1 for unlimited)")
	fs.Uint64("seed", d.Seed, "Food placement seed (0 for time-based)")
	fs.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-file", d.LogFile, "Write logs to this file instead of stderr")
}

// BindFlags binds the flags registered by RegisterFlags to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag %q is not registered", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load resolves the configuration from v: defaults, then the optional config
// file, then environment, then flags bound with BindFlags.
func Load(v *viper.Viper, file string) (*Config, error) {
	d := Default()
	v.SetDefault("frontend", d.Frontend)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("tick", d.Tick)
	v.SetDefault("max_games", d.MaxGames)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
