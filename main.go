package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snek/ai"
	"snek/config"
	"snek/game"
	"snek/game/manager"
	"snek/runner"
	"snek/sound"
	"snek/ui"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Self-playing snake on an 8x8 board",
	Long: `Snek plays snake by itself on an 8x8 board, following a fixed
Hamiltonian cycle and taking safe shortcuts toward the food while the
snake is short. Games restart automatically until you quit.`,
	SilenceUsage: true,
	RunE:         runSnek,
}

func init() {
	// raylib must be driven from the thread that created the window.
	runtime.LockOSThread()

	rootCmd.Flags().StringVar(&configFile, "config", "", "Optional YAML config file")
	config.RegisterFlags(rootCmd.Flags(), config.Default())
}

func runSnek(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := newFrontend(cfg)
	if err != nil {
		return fmt.Errorf("start %s frontend: %w", cfg.Frontend, err)
	}
	defer frontend.Close()

	g := game.NewGame(cfg.Seed)
	stats := manager.NewStateManager()
	r := runner.New(g, ai.New(), frontend, stats, logger, runner.Options{
		Tick:     cfg.Tick,
		MaxGames: cfg.MaxGames,
	})

	if cfg.Sound {
		player, err := sound.NewPlayer()
		if err != nil {
			logger.Warn().Err(err).Msg("sound disabled")
		} else {
			defer player.Close()
			r.WithSound(player)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("frontend", cfg.Frontend).
		Dur("tick", cfg.Tick).
		Int("max_games", cfg.MaxGames).
		Uint64("seed", cfg.Seed).
		Msg("starting")

	start := time.Now()
	if err := r.Run(ctx); err != nil {
		return err
	}

	logger.Info().
		Int("games", stats.GamesPlayed()).
		Int("frames", r.Frames()).
		Dur("elapsed", time.Since(start)).
		Msg("stopped")
	return nil
}

// newLogger writes to log_file when set. Otherwise it writes to stderr,
// except under the terminal frontend where stderr would tear the screen.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.Frontend == config.FrontendTerminal:
		out = io.Discard
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}

func newFrontend(cfg *config.Config) (runner.Frontend, error) {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return ui.NewTerminalRenderer(nil)
	case config.FrontendHeadless:
		return ui.NewHeadless(), nil
	default:
		return ui.NewWindowRenderer(cfg.Width, cfg.Height), nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
