// Package runner drives a game one animation frame at a time: ask the pilot
// for a move, apply it, draw the result, and start over after a game ends.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"snek/game"
	"snek/game/manager"
	"snek/game/types"
)

// ErrQuit is returned by a Frontend when the user asks to stop.
var ErrQuit = errors.New("runner: quit requested")

// Frontend shows frames and reports user input.
type Frontend interface {
	// Draw renders one frame. It may return ErrQuit.
	Draw(snap game.Snapshot, stats manager.Summary) error
	// Events blocks until ctx is done or the user quits (ErrQuit).
	Events(ctx context.Context) error
	Close() error
}

// Sound plays feedback for game events.
type Sound interface {
	Eat()
	Complete()
	Crash()
}

type Options struct {
	// Tick is the frame interval. Zero runs frames back to back.
	Tick time.Duration
	// MaxGames stops the run after that many finished games; <= 0 runs until quit.
	MaxGames int
}

type Runner struct {
	game     *game.Game
	pilot    game.Pilot
	frontend Frontend
	stats    *manager.StateManager
	sound    Sound
	logger   zerolog.Logger
	opts     Options

	frames int
}

func New(g *game.Game, pilot game.Pilot, frontend Frontend, stats *manager.StateManager, logger zerolog.Logger, opts Options) *Runner {
	return &Runner{
		game:     g,
		pilot:    pilot,
		frontend: frontend,
		stats:    stats,
		logger:   logger,
		opts:     opts,
	}
}

// WithSound attaches s; nil disables sound.
func (r *Runner) WithSound(s Sound) *Runner {
	r.sound = s
	return r
}

// Frames returns the number of frames run so far.
func (r *Runner) Frames() int { return r.frames }

// Frame runs one frame. A game that ended on the previous frame is reset
// first, so the final position stays on screen for exactly one frame.
// finished is true once MaxGames games have been played.
func (r *Runner) Frame() (finished bool, err error) {
	r.frames++

	if r.game.GameOver() {
		r.game.Reset()
		r.logger.Debug().Str("game", r.game.ID).Int("food", int(r.game.Food())).Msg("new game")
	}

	before := r.game.Length()
	r.game.NextTick(r.pilot)
	r.playSound(r.game.Length() > before)

	if r.game.GameOver() {
		r.finishGame()
		finished = r.opts.MaxGames > 0 && r.stats.GamesPlayed() >= r.opts.MaxGames
	}

	if err := r.frontend.Draw(r.game.Snapshot(), r.stats.Summary()); err != nil {
		return false, err
	}
	return finished, nil
}

// Run plays frames until ctx is cancelled, the frontend quits or MaxGames is
// reached. Frames run on the calling goroutine; only the frontend's event
// pump runs alongside.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return r.frontend.Events(groupCtx)
	})

	err := r.loop(groupCtx)
	cancel()
	if werr := group.Wait(); err == nil {
		err = werr
	}

	r.logSummary()

	if errors.Is(err, ErrQuit) {
		r.logger.Info().Msg("quit requested")
		return nil
	}
	return err
}

func (r *Runner) loop(ctx context.Context) error {
	var tick <-chan time.Time
	if r.opts.Tick > 0 {
		ticker := time.NewTicker(r.opts.Tick)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		finished, err := r.Frame()
		if err != nil {
			return err
		}
		if finished {
			return nil
		}
	}
}

func (r *Runner) finishGame() {
	rec := r.game.Record(time.Now())
	r.stats.Record(rec)

	ev := r.logger.Info()
	if rec.Outcome == types.Crashed {
		ev = r.logger.Warn().Stringer("collision", r.game.Collision())
	}
	ev.Interface("game", rec).
		Dur("duration", rec.EndTime.Sub(rec.StartTime)).
		Msg("game over")
}

// logSummary logs the session totals. The score history is left out.
func (r *Runner) logSummary() {
	sum := r.stats.Summary()
	sum.ScoreHistory = nil
	r.logger.Info().
		Interface("summary", sum).
		Msg("session summary")
}

func (r *Runner) playSound(ate bool) {
	if r.sound == nil {
		return
	}
	switch {
	case r.game.Outcome() == types.Completed:
		r.sound.Complete()
	case r.game.Outcome() == types.Crashed:
		r.sound.Crash()
	case ate:
		r.sound.Eat()
	}
}
