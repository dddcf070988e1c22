package ui

import (
	"context"

	"snek/game"
	"snek/game/manager"
)

// Headless keeps the latest frame in memory and draws nothing.
type Headless struct {
	Frames int
	Last   game.Snapshot
	Stats  manager.Summary
}

func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Draw(snap game.Snapshot, stats manager.Summary) error {
	h.Frames++
	h.Last = snap
	h.Stats = stats
	return nil
}

func (h *Headless) Events(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (h *Headless) Close() error { return nil }
