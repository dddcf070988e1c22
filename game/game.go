package game

import (
	"time"

	"github.com/google/uuid"

	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"
)

// Pilot chooses the next head cell for a snake.
type Pilot interface {
	Next(s *entity.Snake, food types.Cell) types.Cell
}

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	ID      string
	Body    []types.Cell // tail to head
	Food    types.Cell   // types.NoCell when the board is full
	Score   int
	Moves   int
	Outcome types.Outcome
}

// Head returns the last body cell.
func (s Snapshot) Head() types.Cell {
	if len(s.Body) == 0 {
		return types.NoCell
	}
	return s.Body[len(s.Body)-1]
}

// Heading is the direction of the most recent move, or NONE for a single-cell snake.
func (s Snapshot) Heading() types.Direction {
	if len(s.Body) < 2 {
		return types.NONE
	}
	return types.DirectionBetween(s.Body[len(s.Body)-2], s.Body[len(s.Body)-1])
}

// Game owns one snake on the 8x8 board and the food it is chasing.
// It is not safe for concurrent use; the driver calls it from one goroutine.
type Game struct {
	ID        string
	StartTime time.Time

	snake     *entity.Snake
	food      types.Cell
	score     int
	moves     int
	outcome   types.Outcome
	collision manager.CollisionType
	foodMgr   *manager.FoodManager
}

// NewGame creates a game whose food placement is seeded with seed (0 picks a
// time-based seed).
func NewGame(seed uint64) *Game {
	g := &Game{
		snake:   entity.NewSnake(types.OriginCell),
		foodMgr: manager.NewFoodManager(seed),
	}
	g.Reset()
	return g
}

// Reset puts the game back into its initial state: a single cell at the
// origin, fresh food, zero score, still playing.
func (g *Game) Reset() {
	g.ID = uuid.New().String()
	g.StartTime = time.Now()
	g.snake.Reset(types.OriginCell)
	g.score = 0
	g.moves = 0
	g.outcome = types.Playing
	g.collision = manager.NoCollision
	g.food = g.foodMgr.Spawn(g.snake)
}

// ApplyMove moves the head into dest. Running into the body ends the game
// without touching the snake or the food; eating grows the snake and
// respawns food; filling the board ends the game as completed. Once the game
// is over ApplyMove does nothing until Reset.
func (g *Game) ApplyMove(dest types.Cell) {
	if g.outcome != types.Playing {
		return
	}

	if ct := manager.CheckMove(g.snake, dest); ct != manager.NoCollision {
		g.collision = ct
		g.outcome = types.Crashed
		return
	}

	if dest == g.food {
		g.snake.Grow(dest)
		g.food = g.foodMgr.Spawn(g.snake)
	} else {
		g.snake.Advance(dest)
	}
	g.moves++

	if g.snake.Full() {
		g.outcome = types.Completed
	}
}

// NextTick asks p for a move, applies it, and brings the score up to date.
func (g *Game) NextTick(p Pilot) {
	if g.outcome != types.Playing {
		return
	}
	g.ApplyMove(p.Next(g.snake, g.food))
	g.score = g.snake.Len()
}

// Snake exposes the body for pilots. Callers must not mutate it.
func (g *Game) Snake() *entity.Snake { return g.snake }

// Food returns the food cell, or types.NoCell on a full board.
func (g *Game) Food() types.Cell { return g.food }

func (g *Game) Score() int { return g.score }

func (g *Game) Length() int { return g.snake.Len() }

// Moves counts the moves applied since the last reset.
func (g *Game) Moves() int { return g.moves }

func (g *Game) Outcome() types.Outcome { return g.outcome }

// Collision reports what ended a crashed game.
func (g *Game) Collision() manager.CollisionType { return g.collision }

// GameOver reports whether the game has reached a terminal state, won or lost.
func (g *Game) GameOver() bool { return g.outcome != types.Playing }

// Snapshot copies the state a renderer needs.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:      g.ID,
		Body:    g.snake.Body(),
		Food:    g.food,
		Score:   g.score,
		Moves:   g.moves,
		Outcome: g.outcome,
	}
}

// Record summarizes the game for the session statistics.
func (g *Game) Record(end time.Time) manager.GameRecord {
	return manager.GameRecord{
		ID:        g.ID,
		Outcome:   g.outcome,
		Score:     g.score,
		Moves:     g.moves,
		StartTime: g.StartTime,
		EndTime:   end,
	}
}
