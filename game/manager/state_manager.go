package manager

import (
	"sync"
	"time"

	"snek/game/types"
)

// MaxHistory bounds the number of recent scores kept for the score graph.
const MaxHistory = 200

// GameRecord describes one finished game.
type GameRecord struct {
	ID        string        `json:"id"`
	Outcome   types.Outcome `json:"outcome"`
	Score     int           `json:"score"`
	Moves     int           `json:"moves"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
}

// Summary is a point-in-time view of the session.
type Summary struct {
	GamesPlayed     int     `json:"gamesPlayed"`
	Completed       int     `json:"completed"`
	Crashed         int     `json:"crashed"`
	HighScore       int     `json:"highScore"`
	AverageScore    float64 `json:"averageScore"`
	AverageMoves    float64 `json:"averageMoves"`
	AverageDuration float64 `json:"averageDuration"`
	ScoreHistory    []int   `json:"scoreHistory,omitempty"`
}

// StateManager keeps session statistics in memory. Nothing is written to disk.
type StateManager struct {
	mu            sync.RWMutex
	gamesPlayed   int
	completed     int
	crashed       int
	highScore     int
	totalScore    int
	totalMoves    int
	totalDuration time.Duration
	scoreHistory  []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, MaxHistory),
	}
}

// Record adds a finished game to the session.
func (sm *StateManager) Record(rec GameRecord) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.gamesPlayed++
	switch rec.Outcome {
	case types.Completed:
		sm.completed++
	case types.Crashed:
		sm.crashed++
	}
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
	sm.totalScore += rec.Score
	sm.totalMoves += rec.Moves
	if rec.EndTime.After(rec.StartTime) {
		sm.totalDuration += rec.EndTime.Sub(rec.StartTime)
	}

	if len(sm.scoreHistory) >= MaxHistory {
		copy(sm.scoreHistory, sm.scoreHistory[1:])
		sm.scoreHistory = sm.scoreHistory[:len(sm.scoreHistory)-1]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec.Score)
}

func (sm *StateManager) GamesPlayed() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.gamesPlayed
}

// Summary returns the session totals and averages.
func (sm *StateManager) Summary() Summary {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	sum := Summary{
		GamesPlayed:  sm.gamesPlayed,
		Completed:    sm.completed,
		Crashed:      sm.crashed,
		HighScore:    sm.highScore,
		ScoreHistory: append([]int(nil), sm.scoreHistory...),
	}
	if sm.gamesPlayed > 0 {
		n := float64(sm.gamesPlayed)
		sum.AverageScore = float64(sm.totalScore) / n
		sum.AverageMoves = float64(sm.totalMoves) / n
		sum.AverageDuration = sm.totalDuration.Seconds() / n
	}
	return sum
}
