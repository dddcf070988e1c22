package manager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snek/game/entity"
	"snek/game/types"
)

func TestSpawnAvoidsSnake(t *testing.T) {
	fm := NewFoodManager(7)
	s := entity.FromBody(40, 41, 42, 43, 44, 45, 46, 47)
	for i := 0; i < 500; i++ {
		food := fm.Spawn(s)
		require.True(t, food.Valid())
		require.False(t, s.Occupied(food), "food spawned on body cell %d", food)
	}
}

func TestSpawnCoversEveryFreeCell(t *testing.T) {
	fm := NewFoodManager(1)
	s := entity.NewSnake(types.OriginCell)
	seen := make(map[types.Cell]int)
	for i := 0; i < 20000; i++ {
		seen[fm.Spawn(s)]++
	}
	assert.Len(t, seen, types.NumCells-1)
	assert.Zero(t, seen[types.OriginCell])
	for c, n := range seen {
		// 20000/63 is about 317; anything far off means the draw is not uniform.
		assert.InDelta(t, 317, n, 120, "cell %d drawn %d times", c, n)
	}
}

func TestSpawnLastFreeCell(t *testing.T) {
	cells := make([]types.Cell, 0, types.NumCells)
	for i := 0; i < types.NumCells; i++ {
		if i != 27 {
			cells = append(cells, types.Cell(i))
		}
	}
	s := entity.FromBody(cells...)
	assert.Equal(t, types.Cell(27), NewFoodManager(3).Spawn(s))
}

func TestSpawnOnFullBoard(t *testing.T) {
	cells := make([]types.Cell, 0, types.NumCells)
	for i := 0; i < types.NumCells; i++ {
		cells = append(cells, types.Cell(i))
	}
	s := entity.FromBody(cells...)
	assert.Equal(t, types.NoCell, NewFoodManager(3).Spawn(s))
}

func TestSeedIsDeterministic(t *testing.T) {
	s := entity.NewSnake(types.OriginCell)
	a, b := NewFoodManager(99), NewFoodManager(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Spawn(s), b.Spawn(s))
	}
}

func TestCheckMove(t *testing.T) {
	s := entity.FromBody(40, 41, 42, 34)

	cases := []struct {
		name string
		dest types.Cell
		want CollisionType
	}{
		{"free cell", 33, NoCollision},
		{"tail cell", 40, NoCollision},
		{"body cell", 41, SelfCollision},
		{"head cell", 34, SelfCollision},
		{"off board", types.NoCell, WallCollision},
		{"past last cell", types.NumCells, WallCollision},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckMove(s, tc.dest))
		})
	}
}

func TestStateManagerSummary(t *testing.T) {
	sm := NewStateManager()
	assert.Equal(t, Summary{}, sm.Summary())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.Record(GameRecord{ID: "a", Outcome: types.Completed, Score: 64, Moves: 3000, StartTime: start, EndTime: start.Add(4 * time.Second)})
	sm.Record(GameRecord{ID: "b", Outcome: types.Crashed, Score: 10, Moves: 1000, StartTime: start, EndTime: start.Add(2 * time.Second)})

	sum := sm.Summary()
	assert.Equal(t, 2, sum.GamesPlayed)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.Crashed)
	assert.Equal(t, 64, sum.HighScore)
	assert.InDelta(t, 37.0, sum.AverageScore, 1e-9)
	assert.InDelta(t, 2000.0, sum.AverageMoves, 1e-9)
	assert.InDelta(t, 3.0, sum.AverageDuration, 1e-9)
	assert.Equal(t, []int{64, 10}, sum.ScoreHistory)
	assert.Equal(t, 2, sm.GamesPlayed())
}

func TestStateManagerHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < MaxHistory+25; i++ {
		sm.Record(GameRecord{Outcome: types.Completed, Score: i})
	}
	hist := sm.Summary().ScoreHistory
	require.Len(t, hist, MaxHistory)
	assert.Equal(t, 25, hist[0])
	assert.Equal(t, MaxHistory+24, hist[len(hist)-1])

	hist[0] = -1
	assert.Equal(t, 25, sm.Summary().ScoreHistory[0], "history must be returned as a copy")
}
