package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snek/game/types"
)

// requireConsistent checks that the mask marks exactly the body cells and
// that the body has no repeats.
func requireConsistent(t *testing.T, s *Snake) {
	t.Helper()
	body := s.Body()
	require.Len(t, body, s.Len())

	var mask [types.NumCells]bool
	s.CopyMask(&mask)

	inBody := make(map[types.Cell]bool, len(body))
	for _, c := range body {
		require.False(t, inBody[c], "cell %d repeated", c)
		inBody[c] = true
	}
	for i := 0; i < types.NumCells; i++ {
		c := types.Cell(i)
		require.Equal(t, inBody[c], mask[c], "mask disagrees at %d", c)
		require.Equal(t, inBody[c], s.Occupied(c))
	}
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.OriginCell)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, types.OriginCell, s.Head())
	assert.Equal(t, types.OriginCell, s.Tail())
	assert.True(t, s.Occupied(types.OriginCell))
	assert.False(t, s.Occupied(types.NoCell))
	requireConsistent(t, s)
}

func TestAdvanceMovesTail(t *testing.T) {
	s := FromBody(40, 41, 42)
	s.Advance(43)

	assert.Equal(t, []types.Cell{41, 42, 43}, s.Body())
	assert.False(t, s.Occupied(40))
	assert.Equal(t, types.Cell(41), s.Tail())
	assert.Equal(t, types.Cell(43), s.Head())
	requireConsistent(t, s)
}

func TestAdvanceIntoOwnTail(t *testing.T) {
	// 2x2 loop: the head chases the tail around a square.
	s := FromBody(0, 1, 9, 8)
	s.Advance(0)

	assert.Equal(t, []types.Cell{1, 9, 8, 0}, s.Body())
	assert.True(t, s.Occupied(0))
	requireConsistent(t, s)
}

func TestGrowKeepsTail(t *testing.T) {
	s := FromBody(40, 41)
	s.Grow(42)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []types.Cell{40, 41, 42}, s.Body())
	requireConsistent(t, s)
}

func TestRingWrapsAround(t *testing.T) {
	s := NewSnake(0)
	// Walk the top row and back many times so the ring start laps the buffer.
	path := []types.Cell{1, 2, 3, 4, 5, 6, 7, 15, 14, 13, 12, 11, 10, 9, 8, 0}
	for lap := 0; lap < 10; lap++ {
		for _, c := range path {
			s.Advance(c)
			requireConsistent(t, s)
		}
	}
	s.Grow(1)
	s.Grow(2)
	assert.Equal(t, []types.Cell{0, 1, 2}, s.Body())
	requireConsistent(t, s)
}

func TestFullBoard(t *testing.T) {
	cells := make([]types.Cell, 0, types.NumCells)
	for i := 0; i < types.NumCells; i++ {
		cells = append(cells, types.Cell(i))
	}
	s := FromBody(cells[:types.NumCells-1]...)
	assert.False(t, s.Full())

	s.Grow(types.NumCells - 1)
	assert.True(t, s.Full())
	requireConsistent(t, s)

	assert.Panics(t, func() { s.Grow(0) })
}

func TestReset(t *testing.T) {
	s := FromBody(1, 2, 3, 4)
	s.Reset(types.OriginCell)

	assert.Equal(t, []types.Cell{types.OriginCell}, s.Body())
	requireConsistent(t, s)
}

func TestFromBodyRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { FromBody() })
	assert.Panics(t, func() { FromBody(1, 2, 1) })
	assert.Panics(t, func() { FromBody(types.NoCell) })
	assert.Panics(t, func() { NewSnake(types.NumCells) })
}

func TestAppendBodyReusesBuffer(t *testing.T) {
	s := FromBody(10, 11, 12)
	buf := make([]types.Cell, 0, types.NumCells)
	buf = s.AppendBody(buf[:0])
	assert.Equal(t, []types.Cell{10, 11, 12}, buf)
	assert.Equal(t, types.NumCells, cap(buf))
}
