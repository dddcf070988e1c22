package entity

import (
	"fmt"

	"snek/game/types"
)

// Snake is the ordered body of the snake, tail first, head last, plus an
// occupancy mask kept in step with it. The body lives in a fixed ring so
// moving never reallocates.
type Snake struct {
	body  [types.NumCells]types.Cell
	start int // ring index of the tail
	n     int
	mask  [types.NumCells]bool
}

// NewSnake returns a snake of length 1 at start.
func NewSnake(start types.Cell) *Snake {
	s := &Snake{}
	s.Reset(start)
	return s
}

// FromBody builds a snake from cells listed tail to head. It panics on an
// empty body, an off-board cell or a repeated cell.
func FromBody(cells ...types.Cell) *Snake {
	if len(cells) == 0 || len(cells) > types.NumCells {
		panic(fmt.Sprintf("entity: body length %d out of range", len(cells)))
	}
	s := &Snake{}
	for _, c := range cells {
		mustBeOnBoard(c)
		if s.mask[c] {
			panic(fmt.Sprintf("entity: cell %d repeated in body", c))
		}
		s.push(c)
		s.mask[c] = true
	}
	return s
}

// Reset shrinks the snake back to a single cell.
func (s *Snake) Reset(start types.Cell) {
	mustBeOnBoard(start)
	*s = Snake{}
	s.push(start)
	s.mask[start] = true
}

func (s *Snake) Len() int { return s.n }

// Full reports whether the body covers the whole board.
func (s *Snake) Full() bool { return s.n == types.NumCells }

// At returns the i-th body cell, 0 being the tail.
func (s *Snake) At(i int) types.Cell {
	return s.body[(s.start+i)%types.NumCells]
}

func (s *Snake) Head() types.Cell { return s.At(s.n - 1) }
func (s *Snake) Tail() types.Cell { return s.At(0) }

// Occupied reports whether c is covered by the body. Off-board cells never are.
func (s *Snake) Occupied(c types.Cell) bool {
	return c.Valid() && s.mask[c]
}

// CopyMask overwrites dst with the occupancy mask.
func (s *Snake) CopyMask(dst *[types.NumCells]bool) {
	*dst = s.mask
}

// Body returns a fresh copy of the body, tail to head.
func (s *Snake) Body() []types.Cell {
	return s.AppendBody(make([]types.Cell, 0, s.n))
}

// AppendBody appends the body, tail to head, to dst.
func (s *Snake) AppendBody(dst []types.Cell) []types.Cell {
	for i := 0; i < s.n; i++ {
		dst = append(dst, s.At(i))
	}
	return dst
}

// Advance moves the snake one cell without growing: the tail leaves first,
// so dest may be the current tail.
func (s *Snake) Advance(dest types.Cell) {
	mustBeOnBoard(dest)
	tail := s.Tail()
	s.mask[tail] = false
	s.start = (s.start + 1) % types.NumCells
	s.n--
	s.push(dest)
	s.mask[dest] = true
}

// Grow adds dest as the new head and keeps the tail in place. The mask is
// rebuilt from the body afterwards.
func (s *Snake) Grow(dest types.Cell) {
	mustBeOnBoard(dest)
	if s.Full() {
		panic("entity: grow on a full board")
	}
	s.push(dest)
	s.rebuildMask()
}

func (s *Snake) push(c types.Cell) {
	s.body[(s.start+s.n)%types.NumCells] = c
	s.n++
}

func (s *Snake) rebuildMask() {
	s.mask = [types.NumCells]bool{}
	for i := 0; i < s.n; i++ {
		s.mask[s.At(i)] = true
	}
}

func mustBeOnBoard(c types.Cell) {
	if !c.Valid() {
		panic(fmt.Sprintf("entity: cell %d is off the board", c))
	}
}
