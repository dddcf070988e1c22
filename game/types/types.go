package types

// Cell is a row-major index into the board: row = c/GridSize, col = c%GridSize.
type Cell int

// Board constants
const (
	GridSize = 8
	NumCells = GridSize * GridSize

	// OriginCell is where every new snake starts.
	OriginCell Cell = 40

	// NoCell marks a missing neighbor at the board edge, or absent food on a full board.
	NoCell Cell = -1

	// ShortcutLimit is the body length above which the autopilot stops cutting
	// across the cycle and follows it exactly. Tuned, not derived.
	ShortcutLimit = 32
)

func (c Cell) Row() int { return int(c) / GridSize }
func (c Cell) Col() int { return int(c) % GridSize }

// Valid reports whether c is on the board.
func (c Cell) Valid() bool { return c >= 0 && c < NumCells }

// CellAt returns the cell at the given row and column, or NoCell when off the board.
func CellAt(row, col int) Cell {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return NoCell
	}
	return Cell(row*GridSize + col)
}

// Outcome describes where a game is in its lifecycle.
type Outcome int

const (
	Playing Outcome = iota
	Crashed
	Completed
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Crashed:
		return "crashed"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Direction is the heading of a move between two adjacent cells.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// DirectionBetween returns the heading of a single step from one cell to an
// adjacent one, or NONE when the cells are not grid neighbors.
func DirectionBetween(from, to Cell) Direction {
	if !from.Valid() || !to.Valid() {
		return NONE
	}
	dr, dc := to.Row()-from.Row(), to.Col()-from.Col()
	switch {
	case dr == -1 && dc == 0:
		return UP
	case dr == 0 && dc == 1:
		return RIGHT
	case dr == 1 && dc == 0:
		return DOWN
	case dr == 0 && dc == -1:
		return LEFT
	default:
		return NONE
	}
}

// ToPoint converts a Direction into a (dx, dy) displacement with y growing downwards.
func (d Direction) ToPoint() (dx, dy int) {
	switch d {
	case UP:
		return 0, -1
	case RIGHT:
		return 1, 0
	case DOWN:
		return 0, 1
	case LEFT:
		return -1, 0
	default:
		return 0, 0
	}
}
