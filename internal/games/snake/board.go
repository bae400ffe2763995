package snake

// NoCell marks the absence of a cell, e.g. no food when the board is full.
const NoCell = -1

// Board is a square grid stored as a flat, row-major index space.
// It is immutable after creation.
type Board struct {
	size int
}

// NewBoard creates a size x size board.
func NewBoard(size int) Board {
	return Board{size: size}
}

// Size returns the number of cells per side.
func (b Board) Size() int {
	return b.size
}

// Cells returns the total number of cells.
func (b Board) Cells() int {
	return b.size * b.size
}

// Index converts a row/column pair into a cell index.
func (b Board) Index(row, col int) int {
	return row*b.size + col
}

// Row returns the row of a cell.
func (b Board) Row(i int) int {
	return i / b.size
}

// Col returns the column of a cell.
func (b Board) Col(i int) int {
	return i % b.size
}

// Contains reports whether i is a valid cell index.
func (b Board) Contains(i int) bool {
	return i >= 0 && i < b.Cells()
}

// Delta returns the index offset of one step in direction d.
func (b Board) Delta(d Direction) int {
	switch d {
	case DirRight:
		return 1
	case DirLeft:
		return -1
	case DirDown:
		return b.size
	case DirUp:
		return -b.size
	default:
		return 0
	}
}

// Neighbor returns the cell one step from i in direction d.
// ok is false when the step would leave the board, including the row
// wraparound that plain index addition would silently produce.
func (b Board) Neighbor(i int, d Direction) (next int, ok bool) {
	if !b.Contains(i) {
		return NoCell, false
	}
	row, col := b.Row(i), b.Col(i)
	switch d {
	case DirRight:
		if col == b.size-1 {
			return NoCell, false
		}
	case DirLeft:
		if col == 0 {
			return NoCell, false
		}
	case DirUp:
		if row == 0 {
			return NoCell, false
		}
	case DirDown:
		if row == b.size-1 {
			return NoCell, false
		}
	default:
		return NoCell, false
	}
	return i + b.Delta(d), true
}

// StartSnake returns the initial three-cell snake heading right:
// row 2, head in column 5. On a 20x20 board this is [45, 44, 43].
func (b Board) StartSnake() []int {
	head := b.Index(2, 5)
	return []int{head, head - 1, head - 2}
}
