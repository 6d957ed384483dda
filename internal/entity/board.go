package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	DefaultRows    = 6
	DefaultColumns = 7

	// MinBoardSide fits a line of four; MaxBoardSide keeps the search tree bounded.
	MinBoardSide = 4
	MaxBoardSide = 10
)

// Cell is either Empty or the player whose token occupies it.
type Cell = Player

const Empty Cell = NoPlayer

// Board is a rows x columns grid; row 0 is the top, row Rows-1 the bottom.
type Board struct {
	Rows    int      `json:"rows"`
	Columns int      `json:"columns"`
	Cells   [][]Cell `json:"cells"`
}

func NewBoard(rows, columns int) Board {
	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, columns)
	}

	return Board{
		Rows:    rows,
		Columns: columns,
		Cells:   cells,
	}
}

// Clone returns a deep copy that shares no cells with the receiver.
func (that Board) Clone() Board {
	cells := make([][]Cell, len(that.Cells))
	for row := range that.Cells {
		cells[row] = make([]Cell, len(that.Cells[row]))
		copy(cells[row], that.Cells[row])
	}

	return Board{
		Rows:    that.Rows,
		Columns: that.Columns,
		Cells:   cells,
	}
}

func (that Board) Cell(row, column int) Cell {
	return that.Cells[row][column]
}

func (that Board) InBounds(row, column int) bool {
	return row >= 0 && row < that.Rows && column >= 0 && column < that.Columns
}

// LowestEmptyRow returns the row a token dropped into column would settle in.
func (that Board) LowestEmptyRow(column int) (int, error) {
	if column < 0 || column >= that.Columns {
		return -1, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	for row := that.Rows - 1; row >= 0; row-- {
		if that.Cells[row][column] == Empty {
			return row, nil
		}
	}

	return -1, apperror.ErrColumnFull
}

// Place returns a new board with player's token dropped into column and the row it landed on.
// The receiver is left untouched.
func (that Board) Place(column int, player Player) (Board, int, error) {
	row, err := that.LowestEmptyRow(column)
	if err != nil {
		return that, -1, err
	}

	next := that.Clone()
	next.Cells[row][column] = player

	return next, row, nil
}

func (that Board) IsColumnFull(column int) bool {
	return that.Cells[0][column] != Empty
}

// IsFull reports whether the top row is occupied, which is enough since columns fill from the bottom.
func (that Board) IsFull() bool {
	for column := 0; column < that.Columns; column++ {
		if !that.IsColumnFull(column) {
			return false
		}
	}

	return true
}

// ValidColumns lists the non-full columns in ascending order.
func (that Board) ValidColumns() []int {
	columns := make([]int, 0, that.Columns)
	for column := 0; column < that.Columns; column++ {
		if !that.IsColumnFull(column) {
			columns = append(columns, column)
		}
	}

	return columns
}

// Validate checks a board received from outside: bounded and matching
// dimensions, known cell values and no token floating above an empty cell.
func (that Board) Validate() error {
	if !validSide(that.Rows) || !validSide(that.Columns) {
		return fmt.Errorf("%w: %dx%d is outside %d..%d per side",
			apperror.ErrInvalidBoard, that.Rows, that.Columns, MinBoardSide, MaxBoardSide)
	}

	if len(that.Cells) != that.Rows {
		return fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, that.Rows, len(that.Cells))
	}

	for row, cells := range that.Cells {
		if len(cells) != that.Columns {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, row, len(cells))
		}

		for column, cell := range cells {
			if cell != Empty && cell != PlayerOne && cell != PlayerTwo {
				return fmt.Errorf("%w: unknown cell value %d", apperror.ErrInvalidBoard, cell)
			}

			if cell != Empty && row+1 < that.Rows && that.Cells[row+1][column] == Empty {
				return fmt.Errorf("%w: floating token in column %d", apperror.ErrInvalidBoard, column)
			}
		}
	}

	return nil
}

func validSide(size int) bool {
	return size >= MinBoardSide && size <= MaxBoardSide
}
