package minimax

import (
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	scoreFour  = 100
	scoreThree = 5
	scoreTwo   = 2
)

// Evaluate scores a board from the computer's point of view by summing every
// ConnectLength window in the four line directions. Overlapping windows all count.
func Evaluate(board entity.Board) int {
	score := 0

	for row := 0; row < board.Rows; row++ {
		for column := 0; column < board.Columns; column++ {
			for _, direction := range connectfour.Directions {
				score += evaluateWindow(board, row, column, direction)
			}
		}
	}

	return score
}

// evaluateWindow scores the window starting at (row, column); windows leaving the grid score 0.
func evaluateWindow(board entity.Board, row, column int, direction [2]int) int {
	endRow := row + direction[0]*(connectfour.ConnectLength-1)
	endColumn := column + direction[1]*(connectfour.ConnectLength-1)
	if !board.InBounds(endRow, endColumn) {
		return 0
	}

	var computer, human, empty int
	for step := 0; step < connectfour.ConnectLength; step++ {
		switch board.Cell(row+direction[0]*step, column+direction[1]*step) {
		case entity.Computer:
			computer++
		case entity.Human:
			human++
		default:
			empty++
		}
	}

	switch {
	case computer == 4:
		return scoreFour
	case human == 4:
		return -scoreFour
	case computer == 3 && empty == 1:
		return scoreThree
	case human == 3 && empty == 1:
		return -scoreThree
	case computer == 2 && empty == 2:
		return scoreTwo
	case human == 2 && empty == 2:
		return -scoreTwo
	default:
		return 0
	}
}
