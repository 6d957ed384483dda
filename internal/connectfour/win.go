package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

// ConnectLength is the number of aligned tokens that wins the game.
const ConnectLength = 4

// Directions holds the row/column steps of the four line orientations: →, ↓, ↘, ↗.
var Directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// HasFourInRow reports whether player owns ConnectLength consecutive cells in any direction.
func HasFourInRow(board entity.Board, player entity.Player) bool {
	for row := 0; row < board.Rows; row++ {
		for column := 0; column < board.Columns; column++ {
			if board.Cell(row, column) != player {
				continue
			}

			for _, direction := range Directions {
				if ownsLine(board, row, column, direction, player) {
					return true
				}
			}
		}
	}

	return false
}

// ownsLine checks the ConnectLength cells starting at (row, column); lines leaving the grid never match.
func ownsLine(board entity.Board, row, column int, direction [2]int, player entity.Player) bool {
	endRow := row + direction[0]*(ConnectLength-1)
	endColumn := column + direction[1]*(ConnectLength-1)
	if !board.InBounds(endRow, endColumn) {
		return false
	}

	for step := 1; step < ConnectLength; step++ {
		if board.Cell(row+direction[0]*step, column+direction[1]*step) != player {
			return false
		}
	}

	return true
}

// IsTerminal reports whether no further play is possible: the board is full or a player has won.
func IsTerminal(board entity.Board) bool {
	return board.IsFull() || HasFourInRow(board, entity.PlayerOne) || HasFourInRow(board, entity.PlayerTwo)
}
