package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// NewGame - creates a fresh game with zeroed scores. An empty difficulty means medium.
func NewGame(id string, mode entity.Mode, difficulty entity.Difficulty, rows, columns int) *entity.Game {
	if difficulty == "" {
		difficulty = entity.MediumDifficulty
	}

	return &entity.Game{
		ID:            id,
		Board:         entity.NewBoard(rows, columns),
		CurrentPlayer: entity.PlayerOne,
		Winner:        entity.NoPlayer,
		Status:        entity.StatusInProgress,
		Scores: map[entity.Player]int{
			entity.PlayerOne: 0,
			entity.PlayerTwo: 0,
		},
		TimeLeft:   entity.TurnTime,
		Mode:       mode,
		Difficulty: difficulty,
	}
}

// MakeMove - drops the current player's token into column.
// On any error the game is left exactly as it was.
func MakeMove(gameInstance *entity.Game, column int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	board, row, err := gameInstance.Board.Place(column, gameInstance.CurrentPlayer)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	gameInstance.Board = board
	gameInstance.MoveCount++
	gameInstance.LastMove = &entity.Move{Row: row, Column: column}

	updateGameStatus(gameInstance)

	return nil
}

// updateGameStatus - settles the game after a placement.
func updateGameStatus(gameInstance *entity.Game) {
	player := gameInstance.CurrentPlayer
	gameInstance.TimeLeft = entity.TurnTime

	switch {
	case HasFourInRow(gameInstance.Board, player):
		gameInstance.Winner = player
		gameInstance.IsGameOver = true
		gameInstance.Status = entity.StatusWon
		gameInstance.Scores[player]++
	case gameInstance.Board.IsFull():
		gameInstance.IsGameOver = true
		gameInstance.Status = entity.StatusDraw
	default:
		gameInstance.CurrentPlayer = player.Opponent()
	}
}

// Tick - advances the turn clock by one second. It returns true when the
// clock ran out and the turn passed to the other player.
func Tick(gameInstance *entity.Game) bool {
	if gameInstance.IsFinished() || IsComputerTurn(gameInstance) {
		return false
	}

	if gameInstance.TimeLeft > 0 {
		gameInstance.TimeLeft--
	}

	if gameInstance.TimeLeft > 0 {
		return false
	}

	gameInstance.CurrentPlayer = gameInstance.CurrentPlayer.Opponent()
	gameInstance.TimeLeft = entity.TurnTime

	return true
}

// Reset - starts a new round on an empty board, keeping scores, mode and difficulty.
func Reset(gameInstance *entity.Game) {
	gameInstance.Board = entity.NewBoard(gameInstance.Board.Rows, gameInstance.Board.Columns)
	gameInstance.CurrentPlayer = entity.PlayerOne
	gameInstance.Winner = entity.NoPlayer
	gameInstance.IsGameOver = false
	gameInstance.Status = entity.StatusInProgress
	gameInstance.TimeLeft = entity.TurnTime
	gameInstance.MoveCount = 0
	gameInstance.LastMove = nil
}

// IsComputerTurn - reports whether the automated player is to move.
func IsComputerTurn(gameInstance *entity.Game) bool {
	return gameInstance.IsWithComputer() && gameInstance.CurrentPlayer == entity.Computer && !gameInstance.IsFinished()
}
