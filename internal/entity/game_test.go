package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsOngoing returns true when game is in progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsDraw returns true for a drawn game", func(t *testing.T) {
		game := &Game{Status: StatusDraw, IsGameOver: true}

		assert.True(t, game.IsDraw())
		assert.True(t, game.IsFinished())
	})

	t.Run("IsWithComputer", func(t *testing.T) {
		assert.True(t, (&Game{Mode: ModeComputer}).IsWithComputer())
		assert.False(t, (&Game{Mode: ModeHuman}).IsWithComputer())
	})
}

func TestModeAndDifficulty_IsValid(t *testing.T) {
	assert.True(t, ModeHuman.IsValid())
	assert.True(t, ModeComputer.IsValid())
	assert.False(t, ModeNone.IsValid())
	assert.False(t, Mode("cpu").IsValid())

	assert.True(t, EasyDifficulty.IsValid())
	assert.True(t, MediumDifficulty.IsValid())
	assert.True(t, HardDifficulty.IsValid())
	assert.False(t, Difficulty("impossible").IsValid())
}

func TestGame_Snapshot(t *testing.T) {
	// Given: a game with a token, scores and a last move
	board, row, err := NewBoard(DefaultRows, DefaultColumns).Place(3, PlayerOne)
	require.NoError(t, err)

	game := &Game{
		ID:            "123",
		Board:         board,
		CurrentPlayer: PlayerTwo,
		Status:        StatusInProgress,
		Scores:        map[Player]int{PlayerOne: 2, PlayerTwo: 1},
		TimeLeft:      TurnTime,
		Mode:          ModeHuman,
		Difficulty:    MediumDifficulty,
		MoveCount:     1,
		LastMove:      &Move{Row: row, Column: 3},
	}

	// When: a snapshot is taken and then the live game changes
	snapshot := game.Snapshot()
	game.Board.Cells[row][3] = PlayerTwo
	game.Scores[PlayerOne] = 10
	game.LastMove.Column = 0

	// Then: the snapshot keeps the original values
	assert.Equal(t, PlayerOne, snapshot.Board.Cell(row, 3))
	assert.Equal(t, 2, snapshot.Scores[PlayerOne])
	assert.Equal(t, 3, snapshot.LastMove.Column)
	assert.Equal(t, "123", snapshot.ID)
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Opponent())
	assert.Equal(t, PlayerOne, PlayerTwo.Opponent())
}
