package minimax

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthFor(t *testing.T) {
	assert.Equal(t, 2, DepthFor(entity.EasyDifficulty))
	assert.Equal(t, 4, DepthFor(entity.MediumDifficulty))
	assert.Equal(t, 6, DepthFor(entity.HardDifficulty))
	assert.Equal(t, 4, DepthFor("impossible"))
}

func TestBestMove(t *testing.T) {
	t.Run("Takes an immediate win at every difficulty", func(t *testing.T) {
		// Given: the computer has three stacked in column 4
		board := boardFromRows(t,
			".......",
			".......",
			".......",
			"....2..",
			"...12..",
			"...121.",
		)

		for _, difficulty := range []entity.Difficulty{entity.EasyDifficulty, entity.MediumDifficulty, entity.HardDifficulty} {
			// Then: column 4 completes the line
			assert.Equal(t, 4, BestMove(board, difficulty), "difficulty %s", difficulty)
		}
	})

	t.Run("Blocks the human's open three", func(t *testing.T) {
		// Given: the human threatens to finish the bottom row in column 3
		board := boardFromRows(t,
			".......",
			".......",
			".......",
			".......",
			"22.....",
			"111....",
		)

		// Then: the computer blocks
		assert.Equal(t, 3, BestMove(board, entity.EasyDifficulty))
		assert.Equal(t, 3, BestMove(board, entity.MediumDifficulty))
	})

	t.Run("Ties go to the lowest column", func(t *testing.T) {
		// Given: an empty board where every shallow reply scores the same
		board := entity.NewBoard(entity.DefaultRows, entity.DefaultColumns)

		// Then: easy picks column 0 and medium prefers the center
		assert.Equal(t, 0, BestMove(board, entity.EasyDifficulty))
		assert.Equal(t, 2, BestMove(board, entity.MediumDifficulty))
	})

	t.Run("Skips full columns", func(t *testing.T) {
		// Given: columns 0 and 1 are full
		board := boardFromRows(t,
			"12.....",
			"21.....",
			"12.....",
			"21.....",
			"12.....",
			"21.....",
		)

		// Then: the chosen column is playable
		column := BestMove(board, entity.EasyDifficulty)
		assert.False(t, board.IsColumnFull(column))
	})

	t.Run("Does not mutate the board", func(t *testing.T) {
		board := boardFromRows(t,
			".......",
			".......",
			".......",
			".......",
			"...2...",
			"..112..",
		)
		expected := board.Clone()

		BestMove(board, entity.HardDifficulty)

		assert.Equal(t, expected, board)
	})
}

func TestMinimax_PruningMatchesPlainSearch(t *testing.T) {
	rnd := rand.New(rand.NewSource(11)) //nolint: gosec // deterministic test data

	for i := 0; i < 40; i++ {
		// Given: a random reachable position
		board := randomBoard(t, rnd, rnd.Intn(20))

		for depth := 1; depth <= 4; depth++ {
			// Then: every root column scores the same with and without pruning
			for _, column := range board.ValidColumns() {
				child, _, err := board.Place(column, entity.Computer)
				require.NoError(t, err)

				require.Equal(t,
					plainMinimax(child, depth-1, false),
					Minimax(child, depth-1, false, negInf, posInf),
					"position %d depth %d column %d", i, depth, column,
				)
			}
		}
	}
}

func TestEngine_BestMove(t *testing.T) {
	t.Run("Matches the sequential search", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(5)) //nolint: gosec // deterministic test data
		engine := NewEngine(4)

		for i := 0; i < 20; i++ {
			// Given: a random reachable position
			board := randomBoard(t, rnd, rnd.Intn(20))

			for _, difficulty := range []entity.Difficulty{entity.EasyDifficulty, entity.MediumDifficulty} {
				// When: the parallel engine searches it
				column, err := engine.BestMove(context.Background(), board, difficulty)

				// Then: it picks the same column as the sequential search
				require.NoError(t, err)
				require.Equal(t, BestMove(board, difficulty), column)
			}
		}
	})

	t.Run("Canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewEngine(2).BestMove(ctx, entity.NewBoard(entity.DefaultRows, entity.DefaultColumns), entity.HardDifficulty)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Parallelism below one is clamped", func(t *testing.T) {
		column, err := NewEngine(0).BestMove(context.Background(), entity.NewBoard(entity.DefaultRows, entity.DefaultColumns), entity.EasyDifficulty)

		require.NoError(t, err)
		assert.Equal(t, 0, column)
	})
}

// expiringContext reports itself canceled once Err has been asked allowed times.
type expiringContext struct {
	context.Context
	allowed int32
	asked   atomic.Int32
}

func (that *expiringContext) Err() error {
	if that.asked.Add(1) > that.allowed {
		return context.Canceled
	}

	return nil
}

func TestScoreColumn_StopsWhenCanceledMidSearch(t *testing.T) {
	// Given: a context that expires after a few nodes of a hard search
	ctx := &expiringContext{Context: context.Background(), allowed: 10}

	// When: a root column is scored
	_, err := scoreColumn(ctx, entity.NewBoard(entity.DefaultRows, entity.DefaultColumns), 3, DepthFor(entity.HardDifficulty))

	// Then: the recursion notices the cancellation and unwinds right away
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ctx.allowed+1, ctx.asked.Load())
}

// plainMinimax is the same search without pruning.
func plainMinimax(board entity.Board, depth int, maximizing bool) int {
	if depth <= 0 || connectfour.IsTerminal(board) {
		return Evaluate(board)
	}

	player := entity.Human
	best := posInf
	if maximizing {
		player = entity.Computer
		best = negInf
	}

	for _, column := range board.ValidColumns() {
		child, _, _ := board.Place(column, player)
		score := plainMinimax(child, depth-1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func hasFour(board entity.Board) bool {
	return connectfour.HasFourInRow(board, entity.Human) || connectfour.HasFourInRow(board, entity.Computer)
}
