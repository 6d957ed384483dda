package minimax

import (
	"context"
	"fmt"
	"math"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"golang.org/x/sync/errgroup"
)

const (
	negInf = math.MinInt32
	posInf = math.MaxInt32
)

var depthByDifficulty = map[entity.Difficulty]int{
	entity.EasyDifficulty:   2,
	entity.MediumDifficulty: 4,
	entity.HardDifficulty:   6,
}

// DepthFor maps a difficulty to a search depth in plies. Unknown values search like medium.
func DepthFor(difficulty entity.Difficulty) int {
	if depth, ok := depthByDifficulty[difficulty]; ok {
		return depth
	}

	return depthByDifficulty[entity.MediumDifficulty]
}

// BestMove returns the column the computer should play. Columns are tried in
// ascending order and only a strictly greater score replaces the current best,
// so ties go to the lowest column. Column 0 is returned when every column is full.
func BestMove(board entity.Board, difficulty entity.Difficulty) int {
	depth := DepthFor(difficulty)

	bestScore := negInf
	bestMove := 0
	for _, column := range board.ValidColumns() {
		if score, _ := scoreColumn(context.Background(), board, column, depth); score > bestScore {
			bestScore = score
			bestMove = column
		}
	}

	return bestMove
}

// scoreColumn plays the computer's token into column and searches the reply
// with a full window. column must not be full.
func scoreColumn(ctx context.Context, board entity.Board, column, depth int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	child, _, _ := board.Place(column, entity.Computer)
	searcher := &search{ctx: ctx}
	score := searcher.minimax(child, depth-1, false, negInf, posInf)

	return score, searcher.err
}

// Minimax searches depth plies below board with alpha-beta pruning. maximizing
// is true when the computer is to move.
func Minimax(board entity.Board, depth int, maximizing bool, alpha, beta int) int {
	return (&search{ctx: context.Background()}).minimax(board, depth, maximizing, alpha, beta)
}

// search carries the context of one root column. Once err is set every frame
// unwinds and the score is meaningless.
type search struct {
	ctx context.Context
	err error
}

func (that *search) minimax(board entity.Board, depth int, maximizing bool, alpha, beta int) int {
	if depth <= 0 || connectfour.IsTerminal(board) {
		return Evaluate(board)
	}

	if that.err = that.ctx.Err(); that.err != nil {
		return 0
	}

	if maximizing {
		maxScore := negInf
		for _, column := range board.ValidColumns() {
			child, _, _ := board.Place(column, entity.Computer)
			score := that.minimax(child, depth-1, false, alpha, beta)
			if that.err != nil {
				return 0
			}
			maxScore = max(maxScore, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return maxScore
	}

	minScore := posInf
	for _, column := range board.ValidColumns() {
		child, _, _ := board.Place(column, entity.Human)
		score := that.minimax(child, depth-1, true, alpha, beta)
		if that.err != nil {
			return 0
		}
		minScore = min(minScore, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return minScore
}

// Engine scores the root columns concurrently. Every root column is searched
// with its own full window, so the subtrees are independent and the result is
// the same as BestMove. Canceling ctx stops the columns already being searched.
type Engine struct {
	parallelism int
}

func NewEngine(parallelism int) *Engine {
	if parallelism < 1 {
		parallelism = 1
	}

	return &Engine{parallelism: parallelism}
}

func (that *Engine) BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error) {
	depth := DepthFor(difficulty)
	columns := board.ValidColumns()
	scores := make([]int, len(columns))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.parallelism)

	for i, column := range columns {
		i, column := i, column
		group.Go(func() error {
			score, err := scoreColumn(groupCtx, board, column, depth)
			if err != nil {
				return err
			}

			scores[i] = score
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, fmt.Errorf("search canceled: %w", err)
	}

	bestScore := negInf
	bestMove := 0
	for i, column := range columns {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestMove = column
		}
	}

	return bestMove, nil
}
