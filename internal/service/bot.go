package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/minimax"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	logger *slog.Logger
	engine *minimax.Engine
}

func NewBotService(logger *slog.Logger, parallelism int) BotService {
	return &botService{
		logger: logger,
		engine: minimax.NewEngine(parallelism),
	}
}

// BestMove - picks the computer's column for board. The board must have a playable column.
func (that *botService) BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error) {
	log := that.logger.With("method", "BestMove")

	if board.IsFull() {
		return 0, ErrNoAvailableMoves
	}

	started := time.Now()

	column, err := that.engine.BestMove(ctx, board, difficulty)
	if err != nil {
		return 0, fmt.Errorf("bot failed to choose a column: %w", err)
	}

	log.Debug("column chosen",
		"difficulty", difficulty,
		"depth", minimax.DepthFor(difficulty),
		"column", column,
		"duration", time.Since(started),
	)

	return column, nil
}
