package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
)

type gameUseCase interface {
	NewGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, column int) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	Tick(ctx context.Context, id string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error
	BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error)
}

type newGameRequest struct {
	Mode       entity.Mode       `json:"mode" binding:"required"`
	Difficulty entity.Difficulty `json:"difficulty"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type bestMoveRequest struct {
	Board      entity.Board      `json:"board"`
	Difficulty entity.Difficulty `json:"difficulty"`
}

type bestMoveResponse struct {
	Column int `json:"column"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type GameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) *GameHandler {
	return &GameHandler{
		logger: logger.With("component", "gameHandler"),
		games:  games,
	}
}

func (that *GameHandler) NewGame(ctx *gin.Context) {
	var request newGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	game, err := that.games.NewGame(ctx.Request.Context(), request.Mode, request.Difficulty)
	if err != nil {
		that.sendError(ctx, "NewGame", err)
		return
	}

	ctx.JSON(http.StatusCreated, game)
}

func (that *GameHandler) GetGame(ctx *gin.Context) {
	game, err := that.games.GetGame(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.sendError(ctx, "GetGame", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

// MakeMove - illegal moves are not errors, the unchanged game is returned.
func (that *GameHandler) MakeMove(ctx *gin.Context) {
	var request moveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	game, err := that.games.MakeMove(ctx.Request.Context(), ctx.Param("id"), *request.Column)
	if err != nil {
		that.sendError(ctx, "MakeMove", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *GameHandler) Reset(ctx *gin.Context) {
	game, err := that.games.Reset(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.sendError(ctx, "Reset", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

// Tick - advances the turn clock by one second. Meant for clients driving the
// clock themselves (game.external-clock); otherwise the session already ticks.
func (that *GameHandler) Tick(ctx *gin.Context) {
	game, err := that.games.Tick(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.sendError(ctx, "Tick", err)
		return
	}

	ctx.JSON(http.StatusOK, game)
}

func (that *GameHandler) EndGame(ctx *gin.Context) {
	if err := that.games.EndGame(ctx.Request.Context(), ctx.Param("id")); err != nil {
		that.sendError(ctx, "EndGame", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (that *GameHandler) BestMove(ctx *gin.Context) {
	var request bestMoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	column, err := that.games.BestMove(ctx.Request.Context(), request.Board, request.Difficulty)
	if err != nil {
		that.sendError(ctx, "BestMove", err)
		return
	}

	ctx.JSON(http.StatusOK, bestMoveResponse{Column: column})
}

func (that *GameHandler) sendError(ctx *gin.Context, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	ctx.JSON(status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, service.ErrNoAvailableMoves):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
