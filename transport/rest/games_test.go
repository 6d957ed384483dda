package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, usecase.Config{
		TickInterval:    time.Hour,
		BotDelay:        time.Hour,
		UpdateQueueSize: 64,
	}, nil, nil, service.NewBotService(logger, 2))
	t.Cleanup(manager.Shutdown)

	return New(logger, manager).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return recorder
}

func decodeGame(t *testing.T, recorder *httptest.ResponseRecorder) entity.Game {
	t.Helper()

	var game entity.Game
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &game))

	return game
}

func createGame(t *testing.T, handler http.Handler, mode entity.Mode) entity.Game {
	t.Helper()

	recorder := doRequest(t, handler, http.MethodPost, "/games", map[string]any{"mode": mode, "difficulty": "easy"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	return decodeGame(t, recorder)
}

func TestPing(t *testing.T) {
	recorder := doRequest(t, newTestServer(t), http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestGameHandler_NewGame(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		handler := newTestServer(t)

		game := createGame(t, handler, entity.ModeHuman)

		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.ModeHuman, game.Mode)
		assert.Equal(t, entity.EasyDifficulty, game.Difficulty)
		assert.Equal(t, entity.TurnTime, game.TimeLeft)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/games", map[string]any{"mode": "vs-aliens"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid game mode")
	})

	t.Run("Missing mode", func(t *testing.T) {
		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/games", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGameHandler_Moves(t *testing.T) {
	t.Run("Move, tick and reset", func(t *testing.T) {
		// Given: a human game
		handler := newTestServer(t)
		game := createGame(t, handler, entity.ModeHuman)

		// When: player one drops into column 3
		recorder := doRequest(t, handler, http.MethodPost, "/games/"+game.ID+"/moves", map[string]any{"column": 3})

		// Then: the token is on the bottom row and player two is to move
		require.Equal(t, http.StatusOK, recorder.Code)
		game = decodeGame(t, recorder)
		assert.Equal(t, entity.PlayerOne, game.Board.Cell(entity.DefaultRows-1, 3))
		assert.Equal(t, entity.PlayerTwo, game.CurrentPlayer)
		assert.Equal(t, &entity.Move{Row: entity.DefaultRows - 1, Column: 3}, game.LastMove)

		// When: the clock ticks
		recorder = doRequest(t, handler, http.MethodPost, "/games/"+game.ID+"/tick", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, entity.TurnTime-1, decodeGame(t, recorder).TimeLeft)

		// When: the game is reset
		recorder = doRequest(t, handler, http.MethodPost, "/games/"+game.ID+"/reset", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Zero(t, decodeGame(t, recorder).MoveCount)

		// Then: reading it back returns the same state
		recorder = doRequest(t, handler, http.MethodGet, "/games/"+game.ID, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, entity.PlayerOne, decodeGame(t, recorder).CurrentPlayer)
	})

	t.Run("Illegal move is still OK", func(t *testing.T) {
		handler := newTestServer(t)
		game := createGame(t, handler, entity.ModeHuman)

		recorder := doRequest(t, handler, http.MethodPost, "/games/"+game.ID+"/moves", map[string]any{"column": 99})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Zero(t, decodeGame(t, recorder).MoveCount)
	})

	t.Run("Missing column", func(t *testing.T) {
		handler := newTestServer(t)
		game := createGame(t, handler, entity.ModeHuman)

		recorder := doRequest(t, handler, http.MethodPost, "/games/"+game.ID+"/moves", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Unknown game", func(t *testing.T) {
		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/games/missing/moves", map[string]any{"column": 0})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "game not found")
	})
}

func TestGameHandler_EndGame(t *testing.T) {
	handler := newTestServer(t)
	game := createGame(t, handler, entity.ModeComputer)

	recorder := doRequest(t, handler, http.MethodDelete, "/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doRequest(t, handler, http.MethodGet, "/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGameHandler_BestMove(t *testing.T) {
	t.Run("Winning column", func(t *testing.T) {
		// Given: the computer has three stacked in column 4
		board := entity.NewBoard(entity.DefaultRows, entity.DefaultColumns)
		board.Cells[5][4] = entity.Computer
		board.Cells[4][4] = entity.Computer
		board.Cells[3][4] = entity.Computer
		board.Cells[5][3] = entity.Human
		board.Cells[4][3] = entity.Human
		board.Cells[5][5] = entity.Human

		// When: the best move is requested
		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/best-move", map[string]any{"board": board, "difficulty": "medium"})

		// Then: column 4 is returned
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"column":4}`, recorder.Body.String())
	})

	t.Run("Malformed board", func(t *testing.T) {
		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/best-move", map[string]any{
			"board": map[string]any{"rows": 6, "columns": 7, "cells": [][]int{{0, 0}}},
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Oversized board", func(t *testing.T) {
		// Given: a board far wider than any search can cover
		board := entity.NewBoard(entity.DefaultRows, 40)

		// When: the best move is requested on hard
		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/best-move", map[string]any{"board": board, "difficulty": "hard"})

		// Then: it is rejected before any search starts
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "invalid board")
	})

	t.Run("Full board", func(t *testing.T) {
		board := entity.NewBoard(entity.MinBoardSide, entity.MinBoardSide)
		board.Cells = [][]entity.Cell{{1, 2, 1, 2}, {1, 2, 1, 2}, {2, 1, 2, 1}, {2, 1, 2, 1}}

		recorder := doRequest(t, newTestServer(t), http.MethodPost, "/best-move", map[string]any{"board": board})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "no available moves")
	})
}
