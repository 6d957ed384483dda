package apperror

import "errors"

var (
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidColumn     = errors.New("invalid column index")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidBoard      = errors.New("invalid board")
)
