package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectfour-backend/internal/analytics"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/session"
)

type gameRepoDep interface {
	Save(ctx context.Context, game *entity.Game, ttl time.Duration) error
	DeleteByID(ctx context.Context, id string) error
	Publish(ctx context.Context, game *entity.Game) error
}

type eventsDep interface {
	Publish(ctx context.Context, event, gameID string, payload map[string]any) error
}

type botDep interface {
	BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error)
}

// Config holds the per-game settings of the manager.
type Config struct {
	Rows            int
	Columns         int
	TickInterval    time.Duration
	BotDelay        time.Duration
	SnapshotTTL     time.Duration
	UpdateQueueSize int
	ExternalClock   bool
}

type update struct {
	game  entity.Game
	ended bool
}

type gameEvent struct {
	name    string
	gameID  string
	payload map[string]any
}

// GameManager keeps the live sessions and fans their snapshots out to the
// snapshot store, subscribers and analytics.
type GameManager struct {
	logger *slog.Logger
	conf   Config

	gameRepo gameRepoDep
	events   eventsDep
	bot      botDep

	mu       sync.RWMutex
	sessions map[string]*session.Session

	updates chan update
	pending chan gameEvent
}

func NewGameManager(logger *slog.Logger, conf Config, gameRepo gameRepoDep, events eventsDep, bot botDep) *GameManager {
	if conf.UpdateQueueSize <= 0 {
		conf.UpdateQueueSize = 1
	}

	return &GameManager{
		logger: logger.With("component", "gameManager"),
		conf:   conf,

		gameRepo: gameRepo,
		events:   events,
		bot:      bot,

		sessions: make(map[string]*session.Session),
		updates:  make(chan update, conf.UpdateQueueSize),
		pending:  make(chan gameEvent, conf.UpdateQueueSize),
	}
}

// NewGame - opens a session and starts a game in it. An empty difficulty means medium.
func (that *GameManager) NewGame(_ context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	if difficulty != "" && !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	gameID := uuid.NewString()

	gameSession := session.New(that.logger, that.bot, session.Options{
		ID:           gameID,
		TickInterval: that.conf.TickInterval,
		BotDelay:     that.conf.BotDelay,
		Rows:         that.conf.Rows,
		Columns:      that.conf.Columns,

		ExternalClock: that.conf.ExternalClock,
		OnChange:      that.enqueue,
	})

	that.mu.Lock()
	that.sessions[gameID] = gameSession
	that.mu.Unlock()

	game := gameSession.NewGame(mode, difficulty)

	that.logger.Info("game created", "gameID", gameID, "mode", mode, "difficulty", game.Difficulty)

	return &game, nil
}

func (that *GameManager) MakeMove(_ context.Context, id string, column int) (*entity.Game, error) {
	gameSession, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	game := gameSession.MakeMove(column)

	return &game, nil
}

func (that *GameManager) Reset(_ context.Context, id string) (*entity.Game, error) {
	gameSession, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	game := gameSession.Reset()

	return &game, nil
}

func (that *GameManager) Tick(_ context.Context, id string) (*entity.Game, error) {
	gameSession, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	game := gameSession.Tick()

	return &game, nil
}

func (that *GameManager) GetGame(_ context.Context, id string) (*entity.Game, error) {
	gameSession, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	game := gameSession.Snapshot()

	return &game, nil
}

// EndGame - closes the session. Its stored snapshot is removed by Run once
// every update queued before it has been written.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	that.mu.Lock()
	gameSession, ok := that.sessions[id]
	delete(that.sessions, id)
	that.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	gameSession.Close()

	select {
	case that.updates <- update{game: entity.Game{ID: id}, ended: true}:
	case <-ctx.Done():
		return fmt.Errorf("failed to queue game removal: %w", ctx.Err())
	}

	that.logger.Info("game ended", "gameID", id)

	return nil
}

// BestMove - answers a one-off question about a board without a session.
func (that *GameManager) BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error) {
	if difficulty == "" {
		difficulty = entity.MediumDifficulty
	}

	if !difficulty.IsValid() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	if err := board.Validate(); err != nil {
		return 0, err
	}

	column, err := that.bot.BestMove(ctx, board, difficulty)
	if err != nil {
		return 0, fmt.Errorf("failed to find best move: %w", err)
	}

	return column, nil
}

// Run - drains the update queue until ctx is done. Analytics events are
// published from a separate goroutine so a slow broker never holds up snapshots.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	lastSeen := make(map[string]entity.Game)

	published := make(chan struct{})
	go func() {
		defer close(published)
		that.publishEvents(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			<-published
			return nil
		case next := <-that.updates:
			if next.ended {
				delete(lastSeen, next.game.ID)

				if err := that.gameRepo.DeleteByID(ctx, next.game.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
					log.Error("failed to delete game", "gameID", next.game.ID, "error", err)
				}
				continue
			}

			previous, seen := lastSeen[next.game.ID]
			lastSeen[next.game.ID] = next.game

			that.store(ctx, &next.game)
			that.emit(previous, seen, next.game)
		}
	}
}

// Shutdown - closes every session.
func (that *GameManager) Shutdown() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for id, gameSession := range that.sessions {
		gameSession.Close()
		delete(that.sessions, id)
	}
}

func (that *GameManager) getSession(id string) (*session.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	gameSession, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return gameSession, nil
}

// enqueue runs under the session lock, so it never blocks.
func (that *GameManager) enqueue(game entity.Game) {
	select {
	case that.updates <- update{game: game}:
	default:
		that.logger.Warn("update queue is full, snapshot dropped", "gameID", game.ID, "moveCount", game.MoveCount)
	}
}

func (that *GameManager) store(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "store", "gameID", game.ID)

	if err := that.gameRepo.Save(ctx, game, that.conf.SnapshotTTL); err != nil {
		log.Error("failed to save game", "error", err)
	}

	if err := that.gameRepo.Publish(ctx, game); err != nil {
		log.Error("failed to publish game", "error", err)
	}
}

// emit queues the analytics event implied by two consecutive snapshots, if any.
func (that *GameManager) emit(previous entity.Game, seen bool, current entity.Game) {
	name, payload, ok := detectEvent(previous, seen, current)
	if !ok {
		return
	}

	select {
	case that.pending <- gameEvent{name: name, gameID: current.ID, payload: payload}:
	default:
		that.logger.Warn("event queue is full, event dropped", "event", name, "gameID", current.ID)
	}
}

func (that *GameManager) publishEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case next := <-that.pending:
			if err := that.events.Publish(ctx, next.name, next.gameID, next.payload); err != nil {
				that.logger.Error("failed to publish event", "event", next.name, "gameID", next.gameID, "error", err)
			}
		}
	}
}

// detectEvent derives the analytics event from two consecutive snapshots of a game.
func detectEvent(previous entity.Game, seen bool, current entity.Game) (string, map[string]any, bool) {
	switch {
	case current.IsFinished() && (!seen || previous.IsOngoing()):
		return analytics.EventGameFinished, map[string]any{
			"status":     current.Status,
			"winner":     current.Winner,
			"draw":       current.IsDraw(),
			"move_count": current.MoveCount,
			"scores":     current.Scores,
		}, true
	case current.IsOngoing() && current.MoveCount == 0 && (!seen || previous.MoveCount > 0 || previous.IsFinished()):
		return analytics.EventGameStarted, map[string]any{
			"mode":       current.Mode,
			"difficulty": current.Difficulty,
		}, true
	case seen && current.IsOngoing() && previous.MoveCount == current.MoveCount && previous.CurrentPlayer != current.CurrentPlayer:
		return analytics.EventTurnForfeited, map[string]any{
			"player":     previous.CurrentPlayer,
			"move_count": current.MoveCount,
		}, true
	default:
		return "", nil, false
	}
}
