package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	defaultTickInterval = time.Second
	defaultBotDelay     = time.Second
)

type bot interface {
	BestMove(ctx context.Context, board entity.Board, difficulty entity.Difficulty) (int, error)
}

// Options configure a Session. Zero values fall back to the defaults.
type Options struct {
	ID           string
	TickInterval time.Duration
	BotDelay     time.Duration
	Rows         int
	Columns      int

	// ExternalClock turns the internal ticker off; the turn clock then only
	// advances through Tick.
	ExternalClock bool

	// OnChange receives a snapshot after every effective mutation, in order.
	// It is called with the session locked and must not block.
	OnChange func(game entity.Game)
}

// Session owns one game together with its turn clock and the scheduler for
// the computer's moves. All methods are safe for concurrent use.
type Session struct {
	logger *slog.Logger
	bot    bot
	opts   Options

	mu         sync.Mutex
	game       *entity.Game
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

func New(logger *slog.Logger, bot bot, opts Options) *Session {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}

	if opts.BotDelay <= 0 {
		opts.BotDelay = defaultBotDelay
	}

	if opts.Rows <= 0 {
		opts.Rows = entity.DefaultRows
	}

	if opts.Columns <= 0 {
		opts.Columns = entity.DefaultColumns
	}

	return &Session{
		logger: logger.With("component", "session", "gameID", opts.ID),
		bot:    bot,
		opts:   opts,
		game:   connectfour.NewGame(opts.ID, entity.ModeNone, entity.MediumDifficulty, opts.Rows, opts.Columns),
	}
}

// NewGame - starts a fresh game with zeroed scores.
func (that *Session) NewGame(mode entity.Mode, difficulty entity.Difficulty) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.game.Snapshot()
	}

	that.game = connectfour.NewGame(that.opts.ID, mode, difficulty, that.opts.Rows, that.opts.Columns)
	that.reschedule()

	return that.changed()
}

// MakeMove - drops the current player's token into column. Illegal moves leave the game unchanged.
func (that *Session) MakeMove(column int) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.game.Snapshot()
	}

	return that.makeMove(column)
}

// Reset - starts the next round, keeping scores, mode and difficulty.
func (that *Session) Reset() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.game.Snapshot()
	}

	connectfour.Reset(that.game)
	that.reschedule()

	return that.changed()
}

// Tick - advances the turn clock by one second.
func (that *Session) Tick() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return that.game.Snapshot()
	}

	return that.tick()
}

func (that *Session) Snapshot() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Snapshot()
}

// Close - stops the clock and discards any pending computer move.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	that.stopTimers()
}

func (that *Session) makeMove(column int) entity.Game {
	player := that.game.CurrentPlayer

	if err := connectfour.MakeMove(that.game, column); err != nil {
		that.logger.Debug("move ignored", "column", column, "player", player, "error", err)
		return that.game.Snapshot()
	}

	// the player or the game-over flag changed after every successful move
	that.reschedule()

	return that.changed()
}

func (that *Session) tick() entity.Game {
	if !that.game.Mode.IsValid() || !that.game.IsOngoing() || connectfour.IsComputerTurn(that.game) {
		return that.game.Snapshot()
	}

	if connectfour.Tick(that.game) {
		that.logger.Debug("turn forfeited", "player", that.game.CurrentPlayer.Opponent())
		that.reschedule()
	}

	return that.changed()
}

// changed publishes the current state. Must be called with mu held.
func (that *Session) changed() entity.Game {
	snapshot := that.game.Snapshot()

	if that.opts.OnChange != nil {
		that.opts.OnChange(snapshot)
	}

	return snapshot
}

// stopTimers cancels the running clock or pending computer move and makes
// any callback already in flight stale. Must be called with mu held.
func (that *Session) stopTimers() {
	if that.cancel != nil {
		that.cancel()
		that.cancel = nil
	}

	that.generation++
}

// reschedule starts whichever timer the current state needs. Must be called with mu held.
func (that *Session) reschedule() {
	that.stopTimers()

	if that.closed || that.game.IsFinished() || !that.game.Mode.IsValid() {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	that.cancel = cancel

	if connectfour.IsComputerTurn(that.game) {
		go that.runBot(ctx, that.generation)
		return
	}

	if !that.opts.ExternalClock {
		go that.runClock(ctx, that.generation)
	}
}

func (that *Session) runClock(ctx context.Context, generation uint64) {
	ticker := time.NewTicker(that.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.mu.Lock()
			if generation != that.generation {
				that.mu.Unlock()
				return
			}

			that.tick()
			that.mu.Unlock()
		}
	}
}

func (that *Session) runBot(ctx context.Context, generation uint64) {
	log := that.logger.With("method", "runBot")

	timer := time.NewTimer(that.opts.BotDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	that.mu.Lock()
	if generation != that.generation {
		that.mu.Unlock()
		return
	}

	board := that.game.Board.Clone()
	difficulty := that.game.Difficulty
	that.mu.Unlock()

	column, err := that.bot.BestMove(ctx, board, difficulty)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("failed to choose computer move", "error", err)
		}
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if generation != that.generation {
		log.Debug("stale computer move discarded", "column", column)
		return
	}

	that.makeMove(column)
}
