package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const subscriptionBuffer = 16

type GameRepository interface {
	Save(ctx context.Context, game *entity.Game, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	Publish(ctx context.Context, game *entity.Game) error
	Subscribe(ctx context.Context, id string) (<-chan *entity.Game, func() error)
}

type dbGame struct {
	logger *slog.Logger
	client *redis.Client
}

func NewGameRepository(logger *slog.Logger, client *redis.Client) GameRepository {
	return &dbGame{
		logger: logger.With("component", "gameRepository"),
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func updatesChannel(id string) string {
	return "game:" + id + ":updates"
}

// Save - stores the snapshot. A zero ttl keeps it until deleted.
func (that *dbGame) Save(ctx context.Context, game *entity.Game, ttl time.Duration) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.ID), gameJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

// Publish - sends the snapshot to everyone subscribed to the game.
func (that *dbGame) Publish(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Publish(ctx, updatesChannel(game.ID), gameJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game: %w", err)
	}

	return nil
}

// Subscribe - streams published snapshots of the game until ctx is done or
// the returned close function is called. The channel is closed afterwards.
func (that *dbGame) Subscribe(ctx context.Context, id string) (<-chan *entity.Game, func() error) {
	log := that.logger.With("method", "Subscribe", "gameID", id)

	pubsub := that.client.Subscribe(ctx, updatesChannel(id))
	games := make(chan *entity.Game, subscriptionBuffer)

	// wait for the confirmation so nothing published after return is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		log.Error("failed to subscribe to game updates", "error", err)
	}

	go func() {
		defer close(games)

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}

				var game entity.Game
				if err := json.Unmarshal([]byte(message.Payload), &game); err != nil {
					log.Error("failed to unmarshal game update", "error", err)
					continue
				}

				select {
				case games <- &game:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return games, pubsub.Close
}
