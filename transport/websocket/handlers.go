package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errColumnRequired = errors.New("column is required")

func (that *Server) handleState(ctx context.Context, gameClient *client, message *Message) error {
	game, err := that.games.GetGame(ctx, gameClient.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	that.reply(gameClient, message.Action, ResponsePayload{Game: game})

	return nil
}

// handleMove - the new state reaches the client through the subscription,
// the reply only confirms which state the move produced.
func (that *Server) handleMove(ctx context.Context, gameClient *client, message *Message) error {
	var payload MovePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Column == nil {
		return errColumnRequired
	}

	game, err := that.games.MakeMove(ctx, gameClient.gameID, *payload.Column)
	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	that.reply(gameClient, message.Action, ResponsePayload{Game: game})

	return nil
}

func (that *Server) handleReset(ctx context.Context, gameClient *client, message *Message) error {
	game, err := that.games.Reset(ctx, gameClient.gameID)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.reply(gameClient, message.Action, ResponsePayload{Game: game})

	return nil
}

// handleTick is for clients driving the clock themselves (game.external-clock).
func (that *Server) handleTick(ctx context.Context, gameClient *client, message *Message) error {
	game, err := that.games.Tick(ctx, gameClient.gameID)
	if err != nil {
		return fmt.Errorf("failed to tick game: %w", err)
	}

	that.reply(gameClient, message.Action, ResponsePayload{Game: game})

	return nil
}
