package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	actionGameState = "game:state"
	actionGameMove  = "game:move"
	actionGameReset = "game:reset"
	actionGameTick  = "game:tick"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Column *int `json:"column"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func newMessage(action string, payload ResponsePayload) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}
