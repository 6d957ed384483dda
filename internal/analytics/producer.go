package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventGameStarted   = "game_started"
	EventGameFinished  = "game_finished"
	EventTurnForfeited = "turn_forfeited"
)

const (
	writeTimeout = 5 * time.Second
	// upper bound on how long a single-event write waits for its batch to flush
	batchTimeout = 10 * time.Millisecond
)

// Event is the message written to the analytics topic.
type Event struct {
	Event     string         `json:"event"`
	GameID    string         `json:"game_id"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// Producer writes game events to kafka. A nil *Producer is valid and drops everything.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer - returns nil when brokers or topic are not configured.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           writeTimeout,
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (that *Producer) Publish(ctx context.Context, event, gameID string, payload map[string]any) error {
	if that == nil || that.writer == nil {
		return nil
	}

	data, err := json.Marshal(Event{
		Event:     event,
		GameID:    gameID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	// keyed by game so events of one game stay ordered within a partition
	if err = that.writer.WriteMessages(ctx, kafka.Message{Key: []byte(gameID), Value: data}); err != nil {
		return fmt.Errorf("failed to write %s event: %w", event, err)
	}

	return nil
}

func (that *Producer) Close() error {
	if that == nil || that.writer == nil {
		return nil
	}

	if err := that.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
