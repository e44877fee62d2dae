package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Redis channel carrying question lifecycle events
const channel = "trivia:events"

// Broadcaster publishes question events through Redis so every API instance
// can fan them out to its own websocket clients
type Broadcaster struct {
	redis *redis.Client
}

// NewBroadcaster creates a new broadcaster
func NewBroadcaster(client *redis.Client) *Broadcaster {
	return &Broadcaster{redis: client}
}

// PublishQuestionEvent publishes a question lifecycle event
func (b *Broadcaster) PublishQuestionEvent(ctx context.Context, eventType string, question *domain.Question) error {
	data, err := json.Marshal(Event{
		Type:     eventType,
		Question: question,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redis.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Relay subscribes to the event channel and forwards every message to the hub.
// It blocks until the context is cancelled.
func (b *Broadcaster) Relay(ctx context.Context, hub *Hub) {
	sub := b.redis.Subscribe(ctx, channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			hub.Broadcast([]byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}
