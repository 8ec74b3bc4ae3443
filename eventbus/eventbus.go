package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Event is the payload envelope carried on the bus.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// EventBus abstracts event publishing so the API service does not depend on
// Kafka directly. Publishing is fire-and-forget from the caller's point of
// view; delivery is confirmed inside Publish.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NewJSONEvent encodes payload as JSON into an Event.
// An empty id gets a generated one.
func NewJSONEvent(id string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return Event{
		ID:      id,
		Payload: b,
	}, nil
}

// DecodeJSON unmarshals Event.Payload into the generic type.
func DecodeJSON[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return out, nil
}
