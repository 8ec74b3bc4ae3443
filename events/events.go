package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"internship-alert/models"
)

// EventType identifies a domain event.
type EventType string

const (
	InternshipAdded     EventType = "internship.added"
	InternshipSaved     EventType = "internship.saved"
	InternshipUnsaved   EventType = "internship.unsaved"
	DeadlineApproaching EventType = "internship.deadline_approaching"
)

// BaseEvent is the envelope shared by every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// GetType returns the event type.
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// NewBase builds the envelope for a new event emitted by the API service.
func NewBase(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    "api",
		Version:   "1.0",
	}
}

// InternshipAddedEvent is published when extraction succeeds and a record
// enters the collection.
type InternshipAddedEvent struct {
	BaseEvent
	InternshipID string          `json:"internship_id"`
	Platform     models.Platform `json:"platform"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Deadline     string          `json:"deadline"`
}

// InternshipSaveToggledEvent is published on save and unsave; Type
// distinguishes the direction.
type InternshipSaveToggledEvent struct {
	BaseEvent
	InternshipID string `json:"internship_id"`
	Title        string `json:"title"`
	IsSaved      bool   `json:"is_saved"`
}

// DeadlineApproachingEvent is published when the reminder scanner fires.
type DeadlineApproachingEvent struct {
	BaseEvent
	InternshipID string `json:"internship_id"`
	Title        string `json:"title"`
	Deadline     string `json:"deadline"`
}

// SerializeEvent marshals an event and returns its type for routing.
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case InternshipAddedEvent:
		eventType = e.Type
	case InternshipSaveToggledEvent:
		eventType = e.Type
	case DeadlineApproachingEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}

// DeserializeEvent unmarshals raw bytes into the struct matching eventType.
func DeserializeEvent(eventType EventType, data []byte) (interface{}, error) {
	var event interface{}

	switch eventType {
	case InternshipAdded:
		event = &InternshipAddedEvent{}
	case InternshipSaved, InternshipUnsaved:
		event = &InternshipSaveToggledEvent{}
	case DeadlineApproaching:
		event = &DeadlineApproachingEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
