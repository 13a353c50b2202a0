package service

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"
)

// GamificationEvent carries the committed effects of one operation.
type GamificationEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	EventID    string          `json:"event_id"`
	Operation  string          `json:"operation"` // e.g. "record_analysis", "complete_task"
	UserID     uint64          `json:"user_id"`
	Effects    []entity.Effect `json:"effects"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishGamificationEvent publishes the effects of a committed operation
	PublishGamificationEvent(ctx context.Context, event *GamificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
