package service

import (
	"context"
	"time"
)

// ReminderTickEvent asks a worker to run the daily reminder pass
type ReminderTickEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	RequestedAt time.Time `json:"requested_at"`
	Source      string    `json:"source"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderTick publishes a reminder tick for async processing
	PublishReminderTick(ctx context.Context, event *ReminderTickEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
