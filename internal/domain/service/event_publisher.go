package service

import (
	"context"

	"justchoose/internal/domain/entity"
)

// SpinRecordedEvent carries a settled spin to the recorder worker.
type SpinRecordedEvent struct {
	RequestID string             `json:"request_id,omitempty"` // For distributed tracing
	Spin      *entity.SpinRecord `json:"spin"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSpinRecorded publishes a spin for asynchronous persistence
	PublishSpinRecorded(ctx context.Context, event *SpinRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
