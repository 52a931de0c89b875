package service

import (
	"context"
	"time"

	"storepulse/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRegisteredEvent is emitted after a successful signup so downstream
// consumers (welcome mail) can react without being in the request path.
type UserRegisteredEvent struct {
	UserID       uuid.UUID   `json:"userId"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         entity.Role `json:"role"`
	RegisteredAt time.Time   `json:"registeredAt"`
}

// EventPublisher publishes domain events. Publishing is best effort: callers
// must not fail the originating request when it errors.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, event *UserRegisteredEvent) error
}
