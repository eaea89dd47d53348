package events

import (
	"time"

	"github.com/spec-kit/clothes-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventClothesCreated EventType = "clothes_created"
	EventClothesUpdated EventType = "clothes_updated"
	EventClothesDeleted EventType = "clothes_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   int64       `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// ClothesChangedPayload is shared by the clothes_* events.
type ClothesChangedPayload struct {
	ClothesID int64  `json:"clothes_id"`
	Name      string `json:"name,omitempty"`
}
