package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/clothes-service/internal/events"
	"github.com/spec-kit/clothes-service/internal/repository"
)

// CatalogListener keeps derived catalog state in step with domain events.
type CatalogListener struct {
	dispatcher events.Dispatcher
	cache      repository.ClothesCache
	logger     *zap.Logger
}

// NewCatalogListener creates the listener.
func NewCatalogListener(dispatcher events.Dispatcher, cache repository.ClothesCache, logger *zap.Logger) *CatalogListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogListener{dispatcher: dispatcher, cache: cache, logger: logger}
}

// RegisterHandlers subscribes to events.
func (l *CatalogListener) RegisterHandlers() {
	if l.dispatcher == nil {
		return
	}
	l.dispatcher.Subscribe(events.EventClothesCreated, l.handleClothesChanged)
	l.dispatcher.Subscribe(events.EventClothesUpdated, l.handleClothesChanged)
	l.dispatcher.Subscribe(events.EventClothesDeleted, l.handleClothesChanged)
	l.dispatcher.Subscribe(events.EventUserRegistered, l.handleUserRegistered)
}

func (l *CatalogListener) handleClothesChanged(ctx context.Context, event events.Event) error {
	l.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.Int64("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	if l.cache == nil {
		return nil
	}
	return l.cache.Invalidate(ctx)
}

func (l *CatalogListener) handleUserRegistered(_ context.Context, event events.Event) error {
	l.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.Any("payload", event.Payload))
	return nil
}
