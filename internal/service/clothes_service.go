package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/clothes-service/internal/domain"
	"github.com/spec-kit/clothes-service/internal/events"
	"github.com/spec-kit/clothes-service/internal/repository"
	apperrors "github.com/spec-kit/clothes-service/pkg/util"
)

// ClothesService coordinates catalog workflows.
type ClothesService struct {
	clothes    repository.ClothesRepository
	cache      repository.ClothesCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ClothesDependencies bundles collaborators for the clothes service.
type ClothesDependencies struct {
	ClothesRepo repository.ClothesRepository
	Cache       repository.ClothesCache
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// ClothesInput describes a create or full-replace payload.
type ClothesInput struct {
	Name     string
	Color    domain.Color
	Size     domain.Size
	PhotoURL *string
}

// NewClothesService constructs the service.
func NewClothesService(deps ClothesDependencies) *ClothesService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClothesService{
		clothes:    deps.ClothesRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns the full catalog, preferring the cached copy. A fill is
// dropped when a write invalidated the cache after the store was read.
func (s *ClothesService) List(ctx context.Context) ([]domain.Clothes, error) {
	var (
		gen    int64
		genErr error
	)
	if s.cache != nil {
		items, err := s.cache.GetList(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		gen, genErr = s.cache.Generation(ctx)
	}

	items, err := s.clothes.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		if genErr == nil {
			genErr = s.cache.SetList(ctx, gen, items)
		}
		switch {
		case genErr == nil:
		case errors.Is(genErr, repository.ErrStaleFill):
			s.logger.Debug("catalog cache fill skipped", zap.Int64("generation", gen))
		default:
			s.logger.Warn("catalog cache write failed", zap.Error(genErr))
		}
	}
	return items, nil
}

// Get returns a single item.
func (s *ClothesService) Get(ctx context.Context, id int64) (*domain.Clothes, error) {
	item, err := s.clothes.GetByID(ctx, id)
	if err != nil {
		return nil, mapClothesError(err, id)
	}
	return item, nil
}

// Create adds an item to the catalog.
func (s *ClothesService) Create(ctx context.Context, actorID int64, in ClothesInput) (*domain.Clothes, error) {
	item := &domain.Clothes{
		Name:     in.Name,
		Color:    in.Color,
		Size:     in.Size,
		PhotoURL: in.PhotoURL,
	}
	if err := s.clothes.Create(ctx, item); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.EventClothesCreated, actorID, item)
	return item, nil
}

// Update replaces every mutable field of an existing item.
func (s *ClothesService) Update(ctx context.Context, actorID, id int64, in ClothesInput) (*domain.Clothes, error) {
	item, err := s.clothes.GetByID(ctx, id)
	if err != nil {
		return nil, mapClothesError(err, id)
	}
	item.Name = in.Name
	item.Color = in.Color
	item.Size = in.Size
	item.PhotoURL = in.PhotoURL
	if err := s.clothes.Update(ctx, item); err != nil {
		return nil, mapClothesError(err, id)
	}
	s.publish(ctx, events.EventClothesUpdated, actorID, item)
	return item, nil
}

// Delete removes an item.
func (s *ClothesService) Delete(ctx context.Context, actorID, id int64) error {
	if err := s.clothes.Delete(ctx, id); err != nil {
		return mapClothesError(err, id)
	}
	s.publish(ctx, events.EventClothesDeleted, actorID, &domain.Clothes{ID: id})
	return nil
}

func (s *ClothesService) publish(ctx context.Context, eventType events.EventType, actorID int64, item *domain.Clothes) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   events.ClothesChangedPayload{ClothesID: item.ID, Name: item.Name},
	})
}

func mapClothesError(err error, id int64) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("clothes", map[string]any{"id": id})
	}
	return apperrors.NewInternalError(err)
}
