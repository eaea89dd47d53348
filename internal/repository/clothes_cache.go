package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/clothes-service/internal/domain"
)

const (
	clothesListKey = "catalog:clothes:list"
	clothesGenKey  = "catalog:clothes:gen"
)

var (
	// ErrCacheMiss means the cache holds no entry for the key.
	ErrCacheMiss = errors.New("cache miss")
	// ErrStaleFill means the catalog changed after the caller read the
	// generation, so the fill was dropped.
	ErrStaleFill = errors.New("stale cache fill")
)

// ClothesCache stores the serialized catalog listing. Fills are guarded by a
// generation counter that every Invalidate bumps: read Generation before
// querying the store and pass it to SetList.
type ClothesCache interface {
	GetList(ctx context.Context) ([]domain.Clothes, error)
	Generation(ctx context.Context) (int64, error)
	SetList(ctx context.Context, gen int64, items []domain.Clothes) error
	Invalidate(ctx context.Context) error
}

type redisClothesCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClothesCache returns a Redis-backed cache. A zero ttl keeps entries until invalidated.
func NewClothesCache(client *redis.Client, ttl time.Duration) ClothesCache {
	return &redisClothesCache{client: client, ttl: ttl}
}

func (c *redisClothesCache) GetList(ctx context.Context) ([]domain.Clothes, error) {
	raw, err := c.client.Get(ctx, clothesListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	var items []domain.Clothes
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *redisClothesCache) Generation(ctx context.Context) (int64, error) {
	return readGeneration(ctx, c.client)
}

func (c *redisClothesCache) SetList(ctx context.Context, gen int64, items []domain.Clothes) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return ErrStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, clothesListKey, raw, c.ttl)
			return nil
		})
		return err
	}, clothesGenKey)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStaleFill
	}
	return err
}

func (c *redisClothesCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, clothesGenKey)
		pipe.Del(ctx, clothesListKey)
		return nil
	})
	return err
}

func readGeneration(ctx context.Context, cmd redis.Cmdable) (int64, error) {
	gen, err := cmd.Get(ctx, clothesGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
