package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/clothes-service/internal/config"
)

func TestNewRedis_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	r := NewRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer r.Close()

	assert.NoError(t, r.Ping(context.Background()))
}

func TestRedis_NilPing(t *testing.T) {
	var r *Redis
	assert.Error(t, r.Ping(context.Background()))
	r.Close()
}

func TestPostgres_NilSafe(t *testing.T) {
	var p *Postgres
	assert.Error(t, p.Ping(context.Background()))
	assert.Nil(t, p.PoolHandle())
	p.Close()
}

func TestNewPostgres_RequiresDSN(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingDSN)
}
