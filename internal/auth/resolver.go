package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/clothes-service/internal/domain"
	"github.com/spec-kit/clothes-service/internal/repository"
)

// UserReader is the slice of the user store the resolver needs.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// IdentityResolver loads the user a verified token vouches for.
type IdentityResolver struct {
	users UserReader
}

// NewIdentityResolver constructs a resolver over the user store.
func NewIdentityResolver(users UserReader) *IdentityResolver {
	return &IdentityResolver{users: users}
}

// Resolve reads the claim's subject from the store on every call.
// A missing row is ErrUserNotFound; any other failure is returned wrapped.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *Claims) (*domain.User, error) {
	user, err := r.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", claims.Subject, err)
	}
	return user, nil
}
