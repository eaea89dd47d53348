package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clothes-service/internal/domain"
	apperrors "github.com/spec-kit/clothes-service/pkg/util"
)

// Principal represents the authenticated caller.
type Principal struct {
	User      *domain.User
	ExpiresAt time.Time
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*Principal)
	return principal, ok && principal != nil && principal.User != nil
}

// RejectionRecorder counts authentication and authorization rejections by reason.
type RejectionRecorder interface {
	RecordAuthRejection(reason string)
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	resolver *IdentityResolver
	recorder RejectionRecorder
}

// NewAuthMiddleware constructs middleware. recorder may be nil.
func NewAuthMiddleware(tokens *TokenManager, resolver *IdentityResolver, recorder RejectionRecorder) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, resolver: resolver, recorder: recorder}
}

// Handle enforces authentication for protected routes. On success the
// principal is threaded to downstream handlers through c.UserContext().
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return m.unauthorized(c, "missing_credentials", MsgMissingCredentials, nil)
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			return m.unauthorized(c, "expired_token", MsgExpiredToken, err)
		}
		return m.unauthorized(c, "invalid_token", MsgInvalidToken, err)
	}

	user, err := m.resolver.Resolve(c.UserContext(), claims)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return m.unauthorized(c, "user_not_found", MsgInvalidToken, err)
		}
		return apperrors.NewInternalError(err)
	}

	principal := &Principal{User: user}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	c.SetUserContext(WithPrincipal(c.UserContext(), principal))
	return c.Next()
}

func (m *AuthMiddleware) unauthorized(c *fiber.Ctx, reason, message string, cause error) error {
	if m.recorder != nil {
		m.recorder.RecordAuthRejection(reason)
	}
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return apperrors.NewUnauthorizedCause(message, cause)
}

// bearerToken extracts the credentials from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	scheme, credentials, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	credentials = strings.TrimSpace(credentials)
	if credentials == "" {
		return "", false
	}
	return credentials, true
}
