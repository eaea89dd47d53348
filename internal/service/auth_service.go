package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/clothes-service/internal/auth"
	"github.com/spec-kit/clothes-service/internal/domain"
	"github.com/spec-kit/clothes-service/internal/events"
	"github.com/spec-kit/clothes-service/internal/repository"
	apperrors "github.com/spec-kit/clothes-service/pkg/util"
)

// MsgInvalidCredentials is the single login failure message; unknown email
// and wrong password are indistinguishable.
const MsgInvalidCredentials = "invalid credentials"

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    *string
	Role     string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	hasher     *auth.Hasher
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger

	decoyOnce sync.Once
	decoy     string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Hasher     *auth.Hasher
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		hasher:     deps.Hasher,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Register creates a new account and returns it with a fresh session.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, domain.Session, error) {
	fullName, err := domain.NormalizeFullName(in.FullName)
	if err != nil {
		msg := "Full Name must be at least two names"
		if errors.Is(err, domain.ErrFullNameTooLong) {
			msg = fmt.Sprintf("Full Name must be at most %d characters", domain.MaxFullNameLength)
		}
		return nil, domain.Session{}, apperrors.NewValidationError(msg,
			map[string]any{"full_name": err.Error()})
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, domain.Session{}, apperrors.NewValidationError("unknown role",
			map[string]any{"role": in.Role})
	}
	email := normalizeEmail(in.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.Session{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, domain.Session{}, apperrors.NewInternalError(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, domain.Session{}, apperrors.NewValidationError("validation failed",
				map[string]any{"password": fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes)})
		}
		return nil, domain.Session{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Phone:        in.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Session{}, apperrors.NewConflict("email already registered", nil)
		}
		return nil, domain.Session{}, apperrors.NewInternalError(err)
	}

	session, err := s.issue(user.ID)
	if err != nil {
		return nil, domain.Session{}, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		ActorID: user.ID,
		Payload: events.UserRegisteredPayload{UserID: user.ID, Role: user.Role},
	})
	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, session, nil
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Unknown emails pay for one bcrypt comparison like a bad password.
			s.hasher.Verify(password, s.decoyHash())
			return nil, domain.Session{}, apperrors.NewUnauthorizedCause(MsgInvalidCredentials, auth.ErrCredentialMismatch)
		}
		return nil, domain.Session{}, apperrors.NewInternalError(err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.Session{}, apperrors.NewUnauthorizedCause(MsgInvalidCredentials, auth.ErrCredentialMismatch)
	}

	session, err := s.issue(user.ID)
	if err != nil {
		return nil, domain.Session{}, err
	}
	return user, session, nil
}

func (s *AuthService) issue(userID int64) (domain.Session, error) {
	token, exp, err := s.tokens.Issue(userID)
	if err != nil {
		return domain.Session{}, apperrors.NewInternalError(err)
	}
	return domain.Session{Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) decoyHash() string {
	s.decoyOnce.Do(func() {
		s.decoy, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.decoy
}
