package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oktarian/shopstock/internal/domain/repository"
	"github.com/oktarian/shopstock/pkg/helpers"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. The single message is deliberate: callers must not be
	// able to tell which of the two failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnavailable covers backend/connectivity failures. Retryable; never
	// mixed up with a credential rejection.
	ErrUnavailable = errors.New("transient error")
)

// AuthResult is the identity handed back to the presentation layer after a
// successful verification.
type AuthResult struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthService verifies credentials against stored user records. It is
// read-only: nothing in this service ever writes to the store.
type AuthService struct {
	Repo    repository.UserRepository
	Matcher helpers.CredentialMatcher
	Logger  *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, matcher helpers.CredentialMatcher, logger *logrus.Logger) *AuthService {
	if matcher == nil {
		matcher = helpers.PlainMatcher{}
	}
	return &AuthService{Repo: repo, Matcher: matcher, Logger: logger}
}

// Verify looks up the user by exact (trimmed) email and compares the stored
// credential through the configured matcher. Input syntax checks (email
// shape, password length) belong to the transport layer and must have
// happened before this call.
func (s *AuthService) Verify(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("user lookup failed")
		}
		return nil, ErrUnavailable
	}

	if !s.Matcher.Matches(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return &AuthResult{Name: u.DisplayName(), Email: email}, nil
}
