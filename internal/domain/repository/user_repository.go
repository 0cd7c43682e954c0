package repository

import (
	"context"
	"errors"

	"github.com/oktarian/shopstock/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a lookup matches no document.
// It is a normal outcome for callers that branch on existence, not a failure.
var ErrNotFound = errors.New("not found")

// UserRepository defines the read-only lookup the account domain needs.
type UserRepository interface {
	// FindByEmail returns the first user whose email field exactly equals
	// the given email (case-sensitive, limit one).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
