package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no account. Infrastructure
// failures are returned as their own errors and must never be folded into
// this sentinel: callers decide per flow whether absence is a 403 or a
// plain boolean, while a store fault is always fatal for the request.
var ErrNotFound = errors.New("account: not found")

// Store is the persistence boundary for accounts.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByUsername(ctx context.Context, username string) (*Account, error)

	// SetVerified marks the account verified. Setting it twice is a no-op;
	// the flag is monotonic and nothing in this service resets it.
	SetVerified(ctx context.Context, id uuid.UUID) error
}
