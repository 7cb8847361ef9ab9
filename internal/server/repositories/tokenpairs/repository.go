// Package tokenpairs declares the token ledger: issued refresh/access token
// pairs, their validity window and revocation.
package tokenpairs

import (
	"context"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/server/models"
)

// Repository persists token pairs. A pair is valid while it is not revoked
// and its expiry lies in the future.
type Repository interface {
	// Issue stores a new pair expiring at now+lifetime.
	Issue(ctx context.Context, userID, accessToken, refreshToken string, lifetime time.Duration) (*models.TokenPair, error)

	// FindValid returns the valid pair bound to accessToken. Revoked and
	// expired pairs are reported as common.ErrorNotFound.
	FindValid(ctx context.Context, accessToken string) (*models.TokenPair, error)

	// Rotate swaps oldAccess for newAccess and moves the expiry to
	// now+lifetime, provided the pair is still valid and still bound to
	// oldAccess. Otherwise it returns common.ErrInvalidToken. The refresh
	// token and revoked flag stay untouched.
	Rotate(ctx context.Context, pairID, oldAccess, newAccess string, lifetime time.Duration) error

	// RevokeAll removes every pair owned by userID.
	RevokeAll(ctx context.Context, userID string) error
}
