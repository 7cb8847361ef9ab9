// Package users declares the credential store: account identity, password
// hash, email verification state and password-reset tokens.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills ID and timestamps. A duplicate email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)

	// LockTable blocks concurrent inserts until the surrounding transaction
	// ends. It must run inside a transaction.
	LockTable(ctx context.Context) error
	// LockForUpdate row-locks the user until the surrounding transaction ends.
	LockForUpdate(ctx context.Context, id string) error

	SetVerificationCode(ctx context.Context, id string, code string) error
	// MarkVerified verifies the user only while it is unverified and code is
	// the pending verification code. It reports whether a row was updated.
	MarkVerified(ctx context.Context, id string, code string) (bool, error)
	SetResetToken(ctx context.Context, id string, token string, expiresAt time.Time) error
	// UpdatePassword replaces the hash and clears any pending reset token.
	UpdatePassword(ctx context.Context, id string, hash string) error
}
