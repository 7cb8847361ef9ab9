// Package cards persists encrypted credit cards. It never sees plaintext
// card numbers; callers encrypt before Create.
package cards

import (
	"context"

	"github.com/dmitrijs2005/loanvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error)
	// ListByUser returns the user's cards, default first, then newest first.
	ListByUser(ctx context.Context, userID string) ([]models.CreditCard, error)
	// GetOwned returns common.ErrorNotFound when the card does not exist or
	// belongs to someone else.
	GetOwned(ctx context.Context, cardID, userID string) (*models.CreditCard, error)
	// ClearDefault unsets the default flag on every card of the user.
	ClearDefault(ctx context.Context, userID string) error
	SetDefault(ctx context.Context, cardID, userID string) error
	// Update stores the expiry, name and default flag of card. Number, CVC
	// and type are immutable.
	Update(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error)
	Delete(ctx context.Context, cardID, userID string) error
}
