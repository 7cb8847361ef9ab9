// Package profiles stores the 1:1 user profile together with its address.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/loanvault/internal/server/models"
)

type Repository interface {
	Exists(ctx context.Context, userID string) (bool, error)
	// Get returns common.ErrorNotFound when the user has no profile.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Create inserts the address and then the profile. Run it in a
	// transaction; a second profile for the user yields common.ErrorAlreadyExists.
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	// Update overwrites the stored profile and address of p.UserID.
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
}
