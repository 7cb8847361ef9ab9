package tokenpairs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
)

// PostgresRepository implements the ledger over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx). Expiry arithmetic uses the application clock.
type PostgresRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, now: time.Now}
}

// WithClock replaces the clock used for expiry arithmetic.
func (r *PostgresRepository) WithClock(now func() time.Time) *PostgresRepository {
	r.now = now
	return r
}

func (r *PostgresRepository) Issue(ctx context.Context, userID, accessToken, refreshToken string, lifetime time.Duration) (*models.TokenPair, error) {
	query := `
		INSERT INTO token_pairs (user_id, access_token, refresh_token, created_at, expires_at, revoked)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id
	`

	now := r.now()
	pair := &models.TokenPair{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(lifetime),
	}

	if err := r.db.QueryRowContext(ctx, query, userID, accessToken, refreshToken, pair.CreatedAt, pair.ExpiresAt).Scan(&pair.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return pair, nil
}

func (r *PostgresRepository) FindValid(ctx context.Context, accessToken string) (*models.TokenPair, error) {
	query := `
		SELECT id, user_id, access_token, refresh_token, created_at, expires_at, revoked
		FROM token_pairs
		WHERE access_token = $1 AND revoked = FALSE AND expires_at > $2
	`

	p := &models.TokenPair{}
	err := r.db.QueryRowContext(ctx, query, accessToken, r.now()).
		Scan(&p.ID, &p.UserID, &p.AccessToken, &p.RefreshToken, &p.CreatedAt, &p.ExpiresAt, &p.Revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Rotate(ctx context.Context, pairID, oldAccess, newAccess string, lifetime time.Duration) error {
	query := `
		UPDATE token_pairs
		SET access_token = $3, expires_at = $4
		WHERE id = $1 AND access_token = $2 AND revoked = FALSE AND expires_at > $5
	`

	now := r.now()
	res, err := r.db.ExecContext(ctx, query, pairID, oldAccess, newAccess, now.Add(lifetime), now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrInvalidToken
	}
	return nil
}

func (r *PostgresRepository) RevokeAll(ctx context.Context, userID string) error {
	query := `
		DELETE FROM token_pairs
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
