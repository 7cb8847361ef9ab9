package cards

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/loanvault/internal/cardx"
	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
)

const selectColumns = `id, user_id, card_type, encrypted_number, encrypted_cvc,
		       expiry_month, expiry_year, name_on_card, is_default, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error) {
	query := `
		INSERT INTO credit_cards (user_id, card_type, encrypted_number, encrypted_cvc,
		                          expiry_month, expiry_year, name_on_card, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		card.UserID, string(card.CardType), card.EncryptedNumber, card.EncryptedCVC,
		card.ExpiryMonth, card.ExpiryYear, card.NameOnCard, card.IsDefault,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*models.CreditCard, error) {
	var (
		c        models.CreditCard
		cardType string
	)
	if err := row.Scan(&c.ID, &c.UserID, &cardType, &c.EncryptedNumber, &c.EncryptedCVC,
		&c.ExpiryMonth, &c.ExpiryYear, &c.NameOnCard, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CardType = cardx.Type(cardType)
	return &c, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.CreditCard, error) {
	query := `SELECT ` + selectColumns + `
		FROM credit_cards
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.CreditCard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, cardID, userID string) (*models.CreditCard, error) {
	query := `SELECT ` + selectColumns + `
		FROM credit_cards
		WHERE id = $1 AND user_id = $2
	`

	c, err := scanCard(r.db.QueryRowContext(ctx, query, cardID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ClearDefault(ctx context.Context, userID string) error {
	query := `
		UPDATE credit_cards SET is_default = FALSE, updated_at = now()
		WHERE user_id = $1 AND is_default
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetDefault(ctx context.Context, cardID, userID string) error {
	query := `
		UPDATE credit_cards SET is_default = TRUE, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	return r.execOwned(ctx, query, cardID, userID)
}

func (r *PostgresRepository) Update(ctx context.Context, card *models.CreditCard) (*models.CreditCard, error) {
	query := `
		UPDATE credit_cards
		SET expiry_month = $3, expiry_year = $4, name_on_card = $5, is_default = $6, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		card.ID, card.UserID, card.ExpiryMonth, card.ExpiryYear, card.NameOnCard, card.IsDefault,
	).Scan(&card.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, cardID, userID string) error {
	query := `
		DELETE FROM credit_cards
		WHERE id = $1 AND user_id = $2
	`
	return r.execOwned(ctx, query, cardID, userID)
}

func (r *PostgresRepository) execOwned(ctx context.Context, query, cardID, userID string) error {
	res, err := r.db.ExecContext(ctx, query, cardID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
