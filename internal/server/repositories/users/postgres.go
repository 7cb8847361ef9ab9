package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const selectColumns = `id, email, password_hash, first_name, last_name, terms_accepted, role,
		       is_verified, verification_code, password_reset_token, password_reset_expires_at,
		       created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, terms_accepted, role, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.TermsAccepted, string(user.Role), user.IsVerified,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u         models.User
		role      string
		code      sql.NullString
		reset     sql.NullString
		resetTill sql.NullTime
	)

	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.TermsAccepted, &role, &u.IsVerified, &code, &reset, &resetTill,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	u.Role = models.Role(role)
	if code.Valid {
		u.VerificationCode = &code.String
	}
	if reset.Valid {
		u.PasswordResetToken = &reset.String
	}
	if resetTill.Valid {
		u.PasswordResetExpiresAt = &resetTill.Time
	}
	return &u, nil
}

// GetByEmail expects an already normalized (lowercased) email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + selectColumns + `
		FROM users
		WHERE email = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + selectColumns + `
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) LockTable(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) LockForUpdate(ctx context.Context, id string) error {
	query := `
		SELECT id FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var got string
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// exec runs an UPDATE that must touch exactly one user row.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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

func (r *PostgresRepository) SetVerificationCode(ctx context.Context, id string, code string) error {
	return r.exec(ctx, `
		UPDATE users SET verification_code = $2, updated_at = now()
		WHERE id = $1
	`, id, code)
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, id string, code string) (bool, error) {
	query := `
		UPDATE users SET is_verified = TRUE, verification_code = NULL, updated_at = now()
		WHERE id = $1 AND NOT is_verified AND verification_code = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, code)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, id string, token string, expiresAt time.Time) error {
	return r.exec(ctx, `
		UPDATE users SET password_reset_token = $2, password_reset_expires_at = $3, updated_at = now()
		WHERE id = $1
	`, id, token, expiresAt)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	return r.exec(ctx, `
		UPDATE users SET password_hash = $2, password_reset_token = NULL,
		       password_reset_expires_at = NULL, updated_at = now()
		WHERE id = $1
	`, id, hash)
}
