package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT p.id, p.user_id, p.phone_number, p.date_of_birth, p.monthly_income,
		       p.employment_status, p.employer_name, p.job_title, p.created_at, p.updated_at,
		       a.id, a.street_address, a.city, a.state, a.postal_code, a.country
		FROM profiles p
		JOIN addresses a ON a.id = p.address_id
		WHERE p.user_id = $1
	`

	var (
		p      models.Profile
		status string
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.PhoneNumber, &p.DateOfBirth, &p.MonthlyIncome,
		&status, &p.EmployerName, &p.JobTitle, &p.CreatedAt, &p.UpdatedAt,
		&p.Address.ID, &p.Address.StreetAddress, &p.Address.City, &p.Address.State,
		&p.Address.PostalCode, &p.Address.Country,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.EmploymentStatus = models.EmploymentStatus(status)
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	addrQuery := `
		INSERT INTO addresses (street_address, city, state, postal_code, country)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	a := &p.Address
	if err := r.db.QueryRowContext(ctx, addrQuery,
		a.StreetAddress, a.City, a.State, a.PostalCode, a.Country).Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	profileQuery := `
		INSERT INTO profiles (user_id, address_id, phone_number, date_of_birth, monthly_income,
		                      employment_status, employer_name, job_title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, profileQuery,
		p.UserID, a.ID, p.PhoneNumber, p.DateOfBirth, p.MonthlyIncome,
		string(p.EmploymentStatus), p.EmployerName, p.JobTitle,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	profileQuery := `
		UPDATE profiles
		SET phone_number = $2, date_of_birth = $3, monthly_income = $4,
		    employment_status = $5, employer_name = $6, job_title = $7, updated_at = now()
		WHERE user_id = $1
		RETURNING id, address_id, updated_at
	`
	err := r.db.QueryRowContext(ctx, profileQuery,
		p.UserID, p.PhoneNumber, p.DateOfBirth, p.MonthlyIncome,
		string(p.EmploymentStatus), p.EmployerName, p.JobTitle,
	).Scan(&p.ID, &p.Address.ID, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	addrQuery := `
		UPDATE addresses
		SET street_address = $2, city = $3, state = $4, postal_code = $5, country = $6
		WHERE id = $1
	`
	a := p.Address
	if _, err := r.db.ExecContext(ctx, addrQuery,
		a.ID, a.StreetAddress, a.City, a.State, a.PostalCode, a.Country); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
