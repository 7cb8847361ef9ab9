package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/events"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// monthly_income is numeric(10,2) upstream.
var maxIncome = decimal.New(1, 8)

type AddressInput struct {
	StreetAddress string `json:"street_address" validate:"required,max=255"`
	City          string `json:"city" validate:"required,max=100"`
	State         string `json:"state" validate:"required,max=100"`
	PostalCode    string `json:"postal_code" validate:"required,max=20"`
	Country       string `json:"country" validate:"required,max=100"`
}

// ProfileInput is used for both create and update. On update empty fields
// keep their stored values. MonthlyIncome is a decimal string with up to
// two fraction digits.
type ProfileInput struct {
	PhoneNumber      string       `json:"phone_number" validate:"required,max=20"`
	DateOfBirth      string       `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	MonthlyIncome    string       `json:"monthly_income" validate:"required"`
	EmploymentStatus string       `json:"employment_status" validate:"required,oneof=employed self_employed unemployed retired"`
	EmployerName     string       `json:"employer_name" validate:"max=255"`
	JobTitle         string       `json:"job_title" validate:"max=255"`
	Address          AddressInput `json:"address"`
}

// Lookup is the result of a profile query: either a profile or nothing.
type Lookup struct {
	Profile *models.Profile
	Found   bool
}

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   events.Publisher
	logger      logging.Logger
	now         func() time.Time
}

func NewProfileService(db *sql.DB, repomanager repomanager.RepositoryManager,
	publisher events.Publisher, logger logging.Logger) *ProfileService {
	return &ProfileService{
		db:          db,
		repomanager: repomanager,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ProfileService) WithClock(now func() time.Time) *ProfileService {
	s.now = now
	return s
}

// ParseIncome converts a decimal amount into minor units.
func ParseIncome(v string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return 0, common.NewValidationError("monthly_income", "must be a number")
	}
	if d.IsNegative() {
		return 0, common.NewValidationError("monthly_income", "must not be negative")
	}
	if !d.Equal(d.Round(2)) {
		return 0, common.NewValidationError("monthly_income", "must have at most 2 decimal places")
	}
	if d.GreaterThanOrEqual(maxIncome) {
		return 0, common.NewValidationError("monthly_income", "is too large")
	}
	return d.Shift(2).IntPart(), nil
}

// FormatIncome renders minor units as a fixed two-decimal amount.
func FormatIncome(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func trimInput(in ProfileInput) ProfileInput {
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	in.EmploymentStatus = strings.TrimSpace(in.EmploymentStatus)
	in.EmployerName = strings.TrimSpace(in.EmployerName)
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	a := &in.Address
	a.StreetAddress = strings.TrimSpace(a.StreetAddress)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)
	return in
}

// build validates in and turns it into a profile for userID.
func (s *ProfileService) build(userID string, in ProfileInput) (*models.Profile, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	dob, err := time.Parse(dateLayout, in.DateOfBirth)
	if err != nil {
		return nil, common.NewValidationError("date_of_birth", "must be a date in YYYY-MM-DD format")
	}
	if !dob.Before(s.now()) {
		return nil, common.NewValidationError("date_of_birth", "must be in the past")
	}

	income, err := ParseIncome(in.MonthlyIncome)
	if err != nil {
		return nil, err
	}

	status := models.EmploymentStatus(in.EmploymentStatus)
	if status.RequiresEmployer() {
		if in.EmployerName == "" {
			return nil, common.NewValidationError("employer_name", "required when employed or self-employed")
		}
		if in.JobTitle == "" {
			return nil, common.NewValidationError("job_title", "required when employed or self-employed")
		}
	}

	return &models.Profile{
		UserID:           userID,
		PhoneNumber:      in.PhoneNumber,
		DateOfBirth:      dob,
		MonthlyIncome:    income,
		EmploymentStatus: status,
		EmployerName:     in.EmployerName,
		JobTitle:         in.JobTitle,
		Address: models.Address{
			StreetAddress: in.Address.StreetAddress,
			City:          in.Address.City,
			State:         in.Address.State,
			PostalCode:    in.Address.PostalCode,
			Country:       in.Address.Country,
		},
	}, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (Lookup, error) {
	repo := s.repomanager.Profiles(s.db)

	exists, err := repo.Exists(ctx, userID)
	if err != nil {
		return Lookup{}, fail(ctx, s.logger, "get profile", err)
	}
	if !exists {
		return Lookup{}, nil
	}

	p, err := repo.Get(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return Lookup{}, nil
	}
	if err != nil {
		return Lookup{}, fail(ctx, s.logger, "get profile", err)
	}
	return Lookup{Profile: p, Found: true}, nil
}

func (s *ProfileService) Create(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	p, err := s.build(userID, trimInput(in))
	if err != nil {
		return nil, err
	}

	created, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Profile, error) {
		repo := s.repomanager.Profiles(tx)

		exists, err := repo.Exists(ctx, userID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.ErrorAlreadyExists
		}
		return repo.Create(ctx, p)
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "create profile", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{Type: events.ProfileCreated, UserID: userID})
	return created, nil
}

// merge fills empty fields of in from the stored profile.
func merge(stored *models.Profile, in ProfileInput) ProfileInput {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}

	in.PhoneNumber = pick(in.PhoneNumber, stored.PhoneNumber)
	in.DateOfBirth = pick(in.DateOfBirth, stored.DateOfBirth.Format(dateLayout))
	in.MonthlyIncome = pick(in.MonthlyIncome, FormatIncome(stored.MonthlyIncome))
	in.EmploymentStatus = pick(in.EmploymentStatus, string(stored.EmploymentStatus))
	in.EmployerName = pick(in.EmployerName, stored.EmployerName)
	in.JobTitle = pick(in.JobTitle, stored.JobTitle)

	a, sa := &in.Address, stored.Address
	a.StreetAddress = pick(a.StreetAddress, sa.StreetAddress)
	a.City = pick(a.City, sa.City)
	a.State = pick(a.State, sa.State)
	a.PostalCode = pick(a.PostalCode, sa.PostalCode)
	a.Country = pick(a.Country, sa.Country)
	return in
}

func (s *ProfileService) Update(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	in = trimInput(in)

	updated, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Profile, error) {
		repo := s.repomanager.Profiles(tx)

		stored, err := repo.Get(ctx, userID)
		if err != nil {
			return nil, err
		}

		p, err := s.build(userID, merge(stored, in))
		if err != nil {
			return nil, err
		}
		p.CreatedAt = stored.CreatedAt
		return repo.Update(ctx, p)
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "update profile", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{Type: events.ProfileUpdated, UserID: userID})
	return updated, nil
}
