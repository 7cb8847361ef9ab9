package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/cryptox"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/auth"
	"github.com/dmitrijs2005/loanvault/internal/server/config"
	"github.com/dmitrijs2005/loanvault/internal/server/events"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/notify"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/repomanager"
)

const unverifiedWarning = "Account not verified"

// TokenPair is the client-facing half of a ledger row.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type SignupInput struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required,max=150"`
	LastName        string `json:"last_name" validate:"required,max=150"`
	TermsAccepted   bool   `json:"terms_accepted" validate:"required"`
}

// AuthResult is returned by Signup and Login. Warning is set for accounts
// that have not verified their email yet.
type AuthResult struct {
	Tokens  TokenPair         `json:"tokens"`
	User    models.PublicUser `json:"user"`
	Warning string            `json:"warning,omitempty"`
}

type superuserInput struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

// SessionService owns the account lifecycle: sign-up, email verification,
// login, token refresh and password reset.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	notifier    notify.Notifier
	publisher   events.Publisher
	logger      logging.Logger
	config      *config.Config
	now         func() time.Time
}

func NewSessionService(db *sql.DB, repomanager repomanager.RepositoryManager, notifier notify.Notifier,
	publisher events.Publisher, logger logging.Logger, config *config.Config) *SessionService {
	return &SessionService{
		db:          db,
		repomanager: repomanager,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
		config:      config,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for reset-token expiry.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// DecideRole promotes the very first account to admin.
func DecideRole(userCount int64) models.Role {
	if userCount == 0 {
		return models.RoleAdmin
	}
	return models.RoleUser
}

func unavailable(err error) error {
	if errors.Is(err, common.ErrorServiceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrorServiceUnavailable, err)
}

func checkPasswordLength(field, password string) error {
	if cryptox.IsPasswordTooLong(password) {
		return common.NewValidationError(field, "password is too long")
	}
	return nil
}

func (s *SessionService) issuePair(ctx context.Context, tx dbx.DBTX, user *models.User) (TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, string(user.Role), []byte(s.config.SecretKey), s.config.AccessTokenValidityDuration)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return TokenPair{}, fmt.Errorf("refresh token: %w", err)
	}

	if _, err := s.repomanager.TokenPairs(tx).Issue(ctx, user.ID, access, refresh, s.config.RefreshTokenValidityDuration); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *SessionService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	in.Email = common.NormalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := checkPasswordLength("password", in.Password); err != nil {
		return nil, err
	}

	_, err := s.repomanager.Users(s.db).GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fail(ctx, s.logger, "signup", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return nil, fail(ctx, s.logger, "signup", err)
	}

	code, err := common.MakeDigitCode(common.VerificationCodeLength)
	if err != nil {
		return nil, fail(ctx, s.logger, "signup", err)
	}

	res, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*AuthResult, error) {
		users := s.repomanager.Users(tx)

		// Two first sign-ups racing must not both see an empty table.
		if err := users.LockTable(ctx); err != nil {
			return nil, err
		}
		count, err := users.Count(ctx)
		if err != nil {
			return nil, err
		}

		user, err := users.Create(ctx, &models.User{
			Email:         in.Email,
			PasswordHash:  hash,
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			TermsAccepted: in.TermsAccepted,
			Role:          DecideRole(count),
		})
		if err != nil {
			return nil, err
		}

		if err := users.SetVerificationCode(ctx, user.ID, code); err != nil {
			return nil, err
		}

		pair, err := s.issuePair(ctx, tx, user)
		if err != nil {
			return nil, err
		}

		if err := s.notifier.SendVerificationCode(ctx, user.Email, user.FirstName, code); err != nil {
			return nil, unavailable(err)
		}

		return &AuthResult{Tokens: pair, User: user.Public(), Warning: unverifiedWarning}, nil
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "signup", err)
	}

	logging.FromContext(ctx, s.logger).Info(ctx, "user signed up", "user_id", res.User.ID, "role", res.User.Role)
	publish(ctx, s.publisher, s.logger, events.Event{
		Type:   events.UserRegistered,
		UserID: res.User.ID,
		Data:   map[string]string{"role": string(res.User.Role)},
	})

	return res, nil
}

func validCode(code string) bool {
	if len(code) != common.VerificationCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *SessionService) VerifyEmail(ctx context.Context, email, code string) error {
	email = common.NormalizeEmail(email)
	code = strings.TrimSpace(code)

	if email == "" {
		return common.NewValidationError("email", "this field is required")
	}
	if !validCode(code) {
		return common.NewValidationError("code", "must be a 6-digit code")
	}

	users := s.repomanager.Users(s.db)

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return fail(ctx, s.logger, "verify email", err)
	}
	if user.IsVerified {
		return common.ErrorAlreadyVerified
	}
	if user.VerificationCode == nil || subtle.ConstantTimeCompare([]byte(*user.VerificationCode), []byte(code)) != 1 {
		return common.ErrorInvalidCode
	}

	// The update re-checks both conditions, so of two concurrent requests
	// with the same code only one verifies the account.
	ok, err := users.MarkVerified(ctx, user.ID, code)
	if err != nil {
		return fail(ctx, s.logger, "verify email", err)
	}
	if !ok {
		current, err := users.GetByID(ctx, user.ID)
		if err != nil {
			return fail(ctx, s.logger, "verify email", err)
		}
		if current.IsVerified {
			return common.ErrorAlreadyVerified
		}
		return common.ErrorInvalidCode
	}

	publish(ctx, s.publisher, s.logger, events.Event{Type: events.UserVerified, UserID: user.ID})
	return nil
}

func (s *SessionService) ResendVerification(ctx context.Context, email string) error {
	email = common.NormalizeEmail(email)
	if email == "" {
		return common.NewValidationError("email", "this field is required")
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)

		user, err := users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user.IsVerified {
			return common.ErrorAlreadyVerified
		}

		code, err := common.MakeDigitCode(common.VerificationCodeLength)
		if err != nil {
			return err
		}
		if err := users.SetVerificationCode(ctx, user.ID, code); err != nil {
			return err
		}

		if err := s.notifier.SendVerificationCode(ctx, user.Email, user.FirstName, code); err != nil {
			return unavailable(err)
		}
		return nil
	})
	if err != nil {
		return fail(ctx, s.logger, "resend verification", err)
	}
	return nil
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, common.NewValidationError("email", "this field is required")
	}
	if password == "" {
		return nil, common.NewValidationError("password", "this field is required")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, fail(ctx, s.logger, "login", err)
	}

	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	pair, err := s.issuePair(ctx, s.db, user)
	if err != nil {
		return nil, fail(ctx, s.logger, "login", err)
	}

	res := &AuthResult{Tokens: pair, User: user.Public()}
	if !user.IsVerified {
		res.Warning = unverifiedWarning
	}
	return res, nil
}

// Logout revokes every session of the user, not only the calling one.
func (s *SessionService) Logout(ctx context.Context, userID string) error {
	if err := s.repomanager.TokenPairs(s.db).RevokeAll(ctx, userID); err != nil {
		return fail(ctx, s.logger, "logout", err)
	}
	return nil
}

// Refresh mints a new access token for the valid pair bound to accessToken.
// The refresh token of the pair is kept.
func (s *SessionService) Refresh(ctx context.Context, accessToken string) (*TokenPair, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, common.NewValidationError("access_token", "this field is required")
	}

	res, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*TokenPair, error) {
		pairs := s.repomanager.TokenPairs(tx)

		pair, err := pairs.FindValid(ctx, accessToken)
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		if err != nil {
			return nil, err
		}

		user, err := s.repomanager.Users(tx).GetByID(ctx, pair.UserID)
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		if err != nil {
			return nil, err
		}

		access, err := auth.GenerateToken(user.ID, string(user.Role), []byte(s.config.SecretKey), s.config.AccessTokenValidityDuration)
		if err != nil {
			return nil, fmt.Errorf("sign access token: %w", err)
		}

		// Rotate only succeeds while the pair still carries accessToken, so a
		// concurrent refresh of the same token loses with ErrInvalidToken.
		if err := pairs.Rotate(ctx, pair.ID, accessToken, access, s.config.RefreshTokenValidityDuration); err != nil {
			return nil, err
		}

		return &TokenPair{AccessToken: access, RefreshToken: pair.RefreshToken}, nil
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "refresh", err)
	}
	return res, nil
}

func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) error {
	email = common.NormalizeEmail(email)
	if email == "" {
		return common.NewValidationError("email", "this field is required")
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)

		user, err := users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		token, err := common.MakeRandHexString(common.ResetTokenSize)
		if err != nil {
			return err
		}
		expiresAt := s.now().Add(s.config.PasswordResetTokenValidity)
		if err := users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
			return err
		}

		link := notify.ResetLink(s.config.FrontendURL, token, user.Email)
		if err := s.notifier.SendPasswordReset(ctx, user.Email, user.FirstName, link); err != nil {
			return unavailable(err)
		}
		return nil
	})
	if err != nil {
		return fail(ctx, s.logger, "request password reset", err)
	}
	return nil
}

// ResetPassword accepts the email either plain or in the encoded form used
// by reset links. On success every session of the user is revoked.
func (s *SessionService) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	email = common.NormalizeEmail(notify.DecodeLinkEmail(strings.TrimSpace(email)))
	token = strings.TrimSpace(token)

	switch {
	case email == "":
		return common.NewValidationError("email", "this field is required")
	case token == "":
		return common.NewValidationError("token", "this field is required")
	case newPassword == "":
		return common.NewValidationError("new_password", "this field is required")
	}
	if err := checkPasswordLength("new_password", newPassword); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fail(ctx, s.logger, "reset password", err)
	}

	var userID string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repomanager.Users(tx)

		user, err := users.GetByEmail(ctx, email)
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		if err != nil {
			return err
		}

		if user.PasswordResetToken == nil ||
			subtle.ConstantTimeCompare([]byte(*user.PasswordResetToken), []byte(token)) != 1 {
			return common.ErrInvalidToken
		}
		if user.PasswordResetExpiresAt == nil || !s.now().Before(*user.PasswordResetExpiresAt) {
			return common.ErrInvalidToken
		}

		if err := users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
		userID = user.ID
		return s.repomanager.TokenPairs(tx).RevokeAll(ctx, user.ID)
	})
	if err != nil {
		return fail(ctx, s.logger, "reset password", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{Type: events.PasswordReset, UserID: userID})
	return nil
}

// Authenticate resolves an access token to its user. The token must carry
// a valid signature and still be bound to a live ledger row.
func (s *SessionService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	if accessToken == "" {
		return nil, common.ErrInvalidToken
	}

	claims, err := auth.ParseToken(accessToken, []byte(s.config.SecretKey))
	if err != nil {
		return nil, err
	}

	pair, err := s.repomanager.TokenPairs(s.db).FindValid(ctx, accessToken)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrInvalidToken
	}
	if err != nil {
		return nil, fail(ctx, s.logger, "authenticate", err)
	}
	if pair.UserID != claims.UserID {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, pair.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrInvalidToken
	}
	if err != nil {
		return nil, fail(ctx, s.logger, "authenticate", err)
	}
	return user, nil
}

func (s *SessionService) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, fail(ctx, s.logger, "me", err)
	}
	pub := user.Public()
	return &pub, nil
}

// CreateSuperuser creates a verified admin without sending email or
// issuing tokens. It backs the admin command line tool.
func (s *SessionService) CreateSuperuser(ctx context.Context, email, password, firstName, lastName string) (*models.PublicUser, error) {
	in := superuserInput{
		Email:     common.NormalizeEmail(email),
		Password:  password,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := checkPasswordLength("password", in.Password); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return nil, fail(ctx, s.logger, "create superuser", err)
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Email:         in.Email,
		PasswordHash:  hash,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		TermsAccepted: true,
		Role:          models.RoleAdmin,
		IsVerified:    true,
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "create superuser", err)
	}

	logging.FromContext(ctx, s.logger).Info(ctx, "superuser created", "user_id", user.ID)
	pub := user.Public()
	return &pub, nil
}
