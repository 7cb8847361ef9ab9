package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/cardx"
	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/dbx"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/events"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FieldCipher encrypts single card fields. cryptox.FieldCipher implements it.
type FieldCipher interface {
	EncryptField(plaintext string) (string, error)
	DecryptField(encoded string) (string, error)
}

type AddCardInput struct {
	CardType    string `json:"card_type" validate:"required"`
	CardNumber  string `json:"card_number" validate:"required"`
	CVC         string `json:"cvc" validate:"required"`
	ExpiryMonth int    `json:"expiry_month" validate:"required"`
	ExpiryYear  int    `json:"expiry_year" validate:"required"`
	NameOnCard  string `json:"name_on_card" validate:"required,max=100"`
	IsDefault   bool   `json:"is_default"`
}

// UpdateCardInput changes only the fields that are set.
type UpdateCardInput struct {
	ExpiryMonth *int    `json:"expiry_month,omitempty"`
	ExpiryYear  *int    `json:"expiry_year,omitempty"`
	NameOnCard  *string `json:"name_on_card,omitempty" validate:"omitnil,max=100"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

// CardService stores payment cards encrypted and keeps at most one default
// card per user.
type CardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      FieldCipher
	publisher   events.Publisher
	logger      logging.Logger
	now         func() time.Time
}

func NewCardService(db *sql.DB, repomanager repomanager.RepositoryManager, cipher FieldCipher,
	publisher events.Publisher, logger logging.Logger) *CardService {
	return &CardService{
		db:          db,
		repomanager: repomanager,
		cipher:      cipher,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for expiry checks.
func (s *CardService) WithClock(now func() time.Time) *CardService {
	s.now = now
	return s
}

// cardID rejects ids that cannot exist so they never reach the database.
func cardID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", common.ErrorNotFound
	}
	return parsed.String(), nil
}

func (s *CardService) Add(ctx context.Context, userID string, in AddCardInput) (*models.MaskedCard, error) {
	in.NameOnCard = strings.TrimSpace(in.NameOnCard)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	cardType, err := cardx.ParseType(in.CardType)
	if err != nil {
		return nil, err
	}
	number := cardx.NormalizeNumber(in.CardNumber)
	if err := cardx.ValidateNumber(cardType, number); err != nil {
		return nil, err
	}
	cvc := strings.TrimSpace(in.CVC)
	if err := cardx.ValidateCVC(cardType, cvc); err != nil {
		return nil, err
	}
	if err := cardx.ValidateExpiry(in.ExpiryMonth, in.ExpiryYear, s.now()); err != nil {
		return nil, err
	}

	encNumber, err := s.cipher.EncryptField(number)
	if err != nil {
		return nil, fail(ctx, s.logger, "add card", err)
	}
	encCVC, err := s.cipher.EncryptField(cvc)
	if err != nil {
		return nil, fail(ctx, s.logger, "add card", err)
	}

	card, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.CreditCard, error) {
		if err := s.repomanager.Users(tx).LockForUpdate(ctx, userID); err != nil {
			return nil, err
		}

		repo := s.repomanager.Cards(tx)
		if in.IsDefault {
			if err := repo.ClearDefault(ctx, userID); err != nil {
				return nil, err
			}
		}

		return repo.Create(ctx, &models.CreditCard{
			UserID:          userID,
			CardType:        cardType,
			EncryptedNumber: encNumber,
			EncryptedCVC:    encCVC,
			ExpiryMonth:     in.ExpiryMonth,
			ExpiryYear:      in.ExpiryYear,
			NameOnCard:      in.NameOnCard,
			IsDefault:       in.IsDefault,
		})
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "add card", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:   events.CardAdded,
		UserID: userID,
		Data:   map[string]string{"card_id": card.ID, "card_type": string(card.CardType)},
	})

	masked := maskedView(card, number)
	return &masked, nil
}

func maskedView(card *models.CreditCard, number string) models.MaskedCard {
	return models.MaskedCard{
		ID:           card.ID,
		CardType:     card.CardType,
		MaskedNumber: cardx.Mask(number),
		ExpiryMonth:  card.ExpiryMonth,
		ExpiryYear:   card.ExpiryYear,
		NameOnCard:   card.NameOnCard,
		IsDefault:    card.IsDefault,
		CreatedAt:    card.CreatedAt,
	}
}

// Mask decrypts the stored number and returns the client view of card.
func (s *CardService) Mask(card *models.CreditCard) (models.MaskedCard, error) {
	number, err := s.cipher.DecryptField(card.EncryptedNumber)
	if err != nil {
		return models.MaskedCard{}, err
	}
	return maskedView(card, number), nil
}

// List returns the user's cards, default first, then newest first.
func (s *CardService) List(ctx context.Context, userID string) ([]models.MaskedCard, error) {
	cards, err := s.repomanager.Cards(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(ctx, s.logger, "list cards", err)
	}

	result := make([]models.MaskedCard, 0, len(cards))
	for i := range cards {
		m, err := s.Mask(&cards[i])
		if err != nil {
			return nil, fail(ctx, s.logger, "list cards", err)
		}
		result = append(result, m)
	}
	return result, nil
}

// SetDefault makes the card the only default card of its owner.
func (s *CardService) SetDefault(ctx context.Context, id, userID string) error {
	id, err := cardID(id)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).LockForUpdate(ctx, userID); err != nil {
			return err
		}

		repo := s.repomanager.Cards(tx)
		if _, err := repo.GetOwned(ctx, id, userID); err != nil {
			return err
		}
		if err := repo.ClearDefault(ctx, userID); err != nil {
			return err
		}
		return repo.SetDefault(ctx, id, userID)
	})
	if err != nil {
		return fail(ctx, s.logger, "set default card", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:   events.CardDefaultChanged,
		UserID: userID,
		Data:   map[string]string{"card_id": id},
	})
	return nil
}

// Update changes expiry, name on card or the default flag. Clearing the flag
// of the default card leaves the user without a default.
func (s *CardService) Update(ctx context.Context, id, userID string, in UpdateCardInput) (*models.MaskedCard, error) {
	id, err := cardID(id)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	card, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.CreditCard, error) {
		if err := s.repomanager.Users(tx).LockForUpdate(ctx, userID); err != nil {
			return nil, err
		}

		repo := s.repomanager.Cards(tx)
		card, err := repo.GetOwned(ctx, id, userID)
		if err != nil {
			return nil, err
		}

		if in.ExpiryMonth != nil || in.ExpiryYear != nil {
			if in.ExpiryMonth != nil {
				card.ExpiryMonth = *in.ExpiryMonth
			}
			if in.ExpiryYear != nil {
				card.ExpiryYear = *in.ExpiryYear
			}
			if err := cardx.ValidateExpiry(card.ExpiryMonth, card.ExpiryYear, s.now()); err != nil {
				return nil, err
			}
		}
		if in.NameOnCard != nil {
			name := strings.TrimSpace(*in.NameOnCard)
			if name == "" {
				return nil, common.NewValidationError("name_on_card", "this field is required")
			}
			card.NameOnCard = name
		}
		if in.IsDefault != nil {
			if *in.IsDefault && !card.IsDefault {
				if err := repo.ClearDefault(ctx, userID); err != nil {
					return nil, err
				}
			}
			card.IsDefault = *in.IsDefault
		}

		return repo.Update(ctx, card)
	})
	if err != nil {
		return nil, fail(ctx, s.logger, "update card", err)
	}

	masked, err := s.Mask(card)
	if err != nil {
		return nil, fail(ctx, s.logger, "update card", err)
	}
	return &masked, nil
}

func (s *CardService) Delete(ctx context.Context, id, userID string) error {
	id, err := cardID(id)
	if err != nil {
		return err
	}

	if err := s.repomanager.Cards(s.db).Delete(ctx, id, userID); err != nil {
		return fail(ctx, s.logger, "delete card", err)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:   events.CardDeleted,
		UserID: userID,
		Data:   map[string]string{"card_id": id},
	})
	return nil
}
