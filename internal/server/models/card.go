package models

import (
	"time"

	"github.com/dmitrijs2005/loanvault/internal/cardx"
)

// CreditCard is a stored card. Number and CVC hold ciphertext produced by
// cryptox.FieldCipher, never plaintext.
type CreditCard struct {
	ID              string
	UserID          string
	CardType        cardx.Type
	EncryptedNumber string
	EncryptedCVC    string
	ExpiryMonth     int
	ExpiryYear      int
	NameOnCard      string
	IsDefault       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MaskedCard is what clients see of a card.
type MaskedCard struct {
	ID           string     `json:"id"`
	CardType     cardx.Type `json:"card_type"`
	MaskedNumber string     `json:"masked_number"`
	ExpiryMonth  int        `json:"expiry_month"`
	ExpiryYear   int        `json:"expiry_year"`
	NameOnCard   string     `json:"name_on_card"`
	IsDefault    bool       `json:"is_default"`
	CreatedAt    time.Time  `json:"created_at"`
}
