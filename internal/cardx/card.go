// Package cardx validates and redacts payment card data: brand-specific
// lengths, the Luhn checksum, expiry dates and masking.
package cardx

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
)

type Type string

const (
	Visa       Type = "visa"
	Mastercard Type = "mastercard"
	Verve      Type = "verve"
	Amex       Type = "amex"
)

// ParseType accepts a card brand in any letter case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Visa, Mastercard, Verve, Amex:
		return t, nil
	}
	return "", common.NewValidationError("card_type", "must be one of visa, mastercard, verve, amex")
}

// NumberLength is the number of digits a card of this brand carries.
func (t Type) NumberLength() int {
	if t == Amex {
		return 15
	}
	return 16
}

// CVCLength is the number of digits in the brand's security code.
func (t Type) CVCLength() int {
	if t == Amex {
		return 4
	}
	return 3
}

// NormalizeNumber drops the spaces and dashes people type between groups.
func NormalizeNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(number))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Luhn reports whether the digit string passes the mod-10 checksum: starting
// from the rightmost digit, every second digit is doubled (minus 9 when the
// result exceeds 9) and the total must be divisible by 10.
func Luhn(number string) bool {
	if !isDigits(number) {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidateNumber checks an already normalized card number against its brand.
func ValidateNumber(t Type, number string) error {
	if !isDigits(number) {
		return common.NewValidationError("card_number", "must contain only digits")
	}
	if len(number) != t.NumberLength() {
		if t == Amex {
			return common.NewValidationError("card_number", "american express cards must be 15 digits")
		}
		return common.NewValidationError("card_number", "must be 16 digits")
	}
	if !Luhn(number) {
		return common.NewValidationError("card_number", "invalid card number")
	}
	return nil
}

// ValidateCVC checks the security code against the brand.
func ValidateCVC(t Type, cvc string) error {
	if !isDigits(cvc) {
		return common.NewValidationError("cvc", "must contain only digits")
	}
	if len(cvc) != t.CVCLength() {
		if t == Amex {
			return common.NewValidationError("cvc", "american express cvc must be 4 digits")
		}
		return common.NewValidationError("cvc", "must be 3 digits")
	}
	return nil
}

// ValidateExpiry rejects months outside 1..12 and any (year, month) earlier
// than the month containing now. A card expiring this month is still valid.
func ValidateExpiry(month, year int, now time.Time) error {
	if month < 1 || month > 12 {
		return common.NewValidationError("expiry_month", "must be between 1 and 12")
	}
	curYear, curMonth := now.Year(), int(now.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return common.NewValidationError("expiry", "card has expired")
	}
	if year > curYear+MaxExpiryYears {
		return common.NewValidationError("expiry_year", fmt.Sprintf("must be at most %d years ahead", MaxExpiryYears))
	}
	return nil
}

// MaxExpiryYears bounds how far in the future an expiry year may lie.
const MaxExpiryYears = 20

// Mask replaces every character but the last four with '*'.
func Mask(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + LastFour(number)
}

// LastFour returns the trailing four characters of number.
func LastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
