package cardx

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuhn(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"5555555555554444",
		"378282246310005",
		"6011111111111117",
		"79927398713",
		"0",
	}
	for _, n := range valid {
		assert.True(t, Luhn(n), n)
	}

	invalid := []string{
		"4111111111111112",
		"79927398710",
		"378282246310006",
		"",
		"4111-1111",
		"abcd",
	}
	for _, n := range invalid {
		assert.False(t, Luhn(n), n)
	}
}

func TestLuhn_SingleDigitChangeIsDetected(t *testing.T) {
	base := "4111111111111111"
	for i := 0; i < len(base); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == base[i] {
				continue
			}
			mutated := base[:i] + string(d) + base[i+1:]
			assert.False(t, Luhn(mutated), mutated)
		}
	}
}

func TestParseType(t *testing.T) {
	ty, err := ParseType(" VISA ")
	require.NoError(t, err)
	assert.Equal(t, Visa, ty)

	_, err = ParseType("discover")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		ty      Type
		number  string
		wantErr bool
	}{
		{name: "visa ok", ty: Visa, number: "4111111111111111"},
		{name: "visa luhn fail", ty: Visa, number: "4111111111111112", wantErr: true},
		{name: "mastercard ok", ty: Mastercard, number: "5555555555554444"},
		{name: "verve length", ty: Verve, number: "378282246310005", wantErr: true},
		{name: "amex ok", ty: Amex, number: "378282246310005"},
		{name: "amex needs 15", ty: Amex, number: "4111111111111111", wantErr: true},
		{name: "letters", ty: Visa, number: "41111111111111a1", wantErr: true},
		{name: "empty", ty: Visa, number: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNumber(tt.ty, tt.number)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrorInvalidInput))
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "card_number", ve.Field)
		})
	}
}

func TestValidateCVC(t *testing.T) {
	assert.NoError(t, ValidateCVC(Visa, "123"))
	assert.NoError(t, ValidateCVC(Verve, "123"))
	assert.NoError(t, ValidateCVC(Amex, "1234"))
	assert.Error(t, ValidateCVC(Amex, "123"))
	assert.Error(t, ValidateCVC(Visa, "1234"))
	assert.Error(t, ValidateCVC(Visa, "12a"))
	assert.Error(t, ValidateCVC(Visa, ""))
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateExpiry(10, 2026, now), "current month is still valid")
	assert.NoError(t, ValidateExpiry(11, 2026, now))
	assert.NoError(t, ValidateExpiry(1, 2027, now))

	assert.Error(t, ValidateExpiry(9, 2026, now))
	assert.Error(t, ValidateExpiry(12, 2025, now))
	assert.Error(t, ValidateExpiry(0, 2030, now))
	assert.Error(t, ValidateExpiry(13, 2030, now))

	assert.NoError(t, ValidateExpiry(12, 2046, now), "twenty years ahead is the limit")
	err := ValidateExpiry(1, 2047, now)
	require.ErrorIs(t, err, common.ErrorInvalidInput)
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "expiry_year", verr.Field)
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "4111111111111111", NormalizeNumber(" 4111 1111-1111 1111 "))
}

func TestMask(t *testing.T) {
	masked := Mask("4111111111111111")
	assert.Equal(t, "************1111", masked)
	assert.True(t, strings.HasSuffix(masked, "1111"))
	assert.Equal(t, 4, strings.Count(masked, "1"), "no other digit of the number survives")

	assert.Equal(t, "***********0005", Mask("378282246310005"))
	assert.Equal(t, "123", Mask("123"))
	assert.Equal(t, "0005", LastFour("378282246310005"))
}
