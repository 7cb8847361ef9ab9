// Package notify delivers account emails: verification codes and password
// reset links.
package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// Notifier delivers messages to a user's email address. Implementations
// report delivery failures wrapped around common.ErrorServiceUnavailable.
type Notifier interface {
	SendVerificationCode(ctx context.Context, to, firstName, code string) error
	SendPasswordReset(ctx context.Context, to, firstName, link string) error
}

// ResetLink builds <frontendURL>/reset-password?token=<token>&email=<base64url(email)>.
func ResetLink(frontendURL, token, email string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("email", base64.URLEncoding.EncodeToString([]byte(email)))
	return fmt.Sprintf("%s/reset-password?%s", strings.TrimRight(frontendURL, "/"), q.Encode())
}

func greeting(firstName string) string {
	if firstName == "" {
		return "Hello,"
	}
	return fmt.Sprintf("Hello %s,", firstName)
}

func verificationText(firstName, code string) string {
	return fmt.Sprintf("%s\n\nYour LoanVault verification code is: %s\n\nIf you did not sign up, ignore this email.\n",
		greeting(firstName), code)
}

func resetText(firstName, link string) string {
	return fmt.Sprintf("%s\n\nUse the link below to choose a new password:\n%s\n\nIf you did not ask for a reset, ignore this email.\n",
		greeting(firstName), link)
}

// DecodeLinkEmail reverses the email encoding of ResetLink. Values that are
// not base64url-encoded addresses are returned unchanged, so callers may pass
// either form.
func DecodeLinkEmail(s string) string {
	for _, enc := range []*base64.Encoding{base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil && strings.Contains(string(b), "@") {
			return string(b)
		}
	}
	return s
}
