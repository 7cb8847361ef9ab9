package notify

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/resend/resend-go/v2"
)

// emailSender is the slice of the Resend client this package uses.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier sends mail through the Resend API.
type ResendNotifier struct {
	emails emailSender
	from   string
	logger logging.Logger
}

func NewResendNotifier(apiKey, from string, l logging.Logger) *ResendNotifier {
	client := resend.NewClient(apiKey)
	return &ResendNotifier{emails: client.Emails, from: from, logger: l.With("module", "notify")}
}

func (n *ResendNotifier) SendVerificationCode(ctx context.Context, to, firstName, code string) error {
	return n.send(ctx, to, "Verify your email address", verificationText(firstName, code))
}

func (n *ResendNotifier) SendPasswordReset(ctx context.Context, to, firstName, link string) error {
	return n.send(ctx, to, "Reset your password", resetText(firstName, link))
}

func (n *ResendNotifier) send(ctx context.Context, to, subject, text string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
	}

	resp, err := n.emails.SendWithContext(ctx, params)
	if err != nil {
		n.logger.Error(ctx, "email delivery failed", "subject", subject, "error", err)
		return fmt.Errorf("%w: send email: %v", common.ErrorServiceUnavailable, err)
	}

	n.logger.Info(ctx, "email sent", "subject", subject, "id", resp.Id)
	return nil
}
