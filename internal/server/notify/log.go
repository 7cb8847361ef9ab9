package notify

import (
	"context"

	"github.com/dmitrijs2005/loanvault/internal/logging"
)

// LogNotifier writes messages to the log instead of sending them. It is
// meant for local development where no Resend key is configured.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{logger: l.With("module", "notify")}
}

func (n *LogNotifier) SendVerificationCode(ctx context.Context, to, _ string, code string) error {
	n.logger.Info(ctx, "verification code", "to", to, "code", code)
	return nil
}

func (n *LogNotifier) SendPasswordReset(ctx context.Context, to, _ string, link string) error {
	n.logger.Info(ctx, "password reset link", "to", to, "link", link)
	return nil
}
