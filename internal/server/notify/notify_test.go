package notify

import (
	"context"
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmails struct {
	got []*resend.SendEmailRequest
	err error
}

func (f *fakeEmails) SendWithContext(_ context.Context, p *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = append(f.got, p)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

type recordingLogger struct {
	logging.Nop
	infos []map[string]any
}

func (r *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	m := map[string]any{"msg": msg}
	for i := 0; i+1 < len(args); i += 2 {
		m[args[i].(string)] = args[i+1]
	}
	r.infos = append(r.infos, m)
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func TestResendNotifier_SendVerificationCode(t *testing.T) {
	fe := &fakeEmails{}
	n := &ResendNotifier{emails: fe, from: "LoanVault <no-reply@x>", logger: logging.Nop{}}

	require.NoError(t, n.SendVerificationCode(context.Background(), "a@b.c", "Ada", "123456"))
	require.Len(t, fe.got, 1)
	assert.Equal(t, []string{"a@b.c"}, fe.got[0].To)
	assert.Equal(t, "LoanVault <no-reply@x>", fe.got[0].From)
	assert.Contains(t, fe.got[0].Text, "123456")
	assert.Contains(t, fe.got[0].Text, "Hello Ada,")
}

func TestResendNotifier_FailureIsServiceUnavailable(t *testing.T) {
	fe := &fakeEmails{err: errors.New("rate limited")}
	n := &ResendNotifier{emails: fe, from: "x", logger: logging.Nop{}}

	err := n.SendPasswordReset(context.Background(), "a@b.c", "", "https://app/reset")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorServiceUnavailable)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestNewResendNotifier(t *testing.T) {
	n := NewResendNotifier("re_test", "from@x", logging.Nop{})
	assert.NotNil(t, n.emails)
	assert.Equal(t, "from@x", n.from)
}

func TestLogNotifier(t *testing.T) {
	rl := &recordingLogger{}
	n := NewLogNotifier(rl)

	require.NoError(t, n.SendVerificationCode(context.Background(), "a@b.c", "Ada", "654321"))
	require.NoError(t, n.SendPasswordReset(context.Background(), "a@b.c", "Ada", "https://app/reset"))

	require.Len(t, rl.infos, 2)
	assert.Equal(t, "654321", rl.infos[0]["code"])
	assert.Equal(t, "https://app/reset", rl.infos[1]["link"])
}

func TestResetLink(t *testing.T) {
	link := ResetLink("https://app.example.com/", "abc123", "ada@example.com")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/reset-password", u.Path)
	assert.Equal(t, "abc123", u.Query().Get("token"))

	email, err := base64.URLEncoding.DecodeString(u.Query().Get("email"))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", string(email))
}

func TestDecodeLinkEmail(t *testing.T) {
	encoded := base64.URLEncoding.EncodeToString([]byte("ann@example.com"))
	require.Equal(t, "ann@example.com", DecodeLinkEmail(encoded))
	require.Equal(t, "ann@example.com", DecodeLinkEmail(strings.TrimRight(encoded, "=")))
	require.Equal(t, "ann@example.com", DecodeLinkEmail("ann@example.com"))
	require.Equal(t, "abcd", DecodeLinkEmail("abcd"))
}
