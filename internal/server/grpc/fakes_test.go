package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/services"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

type fakeSessions struct {
	users   map[string]*models.User // by access token
	signups []services.SignupInput
	logouts []string
	err     error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{users: map[string]*models.User{
		"good-token": {ID: "u1", Email: "ann@example.com", FirstName: "Ann", Role: models.RoleUser, IsVerified: true},
	}}
}

func (f *fakeSessions) Signup(_ context.Context, in services.SignupInput) (*services.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.signups = append(f.signups, in)
	return &services.AuthResult{
		Tokens: services.TokenPair{AccessToken: "a", RefreshToken: "r"},
		User:   models.PublicUser{ID: "u2", Email: in.Email, Role: models.RoleAdmin},
	}, nil
}

func (f *fakeSessions) VerifyEmail(context.Context, string, string) error { return f.err }
func (f *fakeSessions) ResendVerification(context.Context, string) error  { return f.err }

func (f *fakeSessions) Login(_ context.Context, email, password string) (*services.AuthResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if password != "pw" {
		return nil, common.ErrorInvalidCredentials
	}
	return &services.AuthResult{
		Tokens:  services.TokenPair{AccessToken: "good-token", RefreshToken: "r"},
		User:    models.PublicUser{ID: "u1", Email: email},
		Warning: "Account not verified",
	}, nil
}

func (f *fakeSessions) Logout(_ context.Context, userID string) error {
	f.logouts = append(f.logouts, userID)
	return f.err
}

func (f *fakeSessions) Refresh(_ context.Context, token string) (*services.TokenPair, error) {
	if _, ok := f.users[token]; !ok {
		return nil, common.ErrInvalidToken
	}
	return &services.TokenPair{AccessToken: "fresh-token", RefreshToken: "r"}, nil
}

func (f *fakeSessions) RequestPasswordReset(context.Context, string) error { return f.err }

func (f *fakeSessions) ResetPassword(context.Context, string, string, string) error { return f.err }

func (f *fakeSessions) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == "expired-token" {
		return nil, common.ErrTokenExpired
	}
	u, ok := f.users[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return u, nil
}

type fakeCards struct {
	cards []models.MaskedCard
	err   error
	calls []string
}

func (f *fakeCards) Add(_ context.Context, userID string, in services.AddCardInput) (*models.MaskedCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, "add:"+userID)
	c := models.MaskedCard{ID: "c1", CardType: "visa", MaskedNumber: "************1111", IsDefault: in.IsDefault}
	f.cards = append(f.cards, c)
	return &c, nil
}

func (f *fakeCards) List(_ context.Context, userID string) ([]models.MaskedCard, error) {
	f.calls = append(f.calls, "list:"+userID)
	return f.cards, f.err
}

func (f *fakeCards) SetDefault(_ context.Context, cardID, userID string) error {
	f.calls = append(f.calls, "default:"+cardID+":"+userID)
	return f.err
}

func (f *fakeCards) Update(_ context.Context, cardID, userID string, in services.UpdateCardInput) (*models.MaskedCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, "update:"+cardID+":"+userID)
	c := models.MaskedCard{ID: cardID}
	if in.NameOnCard != nil {
		c.NameOnCard = *in.NameOnCard
	}
	return &c, nil
}

func (f *fakeCards) Delete(_ context.Context, cardID, userID string) error {
	f.calls = append(f.calls, "delete:"+cardID+":"+userID)
	return f.err
}

type fakeProfiles struct {
	profile *models.Profile
	err     error
}

func (f *fakeProfiles) Get(context.Context, string) (services.Lookup, error) {
	if f.err != nil {
		return services.Lookup{}, f.err
	}
	if f.profile == nil {
		return services.Lookup{}, nil
	}
	return services.Lookup{Profile: f.profile, Found: true}, nil
}

func (f *fakeProfiles) Create(_ context.Context, userID string, in services.ProfileInput) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	income, err := services.ParseIncome(in.MonthlyIncome)
	if err != nil {
		return nil, err
	}
	f.profile = &models.Profile{
		ID: "p1", UserID: userID, PhoneNumber: in.PhoneNumber,
		DateOfBirth:      time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC),
		MonthlyIncome:    income,
		EmploymentStatus: models.EmploymentStatus(in.EmploymentStatus),
	}
	return f.profile, nil
}

func (f *fakeProfiles) Update(ctx context.Context, userID string, in services.ProfileInput) (*models.Profile, error) {
	if f.profile == nil {
		return nil, common.ErrorNotFound
	}
	return f.Create(ctx, userID, in)
}

type testEnv struct {
	sessions *fakeSessions
	cards    *fakeCards
	profiles *fakeProfiles
	conn     *grpc.ClientConn
	client   pb.AccountsClient
}

// startServer serves a GRPCServer with fake services over bufconn.
func startServer(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{sessions: newFakeSessions(), cards: &fakeCards{}, profiles: &fakeProfiles{}}
	s := NewGRPCServer("bufconn", logging.Nop{}, env.sessions, env.cards, env.profiles)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	env.conn = conn
	env.client = pb.NewAccountsClient(conn)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		require.NoError(t, <-done)
	})
	return env
}

// recordingLogger keeps Info messages so tests can tell which lifecycle
// steps ran.
type recordingLogger struct {
	logging.Nop
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) Info(_ context.Context, msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func (r *recordingLogger) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}
