package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func authed(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func TestSignup(t *testing.T) {
	env := startServer(t)

	resp, err := env.client.Signup(context.Background(), &pb.SignupRequest{
		Email: "ann@example.com", Password: "pw", ConfirmPassword: "pw",
		FirstName: "Ann", LastName: "Lee", TermsAccepted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.GetTokens().GetAccessToken())
	assert.Equal(t, string(models.RoleAdmin), resp.GetUser().GetRole())
	require.Len(t, env.sessions.signups, 1)
	assert.True(t, env.sessions.signups[0].TermsAccepted)
	assert.Equal(t, "Lee", env.sessions.signups[0].LastName)
}

func TestLogin_ErrorMapping(t *testing.T) {
	env := startServer(t)

	resp, err := env.client.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Account not verified", resp.GetWarning())

	_, err = env.client.Login(context.Background(), &pb.LoginRequest{Email: "a@b.c", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrorInvalidCredentials.Error(), status.Convert(err).Message())
}

func TestPublicMethods_StatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{common.NewValidationError("email", "this field is required"), codes.InvalidArgument},
		{common.ErrorInvalidCode, codes.InvalidArgument},
		{common.ErrorAlreadyExists, codes.AlreadyExists},
		{common.ErrorNotFound, codes.NotFound},
		{common.ErrorAlreadyVerified, codes.FailedPrecondition},
		{common.ErrorServiceUnavailable, codes.Unavailable},
		{common.ErrorInternal, codes.Internal},
	}

	env := startServer(t)
	for _, tc := range cases {
		env.sessions.err = tc.err
		_, err := env.client.VerifyEmail(context.Background(), &pb.VerifyEmailRequest{Email: "a@b.c", Code: "123456"})
		assert.Equal(t, tc.code, status.Code(err), tc.err.Error())
	}

	env.sessions.err = common.NewValidationError("code", "must be a 6-digit code")
	_, err := env.client.VerifyEmail(context.Background(), &pb.VerifyEmailRequest{})
	assert.Equal(t, "code: must be a 6-digit code", status.Convert(err).Message())
}

func TestProtectedMethod_RequiresToken(t *testing.T) {
	env := startServer(t)

	_, err := env.client.Me(context.Background(), &pb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())

	_, err = env.client.Me(authed("bad-token"), &pb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = env.client.Me(authed("expired-token"), &pb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())

	me, err := env.client.Me(authed("good-token"), &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "u1", me.GetId())
}

func TestBearerAuthorizationHeader(t *testing.T) {
	env := startServer(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer good-token")

	me, err := env.client.Me(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", me.GetEmail())
}

func TestLogout(t *testing.T) {
	env := startServer(t)

	_, err := env.client.Logout(authed("good-token"), &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, env.sessions.logouts)
}

func TestRefresh(t *testing.T) {
	env := startServer(t)

	pair, err := env.client.Refresh(context.Background(), &pb.RefreshRequest{AccessToken: "good-token"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", pair.GetAccessToken())

	_, err = env.client.Refresh(context.Background(), &pb.RefreshRequest{AccessToken: "gone"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestCardMethods(t *testing.T) {
	env := startServer(t)
	ctx := authed("good-token")

	added, err := env.client.AddCard(ctx, &pb.AddCardRequest{CardType: "visa", IsDefault: true})
	require.NoError(t, err)
	assert.Equal(t, "************1111", added.GetMaskedNumber())
	assert.True(t, added.GetIsDefault())

	list, err := env.client.ListCards(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Len(t, list.GetCards(), 1)

	_, err = env.client.SetDefaultCard(ctx, &pb.CardIDRequest{CardId: "c1"})
	require.NoError(t, err)

	updated, err := env.client.UpdateCard(ctx, &pb.UpdateCardRequest{CardId: "c1", NameOnCard: proto.String("BOB")})
	require.NoError(t, err)
	assert.Equal(t, "BOB", updated.GetNameOnCard())

	_, err = env.client.DeleteCard(ctx, &pb.CardIDRequest{CardId: "c1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"add:u1", "list:u1", "default:c1:u1", "update:c1:u1", "delete:c1:u1"}, env.cards.calls)

	env.cards.err = common.ErrorNotFound
	_, err = env.client.DeleteCard(ctx, &pb.CardIDRequest{CardId: "zzz"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUpdateCardFromPB_KeepsAbsentFieldsNil(t *testing.T) {
	in := updateCardFromPB(&pb.UpdateCardRequest{CardId: "c1", ExpiryMonth: proto.Int32(3), IsDefault: proto.Bool(true)})

	require.NotNil(t, in.ExpiryMonth)
	assert.Equal(t, 3, *in.ExpiryMonth)
	assert.Nil(t, in.ExpiryYear)
	assert.Nil(t, in.NameOnCard)
	require.NotNil(t, in.IsDefault)
	assert.True(t, *in.IsDefault)
}

func TestProfileMethods(t *testing.T) {
	env := startServer(t)
	ctx := authed("good-token")

	got, err := env.client.GetProfile(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.False(t, got.GetFound())
	assert.Nil(t, got.GetProfile())

	_, err = env.client.UpdateProfile(ctx, &pb.ProfileRequest{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	got, err = env.client.CreateProfile(ctx, &pb.ProfileRequest{
		PhoneNumber: "+234", MonthlyIncome: "1500.5", EmploymentStatus: "retired",
	})
	require.NoError(t, err)
	require.True(t, got.GetFound())
	assert.Equal(t, "1500.50", got.GetProfile().GetMonthlyIncome())
	assert.Equal(t, "1990-04-01", got.GetProfile().GetDateOfBirth())

	got, err = env.client.GetProfile(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.True(t, got.GetFound())
}

func TestAccountDetails(t *testing.T) {
	env := startServer(t)
	ctx := authed("good-token")

	details, err := env.client.AccountDetails(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "u1", details.GetUser().GetId())
	assert.Nil(t, details.GetProfile())
	assert.Empty(t, details.GetCards())

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	env.profiles.profile = &models.Profile{ID: "p1", MonthlyIncome: 100}
	env.cards.cards = []models.MaskedCard{{ID: "c1", CreatedAt: created}}
	details, err = env.client.AccountDetails(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.NotNil(t, details.GetProfile())
	assert.Equal(t, "1.00", details.GetProfile().GetMonthlyIncome())
	require.Len(t, details.GetCards(), 1)
	assert.True(t, created.Equal(details.GetCards()[0].GetCreatedAt().AsTime()))

	env.cards.err = errBoom{}
	_, err = env.client.AccountDetails(ctx, &pb.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.NotContains(t, status.Convert(err).Message(), "boom")
}

func TestHealthCheck(t *testing.T) {
	env := startServer(t)

	resp, err := healthpb.NewHealthClient(env.conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, newFakeSessions(), &fakeCards{}, &fakeProfiles{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, newFakeSessions(), &fakeCards{}, &fakeProfiles{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, srv.Run(ctx))
}

func TestServe_ListenerFailureStopsWatcher(t *testing.T) {
	rec := &recordingLogger{}
	srv := NewGRPCServer("bufconn", rec, newFakeSessions(), &fakeCards{}, &fakeProfiles{})

	lis := bufconn.Listen(1 << 10)
	require.NoError(t, lis.Close())

	ctx, cancel := context.WithCancel(context.Background())
	require.Error(t, srv.Serve(ctx, lis))

	cancel()
	assert.Never(t, func() bool {
		for _, m := range rec.messages() {
			if m == "Stopping gRPC server..." {
				return true
			}
		}
		return false
	}, 100*time.Millisecond, 10*time.Millisecond)
	assert.Contains(t, rec.messages(), "Starting gRPC server")
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
