package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/loanvault/internal/common"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.AccountsClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	err := invoker(withAccessToken(ctx, s.accessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if s.accessToken == "" {
		return err
	}

	// The pair outlives its access token: trade the expired token for a
	// fresh one and retry once.
	pair := new(pb.TokenPair)
	refresh := &pb.RefreshRequest{AccessToken: s.accessToken}
	if rerr := invoker(ctx, pb.Accounts_Refresh_FullMethodName, refresh, pair, cc, opts...); rerr != nil {
		return err
	}
	s.SetTokens(pair)

	return invoker(withAccessToken(ctx, s.accessToken), method, req, reply, cc, opts...)
}

// serviceName is the health check key of the Accounts service.
var serviceName = pb.Accounts_ServiceDesc.ServiceName

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended, which lets tests dial over bufconn.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAccountsClient(conn)
	return c, nil
}

// SetTokens installs a token pair obtained elsewhere. A nil pair clears them.
func (s *GRPCClient) SetTokens(pair *pb.TokenPair) {
	s.accessToken = pair.GetAccessToken()
	s.refreshToken = pair.GetRefreshToken()
}

func (s *GRPCClient) Tokens() *pb.TokenPair {
	return &pb.TokenPair{AccessToken: s.accessToken, RefreshToken: s.refreshToken}
}

func (s *GRPCClient) LoggedIn() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {
	resp, err := s.client.Signup(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	s.SetTokens(resp.GetTokens())
	return resp, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.AuthResponse, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.SetTokens(resp.GetTokens())
	return resp, nil
}

func (s *GRPCClient) VerifyEmail(ctx context.Context, email, code string) error {
	_, err := s.client.VerifyEmail(ctx, &pb.VerifyEmailRequest{Email: email, Code: code})
	return s.mapError(err)
}

func (s *GRPCClient) ResendVerification(ctx context.Context, email string) error {
	_, err := s.client.ResendVerification(ctx, &pb.EmailRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.client.RequestPasswordReset(ctx, &pb.EmailRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	req := &pb.ResetPasswordRequest{Email: email, Token: token, NewPassword: newPassword}
	_, err := s.client.ResetPassword(ctx, req)
	return s.mapError(err)
}

// Logout ends every session of the user and forgets the local tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if _, err := s.client.Logout(ctx, &pb.Empty{}); err != nil {
		return s.mapError(err)
	}
	s.SetTokens(nil)
	return nil
}

func (s *GRPCClient) Me(ctx context.Context) (*pb.User, error) {
	resp, err := s.client.Me(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) AccountDetails(ctx context.Context) (*pb.AccountDetailsResponse, error) {
	resp, err := s.client.AccountDetails(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) AddCard(ctx context.Context, req *pb.AddCardRequest) (*pb.Card, error) {
	resp, err := s.client.AddCard(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListCards(ctx context.Context) ([]*pb.Card, error) {
	resp, err := s.client.ListCards(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetCards(), nil
}

func (s *GRPCClient) SetDefaultCard(ctx context.Context, cardID string) error {
	_, err := s.client.SetDefaultCard(ctx, &pb.CardIDRequest{CardId: cardID})
	return s.mapError(err)
}

// UpdateCard changes the fields set in req; unset optional fields are kept.
func (s *GRPCClient) UpdateCard(ctx context.Context, req *pb.UpdateCardRequest) (*pb.Card, error) {
	resp, err := s.client.UpdateCard(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) DeleteCard(ctx context.Context, cardID string) error {
	_, err := s.client.DeleteCard(ctx, &pb.CardIDRequest{CardId: cardID})
	return s.mapError(err)
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*pb.ProfileResponse, error) {
	resp, err := s.client.GetProfile(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// SaveProfile creates the profile, or updates it when one already exists.
func (s *GRPCClient) SaveProfile(ctx context.Context, req *pb.ProfileRequest) (*pb.Profile, error) {
	current, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	save := s.client.CreateProfile
	if current.GetFound() {
		save = s.client.UpdateProfile
	}

	resp, err := save(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProfile(), nil
}

// Ping asks the server health service whether the Accounts service is up.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := healthpb.NewHealthClient(s.conn).Check(ctx,
		&healthpb.HealthCheckRequest{Service: serviceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
