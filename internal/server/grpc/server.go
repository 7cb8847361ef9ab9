// Package grpc exposes the account services over gRPC as the Accounts
// service defined in internal/proto.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/loanvault/internal/logging"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type SessionService interface {
	Signup(ctx context.Context, in services.SignupInput) (*services.AuthResult, error)
	VerifyEmail(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Logout(ctx context.Context, userID string) error
	Refresh(ctx context.Context, accessToken string) (*services.TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

type CardService interface {
	Add(ctx context.Context, userID string, in services.AddCardInput) (*models.MaskedCard, error)
	List(ctx context.Context, userID string) ([]models.MaskedCard, error)
	SetDefault(ctx context.Context, cardID, userID string) error
	Update(ctx context.Context, cardID, userID string, in services.UpdateCardInput) (*models.MaskedCard, error)
	Delete(ctx context.Context, cardID, userID string) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (services.Lookup, error)
	Create(ctx context.Context, userID string, in services.ProfileInput) (*models.Profile, error)
	Update(ctx context.Context, userID string, in services.ProfileInput) (*models.Profile, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountsServer
	address  string
	sessions SessionService
	cards    CardService
	profiles ProfileService
	logger   logging.Logger
	health   *health.Server
}

func NewGRPCServer(address string, l logging.Logger, sessions SessionService, cards CardService, profiles ProfileService) *GRPCServer {
	return &GRPCServer{
		address:  address,
		sessions: sessions,
		cards:    cards,
		profiles: profiles,
		logger:   l.With("module", "grpc_server"),
		health:   health.NewServer(),
	}
}

// newServer builds the grpc.Server with interceptors and registered services.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		errorInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterAccountsServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	served := make(chan struct{})
	defer close(served)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.health.Shutdown()
			srv.GracefulStop()
		case <-served:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		srv.Stop()
		return err
	}
	return nil
}
