package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userKey ctxKey = "user"

func withUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// currentUser returns the user attached by accessTokenInterceptor.
func currentUser(ctx context.Context) (*models.User, error) {
	u, ok := ctx.Value(userKey).(*models.User)
	if !ok || u == nil {
		return nil, common.ErrInvalidToken
	}
	return u, nil
}

// loggingInterceptor attaches a request-scoped logger to ctx and logs the
// outcome of every call.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	l := s.logger.With("method", info.FullMethod, "request_id", uuid.NewString())
	ctx = logging.IntoContext(ctx, l)

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	switch code {
	case codes.OK:
		l.Info(ctx, "request handled", "duration", time.Since(start))
	case codes.Internal, codes.Unknown:
		l.Error(ctx, "request failed", "code", code.String(), "duration", time.Since(start))
	default:
		l.Warn(ctx, "request rejected", "code", code.String(), "error", status.Convert(err).Message())
	}
	return resp, err
}

// errorInterceptor turns service errors into gRPC statuses.
func errorInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

var statusCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorInvalidInput, codes.InvalidArgument},
	{common.ErrorInvalidCode, codes.InvalidArgument},
	{common.ErrorAlreadyExists, codes.AlreadyExists},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorInvalidCredentials, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrorAlreadyVerified, codes.FailedPrecondition},
	{common.ErrorServiceUnavailable, codes.Unavailable},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// toStatus maps sentinel errors to codes. Messages are the sentinel texts,
// or the field message for validation errors, so wrapped details such as
// driver or mail-provider errors never reach clients.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return status.Error(codes.InvalidArgument, verr.Error())
	}

	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return status.Error(sc.code, sc.err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func accessToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return values[0]
	}
	if values := md.Get("authorization"); len(values) > 0 {
		if token, ok := strings.CutPrefix(values[0], "Bearer "); ok {
			return token
		}
	}
	return ""
}

// accessTokenInterceptor authenticates every Accounts call that is not in
// publicMethods and stores the caller in ctx.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !strings.HasPrefix(info.FullMethod, "/"+ServiceName+"/") || publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token := accessToken(ctx)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.sessions.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	ctx = logging.IntoContext(ctx, logging.FromContext(ctx, s.logger).With("user_id", user.ID))
	return handler(withUser(ctx, user), req)
}
