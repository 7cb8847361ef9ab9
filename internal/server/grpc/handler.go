package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/loanvault/internal/proto"
)

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {
	res, err := s.sessions.Signup(ctx, signupFromPB(req))
	if err != nil {
		return nil, err
	}
	return authToPB(res), nil
}

func (s *GRPCServer) VerifyEmail(ctx context.Context, req *pb.VerifyEmailRequest) (*pb.MessageResponse, error) {
	if err := s.sessions.VerifyEmail(ctx, req.GetEmail(), req.GetCode()); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Email verified successfully"}, nil
}

func (s *GRPCServer) ResendVerification(ctx context.Context, req *pb.EmailRequest) (*pb.MessageResponse, error) {
	if err := s.sessions.ResendVerification(ctx, req.GetEmail()); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Verification code sent"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.sessions.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, err
	}
	return authToPB(res), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenPair, error) {
	pair, err := s.sessions.Refresh(ctx, req.GetAccessToken())
	if err != nil {
		return nil, err
	}
	return tokensToPB(*pair), nil
}

func (s *GRPCServer) RequestPasswordReset(ctx context.Context, req *pb.EmailRequest) (*pb.MessageResponse, error) {
	if err := s.sessions.RequestPasswordReset(ctx, req.GetEmail()); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Password reset link sent"}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	if err := s.sessions.ResetPassword(ctx, req.GetEmail(), req.GetToken(), req.GetNewPassword()); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Password has been reset"}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.Empty) (*pb.MessageResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Logout(ctx, user.ID); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Successfully logged out"}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.Empty) (*pb.User, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return userToPB(user.Public()), nil
}

func (s *GRPCServer) AccountDetails(ctx context.Context, _ *pb.Empty) (*pb.AccountDetailsResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	lookup, err := s.profiles.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &pb.AccountDetailsResponse{
		User:    userToPB(user.Public()),
		Profile: profileToPB(lookup.Profile),
		Cards:   cardsToPB(cards),
	}, nil
}

func (s *GRPCServer) AddCard(ctx context.Context, req *pb.AddCardRequest) (*pb.Card, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.Add(ctx, user.ID, addCardFromPB(req))
	if err != nil {
		return nil, err
	}
	return cardToPB(*card), nil
}

func (s *GRPCServer) ListCards(ctx context.Context, _ *pb.Empty) (*pb.CardsResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.List(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &pb.CardsResponse{Cards: cardsToPB(cards)}, nil
}

func (s *GRPCServer) SetDefaultCard(ctx context.Context, req *pb.CardIDRequest) (*pb.MessageResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cards.SetDefault(ctx, req.GetCardId(), user.ID); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Default card updated"}, nil
}

func (s *GRPCServer) UpdateCard(ctx context.Context, req *pb.UpdateCardRequest) (*pb.Card, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.Update(ctx, req.GetCardId(), user.ID, updateCardFromPB(req))
	if err != nil {
		return nil, err
	}
	return cardToPB(*card), nil
}

func (s *GRPCServer) DeleteCard(ctx context.Context, req *pb.CardIDRequest) (*pb.MessageResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cards.Delete(ctx, req.GetCardId(), user.ID); err != nil {
		return nil, err
	}
	return &pb.MessageResponse{Message: "Card deleted"}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.Empty) (*pb.ProfileResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	lookup, err := s.profiles.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &pb.ProfileResponse{Found: lookup.Found, Profile: profileToPB(lookup.Profile)}, nil
}

func (s *GRPCServer) CreateProfile(ctx context.Context, req *pb.ProfileRequest) (*pb.ProfileResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Create(ctx, user.ID, profileFromPB(req))
	if err != nil {
		return nil, err
	}
	return &pb.ProfileResponse{Found: true, Profile: profileToPB(p)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.ProfileRequest) (*pb.ProfileResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Update(ctx, user.ID, profileFromPB(req))
	if err != nil {
		return nil, err
	}
	return &pb.ProfileResponse{Found: true, Profile: profileToPB(p)}, nil
}
