package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/loanvault/internal/proto"
	"github.com/dmitrijs2005/loanvault/internal/server/models"
	"github.com/dmitrijs2005/loanvault/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func userToPB(u models.PublicUser) *pb.User {
	return &pb.User{
		Id:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          string(u.Role),
		IsVerified:    u.IsVerified,
		TermsAccepted: u.TermsAccepted,
		CreatedAt:     timestamp(u.CreatedAt),
	}
}

func tokensToPB(p services.TokenPair) *pb.TokenPair {
	return &pb.TokenPair{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func authToPB(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		Tokens:  tokensToPB(r.Tokens),
		User:    userToPB(r.User),
		Warning: r.Warning,
	}
}

func cardToPB(c models.MaskedCard) *pb.Card {
	return &pb.Card{
		Id:           c.ID,
		CardType:     string(c.CardType),
		MaskedNumber: c.MaskedNumber,
		ExpiryMonth:  int32(c.ExpiryMonth),
		ExpiryYear:   int32(c.ExpiryYear),
		NameOnCard:   c.NameOnCard,
		IsDefault:    c.IsDefault,
		CreatedAt:    timestamp(c.CreatedAt),
	}
}

func cardsToPB(cards []models.MaskedCard) []*pb.Card {
	out := make([]*pb.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToPB(c))
	}
	return out
}

// profileToPB renders income as a decimal string and the birth date as
// YYYY-MM-DD. A nil profile stays nil.
func profileToPB(p *models.Profile) *pb.Profile {
	if p == nil {
		return nil
	}
	return &pb.Profile{
		Id:               p.ID,
		PhoneNumber:      p.PhoneNumber,
		DateOfBirth:      p.DateOfBirth.Format("2006-01-02"),
		MonthlyIncome:    services.FormatIncome(p.MonthlyIncome),
		EmploymentStatus: string(p.EmploymentStatus),
		EmployerName:     p.EmployerName,
		JobTitle:         p.JobTitle,
		Address: &pb.Address{
			Id:            p.Address.ID,
			StreetAddress: p.Address.StreetAddress,
			City:          p.Address.City,
			State:         p.Address.State,
			PostalCode:    p.Address.PostalCode,
			Country:       p.Address.Country,
		},
	}
}

func signupFromPB(req *pb.SignupRequest) services.SignupInput {
	return services.SignupInput{
		Email:           req.GetEmail(),
		Password:        req.GetPassword(),
		ConfirmPassword: req.GetConfirmPassword(),
		FirstName:       req.GetFirstName(),
		LastName:        req.GetLastName(),
		TermsAccepted:   req.GetTermsAccepted(),
	}
}

func addCardFromPB(req *pb.AddCardRequest) services.AddCardInput {
	return services.AddCardInput{
		CardType:    req.GetCardType(),
		CardNumber:  req.GetCardNumber(),
		CVC:         req.GetCvc(),
		ExpiryMonth: int(req.GetExpiryMonth()),
		ExpiryYear:  int(req.GetExpiryYear()),
		NameOnCard:  req.GetNameOnCard(),
		IsDefault:   req.GetIsDefault(),
	}
}

// updateCardFromPB keeps absent optional fields nil so they are left alone.
func updateCardFromPB(req *pb.UpdateCardRequest) services.UpdateCardInput {
	in := services.UpdateCardInput{
		NameOnCard: req.NameOnCard,
		IsDefault:  req.IsDefault,
	}
	if req.ExpiryMonth != nil {
		m := int(req.GetExpiryMonth())
		in.ExpiryMonth = &m
	}
	if req.ExpiryYear != nil {
		y := int(req.GetExpiryYear())
		in.ExpiryYear = &y
	}
	return in
}

func profileFromPB(req *pb.ProfileRequest) services.ProfileInput {
	a := req.GetAddress()
	return services.ProfileInput{
		PhoneNumber:      req.GetPhoneNumber(),
		DateOfBirth:      req.GetDateOfBirth(),
		MonthlyIncome:    req.GetMonthlyIncome(),
		EmploymentStatus: req.GetEmploymentStatus(),
		EmployerName:     req.GetEmployerName(),
		JobTitle:         req.GetJobTitle(),
		Address: services.AddressInput{
			StreetAddress: a.GetStreetAddress(),
			City:          a.GetCity(),
			State:         a.GetState(),
			PostalCode:    a.GetPostalCode(),
			Country:       a.GetCountry(),
		},
	}
}
