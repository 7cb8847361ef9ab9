package grpc

import (
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
)

// ServiceName is the Accounts service name, also used as its health check key.
const ServiceName = "loanvault.v1.Accounts"

// publicMethods may be called without an access token. Every other
// Accounts method requires one.
var publicMethods = map[string]bool{
	pb.Accounts_Signup_FullMethodName:               true,
	pb.Accounts_VerifyEmail_FullMethodName:          true,
	pb.Accounts_ResendVerification_FullMethodName:   true,
	pb.Accounts_Login_FullMethodName:                true,
	pb.Accounts_Refresh_FullMethodName:              true,
	pb.Accounts_RequestPasswordReset_FullMethodName: true,
	pb.Accounts_ResetPassword_FullMethodName:        true,
}
