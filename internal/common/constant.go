// Package common contains shared constants and sentinel errors used across
// loanvault components.
package common

// AccessTokenHeaderName is the gRPC metadata key that carries the access
// token on authenticated calls.
const AccessTokenHeaderName = "access_token"

// VerificationCodeLength is the number of decimal digits in an email
// verification code.
const VerificationCodeLength = 6

// ResetTokenSize is the number of random bytes behind a password reset token
// (the token itself is hex encoded, so twice as long).
const ResetTokenSize = 32
