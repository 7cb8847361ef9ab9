package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/loanvault/internal/common"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
)

// getPassword is an indirection so tests can bypass the terminal.
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

func (a *App) askPassword(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

// Signup creates an account. The first account on a fresh server becomes
// the administrator. A verification code is mailed to the address.
func (a *App) Signup(ctx context.Context) error {
	in := &pb.SignupRequest{}
	var err error

	if in.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if in.Password, err = a.askPassword("Enter password"); err != nil {
		return err
	}
	if in.ConfirmPassword, err = a.askPassword("Confirm password"); err != nil {
		return err
	}
	if in.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if in.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if in.TermsAccepted, err = GetYesNo(a.reader, "Do you accept the terms and conditions?", a.out); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	res, err := a.api.Signup(ctx, in)
	if err != nil {
		return err
	}

	a.userEmail = res.GetUser().GetEmail()
	fmt.Fprintf(a.out, "Welcome, %s! Your role is %s.\n", res.GetUser().GetFirstName(), res.GetUser().GetRole())
	if res.GetWarning() != "" {
		fmt.Fprintf(a.out, "%s: check your inbox and run 'verify'.\n", res.GetWarning())
	}
	return nil
}

func (a *App) Verify(ctx context.Context) error {
	email, err := a.emailOrPrompt()
	if err != nil {
		return err
	}
	code, err := GetSimpleText(a.reader, "Enter the 6-digit code", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.VerifyEmail(ctx, email, code); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Email verified.")
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	email, err := a.emailOrPrompt()
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.ResendVerification(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A new code has been sent.")
	return nil
}

// emailOrPrompt reuses the address of the current session when there is one.
func (a *App) emailOrPrompt() (string, error) {
	if a.userEmail != "" {
		return a.userEmail, nil
	}
	return GetSimpleText(a.reader, "Enter email", a.out)
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.askPassword("Enter password")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.userEmail = res.GetUser().GetEmail()
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Login successful")
	if res.GetWarning() != "" {
		fmt.Fprintln(a.out, res.GetWarning())
	}
	return nil
}

// Logout revokes every session of the user on the server.
func (a *App) Logout(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.RequestPasswordReset(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If the address is registered, a reset link is on its way.")
	return nil
}

// Reset completes a password reset with the email and token from the link.
func (a *App) Reset(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email (as in the link)", a.out)
	if err != nil {
		return err
	}
	token, err := GetSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	password, err := a.askPassword("New password")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.ResetPassword(ctx, email, token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed. Please log in again.")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s <%s>\nrole: %s\nverified: %t\n", u.GetFirstName(), u.GetLastName(), u.GetEmail(), u.GetRole(), u.GetIsVerified())
	return nil
}
