package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Me(ctx context.Context) error
	Details(ctx context.Context) error
	Cards(ctx context.Context) error
	AddCard(ctx context.Context) error
	EditCard(ctx context.Context) error
	SetDefault(ctx context.Context) error
	DeleteCard(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to methods on a. Commands that need an identifier prompt for it. The loop
// exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  signup, verify, resend, login, forgot, reset, help, exit
//
//	Logged in:
//	  me, details, cards, addcard, editcard, setdefault, deletecard,
//	  profile, editprofile, verify, resend, logout, help, exit
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lv %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, details, cards, addcard, editcard, setdefault, deletecard, profile, editprofile, verify, resend, logout, exit")
			} else {
				printlnFn("Available commands: signup, verify, resend, login, forgot, reset, exit")
			}

		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "verify":
			cmdErr = a.Verify(ctx)
		case "resend":
			cmdErr = a.Resend(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "forgot":
			cmdErr = a.Forgot(ctx)
		case "reset":
			cmdErr = a.Reset(ctx)
		case "me":
			cmdErr = a.Me(ctx)
		case "details":
			cmdErr = a.Details(ctx)
		case "cards", "l":
			cmdErr = a.Cards(ctx)
		case "addcard":
			cmdErr = a.AddCard(ctx)
		case "editcard":
			cmdErr = a.EditCard(ctx)
		case "setdefault":
			cmdErr = a.SetDefault(ctx)
		case "deletecard":
			cmdErr = a.DeleteCard(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "editprofile":
			cmdErr = a.EditProfile(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
