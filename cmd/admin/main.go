// Command admin creates an administrator account directly in the database.
//
// It reads the same configuration as the server (JSON file, environment,
// flags) and takes the account details from its own flags:
//
//	admin -email root@example.com -first Ada -last Lovelace
//
// The password is read from the terminal without echo.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/loanvault/internal/common"
	"github.com/dmitrijs2005/loanvault/internal/flagx"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server"
	"github.com/dmitrijs2005/loanvault/internal/server/config"
	"golang.org/x/term"
)

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt+": ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return pw, err
}

func main() {

	ctx := context.Background()

	args := os.Args[1:]
	email := flagx.LookupString(args, "email")
	if email == "" {
		log.Fatal("usage: admin -email <address> [-first <name>] [-last <name>]")
	}

	password, err := readPassword("Password")
	if err != nil {
		log.Fatalf("read password: %v", err)
	}
	defer common.WipeByteArray(password)

	confirm, err := readPassword("Confirm password")
	if err != nil {
		log.Fatalf("read password: %v", err)
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		log.Fatal("passwords do not match")
	}

	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	u, err := app.Sessions.CreateSuperuser(ctx, email, string(password),
		flagx.LookupString(args, "first"), flagx.LookupString(args, "last"))
	if err != nil {
		log.Printf("create superuser: %v", err)
		return
	}

	fmt.Printf("Administrator %s created (id %s)\n", u.Email, u.ID)
}
