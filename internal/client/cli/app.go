package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/client/client"
	"github.com/dmitrijs2005/loanvault/internal/client/config"
	pb "github.com/dmitrijs2005/loanvault/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// API is the part of client.GRPCClient the CLI drives.
type API interface {
	Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error)
	VerifyEmail(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*pb.AuthResponse, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	Me(ctx context.Context) (*pb.User, error)
	AccountDetails(ctx context.Context) (*pb.AccountDetailsResponse, error)
	AddCard(ctx context.Context, req *pb.AddCardRequest) (*pb.Card, error)
	ListCards(ctx context.Context) ([]*pb.Card, error)
	SetDefaultCard(ctx context.Context, cardID string) error
	UpdateCard(ctx context.Context, req *pb.UpdateCardRequest) (*pb.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
	GetProfile(ctx context.Context) (*pb.ProfileResponse, error)
	SaveProfile(ctx context.Context, req *pb.ProfileRequest) (*pb.Profile, error)
	Ping(ctx context.Context) error
	LoggedIn() bool
	Close() error
}

type App struct {
	config    *config.Config
	api       API
	userEmail string

	mu   sync.Mutex
	Mode Mode

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (app *App) setMode(mode Mode) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.Mode != mode {
		app.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// Run starts the health watcher and the REPL, and closes the connection when
// the user leaves.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.api.Close()

	log.Println("Welcome to loanvault CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	mode := a.Mode
	a.mu.Unlock()

	s := a.userEmail
	if mode != "" {
		if s != "" {
			s += " "
		}
		s += string(mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// withTimeout bounds a single command's RPCs.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(ctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
