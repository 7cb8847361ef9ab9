// Package server wires the loanvault backend: it opens the database, runs
// migrations, builds the account services and serves them over gRPC until
// a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/cryptox"
	"github.com/dmitrijs2005/loanvault/internal/logging"
	"github.com/dmitrijs2005/loanvault/internal/server/config"
	"github.com/dmitrijs2005/loanvault/internal/server/events"
	"github.com/dmitrijs2005/loanvault/internal/server/notify"
	"github.com/dmitrijs2005/loanvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/loanvault/internal/server/services"

	gs "github.com/dmitrijs2005/loanvault/internal/server/grpc"
)

// Test seams.
var (
	openDB         = repomanager.Open
	newRepoManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	publisher events.Publisher

	Sessions *services.SessionService
	Cards    *services.CardService
	Profiles *services.ProfileService
}

func newNotifier(c *config.Config, l logging.Logger) notify.Notifier {
	if c.ResendAPIKey == "" {
		l.Warn(context.Background(), "no Resend API key configured, emails are only logged")
		return notify.NewLogNotifier(l)
	}
	return notify.NewResendNotifier(c.ResendAPIKey, c.EmailSender, l)
}

func newPublisher(c *config.Config, l logging.Logger) events.Publisher {
	if len(c.KafkaBrokers) == 0 {
		return events.Nop{}
	}
	return events.NewKafkaPublisher(c.KafkaBrokers, c.KafkaTopic, l)
}

// NewApp connects to the database, applies migrations and builds services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager(time.Now)
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	cipher, err := cryptox.NewFieldCipherFromSecret(c.CardEncryptionKey, c.CardKeySalt)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("card cipher error: %w", err)
	}

	notifier := newNotifier(c, logger)
	publisher := newPublisher(c, logger)

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		publisher: publisher,
		Sessions:  services.NewSessionService(db, rm, notifier, publisher, logger.With("service", "sessions"), c),
		Cards:     services.NewCardService(db, rm, cipher, publisher, logger.With("service", "cards")),
		Profiles:  services.NewProfileService(db, rm, publisher, logger.With("service", "profiles")),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.Sessions, app.Cards, app.Profiles)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the database and the event publisher.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}

func (app *App) Close() error {
	var firstErr error
	if c, ok := app.publisher.(io.Closer); ok {
		firstErr = c.Close()
	}
	if err := app.db.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
