// Package server wires configuration, storage, services, the relay and the
// gRPC transport into a runnable application.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/privachat/internal/logging"
	"github.com/dmitrijs2005/privachat/internal/server/config"
	"github.com/dmitrijs2005/privachat/internal/server/relay"
	"github.com/dmitrijs2005/privachat/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/privachat/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/privachat/internal/server/grpc"
)

// seams, replaced in tests
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
	relay  *relay.Relay
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	cs := services.NewContactService(db, rm)
	ms := services.NewMessageService(db, rm)
	es := services.NewExportService(db, rm, c)

	opts := relay.Options{PersistTimeout: c.RelayPersistTimeout, BufferSize: c.RelayBufferSize}
	if c.EnforceContactGate {
		opts.Gate = cs
	}
	r := relay.New(ms, logger, opts)

	srv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, cs, ms, es, r, c.SecretKey)

	return &App{config: c, logger: logger, db: db, server: srv, relay: r}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until ctx is cancelled, a signal arrives or the server fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "contact_gate", app.config.EnforceContactGate)

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.server.Run(gctx)
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		app.logger.Error(ctx, "app stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
