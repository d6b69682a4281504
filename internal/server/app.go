// Package server initializes and runs the application: configuration,
// database and migrations, services, and the HTTP API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/config"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/httpapi"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/repositories/repomanager"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

// NewApp wires the application together. Config validation runs here so a
// deployment missing storage credentials fails at startup, not at first use.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	storageService := services.NewStorageService(cfg, logger)
	userService := services.NewUserService(db, m, cfg)
	ideaService := services.NewIdeaService(db, m)
	fileService := services.NewFileService(db, m, storageService, logger)

	api := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, cfg.SecretKey,
		userService, ideaService, fileService)

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
