// @title        TradeCo board
// @version      1.0
// @description  Server-rendered job board and bookshelf behind a role-aware session gate.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/api"
	"github.com/tradeco/board/internal/api/handler"
	"github.com/tradeco/board/internal/api/view"
	"github.com/tradeco/board/internal/core/ports"
	"github.com/tradeco/board/internal/core/service"
	"github.com/tradeco/board/internal/infrastructure/config"
	"github.com/tradeco/board/internal/infrastructure/db/mongo"
	"github.com/tradeco/board/internal/infrastructure/db/redis"
	"github.com/tradeco/board/internal/infrastructure/queue"
	"github.com/tradeco/board/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// logger is not up yet
		bootLog := zerolog.New(os.Stderr)
		bootLog.Error().Err(err).Msg("invalid configuration")
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "tradeco-board",
		Env:     cfg.Env,
	})

	// Every dependency must answer before we serve a single request.
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Error().Err(err).Msg("mongodb unavailable")
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Error().Err(err).Msg("failed to create indexes")
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Error().Err(err).Msg("redis unavailable")
		return err
	}
	defer rdb.Close()

	renderer, err := view.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load templates")
		return err
	}

	// --- Repositories ---
	accounts := mongo.NewAccountRepository(db)
	jobs := mongo.NewJobRepository(db)
	events := mongo.NewEventRepository(db)
	sessionStore := redis.NewSessionStore(rdb)

	// --- Background event processing ---
	eventService := service.NewEventService(events, jobs, logger.Component("events"))
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, logger.Component("dispatcher"))
	dispatcher.Start()

	// --- Services ---
	hasher := newPasswordHasher(cfg, log)
	sessions := service.NewSessionService(sessionStore, accounts, service.SessionConfig{
		Secret:      cfg.Session.Secret,
		TTL:         cfg.Session.TTL,
		RememberTTL: cfg.Session.RememberTTL,
	}, logger.Component("sessions"))

	e := api.NewRouter(api.Deps{
		Auth:     service.NewAuthService(accounts, sessions, hasher, dispatcher, log),
		Sessions: sessions,
		Profile:  service.NewProfileService(accounts, sessions, hasher, dispatcher, log),
		Jobs:     service.NewJobService(jobs, accounts, log),
		Shelf:    service.NewShelfService(accounts),
		Renderer: renderer,
		Checks: map[string]handler.Pinger{
			"mongodb": mongo.NewPinger(mongoClient),
			"redis":   redis.NewPinger(rdb),
		},
		Log:        log,
		Production: cfg.IsProduction(),
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		if err != nil {
			log.Error().Err(err).Msg("http server failed")
			dispatcher.Close()
			dispatcher.Wait()
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// requests are finished; let queued events, deletions included, run to completion
	dispatcher.Close()
	dispatcher.Wait()
	log.Info().Msg("bye")
	return nil
}

func newPasswordHasher(cfg *config.Config, log zerolog.Logger) ports.PasswordHasher {
	if cfg.Password.Hash == config.HashSHA256 {
		log.Warn().Msg("PASSWORD_HASH=sha256 stores unsalted digests; use it only for imported legacy accounts")
		return service.SHA256Hasher{}
	}
	if cfg.Password.Pepper == "" {
		log.Warn().Msg("PASSWORD_PEPPER is empty; password hashes are not deployment specific")
	}
	return service.NewArgon2Hasher(cfg.Password.Pepper, service.DefaultArgon2Params)
}
