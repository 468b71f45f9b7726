package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/staffdir/employee-directory/internal/api"
	"github.com/staffdir/employee-directory/internal/core/ports"
	"github.com/staffdir/employee-directory/internal/core/service"
	"github.com/staffdir/employee-directory/internal/infrastructure/config"
	"github.com/staffdir/employee-directory/internal/infrastructure/db/memory"
	"github.com/staffdir/employee-directory/internal/infrastructure/db/redis"
	"github.com/staffdir/employee-directory/internal/infrastructure/fixtures"
	"github.com/staffdir/employee-directory/pkg/logger"
)

// @title           Employee Directory API
// @version         1.0
// @description     Role-gated employee directory backed by seeded in-memory data.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	creds, err := fixtures.Credentials()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load credential fixture")
	}
	seed, err := fixtures.Employees()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load employee fixture")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session slot: Redis when configured, otherwise process-local.
	var rdb *goredis.Client
	var tokenStorage ports.TokenStorage
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		tokenStorage = redis.NewTokenStorage(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, sessions will not survive restarts")
		tokenStorage = memory.NewTokenStorage()
	}

	sessions := service.NewSessionService(
		creds,
		tokenStorage,
		cfg.Session.Secret,
		cfg.Session.TTL,
		log,
		service.WithLoginDelay(cfg.Latency.Login),
	)
	if err := sessions.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialise session state")
	}

	repo := memory.NewEmployeeRepository(seed)
	directory := service.NewDirectoryService(repo, service.Latency{
		Read:  cfg.Latency.Read,
		Write: cfg.Latency.Write,
	}, log)

	e := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Directory: directory,
		Redis:     rdb,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Int("employees", len(seed)).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
