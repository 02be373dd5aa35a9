package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/config"
	"github.com/iliyamo/timekeeper/internal/database"
	"github.com/iliyamo/timekeeper/internal/handler"
	"github.com/iliyamo/timekeeper/internal/logger"
	"github.com/iliyamo/timekeeper/internal/middleware"
	"github.com/iliyamo/timekeeper/internal/repository"
	"github.com/iliyamo/timekeeper/internal/router"
	queue_publisher "github.com/iliyamo/timekeeper/internal/service"
)

func main() {
	cfg := config.Load()
	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.JWTSecret == "" {
		lg.Fatal("missing required env var JWT_SECRET")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		lg.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	store := repository.New(db, lg)
	pub := queue_publisher.New(cfg.AMQPURL, lg)
	h := handler.New(cfg, store, pub, lg)

	opts := router.Options{JWTSecret: cfg.JWTSecret}
	if rdb := config.NewRedisClient(ctx, config.LoadRedisConfig()); rdb != nil {
		defer func() { _ = rdb.Close() }()
		opts.RateLimit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, lg)
		opts.Cache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb, lg)
	} else {
		lg.Warn("redis unavailable, cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	router.RegisterRoutes(e, h, opts)

	addr := ":" + cfg.Port
	go func() {
		lg.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("db", db.Dialect.Name))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
}
