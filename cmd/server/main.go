package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/api/handler"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/api/router"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/notify"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/database"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/jwt"
	applogger "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/logger"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/redis"
)

func main() {
	// 1. config
	cfg, err := config.Load(os.Getenv("COURT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting court booking server",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("notify_mode", cfg.Notify.Mode),
	)

	// 3. slot catalog
	catalog, err := slots.New(cfg.Slots.Labels)
	if err != nil {
		logger.Fatal("invalid slot catalog", zap.Error(err))
	}

	// 4. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	logger.Info("database connected")

	// 4.1 migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations failed", zap.Error(err))
	}

	// 5. Redis (optional: token blacklist and rate limiting degrade open without it)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist and rate limiting disabled", zap.Error(err))
		rdb = nil
	}
	var blacklist service.TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	// 6. JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 7. notifications
	dispatcher := notify.NewDispatcher(cfg, notify.NewSenders(&cfg.Mail, &cfg.SMS), logger)

	// 8. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc, err := service.NewService(cfg, repo, catalog, jwtMgr, blacklist, dispatcher, logger)
	if err != nil {
		logger.Fatal("init services failed", zap.Error(err))
	}
	h := handler.NewHandler(svc)

	ensureCtx, ensureCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if created, err := svc.Auth.EnsureAdmin(ensureCtx, &cfg.Admin); err != nil {
		logger.Error("ensure default admin failed", zap.Error(err))
	} else if created {
		logger.Info("default admin seeded", zap.String("username", cfg.Admin.Username))
	}
	ensureCancel()

	// 9. router
	engine := router.Setup(cfg, h, jwtMgr, rdb, db, logger)

	// 10. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	// in-flight notifications
	if err := dispatcher.Close(); err != nil {
		logger.Warn("close notification dispatcher failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
