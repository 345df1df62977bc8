package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/notify"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/repository"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/slots"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/database"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/jwt"
	applogger "github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/logger"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "courtctl",
		Short:         "Administrative tooling for the court booking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./config/config.yaml)")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedAdminCmd())
	root.AddCommand(newCourtroomCmd())
	root.AddCommand(newWorkerCmd())

	return root
}

// env config, logger and an optional database-backed service graph
type env struct {
	cfg        *config.Config
	logger     *zap.Logger
	db         *gorm.DB
	svc        *service.Service
	dispatcher notify.Dispatcher
}

func loadBase() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &env{cfg: cfg, logger: logger}, nil
}

// loadServices opens the database, applies migrations and wires the services
func loadServices() (*env, error) {
	e, err := loadBase()
	if err != nil {
		return nil, err
	}

	e.db, err = database.NewDB(&e.cfg.Database, e.cfg.Log.Level, e.logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := e.db.DB()
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(sqlDB, e.logger); err != nil {
		return nil, err
	}

	catalog, err := slots.New(e.cfg.Slots.Labels)
	if err != nil {
		return nil, err
	}
	e.dispatcher = notify.NewDispatcher(e.cfg, notify.NewSenders(&e.cfg.Mail, &e.cfg.SMS), e.logger)
	e.svc, err = service.NewService(e.cfg, repository.NewRepository(e.db), catalog,
		jwt.NewManager(&e.cfg.Auth), nil, e.dispatcher, e.logger)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *env) close() {
	if e.dispatcher != nil {
		_ = e.dispatcher.Close()
	}
	if e.db != nil {
		if sqlDB, _ := e.db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
	_ = e.logger.Sync()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
