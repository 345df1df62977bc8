package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/notify"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consume queued email and SMS notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadBase()
			if err != nil {
				return err
			}
			defer e.close()

			e.logger.Info("notification worker starting",
				zap.String("redis", e.cfg.Redis.Addr),
				zap.Int("concurrency", e.cfg.Notify.Concurrency),
			)
			// blocks until SIGINT/SIGTERM
			return notify.NewWorker(&e.cfg.Redis, &e.cfg.Notify, notify.NewSenders(&e.cfg.Mail, &e.cfg.SMS), e.logger).Run()
		},
	}
}
