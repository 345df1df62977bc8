package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadBase()
			if err != nil {
				return err
			}
			defer e.close()

			e.db, err = database.NewDB(&e.cfg.Database, e.cfg.Log.Level, e.logger)
			if err != nil {
				return err
			}
			sqlDB, err := e.db.DB()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(sqlDB, e.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
