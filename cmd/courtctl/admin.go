package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedAdminCmd() *cobra.Command {
	var username, password, email, name string

	c := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the administrator account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadServices()
			if err != nil {
				return err
			}
			defer e.close()

			admin := e.cfg.Admin
			if cmd.Flags().Changed("username") {
				admin.Username = username
			}
			if cmd.Flags().Changed("password") {
				admin.Password = password
			}
			if cmd.Flags().Changed("email") {
				admin.Email = email
			}
			if cmd.Flags().Changed("name") {
				admin.Name = name
			}

			created, err := e.svc.Auth.EnsureAdmin(commandContext(cmd), &admin)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %q\n", admin.Username)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %q already exists\n", admin.Username)
			}
			return nil
		},
	}

	c.Flags().StringVar(&username, "username", "", "admin username (default from config)")
	c.Flags().StringVar(&password, "password", "", "admin password (default from config)")
	c.Flags().StringVar(&email, "email", "", "admin email")
	c.Flags().StringVar(&name, "name", "", "display name")
	return c
}
