package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
)

func newCourtroomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courtroom",
		Short: "Manage the courtroom catalog",
	}
	cmd.AddCommand(newCourtroomAddCmd())
	cmd.AddCommand(newCourtroomListCmd())
	return cmd
}

func newCourtroomAddCmd() *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "add",
		Short: "Register a courtroom",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadServices()
			if err != nil {
				return err
			}
			defer e.close()

			room, err := e.svc.Courtroom.Create(commandContext(cmd), &dto.CreateCourtroomRequest{Name: name}, "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created courtroom %q (%s)\n", room.Name, room.ID)
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "", "courtroom name")
	_ = c.MarkFlagRequired("name")
	return c
}

func newCourtroomListCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List courtrooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadServices()
			if err != nil {
				return err
			}
			defer e.close()

			rooms, err := e.svc.Courtroom.List(commandContext(cmd), all)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tACTIVE\tID")
			for _, r := range rooms {
				fmt.Fprintf(tw, "%s\t%t\t%s\n", r.Name, r.IsActive, r.ID)
			}
			return tw.Flush()
		},
	}

	c.Flags().BoolVar(&all, "all", false, "include inactive courtrooms")
	return c
}
