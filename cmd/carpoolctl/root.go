package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carpoolctl",
		Short:         "Carpool groups and volunteer reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAssignCmd(), newRemindCmd())
	return root
}
