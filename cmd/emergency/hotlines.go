package main

import (
	"medvault-client/internal/app/delivery/terminal"
	"medvault-client/internal/app/services/core/emergency"

	"github.com/spf13/cobra"
)

func newHotlinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hotlines",
		Short: "Show the emergency hotline numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			terminal.NewDialogRenderer(cmd.OutOrStdout()).Render(cmd.Context(), emergency.HotlinesDialog())
			return nil
		},
	}
}
