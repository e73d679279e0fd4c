package cmd

import (
	"github.com/spf13/cobra"

	"topo-field/term"
)

func termCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Render the animation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := mustMode()
			if err != nil {
				return err
			}
			return term.Run(cmd.Context(), term.Options{Settings: settings, Mode: mode})
		},
	}
}
