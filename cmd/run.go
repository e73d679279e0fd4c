//go:build !nowindow

package cmd

import (
	"github.com/spf13/cobra"

	"topo-field/app"
	"topo-field/ui"
)

func init() {
	rootCmd.AddCommand(runCmd())
}

func runCmd() *cobra.Command {
	var (
		fontPath  string
		stateFile string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the animation in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := mustMode()
			if err != nil {
				return err
			}
			g := app.NewGame(app.Options{
				Settings:  settings,
				Mode:      mode,
				Face:      ui.LoadUIFont(fontPath, 14),
				StateFile: stateFile,
			})
			return app.Run(g, settings)
		},
	}

	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType font for the overlay")
	cmd.Flags().StringVar(&stateFile, "load", "", "Start from a saved field state")
	return cmd
}
