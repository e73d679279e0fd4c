package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"topo-field/theme"
)

func themeCmd() *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		mode, err := mustMode()
		if err != nil {
			return err
		}
		showTheme(mode)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the saved theme",
		RunE:  show,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the resolved palette",
			RunE:  show,
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := mustMode()
				if err != nil {
					return err
				}
				return saveTheme(mode.Toggle())
			},
		},
		&cobra.Command{
			Use:   "set <light|dark>",
			Short: "Save a theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := theme.ParseMode(args[0])
				if err != nil {
					return err
				}
				return saveTheme(mode)
			},
		},
	)
	return cmd
}

func showTheme(mode theme.Mode) {
	src := theme.NewSource(settings.Theme)
	printPalette(mode, src.Color(mode), src.Palette(mode))
}

func saveTheme(mode theme.Mode) error {
	if err := theme.SavePrefs(settings.Theme.Prefs, theme.Prefs{Theme: mode}); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", Good.Sprint("saved"), Subtle.Sprint(settings.Theme.Prefs))
	showTheme(mode)
	return nil
}
