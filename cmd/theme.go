package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minipress/internal/config"
	"minipress/internal/ui"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [name]",
		Short:     "Show or set the colour theme",
		Long:      "Without an argument, list the themes and mark the current one. With a name, save it as the default theme.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: ui.ThemeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				current := currentTheme().Name
				for _, name := range ui.ThemeNames() {
					marker := " "
					if name == current {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s\n", marker, name)
				}
				return nil
			}

			theme, err := ui.LookupTheme(args[0])
			if err != nil {
				return err
			}

			path, err := config.SaveTheme(viper.GetViper(), theme.Name)
			if err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}

			logger().Info("theme.saved", "theme", theme.Name, "path", path)
			ui.NewPrinter(theme, out).Success("Theme set to %s (%s)", theme.Name, path)
			return nil
		},
	}
}
