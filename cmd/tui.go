package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minipress/internal/config"
	"minipress/internal/session"
	"minipress/internal/tui"
)

func newTUICmd() *cobra.Command {
	var flags minifyFlags

	cmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "Open the interactive editor",
		Long: `Open a full screen editor: paste code on the left, press ctrl+r to minify it
and read the result on the right.

  ctrl+r  minify        ctrl+y  copy the output
  ctrl+t  next theme    ctrl+l  clear
  esc     quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := currentSettings()
			opts, err := flags.options(cmd, s)
			if err != nil {
				return err
			}
			engine, err := newEngine(s)
			if err != nil {
				return err
			}

			sess := session.New(engine, opts, logger())
			defer sess.Close()

			deps := tui.Deps{
				Session: sess,
				Theme:   currentTheme(),
				Logger:  logger(),
				SaveTheme: func(name string) (string, error) {
					return config.SaveTheme(viper.GetViper(), name)
				},
			}
			if len(args) == 1 {
				deps.File = args[0]
			}

			logger().Info("tui.start", "file", deps.File, "engine", s.Engine)
			return tui.Run(cmd.Context(), deps)
		},
	}

	flags.register(cmd)
	return cmd
}
