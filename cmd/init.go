package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minipress/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		force bool
		user  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default minipress.yaml",
		Long: `Write a minipress.yaml with every setting at its default value to the
current directory, or to the per-user config directory with --user.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.FileName
			if user {
				path = config.UserFile()
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			v := viper.New()
			config.SetDefaults(v)
			if err := config.WriteFile(v, path, force); err != nil {
				var exists viper.ConfigFileAlreadyExistsError
				if errors.As(err, &exists) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}

			p := newPrinter(cmd.OutOrStdout())
			p.Success("Created %s", abs)
			p.Info("Edit it to change the engine, theme, CSS options and audit settings")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&user, "user", false, "write to "+config.UserFile())

	return cmd
}
