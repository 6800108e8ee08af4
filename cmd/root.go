// Package cmd provides the root command and CLI setup for minipress.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"minipress/internal/config"
	"minipress/internal/minifier"
	"minipress/internal/ui"
)

// Version is set by ldflags during build
var Version = "dev"

const (
	configFlagName  = "config"
	engineFlagName  = "engine"
	themeFlagName   = "theme"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"
)

var (
	configFileFlag string
	engineFlag     string
	themeFlag      string
	verboseFlag    bool
	logFileFlag    string
)

const rootDescription = `  Minify HTML, CSS and JavaScript from the command line.

  The file type is detected from the content: a document starting with
  <!DOCTYPE html> or <html> is HTML, text with selector blocks such as
  ".nav {" is CSS, and everything else is JavaScript. Use --type to override.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	setupViper()
	banner := (&ui.Printer{Theme: ui.DefaultTheme(), Plain: true}).Banner()

	cmd := &cobra.Command{
		Use:           "minipress",
		Short:         "HTML, CSS and JavaScript minifier",
		Long:          banner + "\n\n" + rootDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(configFileFlag); err != nil {
				return err
			}
			configureLogger(currentSettings().Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	cmd.AddCommand(
		newMinifyCmd(),
		newDetectCmd(),
		newAuditCmd(),
		newWatchCmd(),
		newTUICmd(),
		newThemeCmd(),
		newInitCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configFileFlag, configFlagName, "", "config file (default ./minipress.yaml or "+config.UserFile()+")")

	cmd.PersistentFlags().StringVarP(&engineFlag, engineFlagName, "e", viper.GetString(config.EngineKey), "minifier engine: tdewolff, basic or none")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(engineFlagName), config.EngineKey)

	cmd.PersistentFlags().StringVar(&themeFlag, themeFlagName, viper.GetString(config.ThemeKey), "colour theme: white, dark or mono")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(themeFlagName), config.ThemeKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(config.LogVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), config.LogVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(config.LogFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), config.LogFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// printError renders err for the user. Minification failures get the longer
// explanation from minifier.UserMessage.
func printError(w io.Writer, err error) {
	p := newPrinter(w)

	var missing *minifier.MissingCollaboratorError
	var failed *minifier.CollaboratorExecutionError
	if errors.As(err, &missing) || errors.As(err, &failed) {
		p.Error("%s", minifier.UserMessage(err))
		return
	}
	p.Error("Error: %v", err)
}
