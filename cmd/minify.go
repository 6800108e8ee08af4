package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"minipress/internal/minifier"
	"minipress/internal/session"
)

// minifyOutput is the structured form of a minify run.
type minifyOutput struct {
	minifier.Result `yaml:",inline"`
	Savings         float64 `json:"savings" yaml:"savings"`
	GzipOriginal    int     `json:"gzip_original,omitempty" yaml:"gzip_original,omitempty"`
	GzipMinified    int     `json:"gzip_minified,omitempty" yaml:"gzip_minified,omitempty"`
}

func newMinifyCmd() *cobra.Command {
	var (
		flags  minifyFlags
		gzip   bool
		format string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "minify [file|-]",
		Short: "Minify a file or standard input",
		Long: `Minify a file, or standard input when the file is "-" or omitted, and
print the result to standard output. The size summary goes to standard error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := session.Stdin
			if len(args) == 1 {
				path = args[0]
			}

			s := currentSettings()
			opts, err := flags.options(cmd, s)
			if err != nil {
				return err
			}
			engine, err := newEngine(s)
			if err != nil {
				return err
			}

			text, err := session.ReadFile(cmd.Context(), path)
			if err != nil {
				return err
			}

			res, err := engine.Minify(cmd.Context(), text, opts)
			if errors.Is(err, minifier.ErrEmptyInput) {
				logger().Debug("minify.empty_input", "path", path)
				return nil
			}
			if err != nil {
				return err
			}

			out := minifyOutput{Result: *res, Savings: res.Savings()}
			if gzipEnabled(cmd, gzip, s) {
				if out.GzipOriginal, out.GzipMinified, err = minifier.GzipSizes(text, res); err != nil {
					return err
				}
			}

			return writeMinifyOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, format, quiet)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&gzip, gzipFlagName, false, "also report gzip compressed sizes (config gzip)")
	cmd.Flags().StringVarP(&format, formatFlagName, "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the size summary")

	return cmd
}

func writeMinifyOutput(stdout, stderr io.Writer, out minifyOutput, format string, quiet bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "yaml", "yml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()

	case "text", "":
		p := newPrinter(stderr)
		if out.Output == "" {
			p.Warning("No output generated")
			return nil
		}
		fmt.Fprintln(stdout, out.Output)
		if quiet {
			return nil
		}
		p.Stats(out.Summary())
		if out.GzipOriginal > 0 {
			p.Stats(fmt.Sprintf("Gzip: %s -> %s",
				minifier.FormatBytes(out.GzipOriginal), minifier.FormatBytes(out.GzipMinified)))
		}
		return nil
	}

	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}
