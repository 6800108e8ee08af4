package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minipress/internal/batch"
	"minipress/internal/report"
)

const auditLongDescription = `Minify every matching file in memory and report how much each one shrinks.
Nothing is written to disk.

Patterns are relative to --dir and support ** for recursive matching:
  - site             every file below site/
  - **/*.css         every CSS file
  - assets/**/*.js   every JavaScript file below assets/

Only .html, .htm, .css, .js, .mjs and .cjs files are considered. A file that
fails to minify is reported in its row and the command exits non-zero.`

func newAuditCmd() *cobra.Command {
	var (
		flags    minifyFlags
		dir      string
		excludes []string
		workers  int
		format   string
		gzip     bool
	)

	cmd := &cobra.Command{
		Use:   "audit <patterns...>",
		Short: "Report minification savings for a set of files",
		Long:  auditLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := currentSettings()

			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, s)
			if err != nil {
				return err
			}
			engine, err := newEngine(s)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = s.Audit.Workers
			}
			allExcludes := append(append([]string{}, s.Audit.Exclude...), excludes...)

			files, err := batch.ExpandIncludes(dir, args, allExcludes)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				newPrinter(cmd.ErrOrStderr()).Warning("No minifiable files match %v", args)
				return nil
			}

			p := newPrinter(cmd.ErrOrStderr())
			if outFormat == report.FormatTable {
				fmt.Fprintln(p.Out, p.Header(fmt.Sprintf("Auditing %d file(s) in %s", len(files), dir)))
			}

			runner := batch.NewRunner(engine, batch.Options{
				BaseDir:  dir,
				Workers:  workers,
				Gzip:     gzipEnabled(cmd, gzip, s),
				Minifier: opts,
			}, logger())

			entries, err := runner.Run(cmd.Context(), files)
			if err != nil {
				return err
			}

			r := report.New(entries, gzipEnabled(cmd, gzip, s))
			if err := report.Write(cmd.OutOrStdout(), r, outFormat); err != nil {
				return err
			}
			if r.HasFailures() {
				return fmt.Errorf("%d of %d file(s) failed to minify", r.Totals.Failed, r.Totals.Files)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "directory the patterns are relative to")
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "x", nil, "exclude files matching a glob (can be repeated, adds to audit.exclude)")
	cmd.Flags().IntVarP(&workers, "workers", "w", batch.DefaultWorkers, "number of files minified in parallel (config audit.workers)")
	cmd.Flags().StringVarP(&format, formatFlagName, "f", string(report.FormatTable), "report format: table, markdown, json or yaml")
	cmd.Flags().BoolVar(&gzip, gzipFlagName, false, "also report gzip compressed sizes (config gzip)")

	return cmd
}
