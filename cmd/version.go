package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minipress %s\n", Version)

			if info, ok := debug.ReadBuildInfo(); ok {
				p := newPrinter(cmd.OutOrStdout())
				p.KeyValue("Go", info.GoVersion)
				p.KeyValue("Engine", currentSettings().Engine)
			}
		},
	}
}
