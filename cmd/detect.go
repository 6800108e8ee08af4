package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minipress/internal/detect"
	"minipress/internal/session"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file|-]",
		Short: "Print the detected file type",
		Long: `Print the type minipress would minify the input as: html, css or js.
The decision is made from the content only, never from the file name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := session.Stdin
			if len(args) == 1 {
				path = args[0]
			}

			text, err := session.ReadFile(cmd.Context(), path)
			if err != nil {
				return err
			}

			fileType := detect.Detect(text)
			logger().Debug("detect", "path", path, "type", fileType.String())
			fmt.Fprintln(cmd.OutOrStdout(), fileType)
			return nil
		},
	}
}
