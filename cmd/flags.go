package cmd

import (
	"github.com/spf13/cobra"

	"minipress/internal/config"
	"minipress/internal/detect"
	"minipress/internal/minifier"
)

const (
	typeFlagName        = "type"
	restructureFlagName = "restructure"
	commentsFlagName    = "comments"
	gzipFlagName        = "gzip"
	formatFlagName      = "format"
)

// minifyFlags are the options shared by every command that minifies.
type minifyFlags struct {
	fileType    string
	restructure bool
	comments    bool
}

func (f *minifyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.fileType, typeFlagName, "t", "auto", "file type: auto, html, css or js")
	cmd.Flags().BoolVar(&f.restructure, restructureFlagName, config.DefaultCSSRestructure, "apply structural CSS optimisations (config css.restructure)")
	cmd.Flags().BoolVar(&f.comments, commentsFlagName, config.DefaultCSSComments, "keep /*! license comments in CSS (config css.comments)")
}

// options merges the flags that were set on the command line over the
// configured settings.
func (f *minifyFlags) options(cmd *cobra.Command, s config.Settings) (minifier.Options, error) {
	fileType, err := detect.Parse(f.fileType)
	if err != nil {
		return minifier.Options{}, err
	}

	css := s.CSS
	if cmd.Flags().Changed(restructureFlagName) {
		css.Restructure = f.restructure
	}
	if cmd.Flags().Changed(commentsFlagName) {
		css.Comments = f.comments
	}

	return minifier.Options{Type: fileType, CSS: css}, nil
}

// gzipEnabled returns the --gzip flag when set, otherwise the configured value.
func gzipEnabled(cmd *cobra.Command, flag bool, s config.Settings) bool {
	if cmd.Flags().Changed(gzipFlagName) {
		return flag
	}
	return s.Gzip
}
