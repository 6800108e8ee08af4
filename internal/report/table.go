package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"minipress/internal/minifier"
)

// WriteTable writes r as an aligned terminal table with a totals footer.
func WriteTable(w io.Writer, r *Report) error {
	header := []string{"Path", "Type", "Original", "Minified", "Saved"}
	align := tw.Alignment{tw.AlignLeft, tw.AlignCenter, tw.AlignRight, tw.AlignRight, tw.AlignRight}
	if r.Gzip {
		header = append(header, "Gzip Original", "Gzip Minified")
		align = append(align, tw.AlignRight, tw.AlignRight)
	}
	header = append(header, "Status")
	align = append(align, tw.AlignLeft)

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.On},
				Lines:      tw.Lines{ShowHeaderLine: tw.On, ShowFooterLine: tw.On},
			},
		})),
		tablewriter.WithAlignment(align),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	table.Header(header)

	for _, e := range r.Entries {
		row := []string{
			e.Path,
			typeName(e),
			size(e, e.OriginalSize),
			size(e, e.MinifiedSize),
			savings(e),
		}
		if r.Gzip {
			row = append(row, size(e, e.GzipOriginal), size(e, e.GzipMinified))
		}
		row = append(row, status(e))
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add row for %s: %w", e.Path, err)
		}
	}

	footer := []string{
		fmt.Sprintf("%d files", r.Totals.Files),
		"",
		minifier.FormatBytes(r.Totals.OriginalSize),
		minifier.FormatBytes(r.Totals.MinifiedSize),
		fmt.Sprintf("%.1f%%", r.Totals.Savings),
	}
	if r.Gzip {
		footer = append(footer,
			minifier.FormatBytes(r.Totals.GzipOriginal),
			minifier.FormatBytes(r.Totals.GzipMinified))
	}
	footer = append(footer, fmt.Sprintf("%d failed", r.Totals.Failed))
	table.Footer(footer)

	return table.Render()
}
