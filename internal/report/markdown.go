package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"minipress/internal/minifier"
)

// WriteMarkdown writes r as a Markdown document with a summary and a
// per-file table.
func WriteMarkdown(w io.Writer, r *Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Minification Audit")
	md.PlainText("")

	writeMarkdownSummary(md, r)
	writeMarkdownFiles(md, r)
	writeMarkdownFailures(md, r)

	return md.Build()
}

func writeMarkdownSummary(md *markdown.Markdown, r *Report) {
	md.H2("Summary")
	md.PlainText("")

	rows := [][]string{
		{"Files", strconv.Itoa(r.Totals.Files)},
		{"Minified", strconv.Itoa(r.Totals.Minified)},
		{"Skipped", strconv.Itoa(r.Totals.Skipped)},
		{"Failed", strconv.Itoa(r.Totals.Failed)},
		{"Original", minifier.FormatBytes(r.Totals.OriginalSize)},
		{"Minified size", minifier.FormatBytes(r.Totals.MinifiedSize)},
		{"**Saved**", fmt.Sprintf("**%.1f%%**", r.Totals.Savings)},
	}
	if r.Gzip {
		rows = append(rows,
			[]string{"Gzip original", minifier.FormatBytes(r.Totals.GzipOriginal)},
			[]string{"Gzip minified", minifier.FormatBytes(r.Totals.GzipMinified)},
		)
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if r.HasFailures() {
		md.Warningf("%d file(s) could not be minified.", r.Totals.Failed)
		md.PlainText("")
	}
}

func writeMarkdownFiles(md *markdown.Markdown, r *Report) {
	md.H2("Files")
	md.PlainText("")

	if len(r.Entries) == 0 {
		md.PlainText("No matching files.")
		md.PlainText("")
		return
	}

	header := []string{"Path", "Type", "Original", "Minified", "Saved"}
	if r.Gzip {
		header = append(header, "Gzip Original", "Gzip Minified")
	}
	header = append(header, "Status")

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		row := []string{
			"`" + e.Path + "`",
			typeName(e),
			size(e, e.OriginalSize),
			size(e, e.MinifiedSize),
			savings(e),
		}
		if r.Gzip {
			row = append(row, size(e, e.GzipOriginal), size(e, e.GzipMinified))
		}
		row = append(row, status(e))
		rows = append(rows, row)
	}

	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")
}

func writeMarkdownFailures(md *markdown.Markdown, r *Report) {
	if !r.HasFailures() {
		return
	}

	md.H2("Failures")
	md.PlainText("")

	var items []string
	for _, e := range r.Entries {
		if e.Error != "" {
			items = append(items, fmt.Sprintf("`%s`: %s", e.Path, e.Error))
		}
	}
	md.BulletList(items...)
	md.PlainText("")
}
