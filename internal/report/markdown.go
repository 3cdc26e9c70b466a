package report

import (
	"io"
	"strconv"

	"github.com/CuriousSingularity/ig-tools/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and GitHub-flavored
// markdown output.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.DetectReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeProfiles(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the run summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.DetectReport) {
	md.H1("Non-Follower Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Followers export", "`" + report.FollowersPath + "`"},
			{"Followings export", "`" + report.FollowingsPath + "`"},
			{"Detected at", report.DetectedAt.Format("2006-01-02 15:04:05 MST")},
			{"Non-followers", strconv.Itoa(report.Count())},
		},
	})
	md.PlainText("")
}

// writeProfiles writes the detected profile table, or a short note when
// nothing was found.
func (w *MarkdownWriter) writeProfiles(md *markdown.Markdown, report *model.DetectReport) {
	md.H2("Profiles")
	md.PlainText("")

	if report.IsEmpty() {
		md.PlainText("Everyone you follow follows you back.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, report.Count())
	for _, p := range report.Profiles {
		username := p.Username
		if username == "" {
			username = "-"
		}
		rows = append(rows, []string{username, p.URL})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Username", "Profile"},
		Rows:   rows,
	})
	md.PlainText("")
}
