package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorBlue60 = "#4589ff"
	colorGray60 = "#8d8d8d"
)

type reportWriter interface {
	WriteReport(r Report) error
	WriteSummary(s Summary) error
}

func newReportWriter(format string, w io.Writer) reportWriter {
	if format == FormatDot {
		return &dotWriter{w: w}
	}

	return newTextWriter(w)
}

// textWriter writes reports for people to read. Styles are only
// rendered when w is a terminal that supports them
type textWriter struct {
	w       io.Writer
	heading lipgloss.Style
	label   lipgloss.Style
}

func newTextWriter(w io.Writer) *textWriter {
	renderer := lipgloss.NewRenderer(w)

	return &textWriter{
		w:       w,
		heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue60)),
		label:   renderer.NewStyle().Foreground(lipgloss.Color(colorGray60)).Width(10),
	}
}

func (t *textWriter) line(label string, value interface{}) string {
	return fmt.Sprintf("  %s %v\n", t.label.Render(label), value)
}

func (t *textWriter) WriteReport(r Report) error {
	var sb strings.Builder

	sb.WriteString(t.heading.Render(fmt.Sprintf("remove %s", r.Scenario.Remove)))
	sb.WriteString("\n")
	sb.WriteString(t.line("preorder", strings.Join(r.Preorder, " ")))
	sb.WriteString(t.line("inorder", strings.Join(r.Inorder, " ")))
	sb.WriteString(t.line("postorder", strings.Join(r.Postorder, " ")))
	sb.WriteString(t.line("removed", r.Removed))
	sb.WriteString(t.line("inorder", strings.Join(r.After, " ")))

	_, err := io.WriteString(t.w, sb.String())
	return err
}

func (t *textWriter) WriteSummary(s Summary) error {
	var sb strings.Builder

	sb.WriteString(t.heading.Render("summary"))
	sb.WriteString("\n")
	sb.WriteString(t.line("size", s.Size))
	sb.WriteString(t.line("height", s.Height))
	sb.WriteString(t.line("min", s.Min))
	sb.WriteString(t.line("max", s.Max))
	for _, r := range s.Ranges {
		sb.WriteString(t.line("range", fmt.Sprintf("%s %d", r.Range, r.Count)))
	}

	_, err := io.WriteString(t.w, sb.String())
	return err
}

// dotWriter writes one graph per report, preceded by a comment
// describing the scenario
type dotWriter struct {
	w io.Writer
}

func (d *dotWriter) WriteReport(r Report) error {
	_, err := fmt.Fprintf(d.w, "// remove %s: %t\n%s", r.Scenario.Remove, r.Removed, r.Graph)
	return err
}

func (d *dotWriter) WriteSummary(s Summary) error {
	_, err := fmt.Fprintf(d.w, "// size %d height %d\n", s.Size, s.Height)
	return err
}
