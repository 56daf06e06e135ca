// Package report prints what minigrep found: the header lines echoing the
// query and file path, the file contents, and the diagnostic lines.
package report

import (
	"fmt"
	"io"
	"strings"

	"minigrep/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the report to a single writer.
type Printer struct {
	out     io.Writer
	color   bool
	value   lipgloss.Style
	label   lipgloss.Style
	problem lipgloss.Style
}

// NewPrinter creates a Printer for w using the colours of theme. With color
// off, or when w is not a terminal, nothing is styled.
func NewPrinter(w io.Writer, theme map[string]string, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Printer{
		out:     w,
		color:   color,
		value:   base.Foreground(lipgloss.Color(theme["emphasis"])).Bold(true),
		label:   base.Foreground(lipgloss.Color(theme["info"])),
		problem: base.Foreground(lipgloss.Color(theme["error"])).Bold(true),
	}
}

// NewPrinterFromSettings creates a Printer configured by s.
func NewPrinterFromSettings(w io.Writer, s *config.Settings) *Printer {
	return NewPrinter(w, config.GetTheme(s.Output.Theme), s.Output.Color)
}

// Searching prints the two header lines for cfg.
func (p *Printer) Searching(cfg *config.Config) error {
	_, err := fmt.Fprintf(p.out, "%s '%s' \n%s %s\n",
		p.paint(p.label, "Searching for"), p.paint(p.value, cfg.Query()),
		p.paint(p.label, "In file"), p.paint(p.value, cfg.FilePath()))
	return err
}

// Contents prints the file contents, unstyled and unchanged.
func (p *Printer) Contents(text string) error {
	_, err := fmt.Fprintf(p.out, "%s\n%s\n", p.paint(p.label, "With text:"), text)
	return err
}

// Problem prints the diagnostic line for rejected arguments.
func (p *Printer) Problem(err error) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(p.problem, "Problem parsing arguments:"), err)
}

// Failure prints the diagnostic line for a file that could not be read.
func (p *Printer) Failure(err error) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(p.problem, "Problem reading file:"), err)
}

// paint styles s line by line so multi-line values are not padded to a
// common width. Values with carriage returns are left alone.
func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color || s == "" || strings.Contains(s, "\r") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
