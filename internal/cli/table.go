// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/parameq/preset"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// RenderFilters writes a table of the stages of a preset, one row per
// FilterSpec, with arguments in engine order.
func RenderFilters(w io.Writer, specs []preset.FilterSpec) {
	header := []string{"#", "Kind", "Arguments"}
	rows := make([][]string, 0, len(specs))
	for i, s := range specs {
		rows = append(rows, []string{fmt.Sprint(i + 1), s.Kind.String(), strings.Join(s.Args, " ")})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = cellStyle.Inherit(style).Width(widths[i] + cellStyle.GetPaddingRight()).Render(c)
		}
		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
	}

	fmt.Fprintln(w, line(header, headerStyle))
	for _, r := range rows {
		fmt.Fprintln(w, line(r, lipgloss.NewStyle()))
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, KeyStyle.Render("(no filters, audio passes through)"))
	}
}

// RenderWarnings writes one line per parser warning.
func RenderWarnings(w io.Writer, warnings []preset.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "%s %s\n", WarnStyle.Render("Warning:"), warn.String())
	}
}
