package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xpense/internal/tui/theme"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// RightAlign marks columns padded on the left (numeric columns).
	RightAlign []bool
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
}

func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim)
}

func warnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.Orange)
}

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(50).
		Align(lipgloss.Center).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Active.TextPrimary)
	return border.Render(titleStyle.Render(title))
}

// RenderWarning renders a stderr-bound warning line.
func RenderWarning(msg string) string {
	return warnStyle().Render("  " + msg)
}

// RenderTable renders a bordered table with headers and rows. A row of
// a single "---" cell renders as a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	dim := dimStyle()
	sep := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dim.Render(b.String())
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle().Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(sep("╭", "┬", "╮"))
	b.WriteString("\n")

	if len(t.Headers) > 0 {
		b.WriteString(dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle().Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(sep("├", "┼", "┤"))
		b.WriteString("\n")
	}

	val := valueStyle()
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(sep("├", "┼", "┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if i < len(t.RightAlign) && t.RightAlign[i] {
				b.WriteString(val.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			} else {
				b.WriteString(val.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			}
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(sep("╰", "┴", "╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderHorizontalBar renders one bar of a horizontal chart scaled to
// maxValue over maxWidth cells.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || maxWidth <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	style := lipgloss.NewStyle().Foreground(theme.Active.Accent)
	return style.Render(strings.Repeat("█", barLen))
}
