package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is a plain aligned table. Numeric columns are padded on the left so
// amounts line up; RTL reverses the column order for right-to-left reading.
type Table struct {
	Headers  []string
	Rows     [][]string
	Numeric  map[int]bool
	RTL      bool
	Selected int // row index to highlight, -1 for none

	// Gutter reserves a leading column for CursorMarker on the selected row.
	Gutter bool
}

// CursorMarker points at the selected row of a list or table.
const CursorMarker = "▸ "

// RenderTable renders headers and rows with no highlighted row.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows, Selected: -1}.Render()
}

func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	order := make([]int, cols)
	for i := range order {
		order[i] = i
		if t.RTL {
			order[i] = cols - 1 - i
		}
	}

	var b strings.Builder
	b.WriteString(t.gutter(false) + t.line(order, widths, t.Headers, func(s string) string { return StyleHeader.Render(s) }))
	b.WriteString("\n")

	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	b.WriteString(t.gutter(false) + t.line(order, widths, seps, func(s string) string { return StyleDim.Render(s) }))
	b.WriteString("\n")

	for ri, row := range t.Rows {
		render := func(s string) string { return s }
		line := t.line(order, widths, row, render)
		if ri == t.Selected {
			line = StyleCursor.Render(line)
		}
		line = t.gutter(ri == t.Selected) + line
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (t Table) gutter(selected bool) string {
	switch {
	case !t.Gutter:
		return ""
	case selected:
		return StyleAccent.Render(CursorMarker)
	}
	return strings.Repeat(" ", lipgloss.Width(CursorMarker))
}

func (t Table) line(order, widths []int, cells []string, render func(string) string) string {
	parts := make([]string, 0, len(order))
	for _, i := range order {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0))
		if t.Numeric[i] || t.RTL {
			parts = append(parts, pad+render(cell))
		} else {
			parts = append(parts, render(cell)+pad)
		}
	}
	return strings.Join(parts, strings.Repeat(" ", colGap))
}
