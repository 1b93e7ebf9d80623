package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fift2939-create/ather1/internal/locale"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(title) + "\n\n" + content)
}

// Align pads every line of s to width, flush right for right-to-left
// languages. A zero width leaves s as is.
func Align(s string, width int, lang locale.Language) string {
	if width <= 0 || !lang.IsRTL() {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, l)
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Bullets renders items as a dashed list, skipping blanks.
func Bullets(items []string) string {
	var b strings.Builder
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		b.WriteString(StyleAccent.Render("•") + " " + it + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
