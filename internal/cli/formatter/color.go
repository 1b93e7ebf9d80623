package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fift2939-create/ather1/internal/domain"
)

// Indigo palette, matching the exported document header shading.
var (
	ColorAccent = lipgloss.Color("#818cf8")
	ColorIndigo = lipgloss.Color("#1E1B4B")
	ColorGreen  = lipgloss.Color("#34d399")
	ColorYellow = lipgloss.Color("#fbbf24")
	ColorRed    = lipgloss.Color("#f87171")
	ColorDim    = lipgloss.Color("#94a3b8")
	ColorFg     = lipgloss.Color("#e2e8f0")
)

var (
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleTab    = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
	StyleTabOn  = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorIndigo).Bold(true).Padding(0, 1)
	StyleCursor = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorIndigo)
)

// ImpactStyle colors a risk by its impact level.
func ImpactStyle(impact domain.Impact) lipgloss.Style {
	switch impact {
	case domain.ImpactHigh:
		return StyleRed
	case domain.ImpactMedium:
		return StyleYellow
	case domain.ImpactLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// Header renders a section header with an underline sized to the text.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// ErrorLine is the single dismissible error line shown after a failed call.
func ErrorLine(msg string) string {
	return StyleRed.Render("✖ " + msg)
}

// Success renders a confirmation with a check mark.
func Success(msg string) string {
	return StyleGreen.Render("✔") + " " + msg
}
