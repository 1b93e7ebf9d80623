package cli

import (
	"github.com/fift2939-create/ather1/internal/drafting"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/locale"
	"github.com/fift2939-create/ather1/internal/logger"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Lang drives every label, the reading direction and budget grouping.
	Lang locale.Language

	// Config is this session's copy. A key entered on the setup screen is
	// stored here and nowhere else.
	Config llm.Config

	Log *logger.Logger

	// OutDir receives exported files.
	OutDir string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the rows left for view content after the header
// (2 lines), the message line (1) and the status bar (2).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 3)
}

// Drafters builds drafting services for the session configuration.
func (s *SharedState) Drafters() (drafting.Drafters, error) {
	return s.App.drafters(s.Config, s.Log)
}
