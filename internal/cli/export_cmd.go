package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fift2939-create/ather1/internal/cli/formatter"
	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/export"
	"github.com/fift2939-create/ather1/internal/locale"
)

func newExportCmd(app *App, lang *languageFlag) *cobra.Command {
	var in, outDir string
	var docx, xlsx bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the proposal document and budget spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !docx && !xlsx {
				return fmt.Errorf("nothing to export: both --docx and --xlsx are off")
			}
			p, err := readProposal(in)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			paths, err := exportFiles(p, lang.Language(), outDir, docx, xlsx)
			if err != nil {
				return err
			}

			l := lang.Language().Labels()
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(l.Exported+" "+path))
			}
			app.log().Info("proposal exported", "files", len(paths), "dir", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "proposal JSON file (required)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "directory for the exported files")
	cmd.Flags().BoolVar(&docx, "docx", true, "write the Word document")
	cmd.Flags().BoolVar(&xlsx, "xlsx", true, "write the Excel budget")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// exportFiles renders and writes the requested files concurrently and
// returns their paths, document first.
func exportFiles(p domain.ProjectProposal, lang locale.Language, dir string, docx, xlsx bool) ([]string, error) {
	var docPath, sheetPath string
	var g errgroup.Group

	if docx {
		docPath = filepath.Join(dir, export.DocumentFileName(p.Title))
		g.Go(func() error {
			data, err := export.ToDocument(p, lang)
			if err != nil {
				return fmt.Errorf("building document: %w", err)
			}
			return os.WriteFile(docPath, data, 0o644)
		})
	}
	if xlsx {
		sheetPath = filepath.Join(dir, export.SpreadsheetFileName(p.Title))
		g.Go(func() error {
			data, err := export.ToSpreadsheet(p, lang)
			if err != nil {
				return fmt.Errorf("building spreadsheet: %w", err)
			}
			return os.WriteFile(sheetPath, data, 0o644)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var paths []string
	for _, path := range []string{docPath, sheetPath} {
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}
