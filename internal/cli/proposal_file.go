package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fift2939-create/ather1/internal/domain"
)

// readProposal loads a proposal saved by "athar draft --out".
func readProposal(path string) (domain.ProjectProposal, error) {
	var p domain.ProjectProposal
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading proposal: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing proposal %s: %w", path, err)
	}
	return p, nil
}

func writeProposal(path string, p domain.ProjectProposal) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding proposal: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing proposal: %w", err)
	}
	return nil
}
