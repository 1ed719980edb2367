package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/srharri3/pumsflow/internal/common"
	"github.com/srharri3/pumsflow/internal/model"
)

// Run displays the dataset in an interactive viewer until the user quits.
func Run(ctx context.Context, dataset *model.Dataset) error {
	if dataset == nil || dataset.NumColumns() == 0 {
		return fmt.Errorf("nothing to view: %w", common.ErrEmptyTable)
	}

	p := tea.NewProgram(
		NewViewer(dataset),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}

	return nil
}
