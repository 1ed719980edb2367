package cli

import (
	"fmt"
	"strings"

	"github.com/srharri3/pumsflow/internal/model"
)

// RenderTable renders headers and rows as an aligned text table.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(joinCells(headers, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(TableCellStyle.Render(joinCells(row, widths)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDataset renders up to maxRows rows of a dataset as a text table,
// with a footer noting truncation when the dataset is larger.
func RenderDataset(dataset *model.Dataset, maxRows int) string {
	total := dataset.NumRows()
	shown := total
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}

	rows := make([][]string, 0, shown)
	for i := 0; i < shown; i++ {
		rows = append(rows, dataset.Row(i))
	}

	out := RenderTable(dataset.Names(), rows)
	if shown < total {
		out += SubtleStyle.Render(fmt.Sprintf("showing %d of %d rows", shown, total)) + "\n"
	}

	return out
}

func joinCells(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
