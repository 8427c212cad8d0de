package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// Block table layout constants
const (
	tableWidth  = 46 // Panel width including border
	idColWidth  = 12 // IDs are truncated to fit
	minTableRow = 3
)

// newBlockTable creates the block table panel for the given height.
func newBlockTable(t Theme, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Pos", Width: 9},
		{Title: "Color", Width: 8},
		{Title: "ID", Width: idColWidth},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, minTableRow)),
	)
	tbl.SetStyles(t.TableStyles())
	return tbl
}

// blockRows converts blocks to table rows, newest last.
func blockRows(blocks []core.Block) []table.Row {
	rows := make([]table.Row, len(blocks))
	for i, b := range blocks {
		id := b.ID
		if len(id) > idColWidth {
			id = id[:idColWidth-1] + "…"
		}
		if id == "" {
			id = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			b.Position.String(),
			b.Color.String(),
			id,
		}
	}
	return rows
}
