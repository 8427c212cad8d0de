package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockspiral/internal/core"
	"github.com/vovakirdan/blockspiral/internal/placement"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored blocks",
	Long: `Fetch every block from the store and print it in creation order,
followed by the cursor the next placement would continue from.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	c := newClient(cfg)

	blocks, err := c.List(context.Background())
	if err != nil {
		fatalf("Error: %v", err)
	}

	if len(blocks) == 0 {
		fmt.Println("No blocks stored.")
		return
	}

	fmt.Println(blockTable(blocks))
	fmt.Printf("\n%d blocks, cursor %s\n", len(blocks), placement.Reconstruct(blocks))
}

// blockTable renders blocks with a color swatch per row.
func blockTable(blocks []core.Block) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Position", "Color", "", "ID").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 3 {
				return cell.Background(lipgloss.Color(blocks[row].Color.String()))
			}
			return cell
		})

	for i, b := range blocks {
		t.Row(strconv.Itoa(i+1), b.Position.String(), b.Color.String(), "  ", b.ID)
	}
	return t.String()
}
