package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var flagFieldTable bool

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Print the generated block layout",
	Long: `Generate the block field for the current config and seed and print it
as a colored map, one glyph per block. The same seed always prints the
same field.

Examples:
  breakout field
  breakout field --seed 42 --table
  breakout field --preset classic`,
	Args: cobra.NoArgs,
	Run:  runField,
}

func init() {
	fieldCmd.Flags().BoolVar(&flagFieldTable, "table", false, "Also list every block with its position and tier")
}

func runField(cmd *cobra.Command, _ []string) {
	cfg, err := loadRuntime(cmd, 0, 0)
	if err != nil {
		fail("%v", err)
	}

	field := breakout.GenerateField(cfg.Blocks, cfg.Seed, cfg.FieldW, cfg.FieldH)

	title := lipgloss.NewStyle().Bold(true)
	fmt.Println(title.Render(fmt.Sprintf("%d blocks, seed %d, playfield %dx%d",
		field.Len(), cfg.Seed, cfg.FieldW, cfg.FieldH)))
	fmt.Println()
	fmt.Println(fieldMap(field))
	fmt.Println()
	fmt.Println(tierLegend())

	if flagFieldTable {
		fmt.Println()
		fmt.Println(blockTable(field).View())
	}
}

// fieldMap draws one colored glyph per block, one line per row.
func fieldMap(field *breakout.BlockField) string {
	var sb strings.Builder
	lastY := -1
	for _, b := range field.Live() {
		r := b.Rect()
		if lastY >= 0 && r.Y != lastY {
			sb.WriteRune('\n')
		}
		lastY = r.Y
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(b.FillColor().Hex()))
		sb.WriteString(style.Render(string(breakout.BlockChar) + string(breakout.BlockChar)))
	}
	return sb.String()
}

func tierLegend() string {
	parts := make([]string, 0, len(breakout.Tiers))
	for _, t := range breakout.Tiers {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color().Hex()))
		parts = append(parts, style.Render(string(breakout.BlockChar))+" "+t.String())
	}
	return strings.Join(parts, "   ")
}

func blockTable(field *breakout.BlockField) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "X", Width: 6},
		{Title: "Y", Width: 6},
		{Title: "Tier", Width: 10},
	}

	rows := make([]table.Row, 0, field.Len())
	for i, b := range field.Live() {
		r := b.Rect()
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.X),
			strconv.Itoa(r.Y),
			b.Tier().String(),
		})
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
}
