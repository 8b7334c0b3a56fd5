package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
	headerStyle = lipgloss.NewStyle().Reverse(true).Align(lipgloss.Center).Padding(0, 2)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	fadedStyle  = cellStyle.Faint(true)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// newPlainTable creates the standard report table: reverse-video header and
// alternating faint rows. Columns take the given alignments; columns beyond
// the list repeat the last alignment (default left).
func newPlainTable(alignments ...lipgloss.Position) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row < 0:
				s = headerStyle
			case row%2 == 0:
				s = cellStyle
			default:
				s = fadedStyle
			}
			return s.Align(alignAt(alignments, col))
		})
}

func alignAt(alignments []lipgloss.Position, col int) lipgloss.Position {
	if len(alignments) == 0 {
		return lipgloss.Left
	}
	if col >= len(alignments) {
		col = len(alignments) - 1
	}
	return alignments[col]
}
