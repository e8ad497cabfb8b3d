package tui

import (
	"github.com/charmbracelet/bubbles/table"
)

// Fixed column widths
const (
	checkColumnWidth = 3
	yearColumnWidth  = 10

	// header, table header + border, footer, status, help
	ChromeHeight = 9

	// Cell padding added by the default table styles (left + right)
	cellPadding = 2

	MinTableWidth = 60
)

// Flexible column shares, in percent of the width left after fixed columns
const (
	titlePercent        = 30
	originPercent       = 15
	artistPercent       = 30
	inscriptionsPercent = 25
)

// tableColumns computes column widths for the given total width
func tableColumns(width int) []table.Column {
	width = max(width, MinTableWidth)

	fixed := checkColumnWidth + 2*yearColumnWidth
	available := width - fixed - 7*cellPadding
	available = max(available, 20)

	title := available * titlePercent / 100
	origin := available * originPercent / 100
	artist := available * artistPercent / 100
	inscriptions := available - title - origin - artist

	return []table.Column{
		{Title: "", Width: checkColumnWidth},
		{Title: "Title", Width: title},
		{Title: "Place of Origin", Width: origin},
		{Title: "Artist", Width: artist},
		{Title: "Inscriptions", Width: inscriptions},
		{Title: "Start Date", Width: yearColumnWidth},
		{Title: "End Date", Width: yearColumnWidth},
	}
}

// updateLayout sizes the table to the terminal and the current page size
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}

	width := m.Width - 2 // app padding
	m.Table.SetColumns(tableColumns(width))
	m.Table.SetWidth(width)

	height := m.Height - ChromeHeight
	height = min(height, m.Browser.State().PageSize)
	m.Table.SetHeight(max(height, 3))

	m.Help.Width = width
	m.Filter.Width = max(width-4, 10)
	m.refreshTable()
}
