package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/browser"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
			m.Help.ShowAll = false
		}
		return m, nil

	case StateFiltering:
		return m.handleFilterKey(msg)
	}

	state := m.Browser.State()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		m.Help.ShowAll = true
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.FilterQuery != "" {
			m.clearFilter()
		}
		return m, nil

	// Pages
	case key.Matches(msg, Keys.NextPage):
		next := browser.NextOffset(state.Offset, state.PageSize, state.Total)
		if next == state.Offset {
			return m, nil
		}
		return m, m.changePage(next, state.PageSize)

	case key.Matches(msg, Keys.PrevPage):
		prev := browser.PrevOffset(state.Offset, state.PageSize)
		if prev == state.Offset {
			return m, nil
		}
		return m, m.changePage(prev, state.PageSize)

	case key.Matches(msg, Keys.FirstPage):
		if state.Offset == 0 {
			return m, nil
		}
		return m, m.changePage(0, state.PageSize)

	case key.Matches(msg, Keys.LastPage):
		last := browser.LastOffset(state.Total, state.PageSize)
		if last <= state.Offset {
			return m, nil
		}
		return m, m.changePage(last, state.PageSize)

	case key.Matches(msg, Keys.PageSizeUp), key.Matches(msg, Keys.PageSizeDown):
		step := 1
		if key.Matches(msg, Keys.PageSizeDown) {
			step = -1
		}
		size := nextPageSize(state.PageSize, step)
		if size == state.PageSize {
			return m, nil
		}
		cmd := m.changePage(browser.ResizeOffset(state.Offset, size), size)
		m.updateLayout()
		return m, cmd

	case key.Matches(msg, Keys.Reload):
		return m, m.reload()

	// Selection
	case key.Matches(msg, Keys.Toggle):
		if a, ok := m.cursorArtwork(); ok {
			m.Browser.Toggle(a.ID)
			m.refreshTable()
		}
		return m, nil

	case key.Matches(msg, Keys.SelectAll):
		m.Browser.SelectAllVisible()
		m.refreshTable()
		return m, nil

	case key.Matches(msg, Keys.DeselectAll):
		m.Browser.DeselectAllVisible()
		m.refreshTable()
		return m, nil

	case key.Matches(msg, Keys.Clear):
		m.Browser.ClearSelection()
		m.refreshTable()
		return m.setStatus("Selection cleared", false)

	case key.Matches(msg, Keys.Export):
		return m.startExport()

	// View
	case key.Matches(msg, Keys.Sort):
		m.SortField = m.SortField.Next()
		m.refreshTable()
		return m, nil

	case key.Matches(msg, Keys.SortDir):
		m.SortDir = m.SortDir.Flip()
		m.refreshTable()
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.State = StateFiltering
		m.Filter.SetValue(m.FilterQuery)
		return m, m.Filter.Focus()
	}

	// Row movement goes to the table
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// handleFilterKey routes input to the filter box
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.clearFilter()
		return m, nil

	case key.Matches(msg, Keys.Accept):
		// Keep the query, return keys to the table
		m.Filter.Blur()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	if q := m.Filter.Value(); q != m.FilterQuery {
		m.FilterQuery = q
		m.refreshTable()
		m.Table.SetCursor(0)
	}
	return m, cmd
}

// clearFilter drops the filter query and leaves filter mode
func (m *Model) clearFilter() {
	m.Filter.Blur()
	m.Filter.SetValue("")
	m.FilterQuery = ""
	m.State = StateBrowsing
	m.refreshTable()
}

// startExport kicks off an export of the current selection
func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.Exporting {
		return m, nil
	}
	ids := m.Browser.SelectedIDs()
	if len(ids) == 0 {
		return m.setStatus("Nothing selected to export", true)
	}
	m.Exporting = true
	m.showStatus(fmt.Sprintf("Exporting %d artworks...", len(ids)), false)
	return m, ExportCmd(m.Exporter, ids, m.opts.ExportFormat, m.opts.ExportDir, m.opts.FetchTimeout)
}
