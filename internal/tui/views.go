package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gallery/internal/browser"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Keys"),
			"",
			m.Help.View(Keys),
		))
	}

	sections := []string{
		m.renderHeader(),
		m.Table.View(),
		m.renderFooter(),
	}
	if m.State == StateFiltering || m.FilterQuery != "" {
		sections = append(sections, m.Filter.View())
	}
	sections = append(sections, m.renderStatus(), m.Help.View(Keys))

	return styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader renders the title and the selection summary
func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("Artworks")
	summary := selectionSummary(m.Browser.SelectedCount())
	if m.Browser.SelectedCount() > 0 {
		summary = styles.BadgeStyle.Render(summary) + styles.DimStyle.Render("  c clear all")
	} else {
		summary = styles.DimStyle.Render(summary)
	}
	return styles.HeaderStyle.Render(title + "  " + summary)
}

// renderFooter renders paging, loading and sort state
func (m Model) renderFooter() string {
	state := m.Browser.State()

	var parts []string
	if state.Loading {
		parts = append(parts, m.Spinner.View()+" loading")
	}
	parts = append(parts, m.Paginator.View())
	parts = append(parts, rowRange(state))
	parts = append(parts, fmt.Sprintf("%d per page", state.PageSize))
	if m.SortField != browser.SortDefault {
		parts = append(parts, styles.AccentStyle.Render(fmt.Sprintf("sort: %s %s", m.SortField, m.SortDir)))
	}
	if m.FilterQuery != "" {
		parts = append(parts, fmt.Sprintf("%d/%d shown", len(m.Table.Rows()), len(state.Rows)))
	}

	return styles.FooterStyle.Render(strings.Join(parts, "  ·  "))
}

// renderStatus renders the transient status line or the fetch error
func (m Model) renderStatus() string {
	width := max(m.Width-2, MinTableWidth)
	if m.StatusMsg != "" {
		text := styles.Truncate(m.StatusMsg, width)
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(text)
		}
		return styles.SuccessStyle.Render(text)
	}
	if err := m.Browser.State().Err; err != "" {
		return styles.ErrorStyle.Render(styles.Truncate(err+" (r to retry)", width))
	}
	return " "
}

// selectionSummary matches the count line shown above the table
func selectionSummary(count int) string {
	return fmt.Sprintf("%d items selected", count)
}

// rowRange renders "13–24 of 100" for the current page
func rowRange(state browser.PageState) string {
	if state.Total == 0 || len(state.Rows) == 0 {
		return "0 records"
	}
	first := state.Offset + 1
	last := state.Offset + len(state.Rows)
	return fmt.Sprintf("%d–%d of %d", first, last, state.Total)
}

// artworkRow converts an artwork to a table row
func artworkRow(a domain.Artwork, selected bool) table.Row {
	check := styles.UncheckedChar
	if selected {
		check = styles.CheckedChar
	}
	return table.Row{
		check,
		styles.Flatten(a.Title),
		styles.Flatten(a.PlaceOfOrigin),
		styles.Flatten(a.ArtistDisplay),
		styles.Flatten(a.Inscriptions),
		a.StartYear(),
		a.EndYear(),
	}
}

func exportedStatus(msg ExportDoneMsg) string {
	return fmt.Sprintf("Exported %d artworks to %s", msg.Count, msg.Path)
}
