package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/adapter"
	"github.com/mmcdole/gallery/internal/browser"
	"github.com/mmcdole/gallery/internal/export"
)

// Command factories for async operations

// LoadPageCmd fetches the page described by req.
// It only reads req, so it is safe to run alongside Update.
func LoadPageCmd(b *browser.Browser, req browser.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		page, err := b.Fetch(ctx, req)
		return PageLoadedMsg{Req: req, Page: page, Err: err}
	}
}

// ExportCmd writes the selected IDs to a file
func ExportCmd(exp *export.Exporter, ids []int, format adapter.ExportFormat, dir string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		path, err := exp.Export(ctx, ids, format, dir)
		if err != nil {
			return ErrMsg{Err: err, Context: "exporting selection"}
		}
		return ExportDoneMsg{Path: path, Count: len(ids)}
	}
}

// ClearStatusCmd returns a command that clears status seq after a delay
func ClearStatusCmd(delay time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
