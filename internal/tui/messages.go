package tui

import (
	"github.com/mmcdole/gallery/internal/browser"
	"github.com/mmcdole/gallery/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg carries the outcome of a page fetch back to Update
type PageLoadedMsg struct {
	Req  browser.Request
	Page *domain.Page
	Err  error
}

// ExportDoneMsg signals the selection was written to Path
type ExportDoneMsg struct {
	Path  string
	Count int
}

// ClearStatusMsg clears the status bar message set with the same Seq
type ClearStatusMsg struct {
	Seq uint64
}
