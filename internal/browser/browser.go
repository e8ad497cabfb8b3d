// Package browser holds the state behind the artwork table: the visible page,
// its fetch lifecycle, and a selection that spans pages.
//
// A Browser is not safe for concurrent use. In the TUI every method runs on
// the Bubble Tea update loop; only Fetch is called from a tea.Cmd goroutine,
// and it reads nothing but its Request.
package browser

import (
	"context"
	"log/slog"

	"github.com/mmcdole/gallery/internal/domain"
)

// PageState is the currently displayed page.
// It is replaced wholesale on every resolved fetch.
type PageState struct {
	Rows     []domain.Artwork
	Total    int
	Offset   int
	PageSize int
	Loading  bool
	Err      string // user-facing message; empty when the last fetch succeeded
}

// Page returns the 1-based page number for the current offset
func (p PageState) Page() int {
	return PageForOffset(p.Offset, p.PageSize)
}

// Pages returns the total number of pages
func (p PageState) Pages() int {
	return PageCount(p.Total, p.PageSize)
}

// Request identifies one page fetch.
// Seq increases with every request so late responses can be recognised.
type Request struct {
	Seq      uint64
	Page     int
	PageSize int
}

// Browser owns the page state and the cross-page selection.
type Browser struct {
	client domain.CatalogClient
	logger *slog.Logger

	state     PageState
	selection *Selection
	seq       uint64 // most recently issued request
}

// New creates a browser with the given initial page size
func New(client domain.CatalogClient, pageSize int, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return &Browser{
		client:    client,
		logger:    logger,
		state:     PageState{PageSize: pageSize},
		selection: NewSelection(),
	}
}

// State returns the current page state
func (b *Browser) State() PageState {
	return b.state
}

// Rows returns the row buffer for the visible page
func (b *Browser) Rows() []domain.Artwork {
	return b.state.Rows
}

// === Fetch lifecycle ===

// BeginLoad marks the browser as loading page/size and returns the request
// to hand to Fetch. The paginator position moves immediately.
func (b *Browser) BeginLoad(page, size int) Request {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = b.state.PageSize
	}

	b.seq++
	b.state.Loading = true
	b.state.PageSize = size
	b.state.Offset = OffsetForPage(page, size)

	return Request{Seq: b.seq, Page: page, PageSize: size}
}

// Fetch performs the network call for req. It does not touch browser state.
func (b *Browser) Fetch(ctx context.Context, req Request) (*domain.Page, error) {
	return b.client.GetArtworks(ctx, req.Page, req.PageSize)
}

// ApplyResult folds a fetch outcome into the page state.
// Responses to superseded requests are dropped and false is returned.
// Any error collapses to domain.FetchFailedMessage with an empty page.
func (b *Browser) ApplyResult(req Request, page *domain.Page, err error) bool {
	if req.Seq != b.seq {
		b.logger.Debug("discarding stale page", "seq", req.Seq, "latest", b.seq, "page", req.Page)
		return false
	}

	b.state.Loading = false

	if err == nil && page == nil {
		err = domain.ErrMalformedResponse
	}
	if err != nil {
		b.logger.Error("failed to load artworks", "page", req.Page, "limit", req.PageSize, "error", err)
		b.state.Rows = nil
		b.state.Total = 0
		b.state.Err = domain.FetchFailedMessage
		return true
	}

	rows := page.Artworks
	if len(rows) > req.PageSize {
		b.logger.Warn("catalog returned more rows than requested", "requested", req.PageSize, "received", len(rows))
		rows = rows[:req.PageSize]
	}

	b.state.Rows = rows
	b.state.Total = page.Total
	b.state.Err = ""

	b.logger.Debug("loaded page", "page", req.Page, "rows", len(rows), "total", page.Total)
	return true
}

// LoadPage fetches page (1-based) at size and applies the result.
// Failures are recorded in the state, never returned.
func (b *Browser) LoadPage(ctx context.Context, page, size int) {
	req := b.BeginLoad(page, size)
	result, err := b.Fetch(ctx, req)
	b.ApplyResult(req, result, err)
}

// ChangePage converts a zero-based offset to a page request and begins it
func (b *Browser) ChangePage(offset, size int) Request {
	if size < 1 {
		size = b.state.PageSize
	}
	return b.BeginLoad(PageForOffset(offset, size), size)
}

// OnPageChange is the synchronous form of ChangePage
func (b *Browser) OnPageChange(ctx context.Context, offset, size int) {
	req := b.ChangePage(offset, size)
	result, err := b.Fetch(ctx, req)
	b.ApplyResult(req, result, err)
}

// Reload re-requests the current page
func (b *Browser) Reload() Request {
	return b.BeginLoad(b.state.Page(), b.state.PageSize)
}

// === Selection ===

// VisibleIDs returns the IDs in the row buffer, in row order
func (b *Browser) VisibleIDs() []int {
	ids := make([]int, len(b.state.Rows))
	for i, a := range b.state.Rows {
		ids[i] = a.ID
	}
	return ids
}

// OnSelectionChange reconciles the selection against the rows reported as
// checked on the visible page. Off-page selections are left alone.
func (b *Browser) OnSelectionChange(selectedIDs []int) {
	b.selection.Reconcile(b.VisibleIDs(), selectedIDs)
}

// ClearSelection drops every selected ID
func (b *Browser) ClearSelection() {
	b.selection.Clear()
}

// VisibleSelection returns the visible rows that are selected, in row order.
// It is derived on every call.
func (b *Browser) VisibleSelection() []domain.Artwork {
	var out []domain.Artwork
	for _, a := range b.state.Rows {
		if b.selection.Has(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// visibleSelectedIDs returns the IDs of VisibleSelection
func (b *Browser) visibleSelectedIDs() []int {
	rows := b.VisibleSelection()
	ids := make([]int, len(rows))
	for i, a := range rows {
		ids[i] = a.ID
	}
	return ids
}

// Toggle flips one visible row. IDs not on the page are ignored.
func (b *Browser) Toggle(id int) {
	current := b.visibleSelectedIDs()
	if b.selection.Has(id) {
		next := current[:0]
		for _, v := range current {
			if v != id {
				next = append(next, v)
			}
		}
		b.OnSelectionChange(next)
		return
	}
	b.OnSelectionChange(append(current, id))
}

// SelectAllVisible checks every row on the page
func (b *Browser) SelectAllVisible() {
	b.OnSelectionChange(b.VisibleIDs())
}

// DeselectAllVisible unchecks every row on the page
func (b *Browser) DeselectAllVisible() {
	b.OnSelectionChange(nil)
}

// IsSelected reports whether id is selected
func (b *Browser) IsSelected(id int) bool {
	return b.selection.Has(id)
}

// SelectedCount returns the number of selected artworks across all pages
func (b *Browser) SelectedCount() int {
	return b.selection.Len()
}

// SelectedIDs returns every selected ID in ascending order
func (b *Browser) SelectedIDs() []int {
	return b.selection.IDs()
}
