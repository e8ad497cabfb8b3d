package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/adapter"
	"github.com/mmcdole/gallery/internal/browser"
	"github.com/mmcdole/gallery/internal/domain"
	"github.com/mmcdole/gallery/internal/export"
	"github.com/mmcdole/gallery/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateFiltering
	StateHelp
)

// PageSizes are the rows-per-page choices cycled with +/-
var PageSizes = []int{12, 24, 50, 100}

const statusTimeout = 3 * time.Second

// Options configures a Model
type Options struct {
	PageSize     int
	FetchTimeout time.Duration
	ExportDir    string
	ExportFormat adapter.ExportFormat
	Logger       *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Browser  *browser.Browser
	Exporter *export.Exporter

	// UI Components
	Table     table.Model
	Paginator paginator.Model
	Spinner   spinner.Model
	Filter    textinput.Model
	Help      help.Model

	// Visible-page ordering and filtering (never touches selection)
	SortField   browser.SortField
	SortDir     browser.SortDirection
	FilterQuery string

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	Exporting   bool
	statusSeq   uint64

	opts   Options
	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(b *browser.Browser, exp *export.Exporter, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 30 * time.Second
	}
	if opts.PageSize < 1 {
		opts.PageSize = PageSizes[0]
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = adapter.ExportFormatYAML
	}

	t := table.New(
		table.WithColumns(tableColumns(80)),
		table.WithFocused(true),
		table.WithHeight(opts.PageSize),
		table.WithStyles(styles.TableStyles()),
	)
	t.KeyMap = Keys.TableKeyMap()

	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "page %d/%d"
	p.PerPage = opts.PageSize

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	ti := textinput.New()
	ti.Placeholder = "title, artist or origin..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Model{
		State:     StateBrowsing,
		Browser:   b,
		Exporter:  exp,
		Table:     t,
		Paginator: p,
		Spinner:   s,
		Filter:    ti,
		Help:      help.New(),
		opts:      opts,
		logger:    opts.Logger,
	}
}

// Init requests the first page
func (m Model) Init() tea.Cmd {
	req := m.Browser.BeginLoad(1, m.opts.PageSize)
	return tea.Batch(
		LoadPageCmd(m.Browser, req, m.opts.FetchTimeout),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		if !m.Browser.ApplyResult(msg.Req, msg.Page, msg.Err) {
			return m, nil
		}
		m.refreshTable()
		m.Table.SetCursor(0)
		if msg.Err != nil {
			return m.setStatus(m.Browser.State().Err, true)
		}
		return m, nil

	case ExportDoneMsg:
		m.Exporting = false
		return m.setStatus(exportedStatus(msg), false)

	case ErrMsg:
		m.Exporting = false
		m.logger.Error("command failed", "context", msg.Context, "error", msg.Err)
		return m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		if msg.Seq != m.statusSeq {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// setStatus shows a transient status line message
func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.showStatus(text, isErr)
	return m, ClearStatusCmd(statusTimeout, m.statusSeq)
}

// showStatus replaces the status line until the next status.
// Clears scheduled for earlier messages no longer match statusSeq.
func (m *Model) showStatus(text string, isErr bool) {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
}

// === Page changes ===

// changePage moves the paginator to offset/size and starts the fetch
func (m *Model) changePage(offset, size int) tea.Cmd {
	req := m.Browser.ChangePage(offset, size)
	m.refreshTable()
	return LoadPageCmd(m.Browser, req, m.opts.FetchTimeout)
}

// reload re-requests the current page
func (m *Model) reload() tea.Cmd {
	req := m.Browser.Reload()
	m.refreshTable()
	return LoadPageCmd(m.Browser, req, m.opts.FetchTimeout)
}

// nextPageSize returns the neighbouring entry in PageSizes
func nextPageSize(current, step int) int {
	idx := 0
	for i, size := range PageSizes {
		if size <= current {
			idx = i
		}
	}
	idx += step
	if idx < 0 {
		idx = 0
	}
	if idx >= len(PageSizes) {
		idx = len(PageSizes) - 1
	}
	return PageSizes[idx]
}

// === Table projection ===

// displayRows returns the visible page after sort and filter
func (m Model) displayRows() []domain.Artwork {
	rows := browser.SortRows(m.Browser.Rows(), m.SortField, m.SortDir)
	return browser.FilterRows(rows, m.FilterQuery)
}

// cursorArtwork returns the artwork under the table cursor
func (m Model) cursorArtwork() (domain.Artwork, bool) {
	rows := m.displayRows()
	c := m.Table.Cursor()
	if c < 0 || c >= len(rows) {
		return domain.Artwork{}, false
	}
	return rows[c], true
}

// refreshTable rebuilds table rows and paginator from browser state
func (m *Model) refreshTable() {
	rows := m.displayRows()
	tableRows := make([]table.Row, len(rows))
	for i, a := range rows {
		tableRows[i] = artworkRow(a, m.Browser.IsSelected(a.ID))
	}
	m.Table.SetRows(tableRows)
	// The table parks the cursor at -1 while it has no rows
	switch c := m.Table.Cursor(); {
	case c >= len(tableRows):
		m.Table.SetCursor(max(len(tableRows)-1, 0))
	case c < 0 && len(tableRows) > 0:
		m.Table.SetCursor(0)
	}

	state := m.Browser.State()
	m.Paginator.PerPage = state.PageSize
	// SetTotalPages ignores a zero total, so assign directly
	m.Paginator.TotalPages = max(state.Pages(), 1)
	m.Paginator.Page = min(state.Page()-1, m.Paginator.TotalPages-1)
}
