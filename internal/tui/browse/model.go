// Package browse is the interactive table view of one backend collection.
// The model renders whatever state its paging source publishes: rows of the
// last loaded page stay visible while the next page loads, and a failed
// load shows a banner above them.
package browse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"ventas-admin/internal/usecase/paging"
	"ventas-admin/internal/usecase/resource"
)

// defaultHeight is the number of table rows shown before the terminal size
// is known.
const defaultHeight = 12

// chromeHeight is the space taken by title, status, error and help lines.
const chromeHeight = 7

// Source is the paging state the view binds to. *paging.Fetcher satisfies it.
type Source[T any] interface {
	SetCurrentPage(n int)
	Refetch()
	Snapshot() paging.State[T]
	Subscribe() (<-chan paging.State[T], func())
}

// Options configures a Model.
type Options struct {
	// Title is shown above the table.
	Title string

	// Refresh triggers a reload of the current page on every receive.
	Refresh <-chan struct{}
}

type stateMsg[T any] struct {
	state paging.State[T]
	ok    bool
}

type refreshMsg struct{}

// Model is the Bubble Tea model of the browse view.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View.
type Model[T any] struct {
	source  Source[T]
	states  <-chan paging.State[T]
	cancel  func()
	refresh <-chan struct{}

	columns []resource.Column[T]
	title   string

	state   paging.State[T]
	table   table.Model
	spinner spinner.Model
	width   int
}

// New subscribes to source and builds the view.
func New[T any](source Source[T], columns []resource.Column[T], opts Options) Model[T] {
	states, cancel := source.Subscribe()

	tableColumns := make([]table.Column, len(columns))
	for i, col := range columns {
		tableColumns[i] = table.Column{Title: col.Title, Width: col.Width}
	}
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithFocused(true),
		table.WithHeight(defaultHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle
	styles.Selected = tableSelectedStyle
	t.SetStyles(styles)

	m := Model[T]{
		source:  source,
		states:  states,
		cancel:  cancel,
		refresh: opts.Refresh,
		columns: columns,
		title:   opts.Title,
		table:   t,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(statusStyle)),
	}
	m.setState(source.Snapshot())
	return m
}

// Init starts the spinner and the listeners (Bubble Tea interface).
func (m Model[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitState(), m.waitRefresh())
}

// Update handles messages (Bubble Tea interface).
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg[T]:
		if !msg.ok {
			return m, tea.Quit
		}
		m.setState(msg.state)
		return m, m.waitState()

	case refreshMsg:
		m.source.Refetch()
		m.setState(m.source.Snapshot())
		return m, m.waitRefresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "right", "n":
		if m.hasNext() {
			m.source.SetCurrentPage(m.state.CurrentPage + 1)
			m.setState(m.source.Snapshot())
		}
		return m, nil
	case "left", "p":
		if m.state.CurrentPage > 1 {
			m.source.SetCurrentPage(m.state.CurrentPage - 1)
			m.setState(m.source.Snapshot())
		}
		return m, nil
	case "r":
		m.source.Refetch()
		m.setState(m.source.Snapshot())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// hasNext allows moving past the current page when the backend reported
// more pages, or, without a page count, when the last page came back full.
func (m Model[T]) hasNext() bool {
	if m.state.Meta.Known {
		return m.state.CurrentPage < m.state.TotalPages
	}
	return m.state.Meta.Limit > 0 && len(m.state.Data) >= m.state.Meta.Limit
}

// View renders the model (Bubble Tea interface).
func (m Model[T]) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	status := PageLabel(m.state)
	if m.state.IsLoading {
		status = m.spinner.View() + " " + status + " loading…"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.state.IsError {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v (r to retry)", m.state.Err)))
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/p previous • →/n next • ↑/↓ move • r reload • q quit"))
	b.WriteString("\n")
	return b.String()
}

// State returns the last state the view rendered.
func (m Model[T]) State() paging.State[T] {
	return m.state
}

func (m *Model[T]) setState(s paging.State[T]) {
	m.state = s
	rows := make([]table.Row, len(s.Data))
	for i, item := range s.Data {
		row := make(table.Row, len(m.columns))
		for j, col := range m.columns {
			row[j] = col.Value(item)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m Model[T]) waitState() tea.Cmd {
	states := m.states
	return func() tea.Msg {
		s, ok := <-states
		return stateMsg[T]{state: s, ok: ok}
	}
}

func (m Model[T]) waitRefresh() tea.Cmd {
	if m.refresh == nil {
		return nil
	}
	refresh := m.refresh
	return func() tea.Msg {
		if _, ok := <-refresh; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

// PageLabel renders "page X / Y", with "?" for Y while the page count is
// unknown.
func PageLabel[T any](s paging.State[T]) string {
	total := "?"
	if s.Meta.Known {
		total = strconv.Itoa(s.TotalPages)
	}
	return fmt.Sprintf("page %d / %s", s.CurrentPage, total)
}
