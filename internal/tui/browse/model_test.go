package browse

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/usecase/paging"
	"ventas-admin/internal/usecase/resource"
)

type row struct {
	ID   string
	Name string
}

var rowColumns = []resource.Column[row]{
	{Title: "ID", Width: 4, Value: func(r row) string { return r.ID }},
	{Title: "Nombre", Width: 12, Value: func(r row) string { return r.Name }},
}

// fakeSource records page changes and reports a loading state for them,
// the way a Fetcher does before its response arrives.
type fakeSource struct {
	state     paging.State[row]
	pages     []int
	refetches int
	states    chan paging.State[row]
	canceled  bool
}

func newFakeSource(s paging.State[row]) *fakeSource {
	return &fakeSource{state: s, states: make(chan paging.State[row], 1)}
}

func (f *fakeSource) SetCurrentPage(n int) {
	if n == f.state.CurrentPage {
		return
	}
	f.pages = append(f.pages, n)
	f.state.CurrentPage = n
	f.state.IsLoading = true
}

func (f *fakeSource) Refetch() {
	f.refetches++
	f.state.IsLoading = true
}

func (f *fakeSource) Snapshot() paging.State[row] { return f.state }

func (f *fakeSource) Subscribe() (<-chan paging.State[row], func()) {
	return f.states, func() { f.canceled = true }
}

func loaded(page, totalPages int, known bool, rows ...row) paging.State[row] {
	return paging.State[row]{
		Data:        rows,
		Meta:        pagination.Metadata{Page: page, Limit: 2, TotalPages: totalPages, Known: known},
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model[row], msg tea.Msg) Model[row] {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model[row])
	require.True(t, ok)
	return model
}

func TestModel_Navigation(t *testing.T) {
	src := newFakeSource(loaded(1, 3, true, row{"1", "Ana"}, row{"2", "Beto"}))
	m := New[row](src, rowColumns, Options{Title: "vendedores"})

	m = update(t, m, key("right"))
	m = update(t, m, key("n"))
	assert.Equal(t, []int{2, 3}, src.pages)
	assert.True(t, m.State().IsLoading)

	// Last page reached.
	m = update(t, m, key("n"))
	assert.Equal(t, []int{2, 3}, src.pages)

	m = update(t, m, key("left"))
	m = update(t, m, key("p"))
	assert.Equal(t, []int{2, 3, 2, 1}, src.pages)

	// First page reached.
	update(t, m, key("p"))
	assert.Equal(t, []int{2, 3, 2, 1}, src.pages)
}

func TestModel_UnknownPageCount(t *testing.T) {
	src := newFakeSource(loaded(1, 0, false, row{"1", "Ana"}, row{"2", "Beto"}))
	m := New[row](src, rowColumns, Options{})

	assert.Contains(t, m.View(), "page 1 / ?")

	// A full page suggests more rows.
	m = update(t, m, key("n"))
	assert.Equal(t, []int{2}, src.pages)

	// A short page ends the collection.
	m = update(t, m, stateMsg[row]{state: loaded(2, 0, false, row{"3", "Caro"}), ok: true})
	update(t, m, key("n"))
	assert.Equal(t, []int{2}, src.pages)
}

func TestModel_KeepsRowsWhileLoading(t *testing.T) {
	src := newFakeSource(loaded(1, 2, true, row{"1", "Ana"}, row{"2", "Beto"}))
	m := New[row](src, rowColumns, Options{Title: "vendedores"})

	m = update(t, m, key("n"))
	view := m.View()
	assert.Contains(t, view, "Ana")
	assert.Contains(t, view, "page 2 / 2")
	assert.Contains(t, view, "loading")

	m = update(t, m, stateMsg[row]{state: loaded(2, 2, true, row{"3", "Caro"}), ok: true})
	view = m.View()
	assert.Contains(t, view, "Caro")
	assert.NotContains(t, view, "Ana")
	assert.NotContains(t, view, "loading")
}

func TestModel_ErrorBanner(t *testing.T) {
	s := loaded(1, 2, true, row{"1", "Ana"})
	s.IsError = true
	s.Err = errors.New("HTTP 503: unavailable")
	src := newFakeSource(s)
	m := New[row](src, rowColumns, Options{})

	view := m.View()
	assert.Contains(t, view, "HTTP 503: unavailable")
	assert.Contains(t, view, "Ana")

	update(t, m, key("r"))
	assert.Equal(t, 1, src.refetches)
}

func TestModel_Refresh(t *testing.T) {
	refresh := make(chan struct{}, 1)
	src := newFakeSource(loaded(1, 1, true))
	m := New[row](src, rowColumns, Options{Refresh: refresh})

	refresh <- struct{}{}
	msg := m.waitRefresh()()
	assert.Equal(t, refreshMsg{}, msg)

	m = update(t, m, msg)
	assert.Equal(t, 1, src.refetches)
	assert.True(t, m.State().IsLoading)

	close(refresh)
	assert.Nil(t, m.waitRefresh()())
	assert.Nil(t, New[row](src, rowColumns, Options{}).waitRefresh())
}

func TestModel_StateChannel(t *testing.T) {
	src := newFakeSource(loaded(1, 1, true))
	m := New[row](src, rowColumns, Options{})

	src.states <- loaded(1, 1, true, row{"9", "Zoe"})
	msg := m.waitState()()
	m = update(t, m, msg)
	assert.Contains(t, m.View(), "Zoe")

	close(src.states)
	_, cmd := m.Update(m.waitState()())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Quit(t *testing.T) {
	src := newFakeSource(loaded(1, 1, true))
	m := New[row](src, rowColumns, Options{})

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, src.canceled)
}

func TestModel_WindowSize(t *testing.T) {
	src := newFakeSource(loaded(1, 1, true, row{"1", "Ana"}))
	m := New[row](src, rowColumns, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 80, m.table.Width())
	assert.Contains(t, m.View(), "Ana")
}

func TestPageLabel(t *testing.T) {
	assert.Equal(t, "page 2 / 5", PageLabel(loaded(2, 5, true)))
	assert.Equal(t, "page 3 / ?", PageLabel(loaded(3, 0, false)))
	assert.Equal(t, "page 1 / 0", PageLabel(loaded(1, 0, true)))
}

func TestScheduler(t *testing.T) {
	_, err := NewScheduler("whenever")
	assert.Error(t, err)

	s, err := NewScheduler("@every 1m")
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	s.tick()
	s.tick()
	<-s.C()
	select {
	case <-s.C():
		t.Fatal("second tick should have been absorbed")
	default:
	}
}

func TestModel_ViewHasHelp(t *testing.T) {
	m := New[row](newFakeSource(loaded(1, 1, true)), rowColumns, Options{Title: "productos"})
	view := m.View()
	assert.Contains(t, view, "productos")
	assert.Contains(t, view, "q quit")
}
