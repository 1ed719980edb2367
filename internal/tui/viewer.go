// Package tui provides an interactive terminal viewer for query results.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/srharri3/pumsflow/internal/model"
)

// ViewMode represents the current input mode of the viewer.
type ViewMode int

// View modes.
const (
	ModeBrowse ViewMode = iota
	ModeSearch
)

const (
	minColumnWidth = 6
	maxColumnWidth = 24
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B9BD5"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// ViewerModel displays a dataset as a navigable table with row search.
type ViewerModel struct {
	dataset     *model.Dataset
	search      string
	rows        []table.Row
	table       table.Model
	searchInput textinput.Model
	mode        ViewMode
	width       int
	height      int
}

// NewViewer creates a viewer over the given dataset.
func NewViewer(dataset *model.Dataset) ViewerModel {
	rows := buildRows(dataset)

	t := table.New(
		table.WithColumns(buildColumns(dataset)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#5B9BD5")).
		Bold(false)
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search rows..."
	searchInput.CharLimit = 50

	return ViewerModel{
		dataset:     dataset,
		rows:        rows,
		table:       t,
		searchInput: searchInput,
		mode:        ModeBrowse,
		width:       80,
		height:      24,
	}
}

// Init implements tea.Model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.updateSearchMode(msg)
		default:
			return m.updateBrowseMode(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Header is 2 lines, footer 1, table chrome 3
		m.table.SetHeight(max(1, m.height-6))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ViewerModel) updateBrowseMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.search != "" {
			m.search = ""
			m.searchInput.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ViewerModel) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search = m.searchInput.Value()
		m.applyFilter()
		m.mode = ModeBrowse
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.mode = ModeBrowse
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ViewerModel) View() string {
	if m.height < 10 {
		return "Terminal too small"
	}

	if m.mode == ModeSearch {
		return m.renderSearchView()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.table.View(),
		m.renderFooter(),
	)
}

func (m ViewerModel) renderHeader() string {
	title := titleStyle.Render("PUMS Results")

	status := fmt.Sprintf("%d rows", len(m.table.Rows()))
	if m.search != "" {
		status += fmt.Sprintf(" | Search: %q", m.search)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render(status))
}

func (m ViewerModel) renderFooter() string {
	hints := []string{
		"[↑↓] Navigate",
		"[/] Search",
		"[Esc] Clear search",
		"[q] Quit",
	}
	return mutedStyle.Render(strings.Join(hints, "  "))
}

func (m ViewerModel) renderSearchView() string {
	searchBox := searchBoxStyle.
		Width(60).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("Search Rows"),
			m.searchInput.View(),
			mutedStyle.Render("Press Enter to search, Esc to cancel"),
		))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		searchBox,
	)
}

// applyFilter rebuilds the table rows from the current search term. An
// empty term restores the full dataset.
func (m *ViewerModel) applyFilter() {
	if m.search == "" {
		m.table.SetRows(m.rows)
		m.table.SetCursor(0)
		return
	}

	needle := strings.ToLower(m.search)
	filtered := make([]table.Row, 0, len(m.rows))
	for _, row := range m.rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				filtered = append(filtered, row)
				break
			}
		}
	}

	m.table.SetRows(filtered)
	m.table.SetCursor(0)
}

func buildRows(dataset *model.Dataset) []table.Row {
	rows := make([]table.Row, 0, dataset.NumRows())
	for i := 0; i < dataset.NumRows(); i++ {
		rows = append(rows, table.Row(dataset.Row(i)))
	}
	return rows
}

func buildColumns(dataset *model.Dataset) []table.Column {
	names := dataset.Names()
	columns := make([]table.Column, 0, len(names))

	for j, name := range names {
		width := len(name)
		for i := 0; i < dataset.NumRows(); i++ {
			if w := len(dataset.Columns[j].Render(i)); w > width {
				width = w
			}
		}
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		columns = append(columns, table.Column{Title: name, Width: width})
	}

	return columns
}
