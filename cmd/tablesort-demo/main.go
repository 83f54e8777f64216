// Command tablesort-demo hosts an in-memory table in the terminal and
// sorts it through the sortable decorator. Pressing a column number
// activates that column header, toggling between ascending and
// descending order.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tablesort "github.com/tableaux-project/tablesort"
	"github.com/tableaux-project/tablesort/sortable"
	"github.com/tableaux-project/tablesort/sortable/comparator"
	"github.com/tableaux-project/tablesort/widget"
	"github.com/tableaux-project/tablesort/widget/memwidget"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var headers = []string{"Invoice", "Customer", "Amount", "Created"}

const columnWidth = 14

type model struct {
	tbl      *memwidget.Table
	sortable *sortable.Table
	err      error
}

func initialModel() model {
	tbl := memwidget.New(len(headers))
	tbl.AddRow("INV-0007", "Acme Corp", "1250.00", "2026-03-14")
	tbl.AddRow("INV-0002", "Globex", "89.99", "2026-01-02")
	tbl.AddRow("INV-0010", "Initech", "432.10", "2026-05-30")
	tbl.AddRow("INV-0004", "Umbrella", "15000.00", "2026-02-11")
	tbl.AddRow("INV-0001", "Acme Corp", "7.50", "2025-12-24")
	tbl.Select(0)

	sortableTable := sortable.New(tbl)
	sortableTable.SetComparator(2, comparator.Decimal{Common: &comparator.Common{Column: 2}})
	sortableTable.SetComparator(3, comparator.Date{Common: &comparator.Common{Column: 3}, Layout: "2006-01-02"})
	sortableTable.SetSelectionMode(tablesort.SelectionByItem)

	return model{tbl: tbl, sortable: sortableTable}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.tbl.SelectionIndex() > 0 {
			m.tbl.Select(m.tbl.SelectionIndex() - 1)
		}
	case "down", "j":
		if m.tbl.SelectionIndex() < len(m.tbl.Items())-1 {
			m.tbl.Select(m.tbl.SelectionIndex() + 1)
		}
	case "1", "2", "3", "4":
		column := int(keyMsg.String()[0] - '1')
		m.tbl.Column(column).Activate()
	case "r":
		if err := m.sortable.Resort(); err != nil {
			m.err = err
		}
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tablesort demo"))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(m.headerLine()))
	b.WriteString("\n")

	for i, item := range m.tbl.Items() {
		line := m.rowLine(item)
		if i == m.tbl.SelectionIndex() {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("1-4 sort column  r resort  j/k move  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) headerLine() string {
	cells := make([]string, len(headers))
	for i, header := range headers {
		cells[i] = pad(header + m.sortMark(i))
	}

	return strings.Join(cells, " ")
}

func (m model) rowLine(item widget.Item) string {
	cells := make([]string, len(headers))
	for i := range headers {
		cells[i] = pad(item.Text(i))
	}

	return strings.Join(cells, " ")
}

func (m model) sortMark(column int) string {
	current, err := m.sortable.CurrentSortColumn()
	if err != nil || current != column {
		return ""
	}

	direction, err := m.sortable.CurrentSortDirection()
	if err != nil {
		return ""
	}

	if direction == tablesort.OrderDesc {
		return " v"
	}

	return " ^"
}

func pad(text string) string {
	if len(text) >= columnWidth {
		return text[:columnWidth]
	}

	return text + strings.Repeat(" ", columnWidth-len(text))
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
