package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"welltrack/pkg/wellog/band"
	"welltrack/pkg/wellog/measure"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MeasurementListModel - Interactive measurement browser
// =============================================================================

// MeasurementListModel is the bubbletea model for browsing a dataset's
// measurements depth by depth.
type MeasurementListModel struct {
	Dataset measure.Dataset
	Colors  *band.Assignment
	Cursor  int
	Height  int
	Offset  int
}

// newMeasurementListModel creates a browser over a normalized dataset.
func newMeasurementListModel(ds measure.Dataset) MeasurementListModel {
	return MeasurementListModel{
		Dataset: ds,
		Colors:  band.NewAssignment(ds.Lithologies()),
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m MeasurementListModel) Init() tea.Cmd {
	return nil
}

func (m MeasurementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Dataset.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Dataset.Records) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m MeasurementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Measurements"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Dataset.Records) {
		end = len(m.Dataset.Records)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Dataset.Records[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%.1f", r.Depth),
			r.Lithology,
			m.Colors.Color(r.Lithology),
			fmt.Sprintf("%.1f", r.GammaRay),
			fmt.Sprintf("%.3f", r.Porosity),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Depth", "Lithology", "Color", "Gamma", "Porosity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Dataset.Records))))

	return b.String()
}
