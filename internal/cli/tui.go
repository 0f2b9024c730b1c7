package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/piechart/pkg/render/pie"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// SliceListModel - Interactive slice inspection
// =============================================================================

// SliceListModel is the bubbletea model for browsing the slices of a layout.
// Enter toggles a detail view of the selected slice's label placement.
type SliceListModel struct {
	Elements []pie.ElementProps
	Total    float64
	Cursor   int
	Offset   int
	Height   int
	Detail   bool
}

// NewSliceListModel creates a slice list model in layout order.
func NewSliceListModel(cp pie.ChildProps) SliceListModel {
	elements := cp.Ordered()
	total := 0.0
	for _, el := range elements {
		if v := el.Data.Slice.Value; v > 0 {
			total += v
		}
	}
	return SliceListModel{
		Elements: elements,
		Total:    total,
		Height:   15,
	}
}

func (m SliceListModel) Init() tea.Cmd {
	return nil
}

func (m SliceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Elements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Elements) > 0 {
				m.Detail = !m.Detail
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m SliceListModel) View() string {
	if m.Detail && m.Cursor < len(m.Elements) {
		return m.detailView(m.Elements[m.Cursor])
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Slices"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Elements) == 0 {
		b.WriteString(listDimStyle.Render("  no slices"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Elements))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		el := m.Elements[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		fill, _ := el.Data.Style.String("fill")
		rows = append(rows, []string{
			cursor,
			swatch(fill, "  "),
			el.EventKey,
			labelText(el.Labels),
			formatFloat(el.Data.Slice.Value),
			m.share(el.Data.Slice.Value),
			fmt.Sprintf("%.1f°", degrees(el.Data.Slice.Width())),
			string(el.Labels.Orientation),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Key", "Label", "Value", "Share", "Span", "Side").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if col == 1 {
				return lipgloss.NewStyle()
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 4 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Elements))))
	return b.String()
}

// detailView renders the resolved slice and label props of one element.
func (m SliceListModel) detailView(el pie.ElementProps) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Slice " + el.EventKey))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	lb := el.Labels
	fields := [][2]string{
		{"index", fmt.Sprint(el.Data.Index)},
		{"value", formatFloat(el.Data.Slice.Value)},
		{"start", fmt.Sprintf("%.2f°", degrees(el.Data.Slice.StartAngle))},
		{"end", fmt.Sprintf("%.2f°", degrees(el.Data.Slice.EndAngle))},
		{"label", labelText(lb)},
		{"position", fmt.Sprintf("%s, %s", formatFloat(lb.X), formatFloat(lb.Y))},
		{"side", string(lb.Orientation)},
		{"anchor", lb.TextAnchor + " / " + lb.VerticalAnchor},
	}
	if lb.Angle != nil {
		fields = append(fields, [2]string{"angle", formatFloat(*lb.Angle)})
	}
	for _, f := range fields {
		b.WriteString(styleKey.Render(f[0]) + " " + StyleValue.Render(f[1]) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listHeaderStyle.Render("slice style"))
	b.WriteString("\n")
	for _, k := range el.Data.Style.Keys() {
		v, _ := el.Data.Style.String(k)
		b.WriteString(styleKey.Render(k) + " " + styleValueFor(k, v) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(listHeaderStyle.Render("label style"))
	b.WriteString("\n")
	for _, k := range lb.Style.Keys() {
		v, _ := lb.Style.String(k)
		b.WriteString(styleKey.Render(k) + " " + styleValueFor(k, v) + "\n")
	}
	return b.String()
}

// share formats v as a percentage of the positive total.
func (m SliceListModel) share(v float64) string {
	if m.Total <= 0 || !(v > 0) {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", 100*v/m.Total)
}

// =============================================================================
// Helpers
// =============================================================================

// styleValueFor renders color-valued style keys with a swatch.
func styleValueFor(key, value string) string {
	switch key {
	case "fill", "stroke", "color":
		return swatch(value, "  ") + " " + StyleValue.Render(value)
	}
	return StyleValue.Render(value)
}

func labelText(l pie.LabelProps) string {
	if l.Text == nil {
		return "—"
	}
	return *l.Text
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4g", v)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
