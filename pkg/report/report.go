// Package report formats a layout plan as a table for terminal output.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"editorpanel/pkg/layout"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = cellStyle.Foreground(lipgloss.Color("12"))
	editorStyle = cellStyle.Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

type captioned interface {
	Caption() string
}

// Summary describes the column split and total height in one line.
func Summary(plan *layout.Plan) string {
	return fmt.Sprintf("final %s  label column %s  editor column %s  rows %d  height %s",
		formatSize(plan.Final), num(plan.LabelWidth), num(plan.EditorWidth),
		len(plan.Rows), num(plan.Height()))
}

// Table renders one line per placed element. A width of zero or less lets
// the table size itself.
func Table(plan *layout.Plan, width int) string {
	var rows [][]string
	for _, rp := range plan.Rows {
		rows = append(rows, placementRow(rp.Row.Index, "label", rp.Label))
		if rp.Editor != nil {
			rows = append(rows, placementRow(rp.Row.Index, "editor", *rp.Editor))
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ROW", "ROLE", "CAPTION", "CELL", "BOUNDS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if rows[row][1] == "label" {
				return labelStyle
			}
			return editorStyle
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t.String()
}

// Format is the summary line followed by the table.
func Format(title string, plan *layout.Plan, width int) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(Summary(plan))
	b.WriteString("\n")
	b.WriteString(Table(plan, width))
	b.WriteString("\n")
	return b.String()
}

func placementRow(index int, role string, p layout.Placement) []string {
	caption := ""
	if c, ok := p.Element.(captioned); ok {
		caption = c.Caption()
	}
	return []string{strconv.Itoa(index), role, caption, formatRect(p.Cell), formatRect(p.Bounds)}
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("%s,%s %sx%s", num(r.X), num(r.Y), num(r.Width), num(r.Height))
}

func formatSize(s layout.Size) string {
	return num(s.Width) + "x" + num(s.Height)
}

// num prints whole numbers without a fraction.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
