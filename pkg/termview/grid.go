package termview

import (
	"math"
	"strings"

	"editorpanel/pkg/layout"
)

// Scale converts panel units to terminal cells. The defaults match the
// 7x13 built-in face, so one cell is roughly one glyph.
type Scale struct {
	X float64 // Panel units per column
	Y float64 // Panel units per row
}

var DefaultScale = Scale{X: 7, Y: 13}

const (
	labelFill  = '░'
	editorFill = '▒'
	separator  = '│'
)

type captioned interface {
	Caption() string
}

// Draw renders plan into a cols x rows character grid.
func Draw(plan *layout.Plan, cols, rows int, scale Scale) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	for _, rp := range plan.Rows {
		fill(grid, rp.Label, labelFill, scale)
		if rp.Editor != nil {
			fill(grid, *rp.Editor, editorFill, scale)
		}
	}

	sep := cell(plan.LabelWidth, scale.X)
	bottom := cell(plan.Height(), scale.Y)
	for y := 0; y < bottom && y < rows; y++ {
		if sep < cols && grid[y][sep] == ' ' {
			grid[y][sep] = separator
		}
	}

	lines := make([]string, rows)
	for i, line := range grid {
		lines[i] = strings.TrimRight(string(line), " ")
	}
	return lines
}

func fill(grid [][]rune, p layout.Placement, r rune, scale Scale) {
	b := p.Bounds
	x0, x1 := cell(b.X, scale.X), cell(b.Right(), scale.X)
	y0, y1 := cell(b.Y, scale.Y), cell(b.Bottom(), scale.Y)
	rows, cols := len(grid), len(grid[0])
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols), min(y1, rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			grid[y][x] = r
		}
	}
	if c, ok := p.Element.(captioned); ok {
		x := x0
		for _, ch := range c.Caption() {
			if x >= x1 {
				break
			}
			grid[y0][x] = ch
			x++
		}
	}
}

func cell(v, unit float64) int {
	if unit <= 0 {
		unit = 1
	}
	return int(math.Round(v / unit))
}
