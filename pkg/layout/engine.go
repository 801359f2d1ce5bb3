package layout

import (
	"fmt"
	"log"
	"math"
)

// Panel lays out its children as label/editor rows in two columns. The label
// column is as wide as the widest label; the editor column takes whatever
// width remains.
//
// Layout runs in two passes: Measure reports the size the panel would like,
// Arrange places every child inside the size the host actually grants. A
// Panel must not be re-entered while a pass is running.
type Panel struct {
	children []Element
	logger   *log.Logger
}

// NewPanel creates a panel over the given children, in order.
func NewPanel(children ...Element) *Panel {
	return &Panel{children: append([]Element(nil), children...)}
}

// Add appends children to the panel.
func (p *Panel) Add(children ...Element) {
	p.children = append(p.children, children...)
}

// Children returns the panel's children in layout order.
func (p *Panel) Children() []Element {
	return p.children
}

// Len returns the number of children.
func (p *Panel) Len() int {
	return len(p.children)
}

// Rows returns the children grouped into label/editor rows.
func (p *Panel) Rows() []Row {
	return Pair(p.children)
}

// SetLogger enables tracing of column widths and row heights. A nil logger
// disables tracing.
func (p *Panel) SetLogger(l *log.Logger) {
	p.logger = l
}

func (p *Panel) tracef(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

// Measure measures every child against available and returns the panel's
// desired size. Width is capped at the available width; height is always the
// sum of the row heights, since the panel never compresses vertically.
func (p *Panel) Measure(available Size) Size {
	rows := p.Rows()
	if len(rows) == 0 {
		return Size{}
	}

	labelSizes := make([]Size, len(rows))
	maxLabelWidth := 0.0
	for i, row := range rows {
		row.Label.Measure(available.Deflate(MarginOf(row.Label)))
		labelSizes[i] = desiredSizeWithMargin(row.Label)
		maxLabelWidth = math.Max(maxLabelWidth, labelSizes[i].Width)
	}

	// Editors get what the label column leaves over.
	editorSizes := make([]Size, len(rows))
	maxEditorWidth := 0.0
	for i, row := range rows {
		if row.Editor == nil {
			editorSizes[i] = EmptySize
			continue
		}
		margin := MarginOf(row.Editor)
		row.Editor.Measure(Size{
			Width:  math.Max(0, available.Width-maxLabelWidth-margin.Horizontal()),
			Height: math.Max(0, available.Height-margin.Vertical()),
		})
		editorSizes[i] = desiredSizeWithMargin(row.Editor)
		maxEditorWidth = math.Max(maxEditorWidth, editorSizes[i].Width)
	}

	totalHeight := 0.0
	for i := range rows {
		totalHeight += math.Max(labelSizes[i].Height, editorSizes[i].Height)
	}

	desired := Size{
		Width:  math.Min(available.Width, maxLabelWidth+maxEditorWidth),
		Height: totalHeight,
	}
	p.tracef("measure: available=%v labels=%.1f editors=%.1f desired=%v",
		available, maxLabelWidth, maxEditorWidth, desired)
	return desired
}

// Arrange places every child within final and returns final. It uses the
// desired sizes cached by the last Measure and does not measure again. If any
// child has an unsupported alignment no child is arranged.
func (p *Panel) Arrange(final Size) (Size, error) {
	plan, err := p.Plan(final)
	if err != nil {
		return Size{}, err
	}
	plan.Apply()
	return final, nil
}

// Plan computes the placement of every child within final without arranging
// anything.
func (p *Panel) Plan(final Size) (*Plan, error) {
	rows := p.Rows()

	labelWidth := 0.0
	for _, row := range rows {
		labelWidth = math.Max(labelWidth, desiredSizeWithMargin(row.Label).Width)
	}
	labelWidth = math.Min(labelWidth, final.Width)
	editorWidth := math.Max(0, final.Width-labelWidth)

	plan := &Plan{
		Final:       final,
		LabelWidth:  labelWidth,
		EditorWidth: editorWidth,
		Rows:        make([]RowPlan, 0, len(rows)),
	}

	y := 0.0
	for _, row := range rows {
		height := row.height()
		rp := RowPlan{Row: row, Y: y, Height: height}

		label, err := place(row.Label, Rect{X: 0, Y: y, Width: labelWidth, Height: height})
		if err != nil {
			return nil, fmt.Errorf("row %d label: %w", row.Index, err)
		}
		rp.Label = label

		if row.Editor != nil {
			editor, err := place(row.Editor, Rect{X: labelWidth, Y: y, Width: editorWidth, Height: height})
			if err != nil {
				return nil, fmt.Errorf("row %d editor: %w", row.Index, err)
			}
			rp.Editor = &editor
		}

		plan.Rows = append(plan.Rows, rp)
		y += height
	}

	p.tracef("arrange: final=%v labels=%.1f editors=%.1f rows=%d height=%.1f",
		final, labelWidth, editorWidth, len(rows), y)
	return plan, nil
}

// place resolves an element's bounds inside its cell, one axis at a time.
func place(e Element, cell Rect) (Placement, error) {
	margin := MarginOf(e)
	desired := e.DesiredSize()
	h, v := AlignmentOf(e)

	ha, err := h.Alignment()
	if err != nil {
		return Placement{}, err
	}
	va, err := v.Alignment()
	if err != nil {
		return Placement{}, err
	}

	top, height, err := ResolvePlacement(cell.Y, cell.Height, margin.Top, margin.Bottom, desired.Height, va)
	if err != nil {
		return Placement{}, err
	}
	left, width, err := ResolvePlacement(cell.X, cell.Width, margin.Left, margin.Right, desired.Width, ha)
	if err != nil {
		return Placement{}, err
	}

	return Placement{
		Element: e,
		Cell:    cell,
		Bounds:  Rect{X: left, Y: top, Width: width, Height: height},
	}, nil
}
