package layout

// Placement is the resolved position of one element.
type Placement struct {
	Element Element
	Cell    Rect // Row/column cell the element was placed in
	Bounds  Rect // Final bounds, margins and alignment applied
}

// RowPlan holds the placements for one row.
type RowPlan struct {
	Row    Row
	Y      float64
	Height float64
	Label  Placement
	Editor *Placement // nil when the row has no editor
}

// Plan is the complete result of an arrangement pass before it is applied.
type Plan struct {
	Final       Size
	LabelWidth  float64
	EditorWidth float64
	Rows        []RowPlan
}

// Height returns the total height of all rows.
func (p *Plan) Height() float64 {
	if len(p.Rows) == 0 {
		return 0
	}
	last := p.Rows[len(p.Rows)-1]
	return last.Y + last.Height
}

// Placements returns every placement in child order.
func (p *Plan) Placements() []Placement {
	out := make([]Placement, 0, 2*len(p.Rows))
	for _, rp := range p.Rows {
		out = append(out, rp.Label)
		if rp.Editor != nil {
			out = append(out, *rp.Editor)
		}
	}
	return out
}

// Apply arranges every element at its planned bounds.
func (p *Plan) Apply() {
	for _, pl := range p.Placements() {
		pl.Element.Arrange(pl.Bounds)
	}
}
