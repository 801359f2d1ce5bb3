package layout

import "math"

// Box is a plain element with a fixed natural size. Its desired size is the
// natural size clamped to the measure constraint.
type Box struct {
	Name    string
	Natural Size
	Margins Thickness
	HAlign  HorizontalAlignment
	VAlign  VerticalAlignment

	desired  Size
	bounds   Rect
	measured int
	arranged int
}

// NewBox creates a Box that stretches on both axes and has no margin.
func NewBox(name string, width, height float64) *Box {
	return &Box{
		Name:    name,
		Natural: Size{Width: width, Height: height},
		HAlign:  HAlignStretch,
		VAlign:  VAlignStretch,
	}
}

// WithMargin sets the margin and returns the box.
func (b *Box) WithMargin(t Thickness) *Box {
	b.Margins = t
	return b
}

// WithAlignment sets both alignments and returns the box.
func (b *Box) WithAlignment(h HorizontalAlignment, v VerticalAlignment) *Box {
	b.HAlign = h
	b.VAlign = v
	return b
}

func (b *Box) Measure(constraint Size) {
	b.measured++
	b.desired = Size{
		Width:  math.Max(0, math.Min(b.Natural.Width, constraint.Width)),
		Height: math.Max(0, math.Min(b.Natural.Height, constraint.Height)),
	}
}

func (b *Box) DesiredSize() Size { return b.desired }

func (b *Box) Arrange(bounds Rect) {
	b.arranged++
	b.bounds = bounds
}

func (b *Box) Margin() Thickness { return b.Margins }

func (b *Box) HorizontalAlignment() HorizontalAlignment { return b.HAlign }

func (b *Box) VerticalAlignment() VerticalAlignment { return b.VAlign }

// Bounds returns the rectangle from the last Arrange call.
func (b *Box) Bounds() Rect { return b.bounds }

// MeasureCount returns how many times Measure was called.
func (b *Box) MeasureCount() int { return b.measured }

// ArrangeCount returns how many times Arrange was called.
func (b *Box) ArrangeCount() int { return b.arranged }

// Caption returns the box name, for renderers that label elements.
func (b *Box) Caption() string { return b.Name }
