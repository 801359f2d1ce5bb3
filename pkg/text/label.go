package text

import (
	"math"

	"editorpanel/pkg/layout"
)

// Label is a layout element that sizes itself to its text.
type Label struct {
	Text    string
	Margins layout.Thickness
	HAlign  layout.HorizontalAlignment
	VAlign  layout.VerticalAlignment

	measurer *Measurer
	desired  layout.Size
	bounds   layout.Rect
}

// NewLabel creates a left/center aligned label, the usual placement for a
// caption next to an editor.
func NewLabel(text string, m *Measurer) *Label {
	if m == nil {
		m = NewMeasurer(nil)
	}
	return &Label{
		Text:     text,
		HAlign:   layout.HAlignLeft,
		VAlign:   layout.VAlignCenter,
		measurer: m,
	}
}

// Measurer returns the measurer the label sizes its text with.
func (l *Label) Measurer() *Measurer { return l.measurer }

func (l *Label) Measure(constraint layout.Size) {
	w, h := l.measurer.Measure(l.Text)
	l.desired = layout.Size{
		Width:  math.Max(0, math.Min(w, constraint.Width)),
		Height: math.Max(0, math.Min(h, constraint.Height)),
	}
}

func (l *Label) DesiredSize() layout.Size { return l.desired }

func (l *Label) Arrange(bounds layout.Rect) { l.bounds = bounds }

func (l *Label) Margin() layout.Thickness { return l.Margins }

func (l *Label) HorizontalAlignment() layout.HorizontalAlignment { return l.HAlign }

func (l *Label) VerticalAlignment() layout.VerticalAlignment { return l.VAlign }

// Bounds returns the rectangle from the last Arrange call.
func (l *Label) Bounds() layout.Rect { return l.bounds }

// Caption returns the label text.
func (l *Label) Caption() string { return l.Text }
