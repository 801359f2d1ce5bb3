// Package fynepanel arranges fyne canvas objects as label/editor rows.
//
// Objects at even positions are labels and those at odd positions are their
// editors. Margins and alignments are attached per object with SetMargin and
// SetAlignment, since fyne objects carry neither.
package fynepanel

import (
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"editorpanel/pkg/layout"
)

type decoration struct {
	margin layout.Thickness
	halign layout.HorizontalAlignment
	valign layout.VerticalAlignment
}

var defaultDecoration = decoration{halign: layout.HAlignStretch, valign: layout.VAlignStretch}

// Layout implements fyne.Layout.
type Layout struct {
	decorations map[fyne.CanvasObject]decoration
	logger      *log.Logger
}

var _ fyne.Layout = (*Layout)(nil)

// New returns an empty layout.
func New() *Layout {
	return &Layout{decorations: make(map[fyne.CanvasObject]decoration)}
}

// NewContainer creates a container laid out by a new Layout.
func NewContainer(objects ...fyne.CanvasObject) (*fyne.Container, *Layout) {
	l := New()
	return container.New(l, objects...), l
}

// SetLogger traces layout passes to logger; nil disables tracing.
func (l *Layout) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// SetMargin reserves space around obj.
func (l *Layout) SetMargin(obj fyne.CanvasObject, margin layout.Thickness) {
	d := l.decoration(obj)
	d.margin = margin
	l.decorations[obj] = d
}

// SetAlignment sets how obj sits in its cell.
func (l *Layout) SetAlignment(obj fyne.CanvasObject, h layout.HorizontalAlignment, v layout.VerticalAlignment) {
	d := l.decoration(obj)
	d.halign, d.valign = h, v
	l.decorations[obj] = d
}

func (l *Layout) decoration(obj fyne.CanvasObject) decoration {
	if d, ok := l.decorations[obj]; ok {
		return d
	}
	return defaultDecoration
}

func (l *Layout) panel(objects []fyne.CanvasObject) *layout.Panel {
	p := layout.NewPanel()
	for _, obj := range objects {
		p.Add(&element{obj: obj, decoration: l.decoration(obj)})
	}
	p.SetLogger(l.logger)
	return p
}

// MinSize measures the objects without constraint.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	s := l.panel(objects).Measure(layout.UnconstrainedSize())
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

// Layout measures and arranges the objects within size. An unsupported
// alignment leaves every object where it was.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	final := layout.NewSize(float64(size.Width), float64(size.Height))
	p := l.panel(objects)
	p.Measure(final)
	if _, err := p.Arrange(final); err != nil {
		log.Printf("fynepanel: %v", err)
	}
}

// element adapts a canvas object to layout.Element. Its desired size is the
// object's minimum size, clamped to the constraint. A hidden object measures
// to zero but keeps its slot, so label/editor parity is unchanged.
type element struct {
	obj fyne.CanvasObject
	decoration
	desired layout.Size
}

func (e *element) Measure(constraint layout.Size) {
	if !e.obj.Visible() {
		e.desired = layout.Size{}
		return
	}
	ms := e.obj.MinSize()
	e.desired = layout.Size{
		Width:  math.Max(0, math.Min(float64(ms.Width), constraint.Width)),
		Height: math.Max(0, math.Min(float64(ms.Height), constraint.Height)),
	}
}

func (e *element) DesiredSize() layout.Size { return e.desired }

func (e *element) Arrange(bounds layout.Rect) {
	e.obj.Move(fyne.NewPos(float32(bounds.X), float32(bounds.Y)))
	e.obj.Resize(fyne.NewSize(float32(bounds.Width), float32(bounds.Height)))
}

func (e *element) Margin() layout.Thickness { return e.margin }

func (e *element) HorizontalAlignment() layout.HorizontalAlignment { return e.halign }

func (e *element) VerticalAlignment() layout.VerticalAlignment { return e.valign }
