package layout

import "math"

// Unconstrained is the constraint value meaning "as much as you like" on one axis.
var Unconstrained = math.Inf(1)

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// EmptySize stands for "no content". It differs from a zero Size, which is
// content that measured to nothing. Any max() against EmptySize returns the
// other operand, so a missing editor never contributes to a row.
var EmptySize = Size{Width: math.Inf(-1), Height: math.Inf(-1)}

// NewSize returns a Size with the given dimensions.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// UnconstrainedSize returns a Size that is unconstrained on both axes.
func UnconstrainedSize() Size {
	return Size{Width: Unconstrained, Height: Unconstrained}
}

// IsEmpty reports whether s is the EmptySize sentinel.
func (s Size) IsEmpty() bool {
	return math.IsInf(s.Width, -1) && math.IsInf(s.Height, -1)
}

// Add grows s by the thickness t on both axes.
func (s Size) Add(t Thickness) Size {
	return Size{Width: s.Width + t.Horizontal(), Height: s.Height + t.Vertical()}
}

// Deflate shrinks s by the thickness t, never going below zero.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  math.Max(0, s.Width-t.Horizontal()),
		Height: math.Max(0, s.Height-t.Vertical()),
	}
}

// Rect is a placement rectangle in panel coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Thickness is the space reserved around an element, one value per side.
type Thickness struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Uniform returns a Thickness with the same value on every side.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 { return t.Left + t.Right }

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 { return t.Top + t.Bottom }

// IsZero reports whether every side is zero.
func (t Thickness) IsZero() bool { return t == Thickness{} }
