package layout

// Element is anything the panel can lay out. The host owns the element; the
// panel only asks it to measure, reads back the result, and hands it a final
// rectangle.
type Element interface {
	// Measure asks the element to compute its desired size within constraint.
	// Either dimension of constraint may be Unconstrained.
	Measure(constraint Size)

	// DesiredSize returns the size computed by the most recent Measure call.
	DesiredSize() Size

	// Arrange commits the element's final placement.
	Arrange(bounds Rect)
}

// Margined is implemented by elements that reserve space around themselves.
type Margined interface {
	Margin() Thickness
}

// Aligned is implemented by elements that choose how they sit inside their cell.
type Aligned interface {
	HorizontalAlignment() HorizontalAlignment
	VerticalAlignment() VerticalAlignment
}

// Default alignments for elements that do not implement Aligned.
const (
	DefaultHorizontalAlignment = HAlignStretch
	DefaultVerticalAlignment   = VAlignTop
)

// MarginOf returns the element's margin, or zero if it has none.
func MarginOf(e Element) Thickness {
	if m, ok := e.(Margined); ok {
		return m.Margin()
	}
	return Thickness{}
}

// AlignmentOf returns the element's alignments, falling back to the defaults.
func AlignmentOf(e Element) (HorizontalAlignment, VerticalAlignment) {
	if a, ok := e.(Aligned); ok {
		return a.HorizontalAlignment(), a.VerticalAlignment()
	}
	return DefaultHorizontalAlignment, DefaultVerticalAlignment
}

// desiredSizeWithMargin is the outer size an element occupies in its row.
// A nil element has no content at all.
func desiredSizeWithMargin(e Element) Size {
	if e == nil {
		return EmptySize
	}
	return e.DesiredSize().Add(MarginOf(e))
}
