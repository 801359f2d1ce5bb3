package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedAlignment is returned when an alignment value is not one of
// the recognized variants. It is a configuration error: layout cannot proceed.
var ErrUnsupportedAlignment = errors.New("unsupported alignment")

// Alignment distributes slack along one axis, independent of direction.
type Alignment uint8

const (
	AlignBegin   Alignment = iota // Start edge
	AlignCenter                   // Centered in the available space
	AlignEnd                      // End edge
	AlignStretch                  // Fill the available space
)

func (a Alignment) String() string {
	switch a {
	case AlignBegin:
		return "begin"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// HorizontalAlignment is the horizontal alignment an element asks for.
type HorizontalAlignment uint8

const (
	HAlignLeft HorizontalAlignment = iota
	HAlignCenter
	HAlignRight
	HAlignStretch
)

// VerticalAlignment is the vertical alignment an element asks for.
type VerticalAlignment uint8

const (
	VAlignTop VerticalAlignment = iota
	VAlignCenter
	VAlignBottom
	VAlignStretch
)

// AlignmentError reports an alignment value outside the recognized variants.
type AlignmentError struct {
	Axis  string // "horizontal", "vertical" or "general"
	Value int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s alignment %d: %v", e.Axis, e.Value, ErrUnsupportedAlignment)
}

func (e *AlignmentError) Unwrap() error { return ErrUnsupportedAlignment }

// Alignment maps h onto the general alignment.
func (h HorizontalAlignment) Alignment() (Alignment, error) {
	switch h {
	case HAlignLeft:
		return AlignBegin, nil
	case HAlignCenter:
		return AlignCenter, nil
	case HAlignRight:
		return AlignEnd, nil
	case HAlignStretch:
		return AlignStretch, nil
	}
	return 0, &AlignmentError{Axis: "horizontal", Value: int(h)}
}

func (h HorizontalAlignment) String() string {
	switch h {
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	case HAlignStretch:
		return "stretch"
	}
	return fmt.Sprintf("HorizontalAlignment(%d)", uint8(h))
}

// Alignment maps v onto the general alignment.
func (v VerticalAlignment) Alignment() (Alignment, error) {
	switch v {
	case VAlignTop:
		return AlignBegin, nil
	case VAlignCenter:
		return AlignCenter, nil
	case VAlignBottom:
		return AlignEnd, nil
	case VAlignStretch:
		return AlignStretch, nil
	}
	return 0, &AlignmentError{Axis: "vertical", Value: int(v)}
}

func (v VerticalAlignment) String() string {
	switch v {
	case VAlignTop:
		return "top"
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "bottom"
	case VAlignStretch:
		return "stretch"
	}
	return fmt.Sprintf("VerticalAlignment(%d)", uint8(v))
}

// ParseHorizontalAlignment parses "left", "center", "right" or "stretch".
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return HAlignLeft, nil
	case "center":
		return HAlignCenter, nil
	case "right":
		return HAlignRight, nil
	case "stretch":
		return HAlignStretch, nil
	}
	return 0, fmt.Errorf("horizontal alignment %q: %w", s, ErrUnsupportedAlignment)
}

// ParseVerticalAlignment parses "top", "center", "bottom" or "stretch".
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return VAlignTop, nil
	case "center":
		return VAlignCenter, nil
	case "bottom":
		return VAlignBottom, nil
	case "stretch":
		return VAlignStretch, nil
	}
	return 0, fmt.Errorf("vertical alignment %q: %w", s, ErrUnsupportedAlignment)
}

// ResolvePlacement places an element of the given desired length inside the
// span [start, start+length) along one axis. Margins are carved out of the
// span first; the returned length never exceeds what is left and is never
// negative.
func ResolvePlacement(start, length, marginBegin, marginEnd, desired float64, a Alignment) (float64, float64, error) {
	available := length - (marginBegin + marginEnd)

	switch a {
	case AlignBegin:
		size := clamp(desired, 0, available)
		return start + marginBegin, size, nil
	case AlignCenter:
		size := clamp(desired, 0, available)
		return start + marginBegin + (available-size)/2, size, nil
	case AlignEnd:
		size := clamp(desired, 0, available)
		return start + length - marginEnd - size, size, nil
	case AlignStretch:
		return start + marginBegin, math.Max(0, available), nil
	}
	return 0, 0, &AlignmentError{Axis: "general", Value: int(a)}
}

// clamp bounds x to [lo, hi]; lo wins when hi < lo.
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
