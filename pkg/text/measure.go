package text

import (
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is used when no font file is configured. Every glyph is 7 pixels
// wide and lines are 13 pixels high.
var DefaultFace font.Face = basicfont.Face7x13

// LoadFace loads a TrueType face at the given point size. An empty path
// returns DefaultFace.
func LoadFace(path string, points float64) (font.Face, error) {
	if path == "" {
		return DefaultFace, nil
	}
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", path, err)
	}
	return face, nil
}

// Measurer measures strings with a single face.
type Measurer struct {
	face font.Face
	dc   *gg.Context
}

// NewMeasurer creates a Measurer for face; nil means DefaultFace.
func NewMeasurer(face font.Face) *Measurer {
	if face == nil {
		face = DefaultFace
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return &Measurer{face: face, dc: dc}
}

// Face returns the measurer's font face.
func (m *Measurer) Face() font.Face {
	return m.face
}

// LineHeight returns the height of one line of text.
func (m *Measurer) LineHeight() float64 {
	return float64(m.face.Metrics().Height) / 64
}

// Measure returns the size of s, one line per "\n". Blank text still has the
// height of one line.
func (m *Measurer) Measure(s string) (width, height float64) {
	if s == "" {
		return 0, m.LineHeight()
	}
	width, height = m.dc.MeasureMultilineString(s, 1)
	return math.Ceil(width), height
}

// Lines splits s the way Measure does.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}
