package style

import (
	"fmt"
	"strconv"
	"strings"

	"editorpanel/pkg/layout"
)

type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// GetMargin returns the margin values for all four sides
func (s *Style) GetMargin() layout.Thickness {
	return layout.Thickness{
		Left:   s.getLengthOrZero("margin-left"),
		Top:    s.getLengthOrZero("margin-top"),
		Right:  s.getLengthOrZero("margin-right"),
		Bottom: s.getLengthOrZero("margin-bottom"),
	}
}

func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}

// GetHorizontalAlignment returns the horizontal-alignment value, or
// layout.DefaultHorizontalAlignment when it is unset. An unknown keyword is an
// error, not a silent default.
func (s *Style) GetHorizontalAlignment() (layout.HorizontalAlignment, error) {
	val, ok := s.Get("horizontal-alignment")
	if !ok {
		return layout.DefaultHorizontalAlignment, nil
	}
	return layout.ParseHorizontalAlignment(val)
}

// GetVerticalAlignment returns the vertical-alignment value, or
// layout.DefaultVerticalAlignment when it is unset.
func (s *Style) GetVerticalAlignment() (layout.VerticalAlignment, error) {
	val, ok := s.Get("vertical-alignment")
	if !ok {
		return layout.DefaultVerticalAlignment, nil
	}
	return layout.ParseVerticalAlignment(val)
}

// Validate checks every property whose value must come from a closed set.
func (s *Style) Validate() error {
	if _, err := s.GetHorizontalAlignment(); err != nil {
		return err
	}
	if _, err := s.GetVerticalAlignment(); err != nil {
		return err
	}
	for _, prop := range []string{"margin-top", "margin-right", "margin-bottom", "margin-left", "width", "height", "font-size"} {
		if val, ok := s.Get(prop); ok {
			if _, ok := ParseLength(val); !ok {
				return fmt.Errorf("%s: invalid length %q", prop, val)
			}
		}
	}
	return nil
}

// GetFontSize returns the font-size in pixels (default: 13px, the basic face height)
func (s *Style) GetFontSize() float64 {
	if size, ok := s.GetLength("font-size"); ok {
		return size
	}
	return 13.0
}

// GetColor returns the named color property, or fallback when unset or invalid.
func (s *Style) GetColor(property string, fallback Color) Color {
	if colorStr, ok := s.Get(property); ok {
		if color, ok := ParseColor(colorStr); ok {
			return color
		}
	}
	return fallback
}

func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	declarations := strings.Split(styleAttr, ";")
	for _, decl := range declarations {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		expandShorthand(style, property, value)
	}
	return style
}

// Parse is ParseInlineStyle followed by Validate.
func Parse(styleAttr string) (*Style, error) {
	s := ParseInlineStyle(styleAttr)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("style %q: %w", styleAttr, err)
	}
	return s, nil
}

// expandShorthand expands shorthand properties into individual properties
func expandShorthand(style *Style, property, value string) {
	switch property {
	case "margin":
		// margin: 10px -> margin-top/right/bottom/left: 10px
		expandBoxProperty(style, "margin", value)
	case "alignment":
		// alignment: center top -> horizontal-alignment, vertical-alignment
		parts := strings.Fields(value)
		if len(parts) >= 1 {
			style.Set("horizontal-alignment", parts[0])
		}
		if len(parts) >= 2 {
			style.Set("vertical-alignment", parts[1])
		}
	default:
		style.Set(property, value)
	}
}

// expandBoxProperty expands the margin shorthand
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
//
//	"10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func expandBoxProperty(style *Style, prefix, value string) {
	parts := strings.Fields(value)

	switch len(parts) {
	case 1:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-left", parts[0])
	case 2:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-bottom", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
	case 3:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-left", parts[1])
		style.Set(prefix+"-bottom", parts[2])
	case 4:
		style.Set(prefix+"-top", parts[0])
		style.Set(prefix+"-right", parts[1])
		style.Set(prefix+"-bottom", parts[2])
		style.Set(prefix+"-left", parts[3])
	}
}
