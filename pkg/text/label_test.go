package text

import (
	"testing"

	"editorpanel/pkg/layout"
)

func TestMeasurer_DefaultFace(t *testing.T) {
	m := NewMeasurer(nil)

	if m.LineHeight() != 13 {
		t.Errorf("expected line height 13, got %.1f", m.LineHeight())
	}
	w, h := m.Measure("Name")
	if w != 28 || h != 13 {
		t.Errorf("expected 28x13, got %.1fx%.1f", w, h)
	}
	w, h = m.Measure("Street\nCity")
	if w != 42 || h != 26 {
		t.Errorf("expected 42x26, got %.1fx%.1f", w, h)
	}
	w, h = m.Measure("")
	if w != 0 || h != 13 {
		t.Errorf("expected 0x13 for empty text, got %.1fx%.1f", w, h)
	}
}

func TestLoadFace_EmptyPath(t *testing.T) {
	face, err := LoadFace("", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if face != DefaultFace {
		t.Error("expected default face for empty path")
	}
	if _, err := LoadFace("/nonexistent/font.ttf", 12); err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestLabel_InPanel(t *testing.T) {
	m := NewMeasurer(nil)
	short := NewLabel("Age", m)
	long := NewLabel("Surname", m)
	panel := layout.NewPanel(
		short, layout.NewBox("age", 60, 20),
		long, layout.NewBox("surname", 60, 20),
	)

	desired := panel.Measure(layout.UnconstrainedSize())
	if desired.Width != 49+60 || desired.Height != 40 {
		t.Errorf("expected (109, 40), got %+v", desired)
	}

	if _, err := panel.Arrange(layout.NewSize(200, 40)); err != nil {
		t.Fatalf("arrange: %v", err)
	}
	// Left aligned, vertically centered in a 20-high row.
	want := layout.Rect{X: 0, Y: 3.5, Width: 21, Height: 13}
	if short.Bounds() != want {
		t.Errorf("expected %+v, got %+v", want, short.Bounds())
	}
}

func TestLabel_ClampedByConstraint(t *testing.T) {
	l := NewLabel("A long caption", nil)
	l.Measure(layout.NewSize(30, 5))
	if got := l.DesiredSize(); got != layout.NewSize(30, 5) {
		t.Errorf("expected (30, 5), got %+v", got)
	}
}
