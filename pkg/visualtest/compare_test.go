package visualtest

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"editorpanel/pkg/layout"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompareImages_Identical(t *testing.T) {
	a := solid(4, 4, color.RGBA{10, 20, 30, 255})
	b := solid(4, 4, color.RGBA{11, 20, 30, 255})

	result, err := CompareImages(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match || result.MaxDifference != 1 || result.TotalPixels != 16 {
		t.Errorf("expected match with max difference 1 over 16 pixels, got %+v", result)
	}
}

func TestCompareImages_Different(t *testing.T) {
	a := solid(4, 4, color.RGBA{0, 0, 0, 255})
	b := solid(4, 4, color.RGBA{0, 0, 0, 255})
	b.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})

	result, err := CompareImages(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match || result.DifferentPixels != 1 {
		t.Errorf("expected one different pixel, got %+v", result)
	}

	opts := DefaultOptions()
	opts.MaxDifferentPercent = 10
	result, _ = CompareImages(a, b, opts)
	if !result.Match {
		t.Errorf("expected 1/16 pixels to be within 10%%, got %+v", result)
	}
}

func TestCompareImages_SizeMismatch(t *testing.T) {
	_, err := CompareImages(solid(2, 2, color.RGBA{}), solid(3, 2, color.RGBA{}), DefaultOptions())
	if err == nil {
		t.Error("expected error for differing dimensions")
	}
}

func TestRenderPanelToFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	build := func() *layout.Panel {
		return layout.NewPanel(
			layout.NewBox("Name", 40, 20), layout.NewBox("", 100, 24),
			layout.NewBox("Age", 30, 20).WithAlignment(layout.HAlignRight, layout.VAlignCenter),
		)
	}

	first := filepath.Join(dir, "a", "panel.png")
	second := filepath.Join(dir, "b", "panel.png")
	if err := RenderPanelToFile(build(), first, 160, 60); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := RenderPanelToFile(build(), second, 160, 60); err != nil {
		t.Fatalf("render: %v", err)
	}

	opts := DefaultOptions()
	opts.Tolerance = 0
	result, err := CompareFiles(first, second, opts)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !result.Match {
		t.Errorf("expected identical renders, got %+v", result)
	}
}
