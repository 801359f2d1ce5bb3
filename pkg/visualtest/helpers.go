package visualtest

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"editorpanel/pkg/layout"
	"editorpanel/pkg/render"
)

// RenderPanelToFile measures and arranges panel at the given size and saves
// the rendered result as a PNG.
func RenderPanelToFile(panel *layout.Panel, outputPath string, width, height int) error {
	size := layout.NewSize(float64(width), float64(height))
	panel.Measure(size)
	plan, err := panel.Plan(size)
	if err != nil {
		return fmt.Errorf("layout error: %w", err)
	}
	plan.Apply()

	renderer := render.NewRenderer(width, height)
	renderer.Render(plan)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := renderer.SavePNG(outputPath); err != nil {
		return fmt.Errorf("save error: %w", err)
	}
	return nil
}

// LoadPNG decodes a PNG file.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// SavePNG saves an image as PNG
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
