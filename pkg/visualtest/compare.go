package visualtest

import (
	"fmt"
	"image"
	"image/color"
)

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Max color channel difference found
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance: maximum allowed difference per color channel (0-255)
	Tolerance int

	// FuzzyRadius: if > 0, a pixel matches if it matches any pixel within this radius
	FuzzyRadius int

	// MaxDifferentPercent: if > 0, pass if the percentage of different pixels is <= this value
	MaxDifferentPercent float64

	// SaveDiffImage: if true, saves a diff image highlighting differences
	SaveDiffImage bool
	DiffImagePath string
}

// DefaultOptions returns sensible defaults for image comparison
func DefaultOptions() CompareOptions {
	return CompareOptions{
		Tolerance: 2,
	}
}

// CompareFiles compares two PNG files pixel-by-pixel
func CompareFiles(actualPath, expectedPath string, opts CompareOptions) (*CompareResult, error) {
	actualImg, err := LoadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expectedImg, err := LoadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return CompareImages(actualImg, expectedImg, opts)
}

// CompareImages compares two images pixel-by-pixel
func CompareImages(actualImg, expectedImg image.Image, opts CompareOptions) (*CompareResult, error) {
	actualBounds := actualImg.Bounds()
	expectedBounds := expectedImg.Bounds()
	if actualBounds != expectedBounds {
		return &CompareResult{
			Match: false,
		}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", actualBounds, expectedBounds)
	}

	result := &CompareResult{
		Match:       true,
		TotalPixels: actualBounds.Dx() * actualBounds.Dy(),
	}

	var diffImg *image.RGBA
	if opts.SaveDiffImage {
		diffImg = image.NewRGBA(actualBounds)
	}

	for y := actualBounds.Min.Y; y < actualBounds.Max.Y; y++ {
		for x := actualBounds.Min.X; x < actualBounds.Max.X; x++ {
			diff := pixelDiff(actualImg.At(x, y), expectedImg.At(x, y))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			gray := grayOf(actualImg.At(x, y))
			if diff <= opts.Tolerance {
				if diffImg != nil {
					diffImg.Set(x, y, color.RGBA{gray, gray, gray, 255})
				}
				continue
			}

			matched := opts.FuzzyRadius > 0 &&
				fuzzyMatch(actualImg, expectedImg, x, y, opts.FuzzyRadius, opts.Tolerance, actualBounds)
			if matched {
				if diffImg != nil {
					diffImg.Set(x, y, color.RGBA{gray, gray, gray, 255})
				}
				continue
			}

			result.Match = false
			result.DifferentPixels++
			if diffImg != nil {
				diffImg.Set(x, y, color.RGBA{255, 0, 0, 255})
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	if opts.SaveDiffImage && !result.Match && opts.DiffImagePath != "" {
		if err := SavePNG(diffImg, opts.DiffImagePath); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}

	return result, nil
}

// fuzzyMatch checks if the actual pixel at (x, y) matches any expected pixel within radius
func fuzzyMatch(actual, expected image.Image, x, y, radius, tolerance int, bounds image.Rectangle) bool {
	ac := actual.At(x, y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if nx < bounds.Min.X || nx >= bounds.Max.X || ny < bounds.Min.Y || ny >= bounds.Max.Y {
				continue
			}
			if pixelDiff(ac, expected.At(nx, ny)) <= tolerance {
				return true
			}
		}
	}
	return false
}

// pixelDiff returns the largest 8-bit channel difference between a and b.
func pixelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return maxInt(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

func grayOf(c color.Color) uint8 {
	r, _, _, _ := c.RGBA()
	return uint8(r >> 8)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(vals ...int) int {
	if len(vals) == 0 {
		return 0
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
