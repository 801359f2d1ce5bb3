// Package config loads settings shared by the editorpanel commands from a
// TOML file. Anything the file leaves out keeps its default.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"editorpanel/pkg/render"
	"editorpanel/pkg/style"
	"editorpanel/pkg/text"
)

type Config struct {
	Canvas Canvas `toml:"canvas"`
	Colors Colors `toml:"colors"`
	Font   Font   `toml:"font"`
	Debug  Debug  `toml:"debug"`
}

// Canvas is the size granted to the panel when a scene does not set one.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Colors are style color strings ("navy", "#1e90ff").
type Colors struct {
	Background string `toml:"background"`
	Label      string `toml:"label"`
	Editor     string `toml:"editor"`
	Margin     string `toml:"margin"`
	Guide      string `toml:"guide"`
	Text       string `toml:"text"`
}

type Font struct {
	Path string  `toml:"path"` // Empty means the built-in face
	Size float64 `toml:"size"`
}

type Debug struct {
	Log   string `toml:"log"`   // File to append layout traces to
	Trace bool   `toml:"trace"` // Trace measure/arrange passes
}

func Default() Config {
	return Config{
		Canvas: Canvas{Width: 480, Height: 320},
		Font:   Font{Size: 13},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks sizes and colors.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font size %.1f must be positive", c.Font.Size)
	}
	for name, val := range c.Colors.byName() {
		if val == "" {
			continue
		}
		if _, ok := style.ParseColor(val); !ok {
			return fmt.Errorf("colors.%s: invalid color %q", name, val)
		}
	}
	return nil
}

func (c Colors) byName() map[string]string {
	return map[string]string{
		"background": c.Background,
		"label":      c.Label,
		"editor":     c.Editor,
		"margin":     c.Margin,
		"guide":      c.Guide,
		"text":       c.Text,
	}
}

// Theme overlays the configured colors on render.DefaultTheme.
func (c Config) Theme() render.Theme {
	theme := render.DefaultTheme()
	pick := func(val string, dst *style.Color) {
		if col, ok := style.ParseColor(val); ok {
			*dst = col
		}
	}
	pick(c.Colors.Background, &theme.Background)
	pick(c.Colors.Label, &theme.Label)
	pick(c.Colors.Editor, &theme.Editor)
	pick(c.Colors.Margin, &theme.Margin)
	pick(c.Colors.Guide, &theme.Guide)
	pick(c.Colors.Text, &theme.Text)
	return theme
}

// Measurer loads the configured font and returns a measurer for it.
func (c Config) Measurer() (*text.Measurer, error) {
	face, err := text.LoadFace(c.Font.Path, c.Font.Size)
	if err != nil {
		return nil, err
	}
	return text.NewMeasurer(face), nil
}
