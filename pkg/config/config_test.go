package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"editorpanel/pkg/render"
	"editorpanel/pkg/style"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editorpanel.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 640

[colors]
label = "#ff0000"

[debug]
trace = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 320 {
		t.Errorf("expected 640x320, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Font.Size != 13 {
		t.Errorf("expected default font size 13, got %.1f", cfg.Font.Size)
	}
	if !cfg.Debug.Trace {
		t.Error("expected trace to be enabled")
	}

	theme := cfg.Theme()
	if theme.Label != (style.Color{R: 255}) {
		t.Errorf("expected red label fill, got %v", theme.Label)
	}
	if theme.Editor != render.DefaultTheme().Editor {
		t.Errorf("expected default editor fill, got %v", theme.Editor)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[canvas]\ndepth = 3\n", "unknown key"},
		{"bad color", "[colors]\nguide = \"plaid\"\n", "colors.guide"},
		{"bad size", "[canvas]\nwidth = -1\n", "must be positive"},
		{"syntax", "[canvas\n", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMeasurer_DefaultFont(t *testing.T) {
	m, err := Default().Measurer()
	if err != nil {
		t.Fatalf("measurer: %v", err)
	}
	if w, _ := m.Measure("abc"); w != 21 {
		t.Errorf("expected built-in face width 21, got %.1f", w)
	}

	cfg := Default()
	cfg.Font.Path = filepath.Join(t.TempDir(), "missing.ttf")
	if _, err := cfg.Measurer(); err == nil {
		t.Error("expected error for missing font")
	}
}

func TestLoad_Example(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "editorpanel.toml"))
	if err != nil {
		t.Fatalf("load example: %v", err)
	}
	if cfg.Canvas.Width != 480 || cfg.Theme().Guide != (style.Color{R: 128, G: 128, B: 128}) {
		t.Errorf("unexpected example config %+v", cfg)
	}
}
