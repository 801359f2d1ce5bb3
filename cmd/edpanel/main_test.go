package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"editorpanel/pkg/visualtest"
)

const scene = `
size(200, 60);
panel.label("Name");
panel.editor(120, 20);
panel.label("Email", "margin: 2 4");
panel.editor(160, 20, "alignment: left center");
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_RendersScene(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "form.js", scene)
	out := filepath.Join(dir, "form.png")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-o", out, script}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v (stderr %q)", err, stderr.String())
	}

	img, err := visualtest.LoadPNG(out)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 60 {
		t.Errorf("expected 200x60 image, got %v", img.Bounds())
	}
	report := stdout.String()
	for _, want := range []string{"label column 43", "Email", "Rendered"} {
		if !strings.Contains(report, want) {
			t.Errorf("expected output to contain %q:\n%s", want, report)
		}
	}
}

func TestRun_FlagsAndConfig(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "form.js", `for (var i = 0; i < 4; i++) { panel.label("A"); panel.editor(50, 20); }`)
	cfg := writeFile(t, dir, "cfg.toml", "[canvas]\nwidth = 90\nheight = 40\n")
	out := filepath.Join(dir, "out.png")

	var stdout bytes.Buffer
	if err := run([]string{"-config", cfg, "-w", "120", "-o", out, script}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	img, err := visualtest.LoadPNG(out)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 40 {
		t.Errorf("expected 120x40 image, got %v", img.Bounds())
	}
	if !strings.Contains(stdout.String(), "exceeds") {
		t.Errorf("expected overflow warning, got:\n%s", stdout.String())
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.js", `panel.label("x", "vertical-alignment: sideways")`)

	if err := run(nil, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Error("expected error without a script")
	}
	err := run([]string{"-o", filepath.Join(dir, "x.png"), bad}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unsupported alignment") {
		t.Errorf("expected alignment error, got %v", err)
	}
	if err := run([]string{"-config", filepath.Join(dir, "none.toml"), bad}, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing config")
	}
}
