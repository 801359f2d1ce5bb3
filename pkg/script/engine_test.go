package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dop251/goja"

	"editorpanel/pkg/layout"
	"editorpanel/pkg/text"
)

func run(t *testing.T, src string) (*Scene, string) {
	t.Helper()
	var out bytes.Buffer
	engine := New(nil)
	engine.SetOutput(&out, &out)
	scene, err := engine.Run("test.js", src)
	if err != nil {
		t.Fatal(err)
	}
	return scene, out.String()
}

func TestRun_BuildsPanel(t *testing.T) {
	scene, out := run(t, `
		size(300, 120);
		var i = panel.label("Name");
		panel.editor(100, 24, "margin: 2");
		panel.label("Age", "alignment: right top");
		console.log("children", panel.count(), "rows", panel.rows(), "first", i);
	`)

	if !scene.HasSize() || scene.Width != 300 || scene.Height != 120 {
		t.Errorf("expected size 300x120, got %.0fx%.0f", scene.Width, scene.Height)
	}
	if scene.Panel.Len() != 3 {
		t.Fatalf("expected 3 children, got %d", scene.Panel.Len())
	}
	if strings.TrimSpace(out) != "children 3 rows 2 first 0" {
		t.Errorf("unexpected console output %q", out)
	}

	children := scene.Panel.Children()
	name, ok := children[0].(*text.Label)
	if !ok || name.Text != "Name" {
		t.Fatalf("expected first child to be the Name label, got %#v", children[0])
	}
	if name.HAlign != layout.HAlignLeft || name.VAlign != layout.VAlignCenter {
		t.Errorf("expected label defaults left/center, got %v/%v", name.HAlign, name.VAlign)
	}

	editor := children[1].(*layout.Box)
	if editor.Margins != layout.Uniform(2) || editor.Natural != layout.NewSize(100, 24) {
		t.Errorf("unexpected editor %+v", editor)
	}

	age := children[2].(*text.Label)
	if age.HAlign != layout.HAlignRight || age.VAlign != layout.VAlignTop {
		t.Errorf("expected right/top, got %v/%v", age.HAlign, age.VAlign)
	}
}

func TestRun_LaysOut(t *testing.T) {
	scene, _ := run(t, `
		panel.box("label", 40, 20);
		panel.box("editor", 100, 30);
	`)
	if scene.HasSize() {
		t.Error("expected no size when size() is not called")
	}
	scene.Panel.Measure(layout.UnconstrainedSize())
	if _, err := scene.Panel.Arrange(layout.NewSize(200, 0)); err != nil {
		t.Fatalf("arrange: %v", err)
	}
	editor := scene.Panel.Children()[1].(*layout.Box)
	want := layout.Rect{X: 40, Y: 0, Width: 160, Height: 30}
	if editor.Bounds() != want {
		t.Errorf("expected %+v, got %+v", want, editor.Bounds())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad alignment", `panel.label("x", "horizontal-alignment: middle")`, "unsupported alignment"},
		{"missing args", `panel.editor(10)`, "2 arguments required"},
		{"bad size", `size(0, 10)`, "must be positive"},
		{"syntax", `panel.label(`, "test.js"},
		{"throw", `throw new Error("boom")`, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(nil)
			engine.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
			_, err := engine.Run("test.js", tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestConsole_WarnAndError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	engine := New(nil)
	engine.SetOutput(&stdout, &stderr)
	if _, err := engine.Run("c.js", `console.warn("w", 1); console.error("e")`); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout, got %q", stdout.String())
	}
	if got := stderr.String(); got != "WARN: w 1\nERROR: e\n" {
		t.Errorf("unexpected stderr %q", got)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.js")
	if err := os.WriteFile(path, []byte(`panel.label("Only")`), 0644); err != nil {
		t.Fatal(err)
	}
	scene, err := New(nil).RunFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if scene.Panel.Len() != 1 || scene.Name != path {
		t.Errorf("unexpected scene %+v", scene)
	}
	if _, err := New(nil).RunFile(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunFile_Example(t *testing.T) {
	var out bytes.Buffer
	engine := New(nil)
	engine.SetOutput(&out, &out)
	scene, err := engine.RunFile(filepath.Join("..", "..", "examples", "contact.js"))
	if err != nil {
		t.Fatal(err)
	}
	if scene.Panel.Len() != 8 || strings.TrimSpace(out.String()) != "rows: 4" {
		t.Errorf("unexpected scene: %d children, output %q", scene.Panel.Len(), out.String())
	}

	size := layout.NewSize(scene.Width, scene.Height)
	scene.Panel.Measure(size)
	plan, err := scene.Panel.Plan(size)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	// "Newsletter" is the widest caption: 10 glyphs of 7 pixels.
	if plan.LabelWidth != 70 {
		t.Errorf("expected label column 70, got %.1f", plan.LabelWidth)
	}
}

func TestApplyStyle_KeepsUnsetProperties(t *testing.T) {
	vm := goja.New()
	margin := layout.Uniform(5)
	h, v := layout.HAlignLeft, layout.VAlignCenter

	applyStyle(vm, "box", vm.ToValue("margin-left: 1; horizontal-alignment: right"), &margin, &h, &v)

	want := layout.Thickness{Left: 1, Top: 5, Right: 5, Bottom: 5}
	if margin != want {
		t.Errorf("expected margin %+v, got %+v", want, margin)
	}
	if h != layout.HAlignRight || v != layout.VAlignCenter {
		t.Errorf("expected right/center, got %v/%v", h, v)
	}
}
