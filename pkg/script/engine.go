package script

import (
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"

	"editorpanel/pkg/layout"
	"editorpanel/pkg/text"
)

// Scene is the result of running a scene script.
type Scene struct {
	Name   string
	Panel  *layout.Panel
	Width  float64 // Zero when the script did not call size()
	Height float64
}

// HasSize reports whether the script chose the host size.
func (s *Scene) HasSize() bool {
	return s.Width > 0 && s.Height > 0
}

// Engine runs scene scripts on a goja runtime.
type Engine struct {
	measurer *text.Measurer
	stdout   io.Writer
	stderr   io.Writer
}

// New creates an engine whose labels are measured with m (nil for the
// default face).
func New(m *text.Measurer) *Engine {
	if m == nil {
		m = text.NewMeasurer(nil)
	}
	return &Engine{measurer: m, stdout: os.Stdout, stderr: os.Stderr}
}

// SetOutput redirects console output.
func (e *Engine) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// Run executes src in a fresh runtime and returns the scene it built.
func (e *Engine) Run(name, src string) (*Scene, error) {
	vm := goja.New()
	scene := &Scene{Name: name, Panel: layout.NewPanel()}

	c := &consoleAPI{stdout: e.stdout, stderr: e.stderr}
	c.register(vm)
	registerScene(vm, scene, e.measurer)

	if _, err := vm.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return scene, nil
}

// RunFile reads and runs a scene script.
func (e *Engine) RunFile(path string) (*Scene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return e.Run(path, string(src))
}
