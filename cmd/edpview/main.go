package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"editorpanel/pkg/config"
	"editorpanel/pkg/fynepanel"
	"editorpanel/pkg/layout"
	"editorpanel/pkg/script"
	"editorpanel/pkg/text"
)

func main() {
	cfg, scene, err := load(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	newWindow(app.New(), cfg, scene).ShowAndRun()
}

// load parses the flags and runs the scene script.
func load(args []string, stdout, stderr io.Writer) (config.Config, *script.Scene, error) {
	fs := flag.NewFlagSet("edpview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: edpview [flags] <scene.js>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config.Config{}, nil, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return config.Config{}, nil, fmt.Errorf("missing scene script")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	measurer, err := cfg.Measurer()
	if err != nil {
		return config.Config{}, nil, err
	}
	engine := script.New(measurer)
	engine.SetOutput(stdout, stderr)
	scene, err := engine.RunFile(fs.Arg(0))
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, scene, nil
}

func newWindow(a fyne.App, cfg config.Config, scene *script.Scene) fyne.Window {
	w := a.NewWindow("edpview: " + scene.Name)
	width, height := float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)
	if scene.HasSize() {
		width, height = float32(scene.Width), float32(scene.Height)
	}

	panel, _ := newPanel(scene.Panel)
	status := widget.NewLabel(fmt.Sprintf("%d rows", len(scene.Panel.Rows())))
	// The panel never compresses vertically; let the scroller handle overflow.
	w.SetContent(container.NewBorder(nil, status, nil, nil, container.NewVScroll(panel)))
	w.Resize(fyne.NewSize(width, height))
	return w
}

// newPanel mirrors p as fyne widgets, carrying over margins and alignments.
func newPanel(p *layout.Panel) (*fyne.Container, []fyne.CanvasObject) {
	objects := make([]fyne.CanvasObject, 0, p.Len())
	for _, child := range p.Children() {
		objects = append(objects, widgetFor(child))
	}
	c, l := fynepanel.NewContainer(objects...)
	for i, child := range p.Children() {
		l.SetMargin(objects[i], layout.MarginOf(child))
		h, v := layout.AlignmentOf(child)
		l.SetAlignment(objects[i], h, v)
	}
	return c, objects
}

// widgetFor makes labels into fyne labels and every other element an entry.
func widgetFor(e layout.Element) fyne.CanvasObject {
	if l, ok := e.(*text.Label); ok {
		return widget.NewLabel(l.Text)
	}
	entry := widget.NewEntry()
	if b, ok := e.(*layout.Box); ok {
		entry.SetPlaceHolder(b.Name)
	}
	return entry
}
