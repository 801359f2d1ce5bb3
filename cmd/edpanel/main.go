package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"editorpanel/pkg/config"
	"editorpanel/pkg/debug"
	"editorpanel/pkg/layout"
	"editorpanel/pkg/render"
	"editorpanel/pkg/report"
	"editorpanel/pkg/script"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("edpanel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	output := fs.String("o", "panel.png", "output PNG file path")
	width := fs.Int("w", 0, "panel width in pixels (overrides scene and config)")
	height := fs.Int("h", 0, "panel height in pixels (overrides scene and config)")
	trace := fs.Bool("trace", false, "trace measure/arrange passes to the debug log")
	quiet := fs.Bool("q", false, "do not print the placement report")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: edpanel [flags] <scene.js>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing scene script")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if cfg.Debug.Log != "" {
		if err := debug.Open(cfg.Debug.Log); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
	}

	measurer, err := cfg.Measurer()
	if err != nil {
		return err
	}
	engine := script.New(measurer)
	engine.SetOutput(stdout, stderr)
	scene, err := engine.RunFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if *trace || cfg.Debug.Trace {
		scene.Panel.SetLogger(debug.Logger())
	}

	w, h := float64(cfg.Canvas.Width), float64(cfg.Canvas.Height)
	if scene.HasSize() {
		w, h = scene.Width, scene.Height
	}
	if *width > 0 {
		w = float64(*width)
	}
	if *height > 0 {
		h = float64(*height)
	}

	size := layout.NewSize(w, h)
	desired := scene.Panel.Measure(size)
	debug.Log("scene %s: %d children, desired %v", scene.Name, scene.Panel.Len(), desired)
	plan, err := scene.Panel.Plan(size)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	plan.Apply()

	renderer := render.NewRenderer(int(w), int(h))
	renderer.SetTheme(cfg.Theme())
	renderer.SetFace(measurer.Face())
	renderer.Render(plan)
	if err := renderer.SavePNG(*output); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	if !*quiet {
		fmt.Fprint(stdout, report.Format(scene.Name, plan, terminalWidth(stdout)))
		if desired.Height > h {
			fmt.Fprintf(stdout, "warning: content height %.0f exceeds %.0f; rows below are clipped\n", desired.Height, h)
		}
	}
	fmt.Fprintf(stdout, "Rendered %s to %s\n", scene.Name, *output)
	return nil
}

// terminalWidth returns the width of w if it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
