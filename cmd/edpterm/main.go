package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"editorpanel/pkg/config"
	"editorpanel/pkg/debug"
	"editorpanel/pkg/script"
	"editorpanel/pkg/termview"
)

// start runs the interactive preview; tests replace it.
var start = termview.Run

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("edpterm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	trace := fs.Bool("trace", false, "trace measure/arrange passes to the debug log")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: edpterm [flags] <scene.js>\n\nFlags:\n")
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

	// One terminal cell per glyph of the configured face.
	w, _ := measurer.Measure("M")
	scale := termview.Scale{X: w, Y: measurer.LineHeight()}
	return start(scene.Name, scene.Panel, scale)
}
