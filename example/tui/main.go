// Example tui runs the grid in a terminal.
//
//	go run ./example/tui/
//	go run ./example/tui/ -config grid.toml -verbose 2>debug.log
//
// Arrows move, shift+arrows extend, enter edits, ^q quits. Copies are also
// placed on the system clipboard when xclip, xsel or wl-clipboard is present.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-theft-auto/sheet"
	"github.com/go-theft-auto/sheet/tui"
)

func main() {
	configPath := flag.String("config", "", "TOML grid config, sizes in terminal cells")
	verbose := flag.Bool("verbose", false, "enable debug logging to stderr")
	flag.Parse()

	sheet.SetVerbose(*verbose)
	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := tui.Config()
	if configPath != "" {
		var err error
		if cfg, err = sheet.LoadConfigFrom(configPath, cfg); err != nil {
			return err
		}
	}

	var gridOpts []sheet.Option
	if clip := (tui.SystemClipboard{}); clip.Available() {
		gridOpts = append(gridOpts, sheet.WithClipboardProvider(clip))
	}
	m, err := tui.New(cfg, nil, gridOpts...)
	if err != nil {
		return err
	}
	if _, err := tui.Program(m).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
