package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/indexlist/internal/app"
	"github.com/atomicstack/indexlist/internal/config"
	"github.com/atomicstack/indexlist/internal/logging"
	"github.com/atomicstack/indexlist/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if runtimeCfg.App.DumpSections {
		if err := app.DumpSections(os.Stdout, runtimeCfg.App); err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records what the index bar and list start with, the
// flags the user set, and the terminal the program found.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	bar := cfg.App.IndexBar
	payload := map[string]interface{}{
		"session": logging.Session(),
		"argv":    cfg.Args,
		"flags":   cfg.Flags,
		"dataset": map[string]interface{}{
			"title":     cfg.App.ResolvedTitle(),
			"source":    cfg.App.Source,
			"watch":     cfg.App.Watch,
			"alphabet":  cfg.App.Alphabet,
			"keepEmpty": cfg.App.KeepEmpty,
		},
		"indexBar": map[string]interface{}{
			"enabled":    bar.Enabled,
			"width":      bar.Width,
			"margin":     bar.Margin,
			"autoHide":   bar.AutoHide.String(),
			"flingRate":  bar.FlingRate,
			"flingBurst": bar.FlingBurst,
			"colors":     []string{bar.TextColor, bar.BackgroundColor, bar.SelectedColor},
		},
		"logging": map[string]interface{}{
			"file":  cfg.Logging.FilePath,
			"trace": cfg.Logging.Trace,
		},
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if size, ok := detectTerminal(); ok {
		payload["terminal"] = size
	}
	return payload
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// detectTerminal reports the size of the first standard descriptor attached to
// a terminal. Fixed --width/--height values override it inside the program.
func detectTerminal() (terminalSize, bool) {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			continue
		}
		return terminalSize{Source: f.Name(), Width: width, Height: height}, true
	}
	return terminalSize{}, false
}
