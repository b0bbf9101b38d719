package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/indexlist/internal/format/table"
	"github.com/atomicstack/indexlist/internal/logging/events"
	"github.com/atomicstack/indexlist/internal/overlay"
	"github.com/atomicstack/indexlist/internal/section"
	"github.com/atomicstack/indexlist/internal/source"
	"github.com/atomicstack/indexlist/internal/ui"
)

const builtinTitle = "Countries"

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Title        string
	Source       string
	Watch        bool
	Alphabet     string
	KeepEmpty    bool
	DumpSections bool
	IndexBar     IndexBar
}

// IndexBar holds the index bar settings.
type IndexBar struct {
	Enabled         bool
	Width           int
	Margin          int
	TextColor       string
	BackgroundColor string
	SelectedColor   string
	AutoHide        time.Duration
	FlingRate       float64
	FlingBurst      int
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	colors := overlay.DefaultColors()
	return Config{
		Alphabet:  section.DefaultAlphabet,
		KeepEmpty: true,
		IndexBar: IndexBar{
			Enabled:         true,
			Width:           overlay.DefaultBarWidth,
			Margin:          overlay.DefaultBarMargin,
			TextColor:       colors.Text,
			BackgroundColor: colors.Background,
			SelectedColor:   colors.SelectedText,
			AutoHide:        overlay.DefaultAutoHide,
			FlingRate:       overlay.DefaultFlingRate,
			FlingBurst:      overlay.DefaultFlingBurst,
		},
	}
}

// Options converts the settings into controller options.
func (b IndexBar) Options() overlay.Options {
	return overlay.Options{
		Enabled:   b.Enabled,
		BarWidth:  b.Width,
		BarMargin: b.Margin,
		Colors: overlay.Colors{
			Text:         b.TextColor,
			Background:   b.BackgroundColor,
			SelectedText: b.SelectedColor,
		},
		AutoHide:   b.AutoHide,
		FlingRate:  b.FlingRate,
		FlingBurst: b.FlingBurst,
	}
}

// ResolvedTitle returns the configured title, or one derived from the source.
func (c Config) ResolvedTitle() string {
	if title := strings.TrimSpace(c.Title); title != "" {
		return title
	}
	if strings.TrimSpace(c.Source) == "" {
		return builtinTitle
	}
	return filepath.Base(c.Source)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	labels, err := source.Resolve(cfg.Source, cfg.Alphabet)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	events.App.Dataset(sourceName(cfg.Source), len(labels))

	var watcher *source.Watcher
	if cfg.Watch {
		watcher, err = source.NewWatcher(cfg.Source, cfg.Alphabet, source.DefaultDebounce)
		if err != nil {
			return err
		}
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	model := ui.NewModel(ui.Options{
		Title:      cfg.ResolvedTitle(),
		Labels:     labels,
		Alphabet:   cfg.Alphabet,
		KeepEmpty:  cfg.KeepEmpty,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		IndexBar:   cfg.IndexBar.Options(),
		Watcher:    watcher,
	})
	program := tea.NewProgram(model)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// DumpSections writes the section table for the configured source to w.
func DumpSections(w io.Writer, cfg Config) error {
	labels, err := source.Resolve(cfg.Source, cfg.Alphabet)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	idx, err := section.Build(labels, cfg.Alphabet, section.Options{KeepEmpty: cfg.KeepEmpty})
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	rows := [][]string{{"SECTION", "FIRST", "COUNT", "LABEL"}}
	for _, entry := range idx.Entries() {
		first := ""
		if entry.Count > 0 {
			first = labels[entry.First]
		}
		rows = append(rows, []string{
			entry.Label,
			strconv.Itoa(entry.First),
			strconv.Itoa(entry.Count),
			first,
		})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func sourceName(path string) string {
	if strings.TrimSpace(path) == "" {
		return "builtin"
	}
	return path
}
