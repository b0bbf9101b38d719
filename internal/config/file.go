package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the TOML config file. Absent keys leave the current
// value untouched.
type FileConfig struct {
	Title   *string     `toml:"title"`
	Source  *string     `toml:"source"`
	Watch   *bool       `toml:"watch"`
	Width   *int        `toml:"width"`
	Height  *int        `toml:"height"`
	Footer  *bool       `toml:"footer"`
	Index   fileIndex   `toml:"index"`
	Logging fileLogging `toml:"logging"`
}

type fileIndex struct {
	Alphabet   *string    `toml:"alphabet"`
	KeepEmpty  *bool      `toml:"keep_empty"`
	FastScroll *bool      `toml:"fast_scroll"`
	BarWidth   *int       `toml:"bar_width"`
	BarMargin  *int       `toml:"bar_margin"`
	AutoHide   *string    `toml:"auto_hide"`
	FlingRate  *float64   `toml:"fling_rate"`
	FlingBurst *int       `toml:"fling_burst"`
	Colors     fileColors `toml:"colors"`
}

type fileColors struct {
	Text       *string `toml:"text"`
	Background *string `toml:"background"`
	Selected   *string `toml:"selected"`
}

type fileLogging struct {
	File  *string `toml:"file"`
	Trace *bool   `toml:"trace"`
}

// ReadFile decodes the TOML file at path. Unknown keys are an error so typos
// do not pass silently.
func ReadFile(path string) (FileConfig, error) {
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		sort.Strings(keys)
		return FileConfig{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return fc, nil
}

func (fc FileConfig) apply(cfg *Config) error {
	setString(&cfg.App.Title, fc.Title)
	setString(&cfg.App.Source, fc.Source)
	setBool(&cfg.App.Watch, fc.Watch)
	setInt(&cfg.App.Width, fc.Width)
	setInt(&cfg.App.Height, fc.Height)
	setBool(&cfg.App.ShowFooter, fc.Footer)

	setString(&cfg.App.Alphabet, fc.Index.Alphabet)
	setBool(&cfg.App.KeepEmpty, fc.Index.KeepEmpty)

	bar := &cfg.App.IndexBar
	setBool(&bar.Enabled, fc.Index.FastScroll)
	setInt(&bar.Width, fc.Index.BarWidth)
	setInt(&bar.Margin, fc.Index.BarMargin)
	setInt(&bar.FlingBurst, fc.Index.FlingBurst)
	if fc.Index.FlingRate != nil {
		bar.FlingRate = *fc.Index.FlingRate
	}
	if fc.Index.AutoHide != nil {
		d, err := time.ParseDuration(*fc.Index.AutoHide)
		if err != nil {
			return fmt.Errorf("index.auto_hide: %w", err)
		}
		bar.AutoHide = d
	}
	setString(&bar.TextColor, fc.Index.Colors.Text)
	setString(&bar.BackgroundColor, fc.Index.Colors.Background)
	setString(&bar.SelectedColor, fc.Index.Colors.Selected)

	setString(&cfg.Logging.FilePath, fc.Logging.File)
	setBool(&cfg.Logging.Trace, fc.Logging.Trace)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
