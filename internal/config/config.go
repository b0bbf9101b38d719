package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/indexlist/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig        = "INDEXLIST_CONFIG"
	envWidth         = "INDEXLIST_WIDTH"
	envHeight        = "INDEXLIST_HEIGHT"
	envShowFooter    = "INDEXLIST_FOOTER"
	envTitle         = "INDEXLIST_TITLE"
	envSource        = "INDEXLIST_SOURCE"
	envWatch         = "INDEXLIST_WATCH"
	envAlphabet      = "INDEXLIST_ALPHABET"
	envKeepEmpty     = "INDEXLIST_KEEP_EMPTY"
	envFastScroll    = "INDEXLIST_FAST_SCROLL"
	envBarWidth      = "INDEXLIST_BAR_WIDTH"
	envBarMargin     = "INDEXLIST_BAR_MARGIN"
	envTextColor     = "INDEXLIST_TEXT_COLOR"
	envBarColor      = "INDEXLIST_BAR_COLOR"
	envSelectedColor = "INDEXLIST_SELECTED_COLOR"
	envAutoHide      = "INDEXLIST_AUTO_HIDE"
	envFlingRate     = "INDEXLIST_FLING_RATE"
	envFlingBurst    = "INDEXLIST_FLING_BURST"
	envTrace         = "INDEXLIST_TRACE"
	envLogFile       = "INDEXLIST_LOG_FILE"
)

// Load parses configuration from CLI arguments, environment variables and an
// optional TOML file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// in the order flags, environment, config file, built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := envOrDefault(env, envConfig, "")
	if p, ok := scanConfigFlag(args); ok {
		path = p
	}
	base := Defaults()
	if strings.TrimSpace(path) != "" {
		fc, err := ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := fc.apply(&base); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	fs := flag.NewFlagSet("indexlist", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML config file")
	width := fs.Int("width", envOrInt(env, envWidth, base.App.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, base.App.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, base.App.ShowFooter), "enable footer hint row")
	title := fs.String("title", envOrDefault(env, envTitle, base.App.Title), "list title shown in the header")
	src := fs.String("source", envOrDefault(env, envSource, base.App.Source), "file with one item per line (empty uses the builtin country list)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, base.App.Watch), "reload the source file when it changes")
	alphabet := fs.String("alphabet", envOrDefault(env, envAlphabet, base.App.Alphabet), "section alphabet, in order")
	keepEmpty := fs.Bool("keep-empty", envOrBool(env, envKeepEmpty, base.App.KeepEmpty), "show alphabet sections that have no items")
	fastScroll := fs.Bool("fast-scroll", envOrBool(env, envFastScroll, base.App.IndexBar.Enabled), "enable the index bar")
	barWidth := fs.Int("bar-width", envOrInt(env, envBarWidth, base.App.IndexBar.Width), "index bar width in cells")
	barMargin := fs.Int("bar-margin", envOrInt(env, envBarMargin, base.App.IndexBar.Margin), "gap between the index bar and the list edges")
	textColor := fs.String("text-color", envOrDefault(env, envTextColor, base.App.IndexBar.TextColor), "index bar label colour")
	barColor := fs.String("bar-color", envOrDefault(env, envBarColor, base.App.IndexBar.BackgroundColor), "index bar background colour")
	selectedColor := fs.String("selected-color", envOrDefault(env, envSelectedColor, base.App.IndexBar.SelectedColor), "colour of the section under the pointer")
	autoHide := fs.Duration("auto-hide", envOrDuration(env, envAutoHide, base.App.IndexBar.AutoHide), "delay before an idle index bar hides")
	flingRate := fs.Float64("fling-rate", envOrFloat(env, envFlingRate, base.App.IndexBar.FlingRate), "sustained wheel events per second before a burst counts as a fling")
	flingBurst := fs.Int("fling-burst", envOrInt(env, envFlingBurst, base.App.IndexBar.FlingBurst), "wheel events absorbed before a fling is detected")
	sections := fs.Bool("sections", false, "print the section table and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, base.Logging.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, base.Logging.FilePath), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Title:        *title,
			Source:       *src,
			Watch:        *watch,
			Alphabet:     *alphabet,
			KeepEmpty:    *keepEmpty,
			DumpSections: *sections,
			IndexBar: app.IndexBar{
				Enabled:         *fastScroll,
				Width:           *barWidth,
				Margin:          *barMargin,
				TextColor:       *textColor,
				BackgroundColor: *barColor,
				SelectedColor:   *selectedColor,
				AutoHide:        *autoHide,
				FlingRate:       *flingRate,
				FlingBurst:      *flingBurst,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":     path,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"title":      *title,
			"source":     *src,
			"watch":      strconv.FormatBool(*watch),
			"alphabet":   *alphabet,
			"keepEmpty":  strconv.FormatBool(*keepEmpty),
			"fastScroll": strconv.FormatBool(*fastScroll),
			"barWidth":   strconv.Itoa(*barWidth),
			"barMargin":  strconv.Itoa(*barMargin),
			"autoHide":   autoHide.String(),
			"flingRate":  strconv.FormatFloat(*flingRate, 'g', -1, 64),
			"flingBurst": strconv.Itoa(*flingBurst),
			"sections":   strconv.FormatBool(*sections),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{App: app.DefaultConfig()}
}

// scanConfigFlag finds --config ahead of the full parse so the file can seed
// flag defaults.
func scanConfigFlag(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the index bar and section index cannot work with.
func Validate(cfg Config) error {
	bar := cfg.App.IndexBar
	var errs []error
	if strings.TrimSpace(cfg.App.Alphabet) == "" {
		errs = append(errs, errors.New("alphabet must not be empty"))
	}
	if bar.Width < 1 {
		errs = append(errs, fmt.Errorf("bar-width must be >= 1 (got %d)", bar.Width))
	}
	if bar.Margin < 0 {
		errs = append(errs, fmt.Errorf("bar-margin must be >= 0 (got %d)", bar.Margin))
	}
	if bar.AutoHide <= 0 {
		errs = append(errs, fmt.Errorf("auto-hide must be positive (got %s)", bar.AutoHide))
	}
	if bar.FlingRate <= 0 {
		errs = append(errs, fmt.Errorf("fling-rate must be positive (got %g)", bar.FlingRate))
	}
	if bar.FlingBurst < 1 {
		errs = append(errs, fmt.Errorf("fling-burst must be >= 1 (got %d)", bar.FlingBurst))
	}
	if cfg.App.Watch && strings.TrimSpace(cfg.App.Source) == "" {
		errs = append(errs, errors.New("watch requires a source file"))
	}
	return errors.Join(errs...)
}
