// Package source loads the labels shown in the list and republishes them when
// the backing file changes.
package source

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/indexlist/internal/section"
)

//go:embed countries.txt
var countries string

// ErrEmptySource is returned when a source yields no labels.
var ErrEmptySource = errors.New("source: no items")

// Builtin returns the embedded demo dataset.
func Builtin() []string {
	return parse(countries)
}

// Load reads one label per line from path. Blank lines and lines starting
// with "//" are skipped.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	labels := parse(string(data))
	if len(labels) == 0 {
		return nil, fmt.Errorf("source: %s: %w", path, ErrEmptySource)
	}
	return labels, nil
}

// Prepare orders labels so an index over alphabet can be built from them.
func Prepare(labels []string, alphabet string) ([]string, error) {
	sorted, err := section.SortLabels(labels, alphabet)
	if err != nil {
		return nil, fmt.Errorf("source: sort: %w", err)
	}
	return sorted, nil
}

// Resolve loads path, or the builtin dataset when path is empty, and orders
// the result for alphabet.
func Resolve(path, alphabet string) ([]string, error) {
	var labels []string
	if strings.TrimSpace(path) == "" {
		labels = Builtin()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		labels = loaded
	}
	return Prepare(labels, alphabet)
}

func parse(data string) []string {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		labels = append(labels, line)
	}
	return labels
}
