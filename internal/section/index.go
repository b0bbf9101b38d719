// Package section builds the ordered label/position mapping a list exposes for
// section-based navigation.
package section

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAlphabet buckets labels by their first letter, with '#' collecting
// everything that does not start with a letter.
const DefaultAlphabet = "#ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const otherRune = '#'

var (
	ErrEmptyAlphabet = errors.New("section: empty alphabet")
	ErrNotMonotonic  = errors.New("section: labels are not ordered by section")
)

// Indexer is the capability a list adapter implements to support
// section-based navigation. Section indexes never decrease as positions
// increase.
type Indexer interface {
	Sections() []string
	PositionForSection(section int) int
	SectionForPosition(position int) int
}

// Options tunes how an Index is built.
type Options struct {
	// KeepEmpty retains alphabet sections that no label falls into.
	KeepEmpty bool
}

// Entry is one section of an Index.
type Entry struct {
	Label string
	First int
	Count int
}

// Index maps list positions to alphabet sections. It is immutable once built.
type Index struct {
	entries  []Entry
	sections []int
}

var _ Indexer = (*Index)(nil)

// Build derives an Index from labels already ordered by section.
func Build(labels []string, alphabet string, opts Options) (*Index, error) {
	alpha, err := parseAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	buckets := make([]int, len(labels))
	for i, label := range labels {
		b := alpha.bucket(label)
		if i > 0 && b < buckets[i-1] {
			return nil, fmt.Errorf("%w: position %d (%q)", ErrNotMonotonic, i, label)
		}
		buckets[i] = b
	}

	counts := make([]int, len(alpha.runes))
	firsts := make([]int, len(alpha.runes))
	for i := range firsts {
		firsts[i] = -1
	}
	for pos, b := range buckets {
		if firsts[b] < 0 {
			firsts[b] = pos
		}
		counts[b]++
	}

	idx := &Index{sections: make([]int, len(labels))}
	entryFor := make([]int, len(alpha.runes))
	for a, r := range alpha.runes {
		if counts[a] == 0 && !opts.KeepEmpty {
			entryFor[a] = -1
			continue
		}
		entryFor[a] = len(idx.entries)
		idx.entries = append(idx.entries, Entry{Label: string(r), First: firsts[a], Count: counts[a]})
	}

	// Empty sections point at the next populated one, or the last item.
	next := len(labels) - 1
	if next < 0 {
		next = 0
	}
	for e := len(idx.entries) - 1; e >= 0; e-- {
		if idx.entries[e].Count > 0 {
			next = idx.entries[e].First
			continue
		}
		idx.entries[e].First = next
	}

	for pos, b := range buckets {
		idx.sections[pos] = entryFor[b]
	}
	return idx, nil
}

// Sections returns the ordered section labels.
func (x *Index) Sections() []string {
	labels := make([]string, len(x.entries))
	for i, e := range x.entries {
		labels[i] = e.Label
	}
	return labels
}

// PositionForSection returns the first list position of the section. Out of
// range sections are clamped.
func (x *Index) PositionForSection(section int) int {
	if len(x.entries) == 0 {
		return 0
	}
	return x.entries[clamp(section, len(x.entries))].First
}

// SectionForPosition returns the section containing the list position. Out of
// range positions are clamped.
func (x *Index) SectionForPosition(position int) int {
	if len(x.sections) == 0 {
		return 0
	}
	return x.sections[clamp(position, len(x.sections))]
}

// Len reports the number of sections.
func (x *Index) Len() int {
	return len(x.entries)
}

// Items reports the number of list positions covered by the index.
func (x *Index) Items() int {
	return len(x.sections)
}

// Label returns the label for a section, or "" when out of range.
func (x *Index) Label(section int) string {
	if section < 0 || section >= len(x.entries) {
		return ""
	}
	return x.entries[section].Label
}

// Entries returns a copy of the section table.
func (x *Index) Entries() []Entry {
	dup := make([]Entry, len(x.entries))
	copy(dup, x.entries)
	return dup
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

type alphabet struct {
	runes []rune
	pos   map[rune]int
	other int
}

func parseAlphabet(s string) (alphabet, error) {
	a := alphabet{pos: make(map[rune]int)}
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if _, dup := a.pos[r]; dup {
			continue
		}
		a.pos[r] = len(a.runes)
		a.runes = append(a.runes, r)
	}
	if len(a.runes) == 0 {
		return alphabet{}, ErrEmptyAlphabet
	}
	if other, ok := a.pos[otherRune]; ok {
		a.other = other
	}
	return a, nil
}

func (a alphabet) bucket(label string) int {
	trimmed := strings.TrimSpace(label)
	r, _ := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError {
		return a.other
	}
	if b, ok := a.pos[unicode.ToUpper(r)]; ok {
		return b
	}
	return a.other
}
