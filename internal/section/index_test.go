package section

import (
	"errors"
	"reflect"
	"testing"
)

func countryLabels() []string {
	return []string{
		"1st Street",
		"Albania", "Algeria", "Angola",
		"Belgium", "Brazil",
		"Chile",
		"Denmark",
		"Egypt",
		"Zambia", "Zimbabwe",
	}
}

func TestBuildKeepsFullAlphabet(t *testing.T) {
	idx, err := Build(countryLabels(), DefaultAlphabet, Options{KeepEmpty: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if idx.Len() != 27 {
		t.Fatalf("expected 27 sections, got %d", idx.Len())
	}
	if got := idx.Sections()[0]; got != "#" {
		t.Fatalf("expected first section #, got %q", got)
	}
	if got := idx.PositionForSection(1); got != 1 {
		t.Fatalf("expected A to start at 1, got %d", got)
	}
	// F is empty; it points at the next populated section (Z).
	if got := idx.PositionForSection(6); got != 9 {
		t.Fatalf("expected empty section F to resolve to 9, got %d", got)
	}
	if got := idx.SectionForPosition(10); got != 26 {
		t.Fatalf("expected Zimbabwe in section 26, got %d", got)
	}
}

func TestBuildTrailingEmptySectionsPointAtLastItem(t *testing.T) {
	idx, err := Build([]string{"Apple", "Banana"}, "ABC", Options{KeepEmpty: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := idx.PositionForSection(2); got != 1 {
		t.Fatalf("expected trailing empty section to resolve to last item, got %d", got)
	}
}

func TestBuildCompactDropsEmptySections(t *testing.T) {
	idx, err := Build(countryLabels(), DefaultAlphabet, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []string{"#", "A", "B", "C", "D", "E", "Z"}
	if got := idx.Sections(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
}

func TestRoundTripForEverySection(t *testing.T) {
	idx, err := Build(countryLabels(), DefaultAlphabet, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for s := 0; s < idx.Len(); s++ {
		if got := idx.SectionForPosition(idx.PositionForSection(s)); got != s {
			t.Fatalf("round trip for section %d returned %d", s, got)
		}
	}

	full, err := Build(countryLabels(), DefaultAlphabet, Options{KeepEmpty: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, e := range full.Entries() {
		if e.Count == 0 {
			continue
		}
		s := full.SectionForPosition(e.First)
		if full.Label(s) != e.Label {
			t.Fatalf("populated section %s resolved to %s", e.Label, full.Label(s))
		}
	}
}

func TestSectionForPositionIsMonotonic(t *testing.T) {
	idx, err := Build(countryLabels(), DefaultAlphabet, Options{KeepEmpty: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	prev := -1
	for pos := 0; pos < idx.Items(); pos++ {
		s := idx.SectionForPosition(pos)
		if s < prev {
			t.Fatalf("section decreased at %d: %d < %d", pos, s, prev)
		}
		prev = s
	}
}

func TestQueriesClampOutOfRange(t *testing.T) {
	idx, err := Build(countryLabels(), DefaultAlphabet, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := idx.PositionForSection(-4); got != 0 {
		t.Fatalf("expected clamp to first section, got %d", got)
	}
	if got := idx.PositionForSection(99); got != 9 {
		t.Fatalf("expected clamp to last section, got %d", got)
	}
	if got := idx.SectionForPosition(500); got != idx.Len()-1 {
		t.Fatalf("expected clamp to last position, got %d", got)
	}
	if idx.Label(-1) != "" || idx.Label(idx.Len()) != "" {
		t.Fatalf("expected empty label out of range")
	}
}

func TestBuildEmptyItems(t *testing.T) {
	idx, err := Build(nil, "AB", Options{KeepEmpty: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 sections, got %d", idx.Len())
	}
	if idx.PositionForSection(1) != 0 || idx.SectionForPosition(3) != 0 {
		t.Fatalf("expected zero positions for empty index")
	}

	compact, err := Build(nil, "AB", Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if compact.Len() != 0 {
		t.Fatalf("expected no sections, got %d", compact.Len())
	}
	if compact.PositionForSection(0) != 0 {
		t.Fatalf("expected 0 for empty index")
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build([]string{"a"}, "   ", Options{}); !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
	if _, err := Build([]string{"Beta", "Alpha"}, DefaultAlphabet, Options{}); !errors.Is(err, ErrNotMonotonic) {
		t.Fatalf("expected ErrNotMonotonic, got %v", err)
	}
}

func TestAlphabetWithoutOtherRuneUsesFirstBucket(t *testing.T) {
	idx, err := Build([]string{"9 lives", "apple", "banana"}, "ab", Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := idx.Sections(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("unexpected sections %v", got)
	}
	if idx.SectionForPosition(0) != 0 {
		t.Fatalf("expected non-letter label in first bucket")
	}
}

func TestSortLabels(t *testing.T) {
	got, err := SortLabels([]string{"zebra", "Apple", "42", "banana", "apricot", ""}, DefaultAlphabet)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	want := []string{"", "42", "Apple", "apricot", "banana", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sorted = %v, want %v", got, want)
	}
	if _, err := Build(got, DefaultAlphabet, Options{}); err != nil {
		t.Fatalf("sorted labels should build: %v", err)
	}
}
