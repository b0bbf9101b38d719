package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/indexlist/internal/section"
)

func TestBuiltinIsPreparedForDefaultAlphabet(t *testing.T) {
	labels, err := Resolve("", section.DefaultAlphabet)
	if err != nil {
		t.Fatalf("resolve builtin: %v", err)
	}
	if len(labels) < 100 {
		t.Fatalf("expected a sizeable builtin dataset, got %d", len(labels))
	}
	if _, err := section.Build(labels, section.DefaultAlphabet, section.Options{KeepEmpty: true}); err != nil {
		t.Fatalf("expected builtin dataset to index cleanly: %v", err)
	}
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	content := "// fruit\nbanana\r\n\n  apple  \n// trailing\ncherry\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	labels, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"banana", "apple", "cherry"}
	if len(labels) != len(want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, labels)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n// nothing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestResolveSortsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("zebra\n7 seas\napple\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	labels, err := Resolve(path, section.DefaultAlphabet)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"7 seas", "apple", "zebra"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, labels)
		}
	}
}

func TestPrepareRejectsEmptyAlphabet(t *testing.T) {
	if _, err := Prepare([]string{"a"}, ""); !errors.Is(err, section.ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
}
