package report

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/blackwell-systems/textreport/internal/analyzer"
)

// writeDoc writes content to a temp file and returns its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	path := writeDoc(t, "aab bcc")

	r, err := Generate(context.Background(), path)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if r.Path != path {
		t.Errorf("Path = %q, want %q", r.Path, path)
	}
	if r.Words != 2 {
		t.Errorf("Words = %d, want 2", r.Words)
	}
	if r.Bytes != 7 {
		t.Errorf("Bytes = %d, want 7", r.Bytes)
	}

	want := []analyzer.Pair{{Letter: 'a', Count: 2}, {Letter: 'b', Count: 2}, {Letter: 'c', Count: 2}}
	if !reflect.DeepEqual(r.Letters, want) {
		t.Errorf("Letters = %v, want %v", r.Letters, want)
	}
}

func TestGenerate_SortsDescending(t *testing.T) {
	path := writeDoc(t, "It was on a dreary night of November.")

	r, err := Generate(context.Background(), path)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i := 1; i < len(r.Letters); i++ {
		if r.Letters[i-1].Count < r.Letters[i].Count {
			t.Fatalf("letters not descending at %d: %v", i, r.Letters)
		}
	}
	// a, o, n, r and e all occur three times; a appears first in the text
	top := r.Letters[:5]
	want := []analyzer.Pair{{Letter: 'a', Count: 3}, {Letter: 'o', Count: 3}, {Letter: 'n', Count: 3}, {Letter: 'r', Count: 3}, {Letter: 'e', Count: 3}}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("top letters = %v, want %v", top, want)
	}
}

func TestGenerate_EmptyFile(t *testing.T) {
	path := writeDoc(t, "")

	r, err := Generate(context.Background(), path)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if r.Words != 0 {
		t.Errorf("Words = %d, want 0", r.Words)
	}
	if len(r.Letters) != 0 {
		t.Errorf("Letters = %v, want none", r.Letters)
	}
}

func TestGenerate_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	r, err := Generate(context.Background(), path)
	if err == nil {
		t.Fatal("Generate() should fail for a missing file")
	}
	if r != nil {
		t.Errorf("Generate() returned a report on error: %+v", r)
	}
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("error = %v; want errors.Is(err, ErrInputUnavailable)", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v; want errors.Is(err, fs.ErrNotExist)", err)
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("error = %v; want *fs.PathError in chain", err)
	}
}

func TestGenerate_Directory(t *testing.T) {
	_, err := Generate(context.Background(), t.TempDir())
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("error = %v; want errors.Is(err, ErrInputUnavailable)", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	path := writeDoc(t, "text")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Generate(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v; want context.Canceled", err)
	}
}

func TestFromText(t *testing.T) {
	r := FromText("inline", "Zzz... BBB a")

	if r.Words != 3 {
		t.Errorf("Words = %d, want 3", r.Words)
	}

	want := []analyzer.Pair{{Letter: 'z', Count: 3}, {Letter: 'b', Count: 3}, {Letter: 'a', Count: 1}}
	if !reflect.DeepEqual(r.Letters, want) {
		t.Errorf("Letters = %v, want %v", r.Letters, want)
	}
}
