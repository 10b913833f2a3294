// Package report reads a document and turns it into word and letter
// statistics ready for display.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/textreport/internal/analyzer"
	"github.com/blackwell-systems/textreport/internal/sorter"
)

// ErrInputUnavailable is returned when the document cannot be opened or read.
// The underlying OS error is wrapped alongside it.
var ErrInputUnavailable = errors.New("input unavailable")

// Report is the result of analyzing one document.
type Report struct {
	Path    string
	Words   int
	Letters []analyzer.Pair // descending by count, ties in first-occurrence order
	Bytes   int64
}

// Generate reads the file at path and computes its report. No partial
// report is returned on error.
func Generate(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := readAll(path)
	if err != nil {
		return nil, err
	}

	r := FromText(path, text)

	slog.Debug("analyzed document",
		"path", path,
		"size", humanize.Bytes(uint64(r.Bytes)),
		"words", r.Words,
		"letters", len(r.Letters))

	return r, nil
}

// FromText builds a report from text already in memory. path is only used
// as a label.
func FromText(path, text string) *Report {
	stats := analyzer.Analyze(text)

	return &Report{
		Path:    path,
		Words:   stats.Words,
		Letters: sorter.SortDesc(stats.Letters.Pairs(), byCount),
		Bytes:   int64(len(text)),
	}
}

func byCount(p analyzer.Pair) int {
	return p.Count
}

// readAll holds the file open only for the duration of the read.
func readAll(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s: %w", ErrInputUnavailable, path, err)
	}

	return string(data), nil
}
