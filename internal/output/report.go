// Package output renders text reports for the terminal.
//
// The line layout is fixed so that reports can be diffed and parsed by other
// tools. Color only ever wraps the letter itself, and is off unless the
// destination is a terminal (or the caller forces it).
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/textreport/internal/report"
)

// Options controls report rendering.
type Options struct {
	Color bool
}

// RenderReport writes r to w. The whole report is formatted before the
// first write.
func RenderReport(w io.Writer, r *report.Report, opts Options) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- Begin report of %s ---\n\n", r.Path))
	sb.WriteString(fmt.Sprintf("Number of words found in the document: %d.\n\n", r.Words))

	for _, p := range r.Letters {
		letter := string(p.Letter)
		if opts.Color {
			letter = colorBold + letter + colorReset
		}
		sb.WriteString(formatLetterLine(letter, p.Count))
		sb.WriteString("\n")
	}

	sb.WriteString("--- End report ---\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatLetterLine returns the report line for one letter, without a
// trailing newline.
func FormatLetterLine(letter rune, count int) string {
	return formatLetterLine(string(letter), count)
}

func formatLetterLine(letter string, count int) string {
	return fmt.Sprintf("The '%s' character was found %d times", letter, count)
}
