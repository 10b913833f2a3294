package app

import (
	"context"
	"io"

	"github.com/blackwell-systems/textreport/internal/output"
	"github.com/blackwell-systems/textreport/internal/report"
)

// runReport generates the report for s.path and writes it to w. Nothing is
// written when the document cannot be read.
func runReport(ctx context.Context, w io.Writer, s settings) error {
	r, err := report.Generate(ctx, s.path)
	if err != nil {
		return err
	}
	return output.RenderReport(w, r, output.Options{Color: s.color.Enabled(w)})
}
