// Package watcher re-runs a callback whenever a document changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it over the original are
// still picked up. Bursts of events are collapsed into a single callback
// after a short quiet period.
//
// Example usage:
//
//	w, err := watcher.New("books/frankenstein.txt", func() error {
//		return printReport()
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := w.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package watcher
