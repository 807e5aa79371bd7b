package render

import (
	"fmt"
	"time"

	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/sink"
)

// outputShort renders both `short` and `short-monotonic`: despite the
// name, short-monotonic was presumably meant to format the monotonic
// clock instead of realtime, but both modes route through this same
// realtime-based rendering and that is preserved here rather than
// "fixed". A cached realtime string is never consulted -- it would
// always be empty -- so GetRealtimeUsec is the sole time source.
func outputShort(s sink.Sink, r journal.Reader, opts Options) error {
	cursor, err := r.GetCursor()
	if err != nil {
		return fmt.Errorf("render: short: %w", err)
	}
	usec, err := r.GetRealtimeUsec()
	if err != nil {
		return fmt.Errorf("render: short: %w", err)
	}
	t := time.UnixMicro(int64(usec)).Local()

	path, err := r.GetSourceFilename()
	if err != nil {
		path = ""
	}

	fmt.Fprintf(s, "%s %s", t.Format("Jan 02 15:04:05"), path)
	if opts.UnitHint != "" && !opts.Flags.has(FullWidth) {
		fmt.Fprintf(s, " (%s)", opts.UnitHint)
	}
	s.WriteByte('\n')
	fmt.Fprintf(s, "[%s]\n", cursor)
	return nil
}
