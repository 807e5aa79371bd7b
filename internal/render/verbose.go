package render

import (
	"fmt"
	"time"

	"github.com/jrnl-render/jrender/internal/ansipainter"
	"github.com/jrnl-render/jrender/internal/field"
	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/sink"
)

// humanBytes formats a byte count as "N B"/"N.NKiB"/etc for the blob-data
// placeholder below. See DESIGN.md for why this is hand-rolled.
func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := int64(n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// outputVerbose renders one entry as a timestamped header line followed
// by an indented "name=value" line per field, with long or non-UTF8
// values collapsed to a blob-data placeholder, and an optional catalog
// footer.
func outputVerbose(s sink.Sink, r journal.Reader, opts Options) error {
	r.SetDataThreshold(0)

	usec, err := r.GetRealtimeUsec()
	if err != nil {
		return fmt.Errorf("render: verbose: realtime: %w", err)
	}
	cursor, err := r.GetCursor()
	if err != nil {
		return fmt.Errorf("render: verbose: cursor: %w", err)
	}

	t := time.UnixMicro(int64(usec)).Local()
	fmt.Fprintf(s, "%s [%s]\n", t.Format("Mon 2006-01-02 15:04:05 MST"), cursor)

	painter := ansipainter.NoColor
	if opts.Flags.has(Color) {
		painter = ansipainter.Default
	}

	r.RestartData()
	for {
		raw, ok, err := r.EnumerateData()
		if err != nil {
			return fmt.Errorf("render: verbose: %w", err)
		}
		if !ok {
			break
		}
		name, value, err := field.SplitField(raw)
		if err != nil {
			return fmt.Errorf("render: verbose: %w", journal.ErrInvalidField)
		}
		if !field.Allowed(string(name), opts.OutputFields) {
			continue
		}

		colorRole := ""
		if opts.Flags.has(Color) && string(name) == "MESSAGE" {
			colorRole = ansipainter.RoleMessage
		}

		printable := opts.Flags.has(ShowAll) ||
			((len(value) < field.PrintThreshold || opts.Flags.has(FullWidth)) && field.IsPrintableUTF8(value))

		if printable {
			fmt.Fprintf(s, "    %s=", name)
			if colorRole != "" {
				painter.Paint(s, colorRole)
			}
			// Per-field multiline printing always runs with color
			// disabled and full-width forced here: priority-derived
			// coloring never actually fires from this call site.
			field.PrintMultiline(s, 4+len(name)+1, 0, true, false, 0, painter, string(value))
			if colorRole != "" {
				painter.Reset(s)
			}
			s.WriteByte('\n')
		} else {
			fmt.Fprintf(s, "    %s=[%s blob data]\n", name, humanBytes(len(value)))
		}
	}

	if opts.Flags.has(Catalog) {
		text, err := r.GetCatalog()
		if err == nil {
			fmt.Fprintf(s, "-- %s\n", replaceNewlines(text))
		} else if err != journal.ErrCatalogAbsent {
			return fmt.Errorf("render: verbose: catalog: %w", err)
		}
	}

	return nil
}

func replaceNewlines(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		out = append(out, text[i])
		if text[i] == '\n' && i != len(text)-1 {
			out = append(out, "-- "...)
		}
	}
	return string(out)
}
