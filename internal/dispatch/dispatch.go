// Package dispatch maps an output mode to its encoder function, resolves
// a zero column-width against a terminal-width service, and flushes the
// sink after every entry.
package dispatch

import (
	"fmt"

	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/rlog"
	"github.com/jrnl-render/jrender/internal/sink"
)

// ColumnsFunc resolves the live terminal width when a caller passes 0 for
// Options.Columns. It is consulted lazily, once per dispatched entry,
// rather than once at startup, so a resized terminal takes effect on the
// next entry.
type ColumnsFunc func() int

// DefaultColumns is used when no ColumnsFunc is supplied: a fixed
// fallback matching a non-interactive run with no tty to query.
const DefaultColumns = 80

// Dispatcher renders one entry per call by looking up opts.Mode's
// encoder, resolving column width, invoking it, and flushing s.
type Dispatcher struct {
	Columns ColumnsFunc
}

// New returns a Dispatcher using cols to resolve a zero column width, or
// DefaultColumns if cols is nil.
func New(cols ColumnsFunc) *Dispatcher {
	return &Dispatcher{Columns: cols}
}

// Render encodes the reader's current entry per opts.Mode and flushes s.
func (d *Dispatcher) Render(s sink.Sink, r journal.Reader, opts render.Options) error {
	if opts.Columns == 0 {
		if d.Columns != nil {
			opts.Columns = d.Columns()
		} else {
			opts.Columns = DefaultColumns
		}
	}

	rlog.Debugw("dispatch: rendering entry", "mode", opts.Mode.String(), "columns", opts.Columns)

	if err := render.Encode(s, r, opts); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	return s.Flush()
}
