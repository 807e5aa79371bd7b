// Package pager implements the tail-seek-and-backstep loop that turns a
// positioned journal.Reader into a bounded or following stream of
// rendered entries.
package pager

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/rlog"
	"github.com/jrnl-render/jrender/internal/sink"
)

const rotationWarning = "Warning: Journal has been rotated since unit was started. Log output is incomplete or unavailable.\n"

// Renderer is the thing the Pager asks to turn a positioned entry into
// output; *dispatch.Dispatcher satisfies it.
type Renderer interface {
	Render(s sink.Sink, r journal.Reader, opts render.Options) error
}

// Options configures one pager run.
type Options struct {
	// NotBefore floors entries by monotonic timestamp (µs); 0 disables
	// the floor. While the floor is enabled, entries from a boot other
	// than Boot are skipped as well.
	NotBefore uint64
	Boot      journal.BootID

	// HowMany is the number of entries to back up from the tail before
	// rendering forward.
	HowMany uint64

	// Follow blocks for new entries once the backlog is drained.
	Follow bool

	// WarnCutoff emits a one-shot rotation warning if the requested
	// backstep crosses a retention boundary.
	WarnCutoff bool
}

// Run seeks r to the tail, backs up HowMany entries, and renders forward
// through ren/opts/s, optionally following. It returns when the backlog
// is drained (non-follow) or ctx is done (follow).
func Run(ctx context.Context, s sink.Sink, r journal.Reader, ren Renderer, renderOpts render.Options, opts Options) error {
	if err := r.SeekTail(); err != nil {
		return fmt.Errorf("pager: seek tail: %w", err)
	}
	moved, err := r.PreviousSkip(opts.HowMany)
	if err != nil {
		return fmt.Errorf("pager: backstep: %w", err)
	}

	warnCutoff := opts.WarnCutoff
	var line uint64

	// The backstep already leaves r on the first entry to render, so the
	// first pass through the loop must not advance past it.
	needSeek := false

	for {
		for {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			n := moved
			if needSeek {
				n, err = r.Next()
				if err != nil {
					return fmt.Errorf("pager: next: %w", err)
				}
			}
			if n == 0 {
				break
			}
			needSeek = true

			if opts.NotBefore > 0 {
				usec, boot, err := r.GetMonotonicUsec()
				if errors.Is(err, journal.ErrStale) {
					continue
				}
				if err != nil {
					return fmt.Errorf("pager: monotonic: %w", err)
				}
				if boot != opts.Boot {
					continue
				}
				if usec < opts.NotBefore {
					continue
				}
			}

			line++
			if err := ren.Render(s, r, renderOpts); err != nil {
				return fmt.Errorf("pager: render: %w", err)
			}
		}

		if warnCutoff && line < opts.HowMany && opts.NotBefore > 0 {
			cutoff, ok, err := r.GetCutoffMonotonicUsec(opts.Boot)
			if err != nil {
				return fmt.Errorf("pager: cutoff: %w", err)
			}
			if ok && opts.NotBefore < cutoff {
				if _, err := s.WriteFormatted("%s", rotationWarning); err != nil {
					return fmt.Errorf("pager: cutoff warning: %w", err)
				}
				rlog.Debugw("pager: rotation warning emitted", "notBefore", opts.NotBefore, "cutoff", cutoff)
			}
			warnCutoff = false
		}

		if !opts.Follow {
			return nil
		}

		rlog.Debugf("pager: waiting for new entries")
		if _, err := r.Wait(journal.WaitIndefinitely); err != nil {
			return fmt.Errorf("pager: wait: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
