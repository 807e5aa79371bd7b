package render

import (
	"errors"
	"fmt"

	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/sink"
)

// outputCat writes an entry's MESSAGE field verbatim, or nothing if the
// entry has none.
func outputCat(s sink.Sink, r journal.Reader, opts Options) error {
	r.SetDataThreshold(0)

	value, err := r.GetData("MESSAGE")
	if errors.Is(err, journal.ErrFieldNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("render: cat: %w", err)
	}
	s.Write(value)
	s.WriteByte('\n')
	return nil
}
