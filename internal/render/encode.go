package render

import (
	"fmt"

	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/sink"
)

type encoderFunc func(sink.Sink, journal.Reader, Options) error

var encoders = map[Mode]encoderFunc{
	ModeShort:          outputShort,
	ModeShortMonotonic: outputShort,
	ModeVerbose:        outputVerbose,
	ModeExport:         outputExport,
	ModeJSON:           outputJSON,
	ModeJSONPretty:     outputJSON,
	ModeJSONSSE:        outputJSON,
	ModeCat:            outputCat,
}

// Encode renders the reader's current entry according to opts.Mode. It
// is the single table-driven lookup every mode funnels through; an
// out-of-range mode is a precondition failure, not a recoverable error.
func Encode(s sink.Sink, r journal.Reader, opts Options) error {
	enc, ok := encoders[opts.Mode]
	if !ok {
		panic(fmt.Sprintf("render: out-of-range mode %v", opts.Mode))
	}
	return enc(s, r, opts)
}
