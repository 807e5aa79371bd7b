// Package httpsink adapts an http.ResponseWriter into a sink.Sink for
// streaming `json-sse` output over HTTP, flushing the response on every
// Sink.Flush (once per rendered entry). It does not set the
// text/event-stream content type itself; handlers set ContentType.
package httpsink

import (
	"net/http"

	"github.com/jrnl-render/jrender/internal/sink"
)

// New wraps an http.ResponseWriter in a Sink whose Flush also calls the
// ResponseWriter's http.Flusher, if it implements one, so SSE events reach
// the client as soon as each entry finishes rendering rather than sitting
// in a buffer until the handler returns.
func New(w http.ResponseWriter) sink.Sink {
	return &flushingSink{Sink: sink.New(w), rw: w}
}

type flushingSink struct {
	sink.Sink
	rw http.ResponseWriter
}

func (f *flushingSink) Flush() error {
	if err := f.Sink.Flush(); err != nil {
		return err
	}
	if flusher, ok := f.rw.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// ContentType is the SSE content type handlers should set before streaming
// `json-sse`-mode output.
const ContentType = "text/event-stream"
