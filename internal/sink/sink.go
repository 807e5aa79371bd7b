// Package sink implements the buffered byte sink the renderer writes to:
// a terminal, a pipe, or (via httpsink) an HTTP response stream.
package sink

import (
	"bufio"
	"fmt"
	"io"
)

// Sink is the buffered output the Dispatcher flushes after every entry.
type Sink interface {
	io.Writer
	WriteByte(b byte) error
	WriteFormatted(format string, a ...interface{}) (int, error)
	Flush() error
}

type bufSink struct {
	w *bufio.Writer
}

// New wraps w in a buffered Sink.
func New(w io.Writer) Sink {
	return &bufSink{w: bufio.NewWriter(w)}
}

func (s *bufSink) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *bufSink) WriteByte(b byte) error { return s.w.WriteByte(b) }

func (s *bufSink) WriteFormatted(format string, a ...interface{}) (int, error) {
	return fmt.Fprintf(s.w, format, a...)
}

func (s *bufSink) Flush() error { return s.w.Flush() }
