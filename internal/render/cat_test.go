package render_test

import (
	"bytes"
	"testing"

	"github.com/jrnl-render/jrender/internal/journaltest"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/sink"
)

func TestOutputCatWritesMessage(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Fields: []string{"MESSAGE=hello world"}},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	if err := render.Encode(s, r, render.Options{Mode: render.ModeCat}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	if got, want := buf.String(), "hello world\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutputCatSkipsEntryWithoutMessage(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Fields: []string{"PRIORITY=6"}},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	if err := render.Encode(s, r, render.Options{Mode: render.ModeCat}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
