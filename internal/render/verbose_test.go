package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jrnl-render/jrender/internal/journaltest"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/sink"
)

func TestOutputVerboseFieldsAndBlobPlaceholder(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{
			Cursor:   "c1",
			Realtime: 1700000000000000,
			Fields: []string{
				"MESSAGE=hello",
				"BLOB=" + strings.Repeat("x", 200),
			},
		},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	if err := render.Encode(s, r, render.Options{Mode: render.ModeVerbose}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	out := buf.String()
	if !strings.Contains(out, "[c1]") {
		t.Errorf("expected cursor in header, got %q", out)
	}
	if !strings.Contains(out, "    MESSAGE=hello\n") {
		t.Errorf("expected MESSAGE field line, got %q", out)
	}
	if !strings.Contains(out, "blob data]") {
		t.Errorf("expected blob placeholder for oversized field, got %q", out)
	}
}

func TestOutputVerboseMessageColorDoesNotLeakIntoNextField(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{
			Cursor: "c1",
			Fields: []string{
				"MESSAGE=hello",
				"PRIORITY=6",
			},
		},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	opts := render.Options{Mode: render.ModeVerbose, Flags: render.Color}
	if err := render.Encode(s, r, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	out := buf.String()
	const bold = "\x1b[1m"
	const reset = "\x1b[0m"
	if !strings.Contains(out, "MESSAGE="+bold+"hello"+reset) {
		t.Errorf("expected bold-wrapped MESSAGE value, got %q", out)
	}
	if !strings.Contains(out, "    PRIORITY=6\n") {
		t.Errorf("expected an unpainted PRIORITY line after MESSAGE, got %q", out)
	}
	if strings.Contains(out, bold+"    PRIORITY") {
		t.Errorf("MESSAGE color leaked into the following field line: %q", out)
	}
}

func TestOutputVerboseCatalogFooter(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "c1", Catalog: "This log message means X.\n"},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	opts := render.Options{Mode: render.ModeVerbose, Flags: render.Catalog}
	if err := render.Encode(s, r, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	if !strings.Contains(buf.String(), "-- This log message means X.") {
		t.Errorf("expected catalog footer, got %q", buf.String())
	}
}

func TestOutputVerboseNoCatalogWhenAbsent(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "c1"},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	opts := render.Options{Mode: render.ModeVerbose, Flags: render.Catalog}
	if err := render.Encode(s, r, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	if strings.Contains(buf.String(), "--") {
		t.Errorf("expected no catalog footer, got %q", buf.String())
	}
}
