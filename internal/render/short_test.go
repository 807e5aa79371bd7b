package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jrnl-render/jrender/internal/journaltest"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/sink"
)

func TestOutputShortWithUnitHint(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "c1", Realtime: 1700000000000000, Source: "/var/log/journal/x/system.journal"},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	opts := render.Options{Mode: render.ModeShort, UnitHint: "sshd.service"}
	if err := render.Encode(s, r, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	out := buf.String()
	if !strings.Contains(out, "(sshd.service)") {
		t.Errorf("expected unit hint in output, got %q", out)
	}
	if !strings.HasSuffix(out, "[c1]\n") {
		t.Errorf("expected trailing cursor line, got %q", out)
	}
}

func TestOutputShortFullWidthSuppressesUnitHint(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "c1", Realtime: 1700000000000000},
	})
	r.Next()

	var buf bytes.Buffer
	s := sink.New(&buf)
	opts := render.Options{Mode: render.ModeShort, UnitHint: "sshd.service", Flags: render.FullWidth}
	if err := render.Encode(s, r, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()

	if strings.Contains(buf.String(), "sshd.service") {
		t.Errorf("expected unit hint suppressed under FullWidth, got %q", buf.String())
	}
}

func TestOutputShortMonotonicSharesShortEncoder(t *testing.T) {
	entries := []journaltest.Entry{{Cursor: "c1", Realtime: 1700000000000000}}

	r1 := journaltest.NewReader(entries)
	r1.Next()
	var buf1 bytes.Buffer
	s1 := sink.New(&buf1)
	render.Encode(s1, r1, render.Options{Mode: render.ModeShort})
	s1.Flush()

	r2 := journaltest.NewReader(entries)
	r2.Next()
	var buf2 bytes.Buffer
	s2 := sink.New(&buf2)
	render.Encode(s2, r2, render.Options{Mode: render.ModeShortMonotonic})
	s2.Flush()

	if buf1.String() != buf2.String() {
		t.Errorf("short and short-monotonic diverged:\nshort: %q\nshort-monotonic: %q", buf1.String(), buf2.String())
	}
}
