package pager_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/journaltest"
	"github.com/jrnl-render/jrender/internal/pager"
	"github.com/jrnl-render/jrender/internal/render"
	"github.com/jrnl-render/jrender/internal/sink"
)

type countingRenderer struct {
	n int
}

func (c *countingRenderer) Render(s sink.Sink, r journal.Reader, opts render.Options) error {
	c.n++
	_, err := s.WriteFormatted("line\n")
	return err
}

func TestRunBackstepsAndRendersForward(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "a"}, {Cursor: "b"}, {Cursor: "c"},
	})

	var buf bytes.Buffer
	s := sink.New(&buf)
	ren := &countingRenderer{}

	err := pager.Run(context.Background(), s, r, ren, render.Options{}, pager.Options{HowMany: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ren.n != 2 {
		t.Errorf("rendered %d entries, want 2", ren.n)
	}
}

func TestRunSkipsEntriesBeforeNotBeforeAndWrongBoot(t *testing.T) {
	bootA, _ := journal.ParseBootID("0000000000000000000000000000000a")
	bootB, _ := journal.ParseBootID("0000000000000000000000000000000b")

	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "stale", Monotonic: 50, Boot: bootA},
		{Cursor: "wrongboot", Monotonic: 500, Boot: bootB},
		{Cursor: "ok", Monotonic: 500, Boot: bootA},
	})

	var buf bytes.Buffer
	s := sink.New(&buf)
	ren := &countingRenderer{}

	opts := pager.Options{HowMany: 3, NotBefore: 100, Boot: bootA}
	if err := pager.Run(context.Background(), s, r, ren, render.Options{}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ren.n != 1 {
		t.Errorf("rendered %d entries, want 1 (only the matching boot and floor)", ren.n)
	}
}

func TestRunSkipsStaleMonotonicEntries(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "a", Stale: true},
		{Cursor: "b", Monotonic: 500},
	})

	var buf bytes.Buffer
	s := sink.New(&buf)
	ren := &countingRenderer{}

	opts := pager.Options{HowMany: 2, NotBefore: 100}
	if err := pager.Run(context.Background(), s, r, ren, render.Options{}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ren.n != 1 {
		t.Errorf("rendered %d entries, want 1 (stale entry skipped)", ren.n)
	}
}

func TestRunEmitsRotationWarningOnceWhenCutoffExceedsFloor(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "a", Monotonic: 500},
	})
	r.CutoffOK = true
	r.CutoffUsec = 1000

	var buf bytes.Buffer
	s := sink.New(&buf)
	ren := &countingRenderer{}

	opts := pager.Options{HowMany: 5, NotBefore: 100, WarnCutoff: true}
	if err := pager.Run(context.Background(), s, r, ren, render.Options{}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Journal has been rotated")) {
		t.Errorf("expected rotation warning, got %q", buf.String())
	}
}

func TestRunNoWarningWhenLineCountReachesHowMany(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "a", Monotonic: 500},
	})
	r.CutoffOK = true
	r.CutoffUsec = 1000

	var buf bytes.Buffer
	s := sink.New(&buf)
	ren := &countingRenderer{}

	opts := pager.Options{HowMany: 1, NotBefore: 100, WarnCutoff: true}
	if err := pager.Run(context.Background(), s, r, ren, render.Options{}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("Journal has been rotated")) {
		t.Errorf("expected no rotation warning when backlog satisfied HowMany, got %q", buf.String())
	}
}

func TestRunFollowReturnsWhenContextCancelled(t *testing.T) {
	r := journaltest.NewReader([]journaltest.Entry{
		{Cursor: "a"},
	})

	var buf bytes.Buffer
	s := sink.New(&buf)
	ren := &countingRenderer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := pager.Options{HowMany: 1, Follow: true}
	err := pager.Run(ctx, s, r, ren, render.Options{}, opts)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}
