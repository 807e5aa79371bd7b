// Package journaltest provides an in-memory journal.Reader fake so unit
// tests elsewhere in this module can drive entry fixtures without a live
// journal.
package journaltest

import (
	"strings"
	"time"

	"github.com/jrnl-render/jrender/internal/journal"
)

// Entry is one fake journal entry: ordered fields (possibly repeating a
// name), plus the metadata journal.Reader exposes outside GetData.
type Entry struct {
	Fields    []string // "name=value", in enumeration order
	Cursor    string
	Realtime  uint64
	Monotonic uint64
	Boot      journal.BootID
	Catalog   string // empty means ErrCatalogAbsent
	Source    string
	Stale     bool // GetMonotonicUsec returns journal.ErrStale
}

// Matches records one AddMatch/AddDisjunction/AddConjunction call, in
// call order, for assertions in match_test.go.
type Matches []string

// Reader is a forward-only, in-memory journal.Reader over a fixed slice
// of Entry values. It does not model PreviousSkip/SeekTail positioning
// precisely; callers that need backstep semantics set Pos directly.
type Reader struct {
	Entries []Entry
	Pos     int // index of the current entry; -1 before start, len(Entries) at the tail

	Matches   Matches
	Threshold uint64
	fieldIdx  int

	WaitEvent journal.WakeupEvent
	WaitErr   error

	CutoffUsec uint64
	CutoffOK   bool
}

// NewReader builds a Reader positioned before the first entry.
func NewReader(entries []Entry) *Reader {
	return &Reader{Entries: entries, Pos: -1}
}

func (r *Reader) current() (Entry, bool) {
	if r.Pos < 0 || r.Pos >= len(r.Entries) {
		return Entry{}, false
	}
	return r.Entries[r.Pos], true
}

func (r *Reader) SeekTail() error {
	r.Pos = len(r.Entries)
	return nil
}

func (r *Reader) PreviousSkip(n uint64) (uint64, error) {
	moved := n
	if uint64(r.Pos) < n {
		moved = uint64(r.Pos)
	}
	r.Pos -= int(moved)
	if r.Pos < -1 {
		r.Pos = -1
	}
	return moved, nil
}

func (r *Reader) Next() (uint64, error) {
	if r.Pos+1 >= len(r.Entries) {
		r.Pos = len(r.Entries)
		return 0, nil
	}
	r.Pos++
	r.fieldIdx = 0
	return 1, nil
}

func (r *Reader) GetCursor() (string, error) {
	e, ok := r.current()
	if !ok {
		return "", journal.ErrNotPositioned
	}
	return e.Cursor, nil
}

func (r *Reader) GetRealtimeUsec() (uint64, error) {
	e, ok := r.current()
	if !ok {
		return 0, journal.ErrNotPositioned
	}
	return e.Realtime, nil
}

func (r *Reader) GetMonotonicUsec() (uint64, journal.BootID, error) {
	e, ok := r.current()
	if !ok {
		return 0, journal.BootID{}, journal.ErrNotPositioned
	}
	if e.Stale {
		return 0, journal.BootID{}, journal.ErrStale
	}
	return e.Monotonic, e.Boot, nil
}

func (r *Reader) GetCutoffMonotonicUsec(boot journal.BootID) (uint64, bool, error) {
	return r.CutoffUsec, r.CutoffOK, nil
}

func (r *Reader) GetSourceFilename() (string, error) {
	e, ok := r.current()
	if !ok {
		return "", journal.ErrNotPositioned
	}
	return e.Source, nil
}

func (r *Reader) GetData(name string) ([]byte, error) {
	e, ok := r.current()
	if !ok {
		return nil, journal.ErrNotPositioned
	}
	for _, f := range e.Fields {
		i := strings.IndexByte(f, '=')
		if i >= 0 && f[:i] == name {
			return applyThreshold([]byte(f[i+1:]), r.Threshold), nil
		}
	}
	return nil, journal.ErrFieldNotFound
}

func (r *Reader) EnumerateData() ([]byte, bool, error) {
	e, ok := r.current()
	if !ok {
		return nil, false, journal.ErrNotPositioned
	}
	if r.fieldIdx >= len(e.Fields) {
		return nil, false, nil
	}
	f := e.Fields[r.fieldIdx]
	r.fieldIdx++
	i := strings.IndexByte(f, '=')
	if i < 0 {
		return []byte(f), true, nil
	}
	name, value := f[:i], f[i+1:]
	return append([]byte(name+"="), applyThreshold([]byte(value), r.Threshold)...), true, nil
}

func applyThreshold(value []byte, threshold uint64) []byte {
	if threshold == 0 || uint64(len(value)) <= threshold {
		return value
	}
	return value[:threshold]
}

func (r *Reader) RestartData() { r.fieldIdx = 0 }

func (r *Reader) SetDataThreshold(n uint64) { r.Threshold = n }

func (r *Reader) AddMatch(b []byte) error {
	r.Matches = append(r.Matches, string(b))
	return nil
}

func (r *Reader) AddDisjunction() error {
	r.Matches = append(r.Matches, "||")
	return nil
}

func (r *Reader) AddConjunction() error {
	r.Matches = append(r.Matches, "&&")
	return nil
}

func (r *Reader) Wait(timeout time.Duration) (journal.WakeupEvent, error) {
	return r.WaitEvent, r.WaitErr
}

func (r *Reader) GetCatalog() (string, error) {
	e, ok := r.current()
	if !ok {
		return "", journal.ErrNotPositioned
	}
	if e.Catalog == "" {
		return "", journal.ErrCatalogAbsent
	}
	return e.Catalog, nil
}

func (r *Reader) Close() error { return nil }
