// Package sdreader implements journal.Reader against a live systemd
// journal via github.com/coreos/go-systemd/v22/sdjournal, the cgo
// binding the example pack's journal-reading repos build on.
package sdreader

import (
	"fmt"
	"sort"
	"time"

	"github.com/coreos/go-systemd/v22/sdjournal"

	"github.com/jrnl-render/jrender/internal/journal"
)

// Reader wraps an *sdjournal.Journal to satisfy journal.Reader.
type Reader struct {
	j *sdjournal.Journal

	// fields caches the current entry's sorted "name=value" pairs for
	// EnumerateData; RestartData resets the cursor into it rather than
	// re-querying the journal, since sdjournal hands back a whole entry
	// at once rather than exposing field-by-field enumeration.
	fields []fieldPair
	cursor int
	loaded bool
}

type fieldPair struct {
	name  string
	value string
}

// Open opens the local journal. flags mirror sd_journal_open's
// SD_JOURNAL_LOCAL_ONLY/SD_JOURNAL_SYSTEM bits but are not consulted:
// go-systemd's NewJournal takes no open flags and picks its own.
func Open(flags journal.OpenFlags) (*Reader, error) {
	j, err := sdjournal.NewJournal()
	if err != nil {
		return nil, fmt.Errorf("sdreader: open: %w", err)
	}
	return &Reader{j: j}, nil
}

func (r *Reader) invalidateFields() {
	r.loaded = false
	r.fields = nil
	r.cursor = 0
}

func (r *Reader) SeekTail() error {
	r.invalidateFields()
	return r.j.SeekTail()
}

func (r *Reader) PreviousSkip(n uint64) (uint64, error) {
	r.invalidateFields()
	return r.j.PreviousSkip(n)
}

func (r *Reader) Next() (uint64, error) {
	r.invalidateFields()
	n, err := r.j.Next()
	if err != nil {
		return 0, fmt.Errorf("sdreader: next: %w", err)
	}
	return n, nil
}

func (r *Reader) GetCursor() (string, error) {
	c, err := r.j.GetCursor()
	if err != nil {
		return "", journal.ErrNotPositioned
	}
	return c, nil
}

func (r *Reader) GetRealtimeUsec() (uint64, error) {
	return r.j.GetRealtimeUsec()
}

func (r *Reader) GetMonotonicUsec() (uint64, journal.BootID, error) {
	usec, err := r.j.GetMonotonicUsec()
	if err != nil {
		return 0, journal.BootID{}, err
	}
	raw, err := r.j.GetDataValue("_BOOT_ID")
	if err != nil {
		return usec, journal.BootID{}, nil
	}
	boot, err := journal.ParseBootID(raw)
	if err != nil {
		return usec, journal.BootID{}, nil
	}
	return usec, boot, nil
}

// GetCutoffMonotonicUsec has no direct sdjournal binding for a
// per-boot monotonic cutoff (the underlying libsystemd call exists but
// go-systemd does not expose it); see DESIGN.md. Callers get ok=false,
// which the pager treats as "no rotation information available" rather
// than an error.
func (r *Reader) GetCutoffMonotonicUsec(boot journal.BootID) (uint64, bool, error) {
	return 0, false, nil
}

// GetSourceFilename has no go-systemd binding (the underlying
// sd_journal_get_data family never exposes which on-disk journal file an
// entry came from; only journalctl's own C code reaches the private
// JournalFile handle for that). Short mode degrades to an empty path
// segment rather than erroring.
func (r *Reader) GetSourceFilename() (string, error) {
	return "", nil
}

func (r *Reader) GetData(name string) ([]byte, error) {
	v, err := r.j.GetDataValue(name)
	if err != nil {
		return nil, journal.ErrFieldNotFound
	}
	return []byte(v), nil
}

func (r *Reader) loadFields() error {
	if r.loaded {
		return nil
	}
	entry, err := r.j.GetEntry()
	if err != nil {
		return fmt.Errorf("sdreader: get entry: %w", err)
	}
	pairs := make([]fieldPair, 0, len(entry.Fields))
	for name, value := range entry.Fields {
		pairs = append(pairs, fieldPair{name: name, value: value})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })
	r.fields = pairs
	r.loaded = true
	return nil
}

func (r *Reader) EnumerateData() ([]byte, bool, error) {
	if err := r.loadFields(); err != nil {
		return nil, false, err
	}
	if r.cursor >= len(r.fields) {
		return nil, false, nil
	}
	f := r.fields[r.cursor]
	r.cursor++
	return []byte(f.name + "=" + f.value), true, nil
}

func (r *Reader) RestartData() {
	r.cursor = 0
}

func (r *Reader) SetDataThreshold(n uint64) {
	_ = r.j.SetDataThreshold(n)
}

func (r *Reader) AddMatch(b []byte) error {
	return r.j.AddMatch(string(b))
}

func (r *Reader) AddDisjunction() error {
	return r.j.AddDisjunction()
}

func (r *Reader) AddConjunction() error {
	return r.j.AddConjunction()
}

func (r *Reader) Wait(timeout time.Duration) (journal.WakeupEvent, error) {
	if timeout == journal.WaitIndefinitely {
		timeout = sdjournal.IndefiniteWait
	}
	switch r.j.Wait(timeout) {
	case sdjournal.SD_JOURNAL_APPEND:
		return journal.Append, nil
	case sdjournal.SD_JOURNAL_INVALIDATE:
		return journal.Invalidate, nil
	default:
		return journal.NoOperation, nil
	}
}

func (r *Reader) GetCatalog() (string, error) {
	text, err := r.j.GetCatalog()
	if err != nil {
		return "", journal.ErrCatalogAbsent
	}
	return text, nil
}

func (r *Reader) Close() error {
	return r.j.Close()
}
