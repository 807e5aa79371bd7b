// Package journal defines the narrow interface the renderer uses to pull
// entries from a systemd-journal-like store. The store itself -- random
// access, cursors, matches, wait -- is an external collaborator; this
// package only names the shape of it.
package journal

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// OpenFlags mirror sd_journal_open's bits. Only the ones the renderer's
// callers care about are named here.
type OpenFlags int

const (
	LocalOnly OpenFlags = 1 << iota
	System
)

// BootID is a 128-bit boot identifier, formatted as 32 lowercase hex
// digits the way systemd does.
type BootID [16]byte

func (b BootID) String() string {
	return hex.EncodeToString(b[:])
}

// ParseBootID parses the 32-hex-digit form back into a BootID.
func ParseBootID(s string) (BootID, error) {
	var b BootID
	dec, err := hex.DecodeString(s)
	if err != nil || len(dec) != len(b) {
		return b, fmt.Errorf("journal: invalid boot id %q", s)
	}
	copy(b[:], dec)
	return b, nil
}

// WakeupEvent is the outcome of a Wait call.
type WakeupEvent int

const (
	NoOperation WakeupEvent = iota
	Append
	Invalidate
)

// WaitIndefinitely tells Wait to block with no timeout.
const WaitIndefinitely time.Duration = -1

var (
	// ErrNotPositioned means the reader's cursor does not currently sit on
	// an entry. Treated as a clean end-of-stream, not a failure.
	ErrNotPositioned = errors.New("journal: reader not positioned on an entry")

	// ErrFieldNotFound means the requested field is absent from the
	// current entry. Not an error for most callers.
	ErrFieldNotFound = errors.New("journal: field not found")

	// ErrStale means the current entry predates the boot the caller asked
	// to floor against.
	ErrStale = errors.New("journal: entry is from a different, earlier boot")

	// ErrInvalidField means a field returned by the reader had no '='
	// separator.
	ErrInvalidField = errors.New("journal: malformed field, no '=' separator")

	// ErrCatalogAbsent means no catalog entry exists for the current
	// message (maps to journald's -ENOENT).
	ErrCatalogAbsent = errors.New("journal: no catalog entry for this message")
)

// Reader is the reader service the Pager drives and the Mode Encoders read
// from. Implementations (e.g. internal/sdreader) wrap a real journal
// store; tests use an in-memory fake.
type Reader interface {
	// SeekTail positions just past the last entry.
	SeekTail() error

	// PreviousSkip moves the read pointer backward by n entries and
	// returns how many it actually moved.
	PreviousSkip(n uint64) (uint64, error)

	// Next advances one entry forward, returning 0 when no entry follows.
	Next() (uint64, error)

	// GetCursor returns a cursor string uniquely identifying the current
	// entry's position.
	GetCursor() (string, error)

	// GetRealtimeUsec returns microseconds since the Unix epoch for the
	// current entry.
	GetRealtimeUsec() (uint64, error)

	// GetMonotonicUsec returns microseconds since boot, paired with the
	// boot id of the boot the current entry belongs to. Returns
	// ErrStale if the current entry predates the retained monotonic
	// clock for its boot.
	GetMonotonicUsec() (uint64, BootID, error)

	// GetCutoffMonotonicUsec returns the earliest retained monotonic
	// timestamp for the given boot, if any entries for that boot remain.
	GetCutoffMonotonicUsec(boot BootID) (usec uint64, ok bool, err error)

	// GetSourceFilename returns the on-disk journal file the current
	// entry was read from.
	GetSourceFilename() (string, error)

	// GetData returns the value bytes for the named field in the current
	// entry (ErrFieldNotFound if absent).
	GetData(name string) ([]byte, error)

	// EnumerateData yields the next "name=value" field of the current
	// entry; ok is false once the entry is exhausted.
	EnumerateData() (field []byte, ok bool, err error)

	// RestartData resets the entry's field enumeration cursor to the
	// first field.
	RestartData()

	// SetDataThreshold caps the number of bytes GetData/EnumerateData
	// return for a field's value; 0 disables the cap.
	SetDataThreshold(n uint64)

	// AddMatch adds a "name=value" match, conjoined with prior matches in
	// the current disjunction term.
	AddMatch(b []byte) error

	// AddDisjunction starts a new OR term.
	AddDisjunction() error

	// AddConjunction ANDs everything added so far with what comes next.
	AddConjunction() error

	// Wait blocks until new entries arrive or timeout elapses.
	// WaitIndefinitely blocks with no timeout.
	Wait(timeout time.Duration) (WakeupEvent, error)

	// GetCatalog returns the catalog text for the current entry's
	// MESSAGE_ID, or ErrCatalogAbsent.
	GetCatalog() (string, error)

	// Close releases the reader's resources.
	Close() error
}
