// Package match composes the disjunctive/conjunctive match predicates
// that address a unit's (or user unit's) log entries, and narrows a
// predicate to the current boot.
package match

import (
	"fmt"

	"github.com/jrnl-render/jrender/internal/journal"
)

// CoredumpMessageID is the well-known MESSAGE_ID systemd-coredump uses.
const CoredumpMessageID = "fc2e22bc6ee647b6b90729ab34a250b1"

func addMatch(r journal.Reader, field, value string) error {
	return r.AddMatch([]byte(fmt.Sprintf("%s=%s", field, value)))
}

// AddMatchesForUnit appends a four-way disjunction for a system unit:
// the unit's own messages, coredumps attributed to it, PID-1-sourced
// UNIT= records, and messages whose OBJECT_SYSTEMD_UNIT names it.
func AddMatchesForUnit(r journal.Reader, unit string) error {
	if err := addMatch(r, "_SYSTEMD_UNIT", unit); err != nil {
		return err
	}

	if err := r.AddDisjunction(); err != nil {
		return err
	}
	if err := addMatch(r, "MESSAGE_ID", CoredumpMessageID); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", "0"); err != nil {
		return err
	}
	if err := addMatch(r, "COREDUMP_UNIT", unit); err != nil {
		return err
	}

	if err := r.AddDisjunction(); err != nil {
		return err
	}
	if err := addMatch(r, "_PID", "1"); err != nil {
		return err
	}
	if err := addMatch(r, "UNIT", unit); err != nil {
		return err
	}

	if err := r.AddDisjunction(); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", "0"); err != nil {
		return err
	}
	return addMatch(r, "OBJECT_SYSTEMD_UNIT", unit)
}

// AddMatchesForUserUnit is AddMatchesForUnit's analogue for a user unit
// owned by uid: it targets the _SYSTEMD_USER_UNIT/USER_UNIT/
// COREDUMP_USER_UNIT/OBJECT_SYSTEMD_USER_UNIT field names. The coredump and
// object-unit terms add both `_UID=<uid>` and `_UID=0` within the same
// conjunction group rather than picking one: the underlying journal match
// engine ORs multiple matches sharing a field name within one group, so
// this reads as "owned by uid, or recorded by a privileged daemon acting
// on the user's behalf" -- not a double-AND on an impossible condition.
func AddMatchesForUserUnit(r journal.Reader, unit string, uid int) error {
	uidStr := fmt.Sprintf("%d", uid)

	if err := addMatch(r, "_SYSTEMD_USER_UNIT", unit); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", uidStr); err != nil {
		return err
	}

	if err := r.AddDisjunction(); err != nil {
		return err
	}
	if err := addMatch(r, "USER_UNIT", unit); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", uidStr); err != nil {
		return err
	}

	if err := r.AddDisjunction(); err != nil {
		return err
	}
	if err := addMatch(r, "COREDUMP_USER_UNIT", unit); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", uidStr); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", "0"); err != nil {
		return err
	}

	if err := r.AddDisjunction(); err != nil {
		return err
	}
	if err := addMatch(r, "OBJECT_SYSTEMD_USER_UNIT", unit); err != nil {
		return err
	}
	if err := addMatch(r, "_UID", uidStr); err != nil {
		return err
	}
	return addMatch(r, "_UID", "0")
}

// AddBootFilter appends `_BOOT_ID=<hex>` as a match and ANDs it against
// whatever predicate (e.g. from AddMatchesForUnit) was built so far.
func AddBootFilter(r journal.Reader, boot journal.BootID) error {
	if err := addMatch(r, "_BOOT_ID", boot.String()); err != nil {
		return err
	}
	return r.AddConjunction()
}
