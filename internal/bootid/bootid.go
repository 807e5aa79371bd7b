// Package bootid resolves the current boot's identifier, the value the
// Boot Filter conjoins onto a unit's match predicate.
package bootid

import (
	"fmt"
	"os"
	"strings"

	"github.com/jrnl-render/jrender/internal/journal"
)

const procPath = "/proc/sys/kernel/random/boot_id"

// Current reads the running kernel's boot id from procPath, which the
// kernel formats as a canonical 8-4-4-4-12 UUID string rather than the
// bare 32-hex-digit form journal.BootID.String() produces.
func Current() (journal.BootID, error) {
	raw, err := os.ReadFile(procPath)
	if err != nil {
		return journal.BootID{}, fmt.Errorf("bootid: read %s: %w", procPath, err)
	}
	hex := strings.ReplaceAll(strings.TrimSpace(string(raw)), "-", "")
	return journal.ParseBootID(hex)
}
