package render

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jrnl-render/jrender/internal/field"
	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/sink"
)

// exportSuppressedFields lists field names export mode skips entirely.
// Skipping some of the most interesting fields of a supposedly-faithful
// export format looks like a bug or debugging remnant rather than
// intentional design, but it is preserved here for compatibility rather
// than corrected.
var exportSuppressedFields = map[string]bool{
	"_COMM":             true,
	"MESSAGE":           true,
	"_CMDLINE":          true,
	"_EXE":              true,
	"SYSLOG_IDENTIFIER": true,
}

func exportSuppressed(name string) bool {
	if exportSuppressedFields[name] {
		return true
	}
	return strings.HasPrefix(name, "COREDUMP") || strings.HasPrefix(name, "CODE_")
}

// outputExport renders the binary-safe journal-export text stream: a
// four-line header followed by one line per field, printable fields
// written raw and non-printable ones framed with an 8-byte
// little-endian length prefix.
func outputExport(s sink.Sink, r journal.Reader, opts Options) error {
	r.SetDataThreshold(0)

	cursor, err := r.GetCursor()
	if err != nil {
		return fmt.Errorf("render: export: cursor: %w", err)
	}
	realtime, err := r.GetRealtimeUsec()
	if err != nil {
		return fmt.Errorf("render: export: realtime: %w", err)
	}
	monotonic, bootID, err := r.GetMonotonicUsec()
	if err != nil {
		return fmt.Errorf("render: export: monotonic: %w", err)
	}

	fmt.Fprintf(s, "__CURSOR=%s\n", cursor)
	fmt.Fprintf(s, "__REALTIME_TIMESTAMP=%d\n", realtime)
	fmt.Fprintf(s, "__MONOTONIC_TIMESTAMP=%d\n", monotonic)
	fmt.Fprintf(s, "_BOOT_ID=%s\n", bootID)

	r.RestartData()
	for {
		raw, ok, err := r.EnumerateData()
		if err != nil {
			return fmt.Errorf("render: export: %w", err)
		}
		if !ok {
			break
		}
		if field.IsField(raw, "_BOOT_ID") {
			continue
		}
		name, value, err := field.SplitField(raw)
		if err != nil {
			return fmt.Errorf("render: export: %w", journal.ErrInvalidField)
		}
		if exportSuppressed(string(name)) {
			continue
		}
		if !field.Allowed(string(name), opts.OutputFields) {
			continue
		}

		if field.IsPrintableUTF8(value) {
			s.Write(raw)
			s.WriteByte('\n')
			continue
		}

		s.Write(name)
		s.WriteByte('\n')
		var lenBuf [8]byte
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(value)))
		s.Write(lenBuf[:])
		s.Write(value)
		s.WriteByte('\n')
	}

	s.WriteByte('\n')
	return nil
}
