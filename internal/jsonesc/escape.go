// Package jsonesc escapes a raw field-value byte range into JSON. It never
// parses JSON -- only emits it -- because the values it escapes are
// opaque byte slices handed over by the journal reader, not pre-existing
// JSON text.
package jsonesc

import (
	"fmt"
	"io"

	"github.com/jrnl-render/jrender/internal/field"
)

// Threshold is the byte length at or above which JSON encoders emit a
// literal `null` instead of escaping the value, unless showAll is set.
const Threshold = 4096

// Escape writes value as a JSON string, a JSON byte array ("[ b0, b1, ... ]"),
// or the literal `null` for an oversized value when showAll is unset.
func Escape(w io.Writer, value []byte, showAll bool) {
	if !showAll && len(value) >= Threshold {
		io.WriteString(w, "null")
		return
	}
	if !field.IsPrintableUTF8(value) {
		escapeByteArray(w, value)
		return
	}
	escapeString(w, value)
}

func escapeByteArray(w io.Writer, value []byte) {
	io.WriteString(w, "[ ")
	for i, b := range value {
		if i > 0 {
			io.WriteString(w, ", ")
		}
		fmt.Fprintf(w, "%d", b)
	}
	io.WriteString(w, " ]")
}

func escapeString(w io.Writer, value []byte) {
	io.WriteString(w, `"`)
	for _, b := range value {
		switch {
		case b == '"' || b == '\\':
			w.Write([]byte{'\\', b})
		case b == '\n':
			io.WriteString(w, `\n`)
		case b < 0x20:
			fmt.Fprintf(w, `\u%04x`, b)
		default:
			w.Write([]byte{b})
		}
	}
	io.WriteString(w, `"`)
}
