// Package field implements the small pure-function substrate that
// recognizes name=value fields, decides whether a value is safe/short
// enough to print as text, and wraps long text across terminal columns
// with an ellipsis.
package field

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jrnl-render/jrender/internal/ansipainter"
)

// PrintThreshold is the byte length above which text-oriented encoders
// abbreviate a value to a "[N B blob data]" placeholder, unless ShowAll or
// FullWidth is set.
const PrintThreshold = 128

// IsField reports whether b is a "name=..." field for the given name.
func IsField(b []byte, name string) bool {
	if len(b) <= len(name) {
		return false
	}
	return string(b[:len(name)]) == name && b[len(name)] == '='
}

// ParseField returns the value region of a "name=value" field, including
// the leading '=' (the length accounting subtracts only the name's
// length, not name+"="). ok is false if b does not start with "name=".
//
// Most callers want the value without the separator; use ParseFieldValue
// for that. This form is kept because the buffer-offset math here is easy
// to get subtly wrong, and tests pin down both forms independently.
func ParseField(b []byte, name string) (value []byte, ok bool) {
	if !IsField(b, name) {
		return nil, false
	}
	return b[len(name):], true
}

// ParseFieldValue returns the bytes after the '=' separator of a
// "name=value" field.
func ParseFieldValue(b []byte, name string) (value []byte, ok bool) {
	v, ok := ParseField(b, name)
	if !ok {
		return nil, false
	}
	return v[1:], true
}

// SplitField splits a raw "name=value" field into its name and value. err
// is a plain error when b has no '=' separator; the encoders in package
// render report journal.ErrInvalidField in its place.
func SplitField(b []byte) (name, value []byte, err error) {
	i := bytes.IndexByte(b, '=')
	if i < 0 {
		return nil, nil, fmt.Errorf("field: no '=' separator in %q", b)
	}
	return b[:i], b[i+1:], nil
}

// ShallPrint decides whether a field's value should be rendered as text.
// showAll disables the checks entirely (always true). Otherwise a value
// must be under PrintThreshold bytes and printable UTF-8.
func ShallPrint(value []byte, showAll bool) bool {
	if showAll {
		return true
	}
	return len(value) < PrintThreshold && IsPrintableUTF8(value)
}

// IsPrintableUTF8 reports whether b is valid UTF-8. It gates on valid
// encoding, not on the presence of control bytes: the JSON string branch
// still needs to special-case bytes < 0x20 with \u00XX escapes precisely
// because "printable" text may contain them (e.g. an embedded '\n').
func IsPrintableUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// Allowed reports whether name passes the caller's --output-fields=
// allow-list. An empty list means no restriction.
func Allowed(name string, allowList []string) bool {
	if len(allowList) == 0 {
		return true
	}
	for _, n := range allowList {
		if n == name {
			return true
		}
	}
	return false
}

// ellipsisLeftWeight is the fraction of the surviving width given to the
// text before the ellipsis: a 90% left-weighted midpoint.
const ellipsisLeftWeight = 0.9

// Ellipsize truncates text to fit within width columns (counting runes),
// inserting a "…" at a point 90% of the way through the available space,
// dropping the middle. If width < 3 it returns the literal "...".
func Ellipsize(text string, width int) string {
	if width < 3 {
		return "..."
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	avail := width - 1 // one column for the ellipsis rune itself
	left := int(float64(avail) * ellipsisLeftWeight)
	right := avail - left
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	var b strings.Builder
	b.WriteString(string(runes[:left]))
	b.WriteRune('…')
	if right > 0 {
		b.WriteString(string(runes[len(runes)-right:]))
	}
	return b.String()
}

// PrintMultiline renders text (possibly containing embedded '\n') to w,
// one sub-line per call, with continuation lines indented by prefix
// spaces. nColumns is the terminal width budget; 0 means unlimited
// (full-width). color gates whether priority-based coloring applies at
// all; priority then selects the bucket via ansipainter.PriorityRole when
// color is set. painter may be ansipainter.NoColor to disable color
// output regardless of these flags.
func PrintMultiline(w io.Writer, prefix int, nColumns int, fullWidth bool, color bool, priority int, painter *ansipainter.Painter, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			io.WriteString(w, strings.Repeat(" ", prefix))
		}
		out := line
		if !fullWidth && nColumns > 0 {
			budget := nColumns - prefix
			if budget < 3 {
				out = "..."
			} else if prefix+len(line)+1 >= nColumns {
				out = Ellipsize(line, budget)
			}
		}
		role := ""
		if color {
			role = ansipainter.PriorityRole(priority)
		}
		// Only touch painter's shared Paint/Reset state when this line
		// actually has a role to paint: painter.Paint("") would clobber
		// painting=false even while a caller's own Paint is still open
		// around this call (verbose mode's MESSAGE highlight does this).
		if role != "" {
			painter.Paint(w, role)
			io.WriteString(w, out)
			painter.Reset(w)
		} else {
			io.WriteString(w, out)
		}
		if i < len(lines)-1 {
			io.WriteString(w, "\n")
		}
	}
}
