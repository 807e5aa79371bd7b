// Package ansipainter wraps a rendered-entry "role" (message text, a field
// name, a priority bucket) with ANSI Select Graphic Rendition codes.
//
// Adapted from a log-pretty-printer's color scheme table: instead of
// bunyan/pino log-level roles, the roles here are the three priority
// buckets a multiline printer picks among, plus the MESSAGE-field
// highlight verbose mode applies.
package ansipainter

import (
	"io"
	"strconv"
)

// Attribute defines a single SGR code.
type Attribute int

const escape = "\x1b"

// Base attributes.
const (
	Reset Attribute = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Attribute = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

const sgrReset = escape + "[0m"

// Role names used by the renderer. Kept as exported constants (rather than
// a closed enum) because callers outside this package need to name them.
const (
	RoleMessage        = "message"
	RolePriorityCrit   = "priorityCrit"   // <= LOG_ERR (3): bold red
	RolePriorityNotice = "priorityNotice" // <= LOG_NOTICE (5): bold
	RoleExtraField     = "extraField"
)

// Painter maps a role to an ANSI SGR sequence and writes/reset those
// sequences around a region of output.
type Painter struct {
	sgrFromRole map[string]string
	painting    bool
}

// Paint writes the SGR sequence for role, if this scheme defines one.
func (p *Painter) Paint(w io.Writer, role string) {
	sgr, ok := p.sgrFromRole[role]
	if ok {
		io.WriteString(w, sgr)
		p.painting = true
	} else {
		p.painting = false
	}
}

// Reset closes out whatever the last Paint call opened.
func (p *Painter) Reset(w io.Writer) {
	if p.painting {
		io.WriteString(w, sgrReset)
		p.painting = false
	}
}

// New builds a Painter from a role -> attribute-list mapping.
func New(attrsFromRole map[string][]Attribute) *Painter {
	p := &Painter{sgrFromRole: make(map[string]string)}
	for role, attrs := range attrsFromRole {
		sgr := escape + "["
		for i, attr := range attrs {
			if i > 0 {
				sgr += ";"
			}
			sgr += strconv.Itoa(int(attr))
		}
		sgr += "m"
		p.sgrFromRole[role] = sgr
	}
	return p
}

// NoColor emits no ANSI codes at all; used when the `color` output flag is
// unset or stdout isn't a terminal.
var NoColor = New(nil)

// Default is the stock color scheme: bold MESSAGE text (matching
// ANSI_HIGHLIGHT_ON's plain bold, not a color), bold-red for
// emergency/alert/critical/error priorities, plain bold for
// warning/notice.
var Default = New(map[string][]Attribute{
	RoleMessage:        {Bold},
	RolePriorityCrit:   {Bold, FgRed},
	RolePriorityNotice: {Bold},
	RoleExtraField:     {Bold},
})

// Mono only ever bolds; no color codes, for color-blind-friendly or
// non-RGB terminals.
var Mono = New(map[string][]Attribute{
	RoleMessage:        {},
	RolePriorityCrit:   {Bold},
	RolePriorityNotice: {Bold},
	RoleExtraField:     {Bold},
})

// FromName maps a color-scheme name (as might come from a config file or
// --color-scheme flag) to a Painter.
var FromName = map[string]*Painter{
	"default": Default,
	"mono":    Mono,
	"none":    NoColor,
}

// PriorityRole buckets a syslog priority value: <= LOG_ERR (3) is the
// boldest bucket, <= LOG_NOTICE (5) is plain bold, anything less severe
// gets no role (empty string).
func PriorityRole(priority int) string {
	switch {
	case priority <= 3:
		return RolePriorityCrit
	case priority <= 5:
		return RolePriorityNotice
	default:
		return ""
	}
}
