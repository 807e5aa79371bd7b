// Package render implements the journal entry encoders -- one function
// per output mode -- plus the mode<->name lookup table the dispatcher
// uses to pick among them. Each encoder shares the signature
// `(sink, reader, options) -> error`.
package render

import "fmt"

// Mode is the closed set of 8 output modes.
type Mode int

const (
	ModeShort Mode = iota
	ModeShortMonotonic
	ModeVerbose
	ModeExport
	ModeJSON
	ModeJSONPretty
	ModeJSONSSE
	ModeCat
)

var nameFromMode = map[Mode]string{
	ModeShort:          "short",
	ModeShortMonotonic: "short-monotonic",
	ModeVerbose:        "verbose",
	ModeExport:         "export",
	ModeJSON:           "json",
	ModeJSONPretty:     "json-pretty",
	ModeJSONSSE:        "json-sse",
	ModeCat:            "cat",
}

var modeFromName = func() map[string]Mode {
	m := make(map[string]Mode, len(nameFromMode))
	for mode, name := range nameFromMode {
		m[name] = mode
	}
	return m
}()

// String returns the mode's canonical name.
func (m Mode) String() string {
	name, ok := nameFromMode[m]
	if !ok {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return name
}

// ModeFromName parses one of the 8 canonical mode names.
func ModeFromName(name string) (Mode, error) {
	m, ok := modeFromName[name]
	if !ok {
		return 0, fmt.Errorf("render: unknown output mode %q", name)
	}
	return m, nil
}
