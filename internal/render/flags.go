package render

// Flags is the output-flags bitset shared by every render mode.
type Flags uint

const (
	// ShowAll disables size thresholds and printability filtering.
	ShowAll Flags = 1 << iota
	// FullWidth disables column-based ellipsization.
	FullWidth
	// Color emits ANSI escapes around MESSAGE and by priority.
	Color
	// Catalog emits catalog text after verbose rendering.
	Catalog
	// Follow marks a run that blocks for new entries after draining. No
	// encoder reads this bit; the pager takes its follow behaviour from
	// its own Options.Follow field.
	Follow
	// WarnCutoff marks a run that emits a one-shot rotation warning. No
	// encoder reads this bit; the pager takes it from its own
	// Options.WarnCutoff field.
	WarnCutoff
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Options bundles everything a call to Encode (or Dispatcher.Render)
// needs beyond the reader itself.
type Options struct {
	Mode    Mode
	Columns int // 0 => resolve via ColumnsFunc
	Flags   Flags

	// OutputFields restricts rendering to this allow-list of field
	// names. Empty means unrestricted.
	OutputFields []string

	// UnitHint, when non-empty, is appended as " (unit)" after the
	// source-file path on `short` mode's timestamp line, unless FullWidth
	// is set. The column width is not consulted.
	UnitHint string
}
