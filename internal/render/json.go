package render

import (
	"fmt"

	"github.com/jrnl-render/jrender/internal/field"
	"github.com/jrnl-render/jrender/internal/journal"
	"github.com/jrnl-render/jrender/internal/jsonesc"
	"github.com/jrnl-render/jrender/internal/sink"
)

// fieldGroup is one field name's values, in reader enumeration order.
// Rather than re-scanning the entry's field list once per repeated name,
// the entry is materialized into a slice of these groups in a single
// pass, grouped by name while preserving first-seen order.
type fieldGroup struct {
	name   []byte
	values [][]byte
}

func materializeFieldGroups(r journal.Reader, allowList []string) ([]fieldGroup, error) {
	r.RestartData()
	var groups []fieldGroup
	index := make(map[string]int)
	for {
		raw, ok, err := r.EnumerateData()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if field.IsField(raw, "_BOOT_ID") {
			continue
		}
		name, value, err := field.SplitField(raw)
		if err != nil {
			return nil, journal.ErrInvalidField
		}
		if !field.Allowed(string(name), allowList) {
			continue
		}
		key := string(name)
		if i, ok := index[key]; ok {
			groups[i].values = append(groups[i].values, value)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, fieldGroup{name: name, values: [][]byte{value}})
	}
	return groups, nil
}

// jsonFraming captures the three JSON modes' differing punctuation.
type jsonFraming struct {
	pretty bool
	sse    bool
}

func framingFor(mode Mode) jsonFraming {
	switch mode {
	case ModeJSONPretty:
		return jsonFraming{pretty: true}
	case ModeJSONSSE:
		return jsonFraming{sse: true}
	default:
		return jsonFraming{}
	}
}

// outputJSON renders `json`, `json-pretty`, and `json-sse`: the four
// header fields followed by one key per field name, repeated field names
// coalesced into a JSON array of their values in enumeration order.
func outputJSON(s sink.Sink, r journal.Reader, opts Options) error {
	showAll := opts.Flags.has(ShowAll)
	if showAll {
		r.SetDataThreshold(0)
	} else {
		r.SetDataThreshold(jsonesc.Threshold)
	}

	cursor, err := r.GetCursor()
	if err != nil {
		return fmt.Errorf("render: json: cursor: %w", err)
	}
	realtime, err := r.GetRealtimeUsec()
	if err != nil {
		return fmt.Errorf("render: json: realtime: %w", err)
	}
	monotonic, bootID, err := r.GetMonotonicUsec()
	if err != nil {
		return fmt.Errorf("render: json: monotonic: %w", err)
	}

	groups, err := materializeFieldGroups(r, opts.OutputFields)
	if err != nil {
		return fmt.Errorf("render: json: %w", err)
	}

	framing := framingFor(opts.Mode)
	sep := func(first bool) string {
		if framing.sse || !framing.pretty {
			if first {
				return ""
			}
			return ", "
		}
		if first {
			return ""
		}
		return ",\n\t"
	}

	if framing.sse {
		s.WriteFormatted("data: ")
	}
	if framing.pretty {
		s.WriteFormatted("{\n\t")
	} else {
		s.WriteFormatted("{ ")
	}

	writeHeaderKV := func(first bool, key, value string) {
		s.WriteFormatted("%s", sep(first))
		jsonesc.Escape(s, []byte(key), true)
		s.WriteFormatted(" : ")
		jsonesc.Escape(s, []byte(value), true)
	}

	writeHeaderKV(true, "__CURSOR", cursor)
	writeHeaderKV(false, "__REALTIME_TIMESTAMP", fmt.Sprintf("%d", realtime))
	writeHeaderKV(false, "__MONOTONIC_TIMESTAMP", fmt.Sprintf("%d", monotonic))
	writeHeaderKV(false, "_BOOT_ID", bootID.String())

	for _, g := range groups {
		s.WriteFormatted("%s", sep(false))
		jsonesc.Escape(s, g.name, showAll)
		s.WriteFormatted(" : ")
		if len(g.values) == 1 {
			jsonesc.Escape(s, g.values[0], showAll)
			continue
		}
		s.WriteFormatted("[ ")
		for i, v := range g.values {
			if i > 0 {
				s.WriteFormatted(", ")
			}
			jsonesc.Escape(s, v, showAll)
		}
		s.WriteFormatted(" ]")
	}

	switch {
	case framing.sse:
		s.WriteFormatted("}\n\n")
	case framing.pretty:
		s.WriteFormatted("\n}\n")
	default:
		s.WriteFormatted(" }\n")
	}
	return nil
}
