package field

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jrnl-render/jrender/internal/ansipainter"
)

func TestIsField(t *testing.T) {
	cases := []struct {
		name  string
		b     []byte
		field string
		want  bool
	}{
		{"match", []byte("MESSAGE=hello"), "MESSAGE", true},
		{"no separator", []byte("MESSAGE"), "MESSAGE", false},
		{"different name", []byte("PRIORITY=6"), "MESSAGE", false},
		{"empty value", []byte("MESSAGE="), "MESSAGE", true},
		{"prefix only, no equals", []byte("MESSAGEX=1"), "MESSAGE", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsField(tc.b, tc.field); got != tc.want {
				t.Errorf("IsField(%q, %q) = %v, want %v", tc.b, tc.field, got, tc.want)
			}
		})
	}
}

func TestParseFieldValue(t *testing.T) {
	v, ok := ParseFieldValue([]byte("MESSAGE=hello world"), "MESSAGE")
	if !ok || string(v) != "hello world" {
		t.Fatalf("got (%q, %v), want (%q, true)", v, ok, "hello world")
	}

	if _, ok := ParseFieldValue([]byte("OTHER=x"), "MESSAGE"); ok {
		t.Fatalf("expected ok=false for non-matching field")
	}
}

func TestSplitField(t *testing.T) {
	name, value, err := SplitField([]byte("PRIORITY=6"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(name) != "PRIORITY" || string(value) != "6" {
		t.Fatalf("got name=%q value=%q", name, value)
	}

	if _, _, err := SplitField([]byte("NOEQUALS")); err == nil {
		t.Fatalf("expected error for field with no '='")
	}
}

func TestShallPrint(t *testing.T) {
	short := bytes.Repeat([]byte("a"), PrintThreshold-1)
	long := bytes.Repeat([]byte("a"), PrintThreshold+1)
	binary := []byte{0xff, 0xfe, 0x00, 0x01}

	cases := []struct {
		name    string
		value   []byte
		showAll bool
		want    bool
	}{
		{"short printable", short, false, true},
		{"long printable, no showAll", long, false, false},
		{"long printable, showAll", long, true, true},
		{"binary, no showAll", binary, false, false},
		{"binary, showAll", binary, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShallPrint(tc.value, tc.showAll); got != tc.want {
				t.Errorf("ShallPrint(...) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsPrintableUTF8AllowsControlBytes(t *testing.T) {
	// A value containing an embedded newline is valid UTF-8 and must be
	// treated as printable text -- the JSON string escaper is the one
	// that special-cases control bytes, not this predicate.
	if !IsPrintableUTF8([]byte("line one\nline two")) {
		t.Fatal("expected embedded newline to be printable")
	}
	if IsPrintableUTF8([]byte{0xff, 0xfe}) {
		t.Fatal("expected invalid UTF-8 to be non-printable")
	}
}

func TestAllowed(t *testing.T) {
	if !Allowed("MESSAGE", nil) {
		t.Fatal("empty allow-list must permit everything")
	}
	if !Allowed("MESSAGE", []string{"PRIORITY", "MESSAGE"}) {
		t.Fatal("expected MESSAGE to be allowed")
	}
	if Allowed("PRIORITY", []string{"MESSAGE"}) {
		t.Fatal("expected PRIORITY to be rejected")
	}
}

func TestEllipsize(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
	}{
		{"fits", "short", 80},
		{"too narrow", "this text is much too long to fit", 2},
		{"exact truncation", "abcdefghijklmnopqrstuvwxyz", 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Ellipsize(tc.text, tc.width)
			if tc.width < 3 {
				if got != "..." {
					t.Errorf("got %q, want literal \"...\"", got)
				}
				return
			}
			if len([]rune(got)) > tc.width && len([]rune(tc.text)) > tc.width {
				t.Errorf("Ellipsize(%q, %d) = %q, exceeds width", tc.text, tc.width, got)
			}
		})
	}
}

func TestPrintMultiline(t *testing.T) {
	var buf bytes.Buffer
	PrintMultiline(&buf, 4, 0, true, false, 0, ansipainter.NoColor, "line one\nline two")
	want := "line one\n    line two"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PrintMultiline() mismatch (-want +got):\n%s", diff)
	}
}
