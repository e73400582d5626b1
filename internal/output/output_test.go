package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/webmafia/gzhead"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		exp     Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" json ", FormatJSON, false},
		{"", FormatJSON, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in, nil)

		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}

		if got != tt.exp {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.in, got, tt.exp)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	h := gzhead.Header{Method: gzhead.MethodDeflate, OS: gzhead.OSUnix, Checksum: 1}
	var buf bytes.Buffer

	if err := WriteJSON(&buf, `dir/"a".gz`, &h); err != nil {
		t.Fatal(err)
	}

	const exp = `{"source":"dir/\"a\".gz","header":{"method":8,"text":false,"has_checksum":false,"has_extra":false,"has_name":false,"has_comment":false,"mtime":0,"xfl":0,"os":3,"os_name":"Unix","checksum":1}}` + "\n"

	if buf.String() != exp {
		t.Errorf("expected\n%s\ngot\n%s", exp, buf.String())
	}
}

func TestPrintPairs(t *testing.T) {
	var buf bytes.Buffer

	PrintPairs(&buf, "sample.gz", [][2]string{
		{"Method", "8"},
		{"Name", "a-new-hope.txt"},
	})

	out := buf.String()

	if !strings.HasPrefix(out, "sample.gz\n") {
		t.Errorf("expected title first, got %q", out)
	}

	for _, exp := range []string{"Method", "8", "Name", "a-new-hope.txt"} {
		if !strings.Contains(out, exp) {
			t.Errorf("expected %q in %q", exp, out)
		}
	}
}
