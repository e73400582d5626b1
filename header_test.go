package gzhead

import (
	"testing"
	"time"
)

func TestOS_String(t *testing.T) {
	tests := []struct {
		os  OS
		exp string
	}{
		{OSFAT, "FAT"},
		{OSUnix, "Unix"},
		{OSNTFS, "NTFS"},
		{OSAcorn, "Acorn RISCOS"},
		{OSUnknown, "unknown"},
		{OS(42), "OS(42)"},
	}

	for _, tt := range tests {
		if got := tt.os.String(); got != tt.exp {
			t.Errorf("OS(%d).String() = %q, expected %q", uint8(tt.os), got, tt.exp)
		}
	}
}

func TestHeader_Time(t *testing.T) {
	var h Header

	if !h.Time().IsZero() {
		t.Errorf("expected zero time, got %v", h.Time())
	}

	h.ModTime = 233366400
	exp := time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC)

	if !h.Time().Equal(exp) {
		t.Errorf("expected %v, got %v", exp, h.Time())
	}
}

func TestHeader_Strings(t *testing.T) {
	h := Header{
		Name:    []byte("foo.txt\x00"),
		Comment: []byte("\x00"),
	}

	if h.NameString() != "foo.txt" {
		t.Errorf("NameString() = %q", h.NameString())
	}

	if h.CommentString() != "" {
		t.Errorf("CommentString() = %q", h.CommentString())
	}
}

func TestHeader_Flags(t *testing.T) {
	h := Header{HasExtra: true, HasName: true, HasComment: true}

	if h.Flags() != 0x1c {
		t.Errorf("Flags() = 0x%02x, expected 0x1c", h.Flags())
	}
}
