package gzhead

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/segmentio/encoding/json"
)

func ExampleHeader_AppendJSON() {
	src := []byte{0x1f, 0x8b, 8, flagName, 0x80, 0xe3, 0xe8, 0x0d, 0, 3, 'a', '.', 't', 'x', 't', 0, 0x34, 0x12}
	h, err := NewDecoder(bytes.NewReader(src)).DecodeHeader()

	if err != nil {
		panic(err)
	}

	buf, err := h.AppendJSON(nil)

	if err != nil {
		panic(err)
	}

	fmt.Println(string(buf))

	// Output:
	// {"method":8,"text":false,"has_checksum":false,"has_extra":false,"has_name":true,"has_comment":false,"mtime":233366400,"xfl":0,"os":3,"os_name":"Unix","name":"a.txt","checksum":4660}
}

func TestHeader_MarshalJSON(t *testing.T) {
	h := Header{
		Method:   MethodDeflate,
		HasExtra: true,
		ExtraLen: 3,
		Extra:    []byte{1, 2, 3},
		OS:       OSUnknown,
	}

	b, err := json.Marshal(h)

	if err != nil {
		t.Fatal(err)
	}

	var v map[string]any

	if err = json.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}

	if v["extra"] != "AQID" || v["os_name"] != "unknown" || v["xlen"] != float64(3) {
		t.Errorf("unexpected JSON %s", b)
	}

	if _, ok := v["name"]; ok {
		t.Errorf("expected name to be omitted: %s", b)
	}
}

func TestHeader_Rows(t *testing.T) {
	h := Header{
		HasExtra: true,
		Extra:    []byte{'A', 'P', 2, 0, 'h', 'i'},
		ExtraLen: 6,
		HasName:  true,
		Name:     []byte("a.txt\x00"),
		Checksum: 0xbeef,
	}

	rows := h.Rows()
	got := make(map[string]string, len(rows))

	for _, r := range rows {
		got[r[0]] = r[1]
	}

	exp := map[string]string{
		"Flags":        "0xc",
		"Extra length": "6",
		`Extra "AP"`:   "2 bytes",
		"Name":         "a.txt",
		"Checksum":     "0xbeef",
	}

	for k, v := range exp {
		if got[k] != v {
			t.Errorf("%s = %q, expected %q", k, got[k], v)
		}
	}

	if _, ok := got["Comment"]; ok {
		t.Error("did not expect a comment row")
	}

	if rows[len(rows)-1][0] != "Checksum" {
		t.Errorf("expected checksum last, got %q", rows[len(rows)-1][0])
	}
}

func BenchmarkHeader_AppendJSON(b *testing.B) {
	data := sampleData(b)
	h, err := NewDecoder(bytes.NewReader(data), Options{GatedChecksum: true}).DecodeHeader()

	if err != nil {
		b.Fatal(err)
	}

	var buf []byte

	for b.Loop() {
		if buf, err = h.AppendJSON(buf[:0]); err != nil {
			b.Fatal(err)
		}
	}
}
