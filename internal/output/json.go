package output

import (
	"io"

	"github.com/segmentio/encoding/json"
	"github.com/webmafia/fast/buffer"
	"github.com/webmafia/gzhead"
)

var bufPool buffer.Pool

// WriteJSON writes one header as a single line of JSON, tagged with its source.
func WriteJSON(w io.Writer, source string, h *gzhead.Header) (err error) {
	b := bufPool.Get()
	defer bufPool.Put(b)

	b.B = append(b.B[:0], `{"source":`...)

	if b.B, err = json.Append(b.B, source, 0); err != nil {
		return
	}

	b.B = append(b.B, `,"header":`...)

	if b.B, err = h.AppendJSON(b.B); err != nil {
		return
	}

	b.B = append(b.B, "}\n"...)
	_, err = w.Write(b.B)

	return
}
