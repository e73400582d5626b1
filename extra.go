package gzhead

import "iter"

// Subfields iterates the extra field as RFC 1952 subfields: a two-byte ID
// (SI1, SI2), a little-endian length and that many bytes of data. Iteration
// stops at the first record that does not fit in the remaining bytes.
func (h *Header) Subfields() iter.Seq2[[2]byte, []byte] {
	return func(yield func([2]byte, []byte) bool) {
		b := h.Extra

		for len(b) >= 4 {
			id := [2]byte{b[0], b[1]}
			n := int(le.Uint16(b[2:4]))
			b = b[4:]

			if n > len(b) {
				return
			}

			if !yield(id, b[:n:n]) {
				return
			}

			b = b[n:]
		}
	}
}

// Subfield returns the data of the first subfield with the given ID.
func (h *Header) Subfield(si1, si2 byte) (data []byte, ok bool) {
	for id, v := range h.Subfields() {
		if id[0] == si1 && id[1] == si2 {
			return v, true
		}
	}

	return
}
