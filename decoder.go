package gzhead

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/webmafia/fast"
)

// ErrNoSource is returned when decoding from a Decoder that has no source.
var ErrNoSource = fmt.Errorf("%w: no source", ErrLogic)

var le = binary.LittleEndian

type state uint8

const (
	stateUnread state = iota
	stateConsumed
)

// A Decoder reads exactly one gzip header from its source. Once DecodeHeader
// has been called the decoder is consumed, whether or not decoding succeeded,
// and only Reset can make it usable again.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r      flate.Reader
	br     *bufio.Reader
	opt    Options
	state  state
	ok     bool
	digest uint32 // CRC-32 of header bytes read so far
}

// NewDecoder creates a Decoder reading from r. If r does not also implement
// io.ByteReader it is wrapped in a bufio.Reader, which may read past the
// header; use Body to continue reading from the right position.
func NewDecoder(r io.Reader, opts ...Options) *Decoder {
	d := new(Decoder)

	if len(opts) > 0 {
		d.opt = opts[0]
	}

	d.opt.setDefaults()
	d.Reset(r)

	return d
}

// Reset discards the Decoder's state and makes it equivalent to a new Decoder
// reading from r, keeping its options and internal buffer.
func (d *Decoder) Reset(r io.Reader) {
	d.state = stateUnread
	d.ok = false
	d.digest = 0

	if rr, ok := r.(flate.Reader); ok {
		d.r = rr
		return
	}

	if r == nil {
		d.r = nil

		if d.br != nil {
			d.br.Reset(nil)
		}

		return
	}

	// Reuse if we can.
	if d.br != nil {
		d.br.Reset(r)
	} else {
		d.br = bufio.NewReader(r)
	}

	d.r = d.br
}

// DecodeHeader reads and decodes the gzip header. It must be called exactly
// once per source; any further call fails with ErrAlreadyConsumed without
// reading from the source. On failure the returned Header is zero.
func (d *Decoder) DecodeHeader() (h Header, err error) {
	if d.state != stateUnread {
		return h, ErrAlreadyConsumed
	}

	if d.r == nil {
		return h, ErrNoSource
	}

	d.state = stateConsumed

	if h, err = d.decode(); err != nil {
		return Header{}, err
	}

	d.ok = true
	return
}

// Body returns the source positioned right after the header, ready to be
// handed to a decompressor. It returns nil unless DecodeHeader succeeded.
func (d *Decoder) Body() flate.Reader {
	if !d.ok {
		return nil
	}

	return d.r
}

func (d *Decoder) decode() (h Header, err error) {
	// ID1 ID2 CM FLG MTIME(4) XFL OS
	var buf [10]byte

	if err = d.readFull("preamble", fast.Noescape(buf[:])); err != nil {
		return
	}

	if buf[0] != gzipID1 || buf[1] != gzipID2 {
		return h, badMagic(buf[0], buf[1])
	}

	h.Method = buf[2]

	flg := buf[3]
	h.Text = flg&flagText != 0
	h.HasChecksum = flg&flagHdrCrc != 0
	h.HasExtra = flg&flagExtra != 0
	h.HasName = flg&flagName != 0
	h.HasComment = flg&flagComment != 0

	h.ModTime = le.Uint32(buf[4:8])
	h.ExtraFlags = buf[8]
	h.OS = OS(buf[9])

	if h.HasExtra {
		if err = d.readFull("extra length", buf[:2]); err != nil {
			return
		}

		h.ExtraLen = le.Uint16(buf[:2])
		h.Extra = make([]byte, h.ExtraLen)

		if err = d.readFull("extra", h.Extra); err != nil {
			return
		}
	}

	if h.HasName {
		if h.Name, err = d.readTerminated("name"); err != nil {
			return
		}
	}

	if h.HasComment {
		if h.Comment, err = d.readTerminated("comment"); err != nil {
			return
		}
	}

	if d.opt.GatedChecksum && !h.HasChecksum {
		return
	}

	// Only the bytes preceding the checksum are covered by it.
	sum := uint16(d.digest)

	if err = d.readFull("checksum", buf[:2]); err != nil {
		return
	}

	h.Checksum = le.Uint16(buf[:2])

	if d.opt.VerifyChecksum && h.HasChecksum && h.Checksum != sum {
		err = checksumMismatch(sum, h.Checksum)
	}

	return
}

func (d *Decoder) readFull(field string, p []byte) error {
	if _, err := io.ReadFull(d.r, p); err != nil {
		return ioError(field, err)
	}

	d.digest = crc32.Update(d.digest, crc32.IEEETable, p)
	return nil
}

// readTerminated reads up to and including the first zero byte.
func (d *Decoder) readTerminated(field string) (b []byte, err error) {
	for {
		c, err := d.r.ReadByte()

		if err != nil {
			if err == io.EOF {
				return nil, unterminated(field)
			}

			return nil, ioError(field, err)
		}

		b = append(b, c)

		if c == 0 {
			break
		}

		if d.opt.MaxFieldLen > 0 && len(b) > d.opt.MaxFieldLen {
			return nil, fieldTooLong(field, d.opt.MaxFieldLen)
		}
	}

	d.digest = crc32.Update(d.digest, crc32.IEEETable, b)
	return b, nil
}
