package gzhead

import (
	"time"

	"github.com/webmafia/fast"
)

const (
	gzipID1 = 0x1f
	gzipID2 = 0x8b

	flagText    = 1 << 0
	flagHdrCrc  = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// MethodDeflate is the only compression method defined by RFC 1952.
const MethodDeflate = 8

// Header is the decoded gzip member header. All fields are plain values; the
// byte slices are owned by the caller once returned by Decoder.DecodeHeader.
type Header struct {
	Method uint8 // CM

	// FLG, least significant bit first. Bits 5-7 are not retained.
	Text        bool
	HasChecksum bool
	HasExtra    bool
	HasName     bool
	HasComment  bool

	ModTime    uint32 // MTIME, seconds since the Unix epoch (0 = not available)
	ExtraFlags uint8  // XFL
	OS         OS

	ExtraLen uint16 // XLEN, only set when HasExtra
	Extra    []byte // exactly ExtraLen bytes when HasExtra

	// Name and Comment keep their zero terminator.
	Name    []byte
	Comment []byte

	Checksum uint16 // CRC16
}

// Flags returns the flag byte the boolean fields were decoded from (reserved bits cleared).
func (h *Header) Flags() (flg byte) {
	if h.Text {
		flg |= flagText
	}
	if h.HasChecksum {
		flg |= flagHdrCrc
	}
	if h.HasExtra {
		flg |= flagExtra
	}
	if h.HasName {
		flg |= flagName
	}
	if h.HasComment {
		flg |= flagComment
	}

	return
}

// Time converts ModTime to a time.Time. A zero ModTime yields the zero time.
func (h *Header) Time() time.Time {
	if h.ModTime == 0 {
		return time.Time{}
	}

	return time.Unix(int64(h.ModTime), 0)
}

// NameString returns the name without its terminator. The string shares memory
// with Name, which must not be modified while the string is in use.
func (h *Header) NameString() string {
	return fast.BytesToString(trimZero(h.Name))
}

// CommentString returns the comment without its terminator. The string shares
// memory with Comment, which must not be modified while the string is in use.
func (h *Header) CommentString() string {
	return fast.BytesToString(trimZero(h.Comment))
}

func trimZero(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == 0 {
		return b[:n-1]
	}

	return b
}
