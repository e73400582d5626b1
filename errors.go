package gzhead

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrLogic is returned when the Decoder is misused, e.g. decoding twice from the same source.
	ErrLogic = errors.New("gzhead: logic error")
	// ErrFormat is returned when the bytes do not form a valid gzip header.
	ErrFormat = errors.New("gzhead: format error")
	// ErrIO is returned when the underlying source fails or runs out of data mid-header.
	ErrIO = errors.New("gzhead: i/o error")

	// ErrAlreadyConsumed is returned when DecodeHeader is called again on the same source.
	ErrAlreadyConsumed = fmt.Errorf("%w: header already consumed", ErrLogic)
	// ErrChecksum is returned when a verified header CRC16 does not match the header bytes.
	ErrChecksum = fmt.Errorf("%w: header checksum mismatch", ErrFormat)
)

// FormatError describes a structural mismatch in the header. Got holds the
// offending bytes when there are any.
type FormatError struct {
	Field string
	Msg   string
	Got   []byte
}

func (e *FormatError) Error() string {
	if len(e.Got) == 0 {
		return fmt.Sprintf("%s: %s: %s", ErrFormat, e.Field, e.Msg)
	}

	return fmt.Sprintf("%s: %s: %s, got % #x", ErrFormat, e.Field, e.Msg, e.Got)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// IOError wraps a failure of the underlying source while reading Field.
type IOError struct {
	Field string
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO, e.Field, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func ioError(field string, err error) error {
	return &IOError{Field: field, Err: noEOF(err)}
}

func badMagic(id1, id2 byte) error {
	return &FormatError{
		Field: "magic",
		Msg:   fmt.Sprintf("expected 0x%02x 0x%02x", gzipID1, gzipID2),
		Got:   []byte{id1, id2},
	}
}

func unterminated(field string) error {
	return &FormatError{Field: field, Msg: "missing zero terminator before end of input"}
}

func fieldTooLong(field string, max int) error {
	return &FormatError{Field: field, Msg: fmt.Sprintf("exceeds %d bytes without terminator", max)}
}

func checksumMismatch(expected, got uint16) error {
	return fmt.Errorf("%w: expected 0x%04x, got 0x%04x", ErrChecksum, expected, got)
}

// noEOF converts io.EOF to io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
