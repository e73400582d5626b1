// Package gzhead decodes the header of a gzip member, as specified in RFC 1952,
// without decompressing anything.
//
// A Decoder reads the fixed 10-byte preamble, the optional extra field, name and
// comment selected by the flag byte, and the trailing header CRC16. Afterwards
// the source is positioned at the start of the compressed data, available
// through Decoder.Body:
//
//	d := gzhead.NewDecoder(f)
//	h, err := d.DecodeHeader()
//
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(h.NameString(), h.Time())
//
// Errors are classified by ErrLogic, ErrFormat and ErrIO and can be told apart
// with errors.Is.
package gzhead
