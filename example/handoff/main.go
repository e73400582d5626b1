package main

import (
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/webmafia/gzhead"
)

// Reads a gzip member from stdin, logs its header and writes the raw
// compressed body, inflated, to stdout. The trailer is not checked.
func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(r io.Reader, w io.Writer) (err error) {
	d := gzhead.NewDecoder(r, gzhead.Options{GatedChecksum: true, VerifyChecksum: true})
	h, err := d.DecodeHeader()

	if err != nil {
		return
	}

	log.Printf("name=%q comment=%q modified=%s os=%s", h.NameString(), h.CommentString(), h.Time(), h.OS)

	fr := flate.NewReader(d.Body())
	defer fr.Close()

	_, err = io.Copy(w, fr)
	return
}
