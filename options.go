package gzhead

type Options struct {
	// Upper bound for the name and comment fields, terminator excluded. Zero
	// means no bound: the fields are read until their terminator or end of input.
	MaxFieldLen int

	// Read the trailing CRC16 only when FHCRC is set, as RFC 1952 frames it.
	// By default the two bytes are read unconditionally.
	GatedChecksum bool

	// Verify the CRC16 against the header bytes when FHCRC is set.
	VerifyChecksum bool
}

func (opt *Options) setDefaults() {
	if opt.MaxFieldLen < 0 {
		opt.MaxFieldLen = 0
	}
}
