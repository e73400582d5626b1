package gzhead

import "strconv"

// OS identifies the file system on which compression took place.
type OS uint8

const (
	OSFAT OS = iota
	OSAmiga
	OSVMS
	OSUnix
	OSVMCMS
	OSAtari
	OSHPFS
	OSMacintosh
	OSZSystem
	OSCPM
	OSTOPS20
	OSNTFS
	OSQDOS
	OSAcorn
	OSUnknown OS = 255
)

func (os OS) String() string {
	switch os {

	case OSFAT:
		return "FAT"

	case OSAmiga:
		return "Amiga"

	case OSVMS:
		return "VMS"

	case OSUnix:
		return "Unix"

	case OSVMCMS:
		return "VM/CMS"

	case OSAtari:
		return "Atari TOS"

	case OSHPFS:
		return "HPFS"

	case OSMacintosh:
		return "Macintosh"

	case OSZSystem:
		return "Z-System"

	case OSCPM:
		return "CP/M"

	case OSTOPS20:
		return "TOPS-20"

	case OSNTFS:
		return "NTFS"

	case OSQDOS:
		return "QDOS"

	case OSAcorn:
		return "Acorn RISCOS"

	case OSUnknown:
		return "unknown"
	}

	return "OS(" + strconv.Itoa(int(os)) + ")"
}
