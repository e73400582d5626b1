package gzhead

import (
	"strconv"

	"github.com/segmentio/encoding/json"
)

type headerJSON struct {
	Method      uint8  `json:"method"`
	Text        bool   `json:"text"`
	HasChecksum bool   `json:"has_checksum"`
	HasExtra    bool   `json:"has_extra"`
	HasName     bool   `json:"has_name"`
	HasComment  bool   `json:"has_comment"`
	ModTime     uint32 `json:"mtime"`
	ExtraFlags  uint8  `json:"xfl"`
	OS          uint8  `json:"os"`
	OSName      string `json:"os_name"`
	ExtraLen    uint16 `json:"xlen,omitempty"`
	Extra       []byte `json:"extra,omitempty"`
	Name        string `json:"name,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Checksum    uint16 `json:"checksum"`
}

func (h *Header) jsonView() headerJSON {
	return headerJSON{
		Method:      h.Method,
		Text:        h.Text,
		HasChecksum: h.HasChecksum,
		HasExtra:    h.HasExtra,
		HasName:     h.HasName,
		HasComment:  h.HasComment,
		ModTime:     h.ModTime,
		ExtraFlags:  h.ExtraFlags,
		OS:          uint8(h.OS),
		OSName:      h.OS.String(),
		ExtraLen:    h.ExtraLen,
		Extra:       h.Extra,
		Name:        h.NameString(),
		Comment:     h.CommentString(),
		Checksum:    h.Checksum,
	}
}

// AppendJSON appends the header as a JSON object to dst. Extra is base64
// encoded; Name and Comment are emitted without their terminator.
func (h *Header) AppendJSON(dst []byte) ([]byte, error) {
	v := h.jsonView()
	return json.Append(dst, &v, 0)
}

// MarshalJSON implements json.Marshaler.
func (h Header) MarshalJSON() ([]byte, error) {
	return h.AppendJSON(nil)
}

// Rows returns the header as key/value pairs, in wire order.
func (h *Header) Rows() [][2]string {
	rows := make([][2]string, 0, 16)
	rows = append(rows,
		[2]string{"Method", strconv.Itoa(int(h.Method))},
		[2]string{"Flags", "0x" + strconv.FormatUint(uint64(h.Flags()), 16)},
		[2]string{"Text", strconv.FormatBool(h.Text)},
		[2]string{"Has checksum", strconv.FormatBool(h.HasChecksum)},
		[2]string{"Has extra", strconv.FormatBool(h.HasExtra)},
		[2]string{"Has name", strconv.FormatBool(h.HasName)},
		[2]string{"Has comment", strconv.FormatBool(h.HasComment)},
		[2]string{"Modified", strconv.FormatUint(uint64(h.ModTime), 10)},
		[2]string{"Extra flags", strconv.Itoa(int(h.ExtraFlags))},
		[2]string{"OS", h.OS.String()},
	)

	if h.HasExtra {
		rows = append(rows, [2]string{"Extra length", strconv.Itoa(int(h.ExtraLen))})

		for id, data := range h.Subfields() {
			rows = append(rows, [2]string{"Extra " + strconv.Quote(string(id[:])), strconv.Itoa(len(data)) + " bytes"})
		}
	}

	if h.HasName {
		rows = append(rows, [2]string{"Name", h.NameString()})
	}

	if h.HasComment {
		rows = append(rows, [2]string{"Comment", h.CommentString()})
	}

	rows = append(rows, [2]string{"Checksum", "0x" + strconv.FormatUint(uint64(h.Checksum), 16)})

	return rows
}
