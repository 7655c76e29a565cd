// Package dtable decodes the table directory of an NCAA DB file and the header
// found at the start of every table.
package dtable

type (
	// Entry locates one table. Offset counts from the first byte after the
	// whole directory, not from the start of the file.
	Entry struct {
		Name   string `json:"name"`
		Offset uint32 `json:"offset"`
	}
	Header struct {
		PriorCRC       uint32 `json:"prior_crc"`
		Unknown2       uint32 `json:"unknown_2"`
		LenBytes       uint32 `json:"len_bytes"`
		LenBits        uint32 `json:"len_bits"`
		Zero           uint32 `json:"zero"`
		MaxRecords     uint16 `json:"max_records"`
		CurrentRecords uint16 `json:"current_records"`
		Unknown3       uint32 `json:"unknown_3"`
		NumFields      uint8  `json:"num_fields"`
		IndexCount     uint8  `json:"index_count"`
		Zero2          uint16 `json:"zero_2"`
		Zero3          uint32 `json:"zero_3"`
		HeaderCRC      uint32 `json:"header_crc"`
	}
)

const (
	DefaultEntrySize  = 8
	DefaultHeaderSize = 40
)

// RecordsSize is the size of the record region following the field directory.
func (h Header) RecordsSize() int {
	return int(h.LenBytes) * int(h.CurrentRecords)
}
