// Package ndbtest builds small NCAA DB files for tests.
package ndbtest

import (
	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dtable"
	"ncaa-savior/ndb/lbytes"
)

type (
	Table struct {
		Name string
		// Offset is relative to the end of the directory. When nil the table
		// is placed right after the previous one.
		Offset  *uint32
		Header  dtable.Header
		Fields  []dfield.Field
		Records [][]byte
		// Padding is appended after the table region.
		Padding int
	}
	File struct {
		Digit   uint16
		Version uint16
		Tables  []Table
	}
)

func Offset(offset uint32) *uint32 {
	return &offset
}

// Build lays the file out. Header fields left at zero are derived from the
// tables: table count, record length, record and field counts.
func (f File) Build() []byte {
	regions := make([][]byte, 0, len(f.Tables))
	offsets := make([]uint32, 0, len(f.Tables))
	next := uint32(0)
	end := uint32(0)
	for _, table := range f.Tables {
		region := EncodeTable(table)
		offset := next
		if table.Offset != nil {
			offset = *table.Offset
		}
		offsets = append(offsets, offset)
		regions = append(regions, region)
		next = offset + uint32(len(region))
		if next > end {
			end = next
		}
	}

	body := make([]byte, end)
	for i, region := range regions {
		copy(body[offsets[i]:], region)
	}

	bs := make([]byte, 0)
	bs = append(bs, lbytes.EncodeUint16(f.Digit)...)
	bs = append(bs, lbytes.EncodeUint16(f.Version)...)
	bs = append(bs, lbytes.EncodeUint32(0)...)
	bs = append(bs, lbytes.EncodeUint32(uint32(24+8*len(f.Tables)+len(body)))...)
	bs = append(bs, lbytes.EncodeUint32(0)...)
	bs = append(bs, lbytes.EncodeUint32(uint32(len(f.Tables)))...)
	bs = append(bs, lbytes.EncodeUint32(0)...)
	for i, table := range f.Tables {
		bs = append(bs, lbytes.EncodeName(table.Name)...)
		bs = append(bs, lbytes.EncodeUint32(offsets[i])...)
	}
	return append(bs, body...)
}

func EncodeTable(table Table) []byte {
	header := table.Header
	if header.NumFields == 0 {
		header.NumFields = uint8(len(table.Fields))
	}
	if header.CurrentRecords == 0 {
		header.CurrentRecords = uint16(len(table.Records))
	}
	if header.LenBytes == 0 && len(table.Records) > 0 {
		header.LenBytes = uint32(len(table.Records[0]))
	}
	if header.LenBits == 0 {
		header.LenBits = header.LenBytes * 8
	}
	if header.MaxRecords == 0 {
		header.MaxRecords = header.CurrentRecords
	}

	bs := EncodeHeader(header)
	for _, field := range table.Fields {
		bs = append(bs, EncodeField(field)...)
	}
	for _, record := range table.Records {
		bs = append(bs, record...)
	}
	return append(bs, make([]byte, table.Padding)...)
}

func EncodeHeader(header dtable.Header) []byte {
	bs := make([]byte, 0, dtable.DefaultHeaderSize)
	bs = append(bs, lbytes.EncodeUint32(header.PriorCRC)...)
	bs = append(bs, lbytes.EncodeUint32(header.Unknown2)...)
	bs = append(bs, lbytes.EncodeUint32(header.LenBytes)...)
	bs = append(bs, lbytes.EncodeUint32(header.LenBits)...)
	bs = append(bs, lbytes.EncodeUint32(header.Zero)...)
	bs = append(bs, lbytes.EncodeUint16(header.MaxRecords)...)
	bs = append(bs, lbytes.EncodeUint16(header.CurrentRecords)...)
	bs = append(bs, lbytes.EncodeUint32(header.Unknown3)...)
	bs = append(bs, header.NumFields, header.IndexCount)
	bs = append(bs, lbytes.EncodeUint16(header.Zero2)...)
	bs = append(bs, lbytes.EncodeUint32(header.Zero3)...)
	bs = append(bs, lbytes.EncodeUint32(header.HeaderCRC)...)
	return bs
}

func EncodeField(field dfield.Field) []byte {
	bs := make([]byte, 0, dfield.DefaultFieldSize)
	bs = append(bs, lbytes.EncodeUint32(uint32(field.Type))...)
	bs = append(bs, lbytes.EncodeUint32(field.Offset)...)
	bs = append(bs, lbytes.EncodeName(field.Name)...)
	bs = append(bs, lbytes.EncodeUint32(field.Bits)...)
	return bs
}
