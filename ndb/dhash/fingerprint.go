// Package dhash fingerprints decoded tables, so that two decodes of the same
// file can be compared without keeping the rows around.
package dhash

import (
	"bytes"
	"encoding/binary"
	"fmt"

	farm "github.com/dgryski/go-farm"
	"github.com/samber/lo"

	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dstruct"
)

type TableFingerprint struct {
	Name        string `json:"name"`
	Fingerprint uint64 `json:"fingerprint"`
}

// FingerprintRecords hashes column names and every value in row order. Any
// change of value, type, or order changes the result.
func FingerprintRecords(records dstruct.Records) uint64 {
	buf := bytes.NewBuffer(make([]byte, 0, 64))
	for _, column := range records.Columns {
		writeChunk(buf, 'c', []byte(column))
	}
	for _, row := range records.Rows {
		buf.WriteByte('r')
		for _, value := range row {
			switch v := value.(type) {
			case string:
				writeChunk(buf, 's', []byte(v))
			case dfield.Hex:
				writeChunk(buf, 'b', v)
			case uint64:
				bs := make([]byte, 8)
				binary.BigEndian.PutUint64(bs, v)
				writeChunk(buf, 'u', bs)
			default:
				writeChunk(buf, '?', []byte(fmt.Sprintf("%T:%v", v, v)))
			}
		}
	}
	return farm.Fingerprint64(buf.Bytes())
}

func FingerprintDB(db dstruct.Database) []TableFingerprint {
	return lo.Map(
		db.Tables.Values(),
		func(table *dstruct.Table, _ int) TableFingerprint {
			fingerprint := uint64(0)
			if table.Records != nil {
				fingerprint = FingerprintRecords(*table.Records)
			}
			return TableFingerprint{Name: table.Name, Fingerprint: fingerprint}
		},
	)
}

func writeChunk(buf *bytes.Buffer, kind byte, bs []byte) {
	buf.WriteByte(kind)
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(bs)))
	buf.Write(length)
	buf.Write(bs)
}
