package dfield

import (
	"math"

	"github.com/pkg/errors"

	"ncaa-savior/ds"
	"ncaa-savior/ndb/derr"
	"ncaa-savior/ndb/lbytes"
)

// CheckBounds makes sure every field of a table fits inside its records, so
// that a bad field directory fails before any record is decoded.
func CheckBounds(fields []Field, lenBytes int, tableName string) error {
	limit := lenBytes * 8
	for _, field := range fields {
		if int(field.Offset)+int(field.Bits) > limit {
			return derr.BoundsError{
				Table:  tableName,
				Field:  field.Name,
				Offset: int(field.Offset),
				Width:  int(field.Bits),
				Limit:  limit,
			}
		}
	}
	return nil
}

// DecodeValue decodes one field of one record.
//
// STRING fields become a string, BINARY fields a Hex and every numeric type a
// uint64 holding the raw bit pattern.
func DecodeValue(field Field, record []byte, decode lbytes.TextDecoder) (any, error) {
	offset := int(field.Offset)
	bits := int(field.Bits)
	switch field.Type {
	case FieldTypeString:
		return lbytes.ReadString(record, offset, bits, decode)
	case FieldTypeBinary:
		bs, err := lbytes.ReadRaw(record, offset, bits)
		if err != nil {
			return nil, err
		}
		return Hex(bs), nil
	case FieldTypeSInt, FieldTypeUInt, FieldTypeFloat:
		return lbytes.ReadBits(record, offset, bits)
	default:
		return nil, ds.ErrUnreachableCode{Caller: "dfield.DecodeValue"}
	}
}

// DecodeRecord decodes every field of a record, in field order.
func DecodeRecord(fields []Field, record []byte, decode lbytes.TextDecoder, tableName string) ([]any, error) {
	row := make([]any, 0, len(fields))
	for _, field := range fields {
		value, err := DecodeValue(field, record, decode)
		if err != nil {
			err := derr.Locate(err, tableName, field.Name)
			return nil, errors.Wrap(err, "dfield.DecodeRecord error")
		}
		row = append(row, value)
	}
	return row, nil
}

// SignExtend reads the low bits of value as a two's complement number.
func SignExtend(value uint64, bits int) int64 {
	if bits <= 0 || bits >= 64 {
		return int64(value)
	}
	shift := 64 - uint(bits)
	return int64(value<<shift) >> shift
}

// Float32FromBits reads a 32 bit pattern as an IEEE-754 single.
func Float32FromBits(value uint64) float32 {
	return math.Float32frombits(uint32(value))
}
