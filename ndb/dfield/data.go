package dfield

import (
	"encoding/hex"
	"fmt"
)

type (
	// Field describes one column. Offset and Bits are counted in bits from the
	// start of a record.
	Field struct {
		Type   FieldType `json:"type"`
		Offset uint32    `json:"offset"`
		Name   string    `json:"name"`
		Bits   uint32    `json:"bits"`
	}
	FieldType uint32
	// Hex is the value of a BINARY field.
	Hex []byte
)

const (
	FieldTypeString FieldType = iota
	FieldTypeBinary
	FieldTypeSInt
	FieldTypeUInt
	FieldTypeFloat
)

const (
	DefaultFieldSize = 16
)

var fieldTypeNames = map[FieldType]string{
	FieldTypeString: "STRING",
	FieldTypeBinary: "BINARY",
	FieldTypeSInt:   "SINT",
	FieldTypeUInt:   "UINT",
	FieldTypeFloat:  "FLOAT",
}

func (r FieldType) IsValid() bool {
	_, ok := fieldTypeNames[r]
	return ok
}

func (r FieldType) String() string {
	name, ok := fieldTypeNames[r]
	if !ok {
		return fmt.Sprintf("FieldType(%d)", uint32(r))
	}
	return name
}

func (r FieldType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r Hex) String() string {
	return hex.EncodeToString(r)
}

func (r Hex) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
