package dfield

import (
	"github.com/pkg/errors"

	"ncaa-savior/ndb/derr"
	"ncaa-savior/ndb/lbytes"
)

func DecodeField(reader *lbytes.Reader, tableName string) (*Field, error) {
	var field Field
	rawType, err := reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "dfield.DecodeField error")
		return nil, err
	}
	field.Offset, err = reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "dfield.DecodeField error")
		return nil, err
	}
	field.Name, err = reader.ReadName("field name")
	if err != nil {
		err := errors.Wrap(derr.Locate(err, tableName, ""), "dfield.DecodeField error")
		return nil, err
	}
	field.Bits, err = reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "dfield.DecodeField error")
		return nil, err
	}

	field.Type = FieldType(rawType)
	if !field.Type.IsValid() {
		return nil, derr.InvalidFieldTypeError{
			Table: tableName,
			Field: field.Name,
			Type:  rawType,
		}
	}

	return &field, nil
}

// DecodeBlock reads the field directory of a table. The order of the returned
// fields is the column order.
func DecodeBlock(reader *lbytes.Reader, tableName string, numFields int) ([]Field, error) {
	if err := reader.Require("field directory", tableName, numFields*DefaultFieldSize); err != nil {
		return nil, err
	}
	fields := make([]Field, 0, numFields)
	for i := 0; i < numFields; i++ {
		field, err := DecodeField(reader, tableName)
		if err != nil {
			err := errors.Wrap(err, "dfield.DecodeBlock error")
			return nil, err
		}
		fields = append(fields, *field)
	}

	return fields, nil
}
