package dheader

import (
	"github.com/pkg/errors"

	"ncaa-savior/ndb/lbytes"
)

func Decode(reader *lbytes.Reader) (*Header, error) {
	if err := reader.Require("file header", "", DefaultHeaderSize); err != nil {
		return nil, err
	}

	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "digit", ReadFunction: readUint16},
		{Key: "version", ReadFunction: readUint16},
		{Key: "unknown_1", ReadFunction: readUint32},
		{Key: "db_size", ReadFunction: readUint32},
		{Key: "zero", ReadFunction: readUint32},
		{Key: "table_count", ReadFunction: readUint32},
		{Key: "unknown_2", ReadFunction: readUint32},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "dheader.Decode error")
	}

	return header, nil
}
