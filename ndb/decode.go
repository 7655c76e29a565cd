package ndb

import (
	"encoding/json"

	"github.com/pkg/errors"

	"ncaa-savior/ndb/dstruct"
)

func DecodeDB(bytes []byte, options Options) (*dstruct.Database, error) {
	return dstruct.ToStructuredDB(bytes, options)
}

// DecodeJSON decodes a DB file to indented JSON. With debug the whole structure
// is dumped, headers and field directories included. A non-empty table limits
// the output to that table's rows.
func DecodeJSON(bytes []byte, options Options, debug bool, table string) ([]byte, error) {
	db, err := DecodeDB(bytes, options)
	if err != nil {
		return nil, err
	}

	if table != "" {
		decodedTable, ok := db.Table(table)
		if !ok {
			return nil, dstruct.TableNotFoundError{Name: table}
		}
		if debug {
			return marshal(decodedTable)
		}
		return marshal(decodedTable.Records.ToOrderedMaps())
	}

	if debug {
		return marshal(db)
	}
	return marshal(dstruct.ToLinkedHashMap(*db))
}

func marshal(v any) ([]byte, error) {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "ndb.DecodeJSON error")
	}
	return bs, nil
}
