package dtable

import (
	"github.com/pkg/errors"

	"ncaa-savior/ndb/lbytes"
)

// DecodeEntry reads one directory entry. The name is read straight from the
// cursor so that bytes which are not UTF-8 are reported instead of replaced.
func DecodeEntry(reader *lbytes.Reader) (*Entry, error) {
	name, err := reader.ReadName("table name")
	if err != nil {
		err := errors.Wrap(err, "dtable.DecodeEntry error")
		return nil, err
	}
	offset, err := reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "dtable.DecodeEntry error")
		return nil, err
	}

	return &Entry{
		Name:   name,
		Offset: offset,
	}, nil
}

// DecodeBlock reads the table directory. Entries are returned in file order,
// duplicated names included.
func DecodeBlock(reader *lbytes.Reader, tableCount int) ([]Entry, error) {
	if err := reader.Require("table directory", "", tableCount*DefaultEntrySize); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, tableCount)
	for i := 0; i < tableCount; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "dtable.DecodeBlock error: entry %d", i)
			return nil, err
		}
		if entry == nil {
			return nil, errors.New("dtable.DecodeBlock unreachable code")
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

func DecodeHeader(reader *lbytes.Reader, tableName string) (*Header, error) {
	if err := reader.Require("table header", tableName, DefaultHeaderSize); err != nil {
		return nil, err
	}

	readUint8 := lbytes.CreateUint8ReadFunction(reader)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "prior_crc", ReadFunction: readUint32},
		{Key: "unknown_2", ReadFunction: readUint32},
		{Key: "len_bytes", ReadFunction: readUint32},
		{Key: "len_bits", ReadFunction: readUint32},
		{Key: "zero", ReadFunction: readUint32},
		{Key: "max_records", ReadFunction: readUint16},
		{Key: "current_records", ReadFunction: readUint16},
		{Key: "unknown_3", ReadFunction: readUint32},
		{Key: "num_fields", ReadFunction: readUint8},
		{Key: "index_count", ReadFunction: readUint8},
		{Key: "zero_2", ReadFunction: readUint16},
		{Key: "zero_3", ReadFunction: readUint32},
		{Key: "header_crc", ReadFunction: readUint32},
	}
	header, err := lbytes.ExecuteInstructions[Header](instructions)
	if err != nil {
		err := errors.Wrapf(err, `dtable.DecodeHeader error for table "%s"`, tableName)
		return nil, err
	}

	return header, nil
}
