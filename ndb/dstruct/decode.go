package dstruct

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"ncaa-savior/ds"
	"ncaa-savior/ndb/derr"
	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dheader"
	"ncaa-savior/ndb/dtable"
	"ncaa-savior/ndb/lbytes"
)

// ToStructuredDB decodes every table of an NCAA DB file. Either every table is
// decoded or an error is returned, never a partial database.
func ToStructuredDB(bs []byte, options Options) (*Database, error) {
	options = options.withDefaults()
	logger := options.Logger
	decode, err := lbytes.NewTextDecoder(options.Charset)
	if err != nil {
		return nil, err
	}

	reader := lbytes.NewBytesReader(bs)
	header, err := dheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	if header.Zero != 0 {
		logger.Debug("non-zero file header sentinel", slog.Any("zero", header.Zero))
	}

	entries, err := dtable.DecodeBlock(reader, int(header.TableCount))
	if err != nil {
		return nil, err
	}
	// every table offset counts from here
	anchor := reader.Position()

	tables := ds.NewLinkedHashMap[string, *Table]()
	for _, entry := range entries {
		tables.Put(entry.Name, &Table{Name: entry.Name, Offset: entry.Offset})
	}

	regions := make([][]byte, 0, tables.Len())
	for _, table := range tables.Values() {
		region, err := locateTable(reader, anchor, table, logger)
		if err != nil {
			return nil, errors.Wrapf(err, `dstruct.ToStructuredDB error in table "%s"`, table.Name)
		}
		regions = append(regions, region)
	}

	decodeTable := func(table *Table, region []byte) error {
		records, err := DecodeRecords(table, region, decode)
		if err != nil {
			return errors.Wrapf(err, `dstruct.ToStructuredDB error in table "%s"`, table.Name)
		}
		table.Records = records
		logger.Debug(
			"table decoded",
			slog.String("table", table.Name),
			slog.Int("rows", len(records.Rows)),
			slog.Int("columns", len(records.Columns)),
		)
		return nil
	}

	if options.Parallel {
		group := errgroup.Group{}
		for i, table := range tables.Values() {
			table, region := table, regions[i]
			group.Go(func() error { return decodeTable(table, region) })
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, table := range tables.Values() {
			if err := decodeTable(table, regions[i]); err != nil {
				return nil, err
			}
		}
	}

	return &Database{
		Header: *header,
		Tables: tables,
	}, nil
}

// locateTable seeks to a table, decodes its header and field directory and
// returns its record region. The reader is left right after the region.
func locateTable(reader *lbytes.Reader, anchor int, table *Table, logger *slog.Logger) ([]byte, error) {
	position := anchor + int(table.Offset)
	if position < reader.Position() {
		logger.Debug(
			"table starts before the cursor",
			slog.String("table", table.Name),
			slog.Int("position", position),
			slog.Int("cursor", reader.Position()),
		)
	}
	if err := reader.SeekTo("table", table.Name, position); err != nil {
		return nil, err
	}

	header, err := dtable.DecodeHeader(reader, table.Name)
	if err != nil {
		return nil, err
	}
	table.Header = *header
	if header.Zero != 0 || header.Zero2 != 0 || header.Zero3 != 0 {
		logger.Debug("non-zero table header sentinel", slog.String("table", table.Name))
	}
	if header.LenBits != header.LenBytes*8 {
		logger.Debug(
			"record length in bits disagrees with bytes",
			slog.String("table", table.Name),
			slog.Any("len_bytes", header.LenBytes),
			slog.Any("len_bits", header.LenBits),
		)
	}

	table.Fields, err = dfield.DecodeBlock(reader, table.Name, int(header.NumFields))
	if err != nil {
		return nil, err
	}
	// Descriptors of a table without records are never read against a record.
	if header.CurrentRecords > 0 {
		if err := dfield.CheckBounds(table.Fields, int(header.LenBytes), table.Name); err != nil {
			return nil, err
		}
	}

	recordsSize := header.RecordsSize()
	if reader.Len() < recordsSize {
		return nil, derr.BoundsError{
			Table:  table.Name,
			Offset: reader.Position(),
			Width:  recordsSize,
			Limit:  int(reader.Size()),
		}
	}
	region, err := reader.ReadBytes(recordsSize)
	if err != nil {
		return nil, derr.Locate(err, table.Name, "")
	}
	logger.Debug(
		"table located",
		slog.String("table", table.Name),
		slog.Int("position", position),
		slog.Int("records", int(header.CurrentRecords)),
	)
	return region, nil
}

// DecodeRecords splits a record region into the table's fixed-length records
// and decodes every one of them.
func DecodeRecords(table *Table, region []byte, decode lbytes.TextDecoder) (*Records, error) {
	lenBytes := int(table.Header.LenBytes)
	numRecords := int(table.Header.CurrentRecords)
	if len(region) < lenBytes*numRecords {
		return nil, derr.BoundsError{
			Table: table.Name,
			Width: lenBytes * numRecords,
			Limit: len(region),
		}
	}

	buffers := ds.MakeChunks(region[:lenBytes*numRecords], lenBytes)
	if lenBytes == 0 {
		buffers = make([][]byte, numRecords)
	}

	rows := make([][]any, 0, numRecords)
	for _, buffer := range buffers {
		row, err := dfield.DecodeRecord(table.Fields, buffer, decode, table.Name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &Records{
		Columns: lo.Map(
			table.Fields,
			func(field dfield.Field, _ int) string { return field.Name },
		),
		Rows: rows,
	}, nil
}
