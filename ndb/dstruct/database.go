package dstruct

import (
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"ncaa-savior/ds"
)

func (r *Database) TableNames() []string {
	return r.Tables.Keys()
}

func (r *Database) Table(name string) (*Table, bool) {
	return r.Tables.Get(name)
}

// Data returns the decoded records of a table.
func (r *Database) Data(name string) (*Records, error) {
	table, ok := r.Tables.Get(name)
	if !ok {
		return nil, TableNotFoundError{Name: name}
	}
	return table.Records, nil
}

// SetData replaces the records of a table. Every row must have one value per
// column.
func (r *Database) SetData(name string, records *Records) error {
	table, ok := r.Tables.Get(name)
	if !ok {
		return TableNotFoundError{Name: name}
	}
	if records == nil {
		return errors.Errorf(`Database.SetData error: nil records for table "%s"`, name)
	}
	for i, row := range records.Rows {
		if len(row) != len(records.Columns) {
			return errors.Errorf(
				`Database.SetData error: row %d of table "%s" has %d values for %d columns`,
				i, name, len(row), len(records.Columns),
			)
		}
	}
	table.Records = records
	return nil
}

// Column returns the values of one column, top to bottom.
func (r *Records) Column(name string) ([]any, bool) {
	index := lo.IndexOf(r.Columns, name)
	if index == -1 {
		return nil, false
	}
	return lo.Map(
		r.Rows,
		func(row []any, _ int) any { return row[index] },
	), true
}

// ToOrderedMaps turns every row into a map keyed by column name that keeps the
// column order when marshalled.
func (r *Records) ToOrderedMaps() []*orderedmap.OrderedMap {
	columns := ds.ShallowCopy(r.Columns)
	return lo.Map(
		r.Rows,
		func(row []any, _ int) *orderedmap.OrderedMap {
			lhm := orderedmap.New()
			for i, column := range columns {
				lhm.Set(column, row[i])
			}
			return lhm
		},
	)
}

// ToLinkedHashMap maps every table name to its rows, in directory order.
func ToLinkedHashMap(db Database) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	for _, table := range db.Tables.Values() {
		if table.Records == nil {
			lhm.Set(table.Name, []*orderedmap.OrderedMap{})
			continue
		}
		lhm.Set(table.Name, table.Records.ToOrderedMaps())
	}
	return lhm
}
