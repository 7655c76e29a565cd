// Package derr holds the error types returned while decoding an NCAA DB file.
package derr

import (
	"fmt"
)

type (
	// TruncatedInputError is returned when fewer bytes remain than a section needs.
	TruncatedInputError struct {
		Section string
		Table   string
		Need    int
		Have    int
	}
	InvalidFieldTypeError struct {
		Table string
		Field string
		Type  uint32
	}
	// BoundsError is returned when an offset plus a width falls outside of the
	// record or the buffer it is read from.
	BoundsError struct {
		Table  string
		Field  string
		Offset int
		Width  int
		Limit  int
	}
	// EncodingError is returned for bytes that do not decode as text. Section
	// is set for names read from a directory, Field for record values.
	EncodingError struct {
		Section string
		Table   string
		Field   string
		Bytes   []byte
	}
)

func (r TruncatedInputError) Error() string {
	return fmt.Sprintf(
		`truncated input reading %s%s: need %d bytes, have %d`,
		r.Section, tableSuffix(r.Table), r.Need, r.Have,
	)
}

func (r InvalidFieldTypeError) Error() string {
	return fmt.Sprintf(
		`invalid type %d of field "%s"%s`,
		r.Type, r.Field, tableSuffix(r.Table),
	)
}

func (r BoundsError) Error() string {
	subject := "region"
	if r.Field != "" {
		subject = fmt.Sprintf(`field "%s"`, r.Field)
	}
	return fmt.Sprintf(
		`%s%s out of bounds: offset %d + width %d exceeds %d`,
		subject, tableSuffix(r.Table), r.Offset, r.Width, r.Limit,
	)
}

func (r EncodingError) Error() string {
	subject := "text"
	switch {
	case r.Field != "":
		subject = fmt.Sprintf(`field "%s"`, r.Field)
	case r.Section != "":
		subject = r.Section
	}
	return fmt.Sprintf(
		`invalid text % x in %s%s`,
		r.Bytes, subject, tableSuffix(r.Table),
	)
}

func tableSuffix(table string) string {
	if table == "" {
		return ""
	}
	return fmt.Sprintf(` of table "%s"`, table)
}

// Locate fills in the table and field names of a decode error raised by code
// that does not know where it is reading from. Names already set are kept.
// Errors outside of this package are returned unchanged.
func Locate(err error, table string, field string) error {
	switch e := err.(type) {
	case TruncatedInputError:
		if e.Table == "" {
			e.Table = table
		}
		return e
	case InvalidFieldTypeError:
		if e.Table == "" {
			e.Table = table
		}
		if e.Field == "" {
			e.Field = field
		}
		return e
	case BoundsError:
		if e.Table == "" {
			e.Table = table
		}
		if e.Field == "" {
			e.Field = field
		}
		return e
	case EncodingError:
		if e.Table == "" {
			e.Table = table
		}
		if e.Field == "" {
			e.Field = field
		}
		return e
	default:
		return err
	}
}
