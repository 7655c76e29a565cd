package dstruct

import (
	"fmt"
	"io"
	"log/slog"

	"ncaa-savior/ds"
	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dheader"
	"ncaa-savior/ndb/dtable"
)

type (
	Database struct {
		Header dheader.Header                    `json:"header"`
		Tables *ds.LinkedHashMap[string, *Table] `json:"tables"`
	}
	Table struct {
		Name    string         `json:"name"`
		Offset  uint32         `json:"offset"`
		Header  dtable.Header  `json:"header"`
		Fields  []dfield.Field `json:"fields"`
		Records *Records       `json:"records"`
	}
	// Records holds the decoded rows of a table. Every row has one value per
	// column, in column order.
	Records struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}
	Options struct {
		// Charset names the single-byte encoding of STRING fields.
		Charset string
		// Parallel decodes the records of different tables concurrently.
		Parallel bool
		Logger   *slog.Logger
	}
	TableNotFoundError struct {
		Name string
	}
)

func DefaultOptions() Options {
	return Options{
		Charset:  "latin1",
		Parallel: false,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (r Options) withDefaults() Options {
	defaults := DefaultOptions()
	if r.Charset == "" {
		r.Charset = defaults.Charset
	}
	if r.Logger == nil {
		r.Logger = defaults.Logger
	}
	return r
}

func (r TableNotFoundError) Error() string {
	return fmt.Sprintf(`table "%s" not found`, r.Name)
}
