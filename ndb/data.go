// Package ndb stores the code to decode NCAA DB files into tables of records.
package ndb

import (
	"ncaa-savior/ndb/dstruct"
)

type Options = dstruct.Options

func DefaultOptions() Options {
	return dstruct.DefaultOptions()
}
