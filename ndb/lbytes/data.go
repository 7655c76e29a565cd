// Package lbytes reads the big-endian words and the bit-packed values an NCAA DB
// file is made of.
package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

// NameSize is the length of the reversed four character table and field names.
const NameSize = 4
