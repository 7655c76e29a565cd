package derr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	err := Locate(BoundsError{Offset: 30, Width: 4, Limit: 32}, "PLAY", "PGID")
	assert.Equal(t, BoundsError{Table: "PLAY", Field: "PGID", Offset: 30, Width: 4, Limit: 32}, err)
	assert.EqualError(t, err, `field "PGID" of table "PLAY" out of bounds: offset 30 + width 4 exceeds 32`)

	err = Locate(TruncatedInputError{Section: "table header", Table: "TEAM", Need: 40, Have: 3}, "PLAY", "")
	assert.EqualError(t, err, `truncated input reading table header of table "TEAM": need 40 bytes, have 3`)

	other := errors.New("boom")
	assert.Equal(t, other, Locate(other, "PLAY", "PGID"))
}

func TestErrorsAsThroughWrap(t *testing.T) {
	err := errors.Wrap(InvalidFieldTypeError{Table: "PLAY", Field: "PGID", Type: 9}, "dfield.DecodeBlock error")

	target := InvalidFieldTypeError{}
	require.True(t, errors.As(err, &target))
	assert.Equal(t, uint32(9), target.Type)
	assert.Contains(t, err.Error(), `invalid type 9 of field "PGID" of table "PLAY"`)
}

func TestEncodingError_Error(t *testing.T) {
	err := Locate(EncodingError{Section: "field name", Bytes: []byte{0x41, 0xe9}}, "PLAY", "")
	assert.EqualError(t, err, `invalid text 41 e9 in field name of table "PLAY"`)

	err = Locate(EncodingError{Bytes: []byte{0xff}}, "TEAM", "TNAM")
	assert.EqualError(t, err, `invalid text ff in field "TNAM" of table "TEAM"`)

	assert.EqualError(t, EncodingError{Section: "table name", Bytes: []byte{0xe9}}, `invalid text e9 in table name`)
}
