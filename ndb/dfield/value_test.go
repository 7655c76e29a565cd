package dfield

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaa-savior/ndb/derr"
	"ncaa-savior/ndb/lbytes"
)

func TestDecodeRecord(t *testing.T) {
	decode, err := lbytes.NewTextDecoder("latin1")
	require.NoError(t, err)
	fields := []Field{
		{Type: FieldTypeUInt, Offset: 44, Name: "PRAT", Bits: 4},
		{Type: FieldTypeString, Offset: 0, Name: "PFNA", Bits: 24},
		{Type: FieldTypeBinary, Offset: 24, Name: "PRAW", Bits: 16},
		{Type: FieldTypeSInt, Offset: 40, Name: "PSGN", Bits: 4},
		{Type: FieldTypeFloat, Offset: 48, Name: "PFLT", Bits: 8},
	}
	record := []byte{'B', 'o', 0, 0xBE, 0xEF, 0xF7, 0x42}

	row, err := DecodeRecord(fields, record, decode, "PLAY")
	require.NoError(t, err)
	assert.Equal(t, []any{uint64(7), "Bo", Hex{0xBE, 0xEF}, uint64(0xF), uint64(0x42)}, row)

	bs, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `[7,"Bo","beef",15,66]`, string(bs))
}

func TestDecodeRecord_OutOfBounds(t *testing.T) {
	decode, err := lbytes.NewTextDecoder("latin1")
	require.NoError(t, err)
	fields := []Field{
		{Type: FieldTypeUInt, Offset: 12, Name: "PGID", Bits: 8},
	}

	_, err = DecodeRecord(fields, []byte{0, 0}, decode, "PLAY")
	target := derr.BoundsError{}
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "PLAY", target.Table)
	assert.Equal(t, "PGID", target.Field)
}

func TestCheckBounds(t *testing.T) {
	fields := []Field{
		{Type: FieldTypeString, Offset: 0, Name: "PFNA", Bits: 32},
		{Type: FieldTypeUInt, Offset: 32, Name: "PGID", Bits: 8},
	}
	assert.NoError(t, CheckBounds(fields, 5, "PLAY"))
	assert.Equal(
		t,
		derr.BoundsError{Table: "PLAY", Field: "PGID", Offset: 32, Width: 8, Limit: 32},
		CheckBounds(fields, 4, "PLAY"),
	)
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int64(-1), SignExtend(0b111, 3))
	assert.Equal(t, int64(3), SignExtend(0b011, 3))
	assert.Equal(t, int64(-128), SignExtend(0x80, 8))
	assert.Equal(t, int64(5), SignExtend(5, 64))
}

func TestFloat32FromBits(t *testing.T) {
	assert.Equal(t, float32(1.5), Float32FromBits(0x3FC00000))
}
