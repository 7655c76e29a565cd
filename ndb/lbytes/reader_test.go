package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaa-savior/ndb/derr"
)

func TestBytesReader_ReadUint32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x03010403), resultInt1)

	resultInt2, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x0C22384E), resultInt2)
	assert.Equal(t, 8, reader.Position())
}

func TestBytesReader_ReadBytesTruncated(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	_, err := reader.ReadUint32()
	target := derr.TruncatedInputError{}
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 4, target.Need)
	assert.Equal(t, 3, target.Have)
}

func TestBytesReader_SeekTo(t *testing.T) {
	reader := NewBytesReader([]byte{0, 1, 2, 3, 4, 5})

	require.NoError(t, reader.SeekTo("table", "TEAM", 4))
	value, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0405), value)

	require.NoError(t, reader.SeekTo("table", "TEAM", 1))
	assert.Equal(t, 1, reader.Position())

	err = reader.SeekTo("table", "TEAM", 7)
	assert.EqualError(t, err, `truncated input reading table of table "TEAM": need 7 bytes, have 6`)
}

func TestBytesReader_Require(t *testing.T) {
	reader := NewBytesReader(make([]byte, 10))
	assert.NoError(t, reader.Require("file header", "", 10))
	assert.Equal(
		t,
		derr.TruncatedInputError{Section: "file header", Need: 24, Have: 10},
		reader.Require("file header", "", 24),
	)
}

func TestNameRoundTrip(t *testing.T) {
	for _, name := range []string{"PLAY", "TEAM", "a1 #", "~~!~", "Tü"} {
		encoded := EncodeName(name)
		decoded, err := DecodeName(encoded)
		require.NoError(t, err)
		assert.Equal(t, name, decoded)
	}
	assert.Equal(t, []byte("YALP"), EncodeName("PLAY"))

	reader := NewBytesReader([]byte("MAET"))
	name, err := reader.ReadName("table name")
	require.NoError(t, err)
	assert.Equal(t, "TEAM", name)
}

func TestReadName_InvalidUTF8(t *testing.T) {
	_, err := DecodeName([]byte{'Y', 0xe9, 'L', 'P'})
	assert.Equal(t, derr.EncodingError{Section: "name", Bytes: []byte{'Y', 0xe9, 'L', 'P'}}, err)

	reader := NewBytesReader(EncodeName("PL\xe9Y"))
	name, err := reader.ReadName("table name")
	assert.Empty(t, name)
	target := derr.EncodingError{}
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "table name", target.Section)
	assert.Equal(t, []byte("Y\xe9LP"), target.Bytes)
	assert.Equal(t, 4, reader.Position())
}

func TestExecuteInstructions(t *testing.T) {
	type pair struct {
		Small uint8  `json:"small"`
		Large uint32 `json:"large"`
	}
	reader := NewBytesReader([]byte{7, 0, 0, 1, 0})
	result, err := ExecuteInstructions[pair](
		[]Instruction{
			{"small", CreateUint8ReadFunction(reader)},
			{"large", CreateUint32ReadFunction(reader)},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, pair{Small: 7, Large: 256}, *result)

	_, err = ExecuteInstructions[pair](
		[]Instruction{
			{"large", CreateUint32ReadFunction(reader)},
		},
	)
	assert.ErrorContains(t, err, `ExecuteInstructions error reading key "large"`)
}
