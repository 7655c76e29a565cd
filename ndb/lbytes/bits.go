package lbytes

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"ncaa-savior/ndb/derr"
)

// MaxNumericBits is the widest value ReadBits can return.
const MaxNumericBits = 64

// TextDecoder turns the bytes of a STRING field into text.
type TextDecoder func(bs []byte) (string, error)

var charmaps = map[string]*charmap.Charmap{
	"latin1":      charmap.ISO8859_1,
	"windows1252": charmap.Windows1252,
	"cp437":       charmap.CodePage437,
}

// NewTextDecoder returns the decoder of a single-byte charset. Besides the
// charmaps above, "ascii" rejects every byte with the high bit set.
func NewTextDecoder(charset string) (TextDecoder, error) {
	if charset == "ascii" {
		return decodeASCII, nil
	}
	cm, ok := charmaps[charset]
	if !ok {
		return nil, errors.Errorf(`NewTextDecoder error: unknown charset "%s"`, charset)
	}
	return func(bs []byte) (string, error) {
		decoded, err := cm.NewDecoder().Bytes(bs)
		if err != nil {
			return "", derr.EncodingError{Bytes: bs}
		}
		s := string(decoded)
		// charmaps substitute unmapped bytes rather than failing
		if strings.ContainsRune(s, utf8.RuneError) {
			return "", derr.EncodingError{Bytes: bs}
		}
		return s, nil
	}, nil
}

func decodeASCII(bs []byte) (string, error) {
	for _, b := range bs {
		if b >= utf8.RuneSelf {
			return "", derr.EncodingError{Bytes: bs}
		}
	}
	return string(bs), nil
}

// ReadBits reads bits bits starting at bit offset of data. Bit 0 is the most
// significant bit of data[0], and the first bit read ends up as the most
// significant bit of the result.
func ReadBits(data []byte, offset int, bits int) (uint64, error) {
	if bits > MaxNumericBits {
		return 0, derr.BoundsError{Offset: offset, Width: bits, Limit: MaxNumericBits}
	}
	if err := checkBounds(data, offset, bits); err != nil {
		return 0, err
	}
	byteOffset := offset / 8
	bitOffset := offset % 8
	value := uint64(0)
	for i := 0; i < bits; i++ {
		value <<= 1
		value |= uint64(data[byteOffset]>>(7-bitOffset)) & 1
		bitOffset++
		if bitOffset == 8 {
			byteOffset++
			bitOffset = 0
		}
	}
	return value, nil
}

// ReadRaw returns a copy of the bytes covered by a byte-aligned field.
func ReadRaw(data []byte, offset int, bits int) ([]byte, error) {
	if err := checkBounds(data, offset, bits); err != nil {
		return nil, err
	}
	bs := make([]byte, 0, bits/8)
	bs = append(bs, data[offset/8:(offset+bits)/8]...)
	return bs, nil
}

// ReadString decodes a byte-aligned text field. Strings are padded with zero
// bytes on disk, every one of them is dropped.
func ReadString(data []byte, offset int, bits int, decode TextDecoder) (string, error) {
	if err := checkBounds(data, offset, bits); err != nil {
		return "", err
	}
	bs := data[offset/8 : (offset+bits)/8]
	return decode(bytes.ReplaceAll(bs, []byte{0}, nil))
}

func checkBounds(data []byte, offset int, bits int) error {
	limit := len(data) * 8
	if offset < 0 || bits < 0 || offset+bits > limit {
		return derr.BoundsError{Offset: offset, Width: bits, Limit: limit}
	}
	return nil
}
