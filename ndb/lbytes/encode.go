package lbytes

import (
	"encoding/binary"
	"unicode/utf8"

	"ncaa-savior/ndb/derr"
)

// DecodeName restores the reading order of a name stored back to front. The
// stored bytes must be UTF-8.
func DecodeName(bs []byte) (string, error) {
	if !utf8.Valid(bs) {
		return "", derr.EncodingError{
			Section: "name",
			Bytes:   append([]byte(nil), bs...),
		}
	}
	return reverseRunes(string(bs)), nil
}

// EncodeName lays a name out the way DecodeName expects to find it. Names that
// are not UTF-8 are reversed byte by byte.
func EncodeName(name string) []byte {
	if utf8.ValidString(name) {
		return []byte(reverseRunes(name))
	}
	bs := []byte(name)
	for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
		bs[i], bs[j] = bs[j], bs[i]
	}
	return bs
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func EncodeUint16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.BigEndian.PutUint16(bs, value)
	return bs
}

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, value)
	return bs
}
