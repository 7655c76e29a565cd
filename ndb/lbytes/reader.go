package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"ncaa-savior/ndb/derr"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Position returns the number of bytes consumed so far.
func (b *Reader) Position() int {
	return int(b.Size()) - b.Len()
}

// Require checks that at least n bytes remain before a section is read.
func (b *Reader) Require(section string, table string, n int) error {
	if b.Len() < n {
		return derr.TruncatedInputError{
			Section: section,
			Table:   table,
			Need:    n,
			Have:    b.Len(),
		}
	}
	return nil
}

// SeekTo moves the cursor to an absolute byte position. Moving to the very end
// is allowed, moving past it is not.
func (b *Reader) SeekTo(section string, table string, position int) error {
	if position < 0 || position > int(b.Size()) {
		return derr.TruncatedInputError{
			Section: section,
			Table:   table,
			Need:    position,
			Have:    int(b.Size()),
		}
	}
	_, err := b.Seek(int64(position), io.SeekStart)
	if err != nil {
		return errors.Wrap(err, "Reader.SeekTo error")
	}
	return nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	have := b.Len()
	_, err := io.ReadFull(b, bs)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, derr.TruncatedInputError{Need: n, Have: have}
	}
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadUint8() (uint8, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

// ReadName reads a four byte name stored back to front. section names the
// part of the file the name belongs to in an EncodingError.
func (b *Reader) ReadName(section string) (string, error) {
	bs, err := b.ReadBytes(NameSize)
	if err != nil {
		return "", err
	}
	name, err := DecodeName(bs)
	if err != nil {
		var encodingErr derr.EncodingError
		if errors.As(err, &encodingErr) {
			encodingErr.Section = section
			return "", encodingErr
		}
		return "", err
	}
	return name, nil
}
