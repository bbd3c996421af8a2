// Package id3 steps over leading ID3v2 tags.
//
// MPEG audio files routinely open with an ID3v2 tag; frame scanning has to
// start past it. This package only measures and discards the tag — it does
// not decode tag frames.
package id3

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const Magic = "ID3"

const (
	headerSize = 10
	footerSize = 10

	flagFooterPresent = 1 << 4
)

// Skip discards a leading ID3v2 tag from r and returns the number of bytes
// skipped. If the stream does not start with a tag, r is left untouched and
// Skip returns 0.
func Skip(r *bufio.Reader) (int64, error) {
	b, err := r.Peek(headerSize)
	if len(b) < headerSize {
		// Too short to hold a tag header; nothing to skip.
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	if string(b[:len(Magic)]) != Magic {
		return 0, nil
	}

	n := headerSize + synchsafe32(b[6:10])
	if b[5]&flagFooterPresent != 0 {
		n += footerSize
	}

	skipped, err := r.Discard(n)
	if err != nil {
		return int64(skipped), errors.Wrap(err, "id3: discard tag")
	}
	return int64(n), nil
}

// synchsafe32 decodes the 4-byte tag size, 7 significant bits per byte.
func synchsafe32(b []byte) int {
	return int(b[0]&0x7F)<<21 |
		int(b[1]&0x7F)<<14 |
		int(b[2]&0x7F)<<7 |
		int(b[3]&0x7F)
}
