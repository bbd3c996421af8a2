// Package scan locates and walks MPEG audio frames in a byte stream.
//
// A Reader resynchronises on the frame sync pattern, hands each candidate
// 4-byte word to the mpegaudio decoder, and advances by the decoded frame
// size. Info summarises a whole stream from its first frame plus any
// Xing/Info or VBRI header.
package scan

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"ktkr.us/pkg/mpegaudio"
)

var (
	// ErrNoFrame means the stream ran out before any valid frame header
	// was found.
	ErrNoFrame = errors.New("scan: no audio frame found")
)

// A Frame is one MPEG audio frame. Header describes it; Body reads the
// payload (everything past the 4 header bytes). The Body must be drained
// before the next NextFrame call; Close does that.
type Frame struct {
	mpegaudio.Header

	// HasCRC reports whether a CRC-16 leads the payload (protection bit
	// low).
	HasCRC bool

	Body *io.LimitedReader
}

// Close discards whatever is left of the frame payload so the underlying
// reader sits at the next frame boundary.
func (f *Frame) Close() error {
	_, err := io.Copy(io.Discard, f.Body)
	return err
}

// Reader scans an MPEG audio elementary stream frame by frame.
type Reader struct {
	r *bufio.Reader

	// One header record reused for every frame.
	hdr mpegaudio.Header
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: ensureBufioReader(r)}
}

// NextFrame returns the next frame in the stream. Bytes that do not begin a
// valid frame header are skipped one at a time, so garbage between frames
// (or a false sync inside one, if the caller did not drain it) is tolerated.
// It returns io.EOF when the stream ends with no further frame.
//
// The returned Frame's Header is a snapshot; it remains valid after the next
// NextFrame call, but its Body does not.
func (r *Reader) NextFrame() (*Frame, error) {
	for {
		b, err := r.r.Peek(2)
		if len(b) < 2 {
			if err == nil {
				err = io.EOF
			}
			return nil, err
		}
		if b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
			r.r.ReadByte()
			continue
		}

		b, err = r.r.Peek(4)
		if len(b) < 4 {
			if err == nil {
				err = io.EOF
			}
			return nil, err
		}
		word := binary.BigEndian.Uint32(b)

		if !mpegaudio.PopulateHeader(word, &r.hdr) {
			// Sync pattern but not a frame; keep looking.
			r.r.ReadByte()
			continue
		}
		r.r.Discard(4)

		return &Frame{
			Header: r.hdr,
			HasCRC: word>>16&0x1 == 0,
			Body:   &io.LimitedReader{R: r.r, N: int64(r.hdr.FrameSize - 4)},
		}, nil
	}
}

// Count walks the whole stream and returns the number of frames found.
func Count(rd io.Reader) (int, error) {
	r := NewReader(rd)
	var n int
	for {
		f, err := r.NextFrame()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
		if err := f.Close(); err != nil {
			return n, errors.Wrap(err, "drain frame")
		}
	}
}

func ensureBufioReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
