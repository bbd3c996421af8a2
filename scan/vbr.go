package scan

import (
	"encoding/binary"
	"io"
)

// xing is the Xing/Info VBR record, minus its 4-byte tag. Every field past
// the flags word is optional.
type xing struct {
	numFrames uint32
	numBytes  uint32
	toc       []byte
	quality   uint32
}

const (
	xingFrames = 1 << iota
	xingBytes
	xingTOC
	xingQuality
)

func decodeXing(r io.Reader) (*xing, error) {
	var flags uint32
	if err := binary.Read(r, binary.BigEndian, &flags); err != nil {
		return nil, err
	}
	var x xing
	if flags&xingFrames != 0 {
		if err := binary.Read(r, binary.BigEndian, &x.numFrames); err != nil {
			return nil, err
		}
	}
	if flags&xingBytes != 0 {
		if err := binary.Read(r, binary.BigEndian, &x.numBytes); err != nil {
			return nil, err
		}
	}
	if flags&xingTOC != 0 {
		x.toc = make([]byte, 100)
		if _, err := io.ReadFull(r, x.toc); err != nil {
			return nil, err
		}
	}
	if flags&xingQuality != 0 {
		if err := binary.Read(r, binary.BigEndian, &x.quality); err != nil {
			return nil, err
		}
	}
	return &x, nil
}

// vbri is the Fraunhofer VBRI record, minus its 4-byte tag. A TOC follows
// but contributes nothing to a duration calculation.
type vbri struct {
	Version      uint16
	Delay        uint16
	Quality      uint16
	NumBytes     uint32
	NumFrames    uint32
	TOCSize      uint16
	TOCScale     uint16
	TOCEntrySize uint16
}

func decodeVBRI(r io.Reader) (*vbri, error) {
	var v vbri
	err := binary.Read(r, binary.BigEndian, &v)
	return &v, err
}
