package id3

import (
	"bufio"
	"bytes"
	"testing"
)

// tag builds an ID3v2.3 header with the given flags and body size, followed
// by a zero body.
func tag(flags byte, size int) []byte {
	b := make([]byte, headerSize+size)
	copy(b, Magic)
	b[3] = 3 // v2.3
	b[5] = flags
	b[6] = byte(size >> 21 & 0x7F)
	b[7] = byte(size >> 14 & 0x7F)
	b[8] = byte(size >> 7 & 0x7F)
	b[9] = byte(size & 0x7F)
	return b
}

func TestSkip(t *testing.T) {
	data := append(tag(0, 257), 0xAB)
	r := bufio.NewReader(bytes.NewReader(data))

	n, err := Skip(r)
	if err != nil {
		t.Fatal(err)
	}
	if n != 267 {
		t.Errorf("Skip = %d, want 267", n)
	}
	if b, err := r.ReadByte(); err != nil || b != 0xAB {
		t.Errorf("next byte = %#x, %v; want 0xab", b, err)
	}
}

func TestSkipFooter(t *testing.T) {
	data := append(tag(flagFooterPresent, 100), make([]byte, footerSize)...)
	data = append(data, 0xCD)
	r := bufio.NewReader(bytes.NewReader(data))

	n, err := Skip(r)
	if err != nil {
		t.Fatal(err)
	}
	if n != 120 {
		t.Errorf("Skip = %d, want 120", n)
	}
	if b, _ := r.ReadByte(); b != 0xCD {
		t.Errorf("next byte = %#x, want 0xcd", b)
	}
}

func TestSkipNoTag(t *testing.T) {
	data := []byte{0xFF, 0xFB, 0x90, 0x00, 0, 0, 0, 0, 0, 0, 0}
	r := bufio.NewReader(bytes.NewReader(data))

	n, err := Skip(r)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Skip = %d, want 0", n)
	}
	// The reader must not have advanced.
	if b, _ := r.ReadByte(); b != 0xFF {
		t.Errorf("next byte = %#x, want 0xff", b)
	}
}

func TestSkipShortStream(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte("ID3")))
	n, err := Skip(r)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Skip = %d, want 0", n)
	}
}

func TestSynchsafe32(t *testing.T) {
	tests := []struct {
		b    []byte
		want int
	}{
		{[]byte{0, 0, 0x02, 0x01}, 257},
		{[]byte{0, 0, 0, 0}, 0},
		{[]byte{0x7F, 0x7F, 0x7F, 0x7F}, 1<<28 - 1},
	}
	for _, tt := range tests {
		if got := synchsafe32(tt.b); got != tt.want {
			t.Errorf("synchsafe32(%v) = %d, want %d", tt.b, got, tt.want)
		}
	}
}
