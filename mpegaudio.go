// Package mpegaudio decodes MPEG-1/2/2.5 audio Layer I/II/III frame headers.
//
// The frame header is the first 4 bytes of a frame, read in big-endian byte
// order and interpreted as packed bitfields:
//
//	AAAAAAAA AAABBCCD EEEEFFGH IIJJKLMM
//
//	A: frame sync      B: version        C: layer     D: protection
//	E: bitrate index   F: sample rate    G: padding   H: private
//	I: channel mode    J: mode ext       K: copyright L: original  M: emphasis
//
// The package is a leaf computation: it neither reads streams nor reports
// errors, it maps a 32-bit word to decoded format parameters or rejects it.
// Locating candidate frame offsets in a byte stream is the scan subpackage's
// job.
package mpegaudio

// MPEG version codes as stored in the header. Value 1 is reserved and
// rejected.
const (
	Version2_5 = 0
	Version2   = 2
	Version1   = 3

	versionReserved = 1
)

const (
	layerReserved = 0
	layerIII      = 1
	layerII       = 2
	layerI        = 3

	channelMono = 3
)

// MIME identifiers by layer. The version does not figure into these.
const (
	MIMETypeLayerI   = "audio/mpeg-L1"
	MIMETypeLayerII  = "audio/mpeg-L2"
	MIMETypeLayerIII = "audio/mpeg"
)

// MaxFrameSize is the theoretical maximum frame size for an MPEG audio
// stream, which occurs for Layer II MPEG 2.5 at 160 kb/s and 8000 Hz with
// padding: 144*160000/8000 + 1 = 2881 bytes, rounded up to the next power of
// two. Useful for sizing read buffers.
const MaxFrameSize = 4096

// Header is a decoded MPEG audio frame header.
//
// A Header is meant to be allocated once and repopulated for every frame in a
// scanning loop; see PopulateHeader. It must not be shared between concurrent
// PopulateHeader calls.
type Header struct {
	// Version is one of Version1, Version2, Version2_5.
	Version int
	// MIMEType identifies the layer; one of the MIMEType constants.
	MIMEType string
	// FrameSize is the total frame size in bytes, including the 4 header
	// bytes.
	FrameSize int
	// SampleRate in Hz.
	SampleRate int
	// Channels is 1 for mono, 2 for every stereo variant.
	Channels int
	// Bitrate in bits per second.
	Bitrate int
	// SamplesPerFrame is fixed by version and layer: 384, 576, or 1152.
	SamplesPerFrame int
}
