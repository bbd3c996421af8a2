package scan

import (
	"io"
	"math"
	"time"

	"github.com/pkg/errors"

	"ktkr.us/pkg/mpegaudio"
)

// StreamInfo is a stream-level summary taken from the first frame and, when
// present, its Xing/Info or VBRI header.
type StreamInfo struct {
	MIMEType        string
	SampleRate      int
	Channels        int
	Bitrate         int // first-frame bitrate; advisory for VBR streams
	SamplesPerFrame int

	// Frames is the frame count from the VBR header, 0 when unknown.
	Frames int
	VBR    bool

	Duration time.Duration
}

// Info summarises the stream read from r. size is the total byte length of
// the audio data (after any leading tag), used for the duration estimate when
// no VBR header states a frame count; pass 0 if unknown.
func Info(rd io.Reader, size int64) (*StreamInfo, error) {
	r := NewReader(rd)
	f, err := r.NextFrame()
	if err == io.EOF {
		return nil, ErrNoFrame
	}
	if err != nil {
		return nil, errors.Wrap(err, "first frame")
	}

	info := &StreamInfo{
		MIMEType:        f.MIMEType,
		SampleRate:      f.SampleRate,
		Channels:        f.Channels,
		Bitrate:         f.Bitrate,
		SamplesPerFrame: f.SamplesPerFrame,
	}

	if err := readVBRHeader(f, info); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrap(err, "drain first frame")
	}

	if info.Frames > 0 {
		// Exact: total samples over the sample rate, to the nearest
		// second.
		samples := info.Frames * info.SamplesPerFrame
		secs := math.Floor(float64(samples)/float64(info.SampleRate) + 0.5)
		info.Duration = time.Duration(secs) * time.Second
	} else if info.Bitrate > 0 && size > 0 {
		// CBR estimate from the byte length.
		secs := math.Floor(float64(size)/float64(info.Bitrate/8) + 0.5)
		info.Duration = time.Duration(secs) * time.Second
	}

	return info, nil
}

// readVBRHeader looks for a Xing, Info, or VBRI record in f's payload and
// fills in info.Frames and info.VBR. A frame with no such record is left
// alone: most streams are plain CBR.
func readVBRHeader(f *Frame, info *StreamInfo) error {
	// The record sits after the side information block (and the CRC when
	// present). VBRI is always at 32 bytes past the side info start, which
	// the Xing offset for MPEG-1 stereo happens to equal.
	skip := sideInfoSize(f)
	if f.HasCRC {
		skip += 2
	}
	if int64(skip)+4 > f.Body.N {
		return nil
	}
	if _, err := io.CopyN(io.Discard, f.Body, int64(skip)); err != nil {
		return errors.Wrap(err, "skip side info")
	}

	var tag [4]byte
	if _, err := io.ReadFull(f.Body, tag[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil
		}
		return errors.Wrap(err, "read VBR tag")
	}

	switch string(tag[:]) {
	case "Xing":
		x, err := decodeXing(f.Body)
		if err != nil {
			return errors.Wrap(err, "decode Xing")
		}
		info.Frames = int(x.numFrames)
		info.VBR = true
	case "Info":
		// LAME writes "Info" for CBR streams; same record layout.
		x, err := decodeXing(f.Body)
		if err != nil {
			return errors.Wrap(err, "decode Info")
		}
		info.Frames = int(x.numFrames)
	case "VBRI":
		v, err := decodeVBRI(f.Body)
		if err != nil {
			return errors.Wrap(err, "decode VBRI")
		}
		info.Frames = int(v.NumFrames)
		info.VBR = true
	}
	return nil
}

// sideInfoSize returns the byte length of the Layer III side information
// block, which depends on version and channel count.
func sideInfoSize(f *Frame) int {
	if f.MIMEType != mpegaudio.MIMETypeLayerIII {
		// Layers I and II carry no side info block; any VBR record
		// would start right after the header.
		return 0
	}
	if f.Version == mpegaudio.Version1 {
		if f.Channels == 1 {
			return 17
		}
		return 32
	}
	if f.Channels == 1 {
		return 9
	}
	return 17
}
