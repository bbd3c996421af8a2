package mpegaudio

const syncMask = 0xFFE00000

var (
	// Base sample rates, indexed by the 2-bit sampling-rate field. The
	// decoded rate is halved for Version2 and quartered for Version2_5.
	// Index 3 is reserved.
	sampleRatesV1 = [3]int{44100, 48000, 32000}

	// Bitrate tables in bit/s, indexed by bitrateIndex-1 (the header field
	// ranges 1..14; 0 means "free" and 15 is reserved, both rejected).
	bitratesV1LI = [14]int{
		32000, 64000, 96000, 128000, 160000, 192000, 224000, 256000,
		288000, 320000, 352000, 384000, 416000, 448000,
	}
	bitratesV2LI = [14]int{
		32000, 48000, 56000, 64000, 80000, 96000, 112000, 128000,
		144000, 160000, 176000, 192000, 224000, 256000,
	}
	bitratesV1LII = [14]int{
		32000, 48000, 56000, 64000, 80000, 96000, 112000, 128000,
		160000, 192000, 224000, 256000, 320000, 384000,
	}
	bitratesV1LIII = [14]int{
		32000, 40000, 48000, 56000, 64000, 80000, 96000, 112000,
		128000, 160000, 192000, 224000, 256000, 320000,
	}
	// Layer II and III share one table below Version1.
	bitratesV2 = [14]int{
		8000, 16000, 24000, 32000, 40000, 48000, 56000, 64000,
		80000, 96000, 112000, 128000, 144000, 160000,
	}

	mimeTypes = [4]string{
		layerI:   MIMETypeLayerI,
		layerII:  MIMETypeLayerII,
		layerIII: MIMETypeLayerIII,
	}

	samplesPerFrame = [4][4]int{
		Version1: {
			layerI:   384,
			layerII:  1152,
			layerIII: 1152,
		},
		Version2: {
			layerI:   384,
			layerII:  1152,
			layerIII: 576,
		},
		Version2_5: {
			layerI:   384,
			layerII:  1152,
			layerIII: 576,
		},
	}
)

// splitHeader validates header and extracts its bitfields. The checks run in
// a fixed order (sync, version, layer, bitrate index, sampling-rate index) so
// that every entry point rejects equivalent inputs identically.
func splitHeader(header uint32) (version, layer, bitrateIndex, samplingRateIndex int, ok bool) {
	if header&syncMask != syncMask {
		return
	}
	version = int(header>>19) & 0x3
	if version == versionReserved {
		return
	}
	layer = int(header>>17) & 0x3
	if layer == layerReserved {
		return
	}
	bitrateIndex = int(header>>12) & 0xF
	if bitrateIndex == 0 || bitrateIndex == 0xF {
		// Disallow "free" bitrate.
		return
	}
	samplingRateIndex = int(header>>10) & 0x3
	if samplingRateIndex == 3 {
		return
	}
	ok = true
	return
}

func decodeSampleRate(version, samplingRateIndex int) int {
	rate := sampleRatesV1[samplingRateIndex]
	switch version {
	case Version2:
		rate /= 2
	case Version2_5:
		rate /= 4
	}
	return rate
}

func decodeBitrate(version, layer, bitrateIndex int) int {
	i := bitrateIndex - 1
	if layer == layerI {
		if version == Version1 {
			return bitratesV1LI[i]
		}
		return bitratesV2LI[i]
	}
	if version == Version1 {
		if layer == layerII {
			return bitratesV1LII[i]
		}
		return bitratesV1LIII[i]
	}
	return bitratesV2[i]
}

func frameSize(version, layer, bitrate, sampleRate, padding int) int {
	if layer == layerI {
		return (12*bitrate/sampleRate + padding) * 4
	}
	if version != Version1 && layer == layerIII {
		// Layer III halves the per-frame multiplier at reduced sample
		// rates.
		return 72*bitrate/sampleRate + padding
	}
	return 144*bitrate/sampleRate + padding
}

// FrameSize returns the size in bytes of the frame described by header,
// including the 4 header bytes. The second return is false if header is not a
// valid MPEG audio frame header.
func FrameSize(header uint32) (int, bool) {
	version, layer, bitrateIndex, samplingRateIndex, ok := splitHeader(header)
	if !ok {
		return 0, false
	}
	var (
		sampleRate = decodeSampleRate(version, samplingRateIndex)
		bitrate    = decodeBitrate(version, layer, bitrateIndex)
		padding    = int(header>>9) & 0x1
	)
	return frameSize(version, layer, bitrate, sampleRate, padding), true
}

// FrameSampleCount returns the number of samples stored in the frame
// described by header. The second return is false if header is not a valid
// MPEG audio frame header.
func FrameSampleCount(header uint32) (int, bool) {
	version, layer, _, _, ok := splitHeader(header)
	if !ok {
		return 0, false
	}
	return samplesPerFrame[version][layer], true
}

// PopulateHeader decodes header into h and reports whether it succeeded. On
// success every field of h is overwritten; on failure h is left untouched.
//
// h is caller-owned and may be reused across any number of calls, which keeps
// a scanning loop allocation-free.
func PopulateHeader(header uint32, h *Header) bool {
	version, layer, bitrateIndex, samplingRateIndex, ok := splitHeader(header)
	if !ok {
		return false
	}

	var (
		sampleRate = decodeSampleRate(version, samplingRateIndex)
		bitrate    = decodeBitrate(version, layer, bitrateIndex)
		padding    = int(header>>9) & 0x1
	)

	h.Version = version
	h.MIMEType = mimeTypes[layer]
	h.FrameSize = frameSize(version, layer, bitrate, sampleRate, padding)
	h.SampleRate = sampleRate
	if int(header>>6)&0x3 == channelMono {
		h.Channels = 1
	} else {
		h.Channels = 2
	}
	h.Bitrate = bitrate
	h.SamplesPerFrame = samplesPerFrame[version][layer]
	return true
}
