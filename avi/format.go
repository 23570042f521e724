package avi

import "github.com/rifftree/avireader/riff"

// BitmapInfo is the decoded strf payload for a vids stream: 40 bytes,
// little-endian, matching BITMAPINFOHEADER.
type BitmapInfo struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

func decodeBitmapInfo(buf []byte) (BitmapInfo, error) {
	if len(buf) != bitmapInfoSize {
		return BitmapInfo{}, ErrInvalidStreamFormatHeader
	}
	return BitmapInfo{
		Size:          riff.ReadU32LE(buf, 0),
		Width:         riff.ReadI32LE(buf, 4),
		Height:        riff.ReadI32LE(buf, 8),
		Planes:        riff.ReadU16LE(buf, 12),
		BitCount:      riff.ReadU16LE(buf, 14),
		Compression:   riff.ReadU32LE(buf, 16),
		SizeImage:     riff.ReadU32LE(buf, 20),
		XPelsPerMeter: riff.ReadI32LE(buf, 24),
		YPelsPerMeter: riff.ReadI32LE(buf, 28),
		ClrUsed:       riff.ReadU32LE(buf, 32),
		ClrImportant:  riff.ReadU32LE(buf, 36),
	}, nil
}

// GUID is the 16-byte sub-format identifier trailing an extensible
// waveform descriptor: data1/data2/data3 decoded as integers, data4
// kept as the raw trailing 8 bytes (it is never interpreted, only
// compared or displayed).
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func decodeGUID(buf []byte) GUID {
	var g GUID
	g.Data1 = riff.ReadU32LE(buf, 0)
	g.Data2 = riff.ReadU16LE(buf, 4)
	g.Data3 = riff.ReadU16LE(buf, 6)
	copy(g.Data4[:], buf[8:16])
	return g
}

// WaveInfo is the minimal 16-byte waveform descriptor common to every
// auds stream (WAVEFORMATEX without the trailing cbSize/extra data).
type WaveInfo struct {
	FormatTag      uint16
	Channels       uint16
	SamplesPerSec  uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

func decodeWaveInfo(buf []byte) WaveInfo {
	return WaveInfo{
		FormatTag:      riff.ReadU16LE(buf, 0),
		Channels:       riff.ReadU16LE(buf, 2),
		SamplesPerSec:  riff.ReadU32LE(buf, 4),
		AvgBytesPerSec: riff.ReadU32LE(buf, 8),
		BlockAlign:     riff.ReadU16LE(buf, 12),
		BitsPerSample:  riff.ReadU16LE(buf, 14),
	}
}

// WaveInfoExt is WaveInfo plus, for WAVE_FORMAT_EXTENSIBLE streams, the
// trailing extension block. SampleInfo is left uninterpreted: its
// meaning (valid bits per sample, samples per block, or reserved)
// depends on SubFormat, which is the caller's business, not this
// module's.
type WaveInfoExt struct {
	WaveInfo
	HasCbSize    bool
	CbSize       uint16
	HasExtension bool
	SampleInfo   uint16
	ChannelMask  uint32
	SubFormat    GUID
}

// decodeWaveInfoExt decodes a strf payload for an auds stream. The base
// WAVEFORMATEX fields occupy the full 16 bytes of WaveInfo (BitsPerSample
// sits at offset 14), so buf must be at least waveInfoSize bytes; a
// declared strf size below that can't be decoded without reading past
// buf and is rejected here, even though on-disk AVI files in the wild
// sometimes trim the final BitsPerSample field for PCM. The cbSize
// field and the extension block are read only when FormatTag calls for
// them, per WAVE_FORMAT_PCM / WAVE_FORMAT_EXTENSIBLE.
func decodeWaveInfoExt(buf []byte) (WaveInfoExt, error) {
	if len(buf) < waveInfoSize {
		return WaveInfoExt{}, ErrInvalidStreamFormatHeader
	}
	w := WaveInfoExt{WaveInfo: decodeWaveInfo(buf)}

	if w.FormatTag == WaveFormatPCM {
		return w, nil
	}

	if len(buf) < waveInfoSize+2 {
		return WaveInfoExt{}, ErrInvalidStreamFormatHeader
	}
	w.HasCbSize = true
	w.CbSize = riff.ReadU16LE(buf, waveInfoSize)

	if w.FormatTag != WaveFormatExtensible {
		return w, nil
	}

	const extOffset = waveInfoSize + 2 // past the 16-byte base struct and its cbSize
	if len(buf) < extOffset+waveExtBaseSize+guidSize {
		return WaveInfoExt{}, ErrInvalidStreamFormatHeader
	}
	w.HasExtension = true
	w.SampleInfo = riff.ReadU16LE(buf, extOffset)
	w.ChannelMask = riff.ReadU32LE(buf, extOffset+2)
	w.SubFormat = decodeGUID(buf[extOffset+waveExtBaseSize:])
	return w, nil
}

// StreamFormatKind discriminates StreamFormat's two cases.
type StreamFormatKind int

const (
	StreamFormatVideo StreamFormatKind = iota
	StreamFormatAudio
)

// StreamFormat is the decoded strf payload, tagged by the owning
// stream's fcc_type.
type StreamFormat struct {
	Kind  StreamFormatKind
	Video BitmapInfo  // valid when Kind == StreamFormatVideo
	Audio WaveInfoExt // valid when Kind == StreamFormatAudio
}
