package avi

import "github.com/rifftree/avireader/riff"

// MainHeader is the decoded avih chunk: 56 bytes, little-endian
// throughout, with four reserved words that must be zero.
type MainHeader struct {
	MicroSecPerFrame    uint32
	MaxBytesPerSec      uint32
	PaddingGranularity  uint32
	Flags               uint32
	TotalFrames         uint32
	InitialFrames       uint32
	Streams             uint32
	SuggestedBufferSize uint32
	Width               int32
	Height              int32
}

// decodeMainHeader decodes a 56-byte avih payload, validating that the
// four reserved trailing words are zero.
func decodeMainHeader(buf []byte) (MainHeader, error) {
	if len(buf) != mainHeaderSize {
		return MainHeader{}, ErrInvalidMainHeader
	}
	h := MainHeader{
		MicroSecPerFrame:    riff.ReadU32LE(buf, 0),
		MaxBytesPerSec:      riff.ReadU32LE(buf, 4),
		PaddingGranularity:  riff.ReadU32LE(buf, 8),
		Flags:               riff.ReadU32LE(buf, 12),
		TotalFrames:         riff.ReadU32LE(buf, 16),
		InitialFrames:       riff.ReadU32LE(buf, 20),
		Streams:             riff.ReadU32LE(buf, 24),
		SuggestedBufferSize: riff.ReadU32LE(buf, 28),
		Width:               riff.ReadI32LE(buf, 32),
		Height:              riff.ReadI32LE(buf, 36),
	}
	for _, off := range [4]int{40, 44, 48, 52} {
		if riff.ReadU32LE(buf, off) != 0 {
			return MainHeader{}, ErrInvalidMainHeader
		}
	}
	return h, nil
}

// Rect is a stream header's bounding rectangle, signed 16-bit fields.
type Rect struct {
	Left, Top, Right, Bottom int16
}

// StreamHeader is the decoded strh chunk: 56 bytes. FccType and
// FccHandler are four-character codes (big-endian); every other field
// is little-endian.
type StreamHeader struct {
	FccType             riff.FourCC
	FccHandler          riff.FourCC
	Flags               uint32
	Priority            uint16
	Language            uint16
	InitialFrames       uint32
	Scale               uint32
	Rate                uint32
	Start               uint32
	Length              uint32
	SuggestedBufferSize uint32
	Quality             uint32
	SampleSize          uint32
	Frame               Rect
}

func decodeStreamHeader(buf []byte) (StreamHeader, error) {
	if len(buf) != streamHeaderSize {
		return StreamHeader{}, ErrInvalidStreamHeader
	}
	return StreamHeader{
		FccType:             riff.FourCCFromBytes([4]byte(buf[0:4])),
		FccHandler:          riff.FourCCFromBytes([4]byte(buf[4:8])),
		Flags:               riff.ReadU32LE(buf, 8),
		Priority:            riff.ReadU16LE(buf, 12),
		Language:            riff.ReadU16LE(buf, 14),
		InitialFrames:       riff.ReadU32LE(buf, 16),
		Scale:               riff.ReadU32LE(buf, 20),
		Rate:                riff.ReadU32LE(buf, 24),
		Start:               riff.ReadU32LE(buf, 28),
		Length:              riff.ReadU32LE(buf, 32),
		SuggestedBufferSize: riff.ReadU32LE(buf, 36),
		Quality:             riff.ReadU32LE(buf, 40),
		SampleSize:          riff.ReadU32LE(buf, 44),
		Frame: Rect{
			Left:   riff.ReadI16LE(buf, 48),
			Top:    riff.ReadI16LE(buf, 50),
			Right:  riff.ReadI16LE(buf, 52),
			Bottom: riff.ReadI16LE(buf, 54),
		},
	}, nil
}
