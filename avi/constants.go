package avi

import "github.com/rifftree/avireader/riff"

// RIFF/AVI four-character-code constants. All are compared against
// tags decoded big-endian by the riff package, per the on-disk FourCC
// convention.
var (
	fccAVI  = riff.FourCCFromString("AVI ")
	fccHdrl = riff.FourCCFromString("hdrl")
	fccAvih = riff.FourCCFromString("avih")
	fccStrl = riff.FourCCFromString("strl")
	fccStrh = riff.FourCCFromString("strh")
	fccStrf = riff.FourCCFromString("strf")
	fccStrd = riff.FourCCFromString("strd")
	fccStrn = riff.FourCCFromString("strn")
	fccMovi = riff.FourCCFromString("movi")
	fccIdx1 = riff.FourCCFromString("idx1")
	fccRec  = riff.FourCCFromString("rec ")

	fccVids = riff.FourCCFromString("vids")
	fccAuds = riff.FourCCFromString("auds")
	fccMids = riff.FourCCFromString("mids")
	fccTxts = riff.FourCCFromString("txts")
)

const (
	// MaxStreams bounds the number of strl lists a hdrl may contain.
	MaxStreams = 100

	mainHeaderSize   = 56
	streamHeaderSize = 56
	bitmapInfoSize   = 40
	waveInfoSize     = 16
	guidSize         = 16
	waveExtBaseSize  = 2 + 4 // sample info word + channel mask, before the GUID

	// WaveFormatPCM and WaveFormatExtensible are the format_tag values
	// that select, respectively, the minimal and the extended waveform
	// descriptor layout.
	WaveFormatPCM        = 0x0001
	WaveFormatExtensible = 0xFFFE
)
