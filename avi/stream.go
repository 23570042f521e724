package avi

import (
	"fmt"

	"github.com/rifftree/avireader/riff"
)

// StreamListItem is one decoded strl: its header and format descriptor,
// plus the optional strd/strn raw payloads (including their trailing
// padding byte, verbatim).
type StreamListItem struct {
	Index  int
	Strh   StreamHeader
	Strf   StreamFormat
	Strd   []byte // nil if absent
	HasStrd bool
	Strn   []byte // nil if absent
	HasStrn bool
}

// StreamChunk locates one media record inside movi: either a top-level
// child (RecIndex < 0) or an entry inside record list RecIndex.
// ChunkIndex is its ordinal within whichever container holds it.
type StreamChunk struct {
	RecIndex    int // -1 means top-level movi child
	ChunkIndex  int
	StreamIndex int
	Chunk       riff.ChunkHeader
}

// InRecordList reports whether the chunk belongs to a rec list rather
// than sitting directly under movi.
func (c StreamChunk) InRecordList() bool {
	return c.RecIndex >= 0
}

// Stream is one strl's descriptor together with the chronological list
// of its media chunks, gathered while indexing movi.
type Stream struct {
	Index  int
	Format StreamFormat
	Item   StreamListItem
	Chunks []StreamChunk
}

func (s Stream) String() string {
	switch s.Format.Kind {
	case StreamFormatVideo:
		v := s.Format.Video
		return fmt.Sprintf("stream #%d video(%dx%d), %d chunks", s.Index, v.Width, v.Height, len(s.Chunks))
	case StreamFormatAudio:
		a := s.Format.Audio
		return fmt.Sprintf("stream #%d audio(%d Hz, %d ch), %d chunks", s.Index, a.SamplesPerSec, a.Channels, len(s.Chunks))
	default:
		return fmt.Sprintf("stream #%d, %d chunks", s.Index, len(s.Chunks))
	}
}

// RecordList is one rec list under movi: its own RIFF header plus the
// flat list of chunk headers it directly contains.
type RecordList struct {
	Header   riff.ListHeader
	Children []riff.ChunkHeader
}
