package avi

import (
	"bytes"
	"testing"

	"github.com/rifftree/avireader/riff"
)

func fourCCOf(s string) riff.FourCC {
	return riff.FourCCFromString(s)
}

// buildMinimalAVI assembles a one-stream audio AVI with no record
// lists: RIFF/AVI -> hdrl(avih, strl(strh,strf)) + movi(00wb, 00wb).
func buildMinimalAVI(t *testing.T) *FixtureBuilder {
	t.Helper()
	b := NewFixtureBuilder()

	riffOff := b.BeginRIFF("AVI ")

	hdrlOff := b.BeginList("hdrl")
	b.WriteChunk("avih", make([]byte, mainHeaderSize))

	strlOff := b.BeginList("strl")
	b.WriteChunk("strh", buildStreamHeaderBytes("auds"))
	b.WriteChunk("strf", buildPCMWaveInfoBytes())
	b.EndList(strlOff)

	b.EndList(hdrlOff)

	moviOff := b.BeginList("movi")
	b.WriteChunk("00wb", []byte{0xAA, 0xBB})
	b.WriteChunk("00wb", []byte{0xCC, 0xDD, 0xEE})
	b.EndList(moviOff)

	b.EndRIFF(riffOff)

	return b
}

func buildStreamHeaderBytes(fccType string) []byte {
	buf := make([]byte, streamHeaderSize)
	copy(buf[0:4], fccType)
	copy(buf[4:8], "    ")
	return buf
}

func buildPCMWaveInfoBytes() []byte {
	buf := make([]byte, waveInfoSize)
	buf[0], buf[1] = 0x01, 0x00 // WAVE_FORMAT_PCM
	buf[2], buf[3] = 0x01, 0x00 // 1 channel
	return buf
}

func TestReadHeaderMinimalAudioStream(t *testing.T) {
	b := buildMinimalAVI(t)
	r, err := ReadHeader(b.Source())
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}

	streams := r.Streams()
	if len(streams) != 1 {
		t.Fatalf("len(Streams()) = %d, want 1", len(streams))
	}
	if streams[0].Format.Kind != StreamFormatAudio {
		t.Fatalf("Format.Kind = %v, want StreamFormatAudio", streams[0].Format.Kind)
	}
	if len(streams[0].Chunks) != 2 {
		t.Fatalf("len(Chunks) = %d, want 2", len(streams[0].Chunks))
	}
	for i, c := range streams[0].Chunks {
		if c.InRecordList() {
			t.Errorf("chunk %d: InRecordList() = true, want false", i)
		}
		if c.ChunkIndex != i {
			t.Errorf("chunk %d: ChunkIndex = %d, want %d", i, c.ChunkIndex, i)
		}
	}
}

func TestReadHeaderRejectsNonAVIFileType(t *testing.T) {
	b := NewFixtureBuilder()
	riffOff := b.BeginRIFF("WAVE")
	b.WriteChunk("fmt ", make([]byte, 16))
	b.EndRIFF(riffOff)

	_, err := ReadHeader(b.Source())
	if err == nil {
		t.Fatal("expected ErrInvalidRiffFileType, got nil")
	}
}

func TestReadStandaloneChunkRejectsRecordListMembers(t *testing.T) {
	c := StreamChunk{RecIndex: 0}
	err := (&Reader{}).ReadStandaloneChunk(c, make([]byte, 4))
	if err == nil {
		t.Fatal("expected ErrChunkInRecordList, got nil")
	}
}

func TestParseStreamIndex(t *testing.T) {
	cases := []struct {
		id      string
		want    int
		wantErr bool
	}{
		{"19wb", 19, false},
		{"00dc", 0, false},
		{"Xxwb", 0, true},
	}
	for _, c := range cases {
		idx, err := parseStreamIndex(fourCCOf(c.id))
		if c.wantErr {
			if err == nil {
				t.Errorf("parseStreamIndex(%q): expected error, got nil", c.id)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseStreamIndex(%q): unexpected error: %v", c.id, err)
		}
		if idx != c.want {
			t.Errorf("parseStreamIndex(%q) = %d, want %d", c.id, idx, c.want)
		}
	}
}

func TestReadHeaderWithRecordList(t *testing.T) {
	b := NewFixtureBuilder()
	riffOff := b.BeginRIFF("AVI ")

	hdrlOff := b.BeginList("hdrl")
	b.WriteChunk("avih", make([]byte, mainHeaderSize))
	strl0 := b.BeginList("strl")
	b.WriteChunk("strh", buildStreamHeaderBytes("auds"))
	b.WriteChunk("strf", buildPCMWaveInfoBytes())
	b.EndList(strl0)
	strl1 := b.BeginList("strl")
	b.WriteChunk("strh", buildStreamHeaderBytes("vids"))
	b.WriteChunk("strf", make([]byte, bitmapInfoSize))
	b.EndList(strl1)
	b.EndList(hdrlOff)

	moviOff := b.BeginList("movi")
	recOff := b.BeginList("rec ")
	b.WriteChunk("01dc", []byte{1, 2, 3, 4})
	b.WriteChunk("00wb", []byte{5, 6})
	b.EndList(recOff)
	b.EndList(moviOff)

	b.EndRIFF(riffOff)

	r, err := ReadHeader(b.Source())
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	streams := r.Streams()
	if len(streams) != 2 {
		t.Fatalf("len(Streams()) = %d, want 2", len(streams))
	}
	if len(streams[0].Chunks) != 1 || len(streams[1].Chunks) != 1 {
		t.Fatalf("unexpected chunk distribution: stream0=%d stream1=%d",
			len(streams[0].Chunks), len(streams[1].Chunks))
	}
	if !streams[0].Chunks[0].InRecordList() || streams[0].Chunks[0].RecIndex != 0 {
		t.Errorf("stream 0 chunk: InRecordList/RecIndex = %v/%d, want true/0",
			streams[0].Chunks[0].InRecordList(), streams[0].Chunks[0].RecIndex)
	}

	// 2 chunk headers (8 bytes each) + the 4-byte and 2-byte payloads,
	// the full on-disk span ReadRecordList reads starting at the rec
	// list's DataPos.
	buf := make([]byte, 8+4+8+2)
	slices, err := r.ReadRecordList(0, buf)
	if err != nil {
		t.Fatalf("ReadRecordList: %v", err)
	}
	if !bytes.Equal(slices[0], []byte{1, 2, 3, 4}) {
		t.Errorf("slices[0] = %v, want [1 2 3 4]", slices[0])
	}
	if !bytes.Equal(slices[1], []byte{5, 6}) {
		t.Errorf("slices[1] = %v, want [5 6]", slices[1])
	}
}
