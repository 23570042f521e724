package avi

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rifftree/avireader/riff"
)

// Header is the AVI-level envelope discovered at the top of the RIFF
// tree: the decoded main header plus the located hdrl/movi/idx1
// children (idx1 is located, never parsed, per the module's scope).
type Header struct {
	Main MainHeader
	Hdrl riff.ListHeader
	Movi riff.ListHeader
	Idx1 *riff.ChunkHeader // nil if absent
}

func (h Header) String() string {
	idx1 := "absent"
	if h.Idx1 != nil {
		idx1 = "present"
	}
	return fmt.Sprintf("avi header(%dx%d, %d frames, %d streams, idx1 %s)",
		h.Main.Width, h.Main.Height, h.Main.TotalFrames, h.Main.Streams, idx1)
}

// Reader owns a byte source together with everything read_header
// produces from it: the AVI header, every stream's descriptor and
// chunk catalog, and the record-list catalog. Descriptors are
// immutable once ReadHeader/ReadHeaderContext returns; later calls only
// seek and read.
type Reader struct {
	src     riff.Source
	header  Header
	streams []Stream
	records []RecordList
}

// Header returns the reader's decoded AVI header.
func (r *Reader) Header() Header { return r.header }

// RecordLists returns the record-list catalog built while indexing
// movi, in file order. ReadRecordList's recIndex argument indexes into
// this same catalog.
func (r *Reader) RecordLists() []RecordList { return r.records }

// Streams returns every stream's descriptor and chunk catalog, in
// strl order.
func (r *Reader) Streams() []Stream { return r.streams }

// ReadHeader parses src as an AVI file, blocking on every read. It is
// ReadHeaderContext(context.Background(), src, nil).
func ReadHeader(src riff.Source) (*Reader, error) {
	return ReadHeaderContext(context.Background(), src, nil)
}

// ReadHeaderContext parses src as an AVI file. If sched is non-nil, it
// is asked to Yield before every read, exactly as riff.ReadTreeContext
// does; a cancelled call leaves src's notion of position (if any)
// unspecified and the Reader must not be reused.
func ReadHeaderContext(ctx context.Context, src riff.Source, sched Scheduler) (*Reader, error) {
	tree, err := riffReadTreeContext(ctx, src, sched)
	if err != nil {
		return nil, &AVIError{Op: "read_header", Err: err}
	}
	if tree.Header.FileType != fccAVI {
		return nil, &AVIError{Op: "read_header", Err: ErrInvalidRiffFileType}
	}

	var hdrl, movi *riff.Node
	var idx1 *riff.ChunkHeader
	for i := range tree.Children {
		n := &tree.Children[i]
		switch {
		case n.Kind == riff.KindList && n.List.ListType == fccHdrl:
			if hdrl != nil {
				return nil, &AVIError{Op: "read_header", Err: ErrDuplicateHdrlList}
			}
			hdrl = n
		case n.Kind == riff.KindList && n.List.ListType == fccMovi:
			if movi != nil {
				return nil, &AVIError{Op: "read_header", Err: ErrDuplicateMoviList}
			}
			movi = n
		case n.Kind == riff.KindChunk && n.Chunk.ID == fccIdx1:
			if idx1 != nil {
				return nil, &AVIError{Op: "read_header", Err: ErrDuplicateIdx1Chunk}
			}
			c := n.Chunk
			idx1 = &c
		}
	}
	if hdrl == nil {
		return nil, &AVIError{Op: "read_header", Err: ErrHdrlNotFound}
	}
	if movi == nil {
		return nil, &AVIError{Op: "read_header", Err: ErrMoviNotFound}
	}

	io := &streamIO{ctx: ctx, sched: sched, src: src}

	main, items, err := parseHdrl(io, hdrl.List, hdrl.Children)
	if err != nil {
		return nil, &AVIError{Op: "read_header", Err: err}
	}

	streams := make([]Stream, len(items))
	for i, item := range items {
		streams[i] = Stream{Index: item.Index, Format: item.Strf, Item: item}
	}

	records, err := indexMovi(movi.Children, streams)
	if err != nil {
		return nil, &AVIError{Op: "read_header", Err: err}
	}

	return &Reader{
		src: src,
		header: Header{
			Main: main,
			Hdrl: hdrl.List,
			Movi: movi.List,
			Idx1: idx1,
		},
		streams: streams,
		records: records,
	}, nil
}

// parseHdrl decodes child 0 (avih) and children 1..N (strl lists) of
// the hdrl list, per the fixed avih-then-strl* layout.
func parseHdrl(io *streamIO, hdrl riff.ListHeader, children []riff.Node) (MainHeader, []StreamListItem, error) {
	if len(children) == 0 || len(children) > MaxStreams+1 {
		return MainHeader{}, nil, ErrInvalidHdrlList
	}

	avihNode := children[0]
	avihHdr, err := avihNode.AsChunk()
	if err != nil || avihHdr.ID != fccAvih {
		return MainHeader{}, nil, ErrInvalidHdrlList
	}
	if avihHdr.DataSize != mainHeaderSize {
		return MainHeader{}, nil, ErrInvalidMainHeader
	}
	buf := make([]byte, mainHeaderSize)
	if err := io.readAt(buf, avihHdr.DataPos); err != nil {
		return MainHeader{}, nil, err
	}
	main, err := decodeMainHeader(buf)
	if err != nil {
		return MainHeader{}, nil, err
	}

	items := make([]StreamListItem, 0, len(children)-1)
	for i, child := range children[1:] {
		listHdr, grandchildren, err := child.AsList()
		if err != nil || listHdr.ListType != fccStrl {
			return MainHeader{}, nil, ErrInvalidHdrlList
		}
		item, err := parseStrl(io, i, grandchildren)
		if err != nil {
			return MainHeader{}, nil, err
		}
		items = append(items, item)
	}

	return main, items, nil
}

// parseStrl decodes one strl list's children: strh, strf, and the
// optional strd/strn pair in canonical order.
func parseStrl(io *streamIO, index int, children []riff.Node) (StreamListItem, error) {
	if len(children) < 2 || len(children) > 4 {
		return StreamListItem{}, ErrInvalidStreamList
	}

	strhHdr, err := children[0].AsChunk()
	if err != nil || strhHdr.ID != fccStrh {
		return StreamListItem{}, ErrInvalidStreamList
	}
	if strhHdr.DataSize != streamHeaderSize {
		return StreamListItem{}, ErrInvalidStreamHeader
	}
	strhBuf := make([]byte, streamHeaderSize)
	if err := io.readAt(strhBuf, strhHdr.DataPos); err != nil {
		return StreamListItem{}, err
	}
	strh, err := decodeStreamHeader(strhBuf)
	if err != nil {
		return StreamListItem{}, err
	}

	strfHdr, err := children[1].AsChunk()
	if err != nil || strfHdr.ID != fccStrf {
		return StreamListItem{}, ErrInvalidStreamList
	}
	strfBuf := make([]byte, strfHdr.DataSize)
	if err := io.readAt(strfBuf, strfHdr.DataPos); err != nil {
		return StreamListItem{}, err
	}

	var format StreamFormat
	switch strh.FccType {
	case fccVids:
		bmp, err := decodeBitmapInfo(strfBuf)
		if err != nil {
			return StreamListItem{}, err
		}
		format = StreamFormat{Kind: StreamFormatVideo, Video: bmp}
	case fccAuds:
		wav, err := decodeWaveInfoExt(strfBuf)
		if err != nil {
			return StreamListItem{}, err
		}
		format = StreamFormat{Kind: StreamFormatAudio, Audio: wav}
	case fccMids, fccTxts:
		return StreamListItem{}, ErrUnsupportedStreamType
	default:
		return StreamListItem{}, ErrUnsupportedStreamType
	}

	item := StreamListItem{Index: index, Strh: strh, Strf: format}

	if len(children) == 2 {
		return item, nil
	}

	readRaw := func(n riff.Node) ([]byte, error) {
		ch, err := n.AsChunk()
		if err != nil {
			return nil, ErrInvalidStreamAdditionalData
		}
		total := int(ch.DataSize + ch.Padding())
		buf := make([]byte, total)
		if err := io.readAt(buf, ch.DataPos); err != nil {
			return nil, err
		}
		return buf, nil
	}

	thirdID := children[2].ID()
	switch thirdID {
	case fccStrd:
		data, err := readRaw(children[2])
		if err != nil {
			return StreamListItem{}, err
		}
		item.Strd, item.HasStrd = data, true
	case fccStrn:
		data, err := readRaw(children[2])
		if err != nil {
			return StreamListItem{}, err
		}
		item.Strn, item.HasStrn = data, true
	default:
		return StreamListItem{}, ErrInvalidStreamAdditionalData
	}

	if len(children) == 3 {
		return item, nil
	}

	// With both present, strd must come third and strn fourth.
	fourthID := children[3].ID()
	if thirdID != fccStrd || fourthID != fccStrn {
		return StreamListItem{}, ErrInvalidStreamAdditionalData
	}
	data, err := readRaw(children[3])
	if err != nil {
		return StreamListItem{}, err
	}
	item.Strn, item.HasStrn = data, true

	return item, nil
}

// ReadStandaloneChunk seeks to chunk's payload and reads exactly
// chunk.Chunk.DataSize bytes into buf. It rejects chunks that belong to
// a record list without touching the byte source.
func (r *Reader) ReadStandaloneChunk(chunk StreamChunk, buf []byte) error {
	if chunk.InRecordList() {
		return &AVIError{Op: "read_standalone_chunk", Err: ErrChunkInRecordList}
	}
	n := int(chunk.Chunk.DataSize)
	if _, err := r.src.ReadAt(buf[:n], int64(chunk.Chunk.DataPos)); err != nil {
		return errors.Wrap(err, "read_standalone_chunk")
	}
	return nil
}

// ReadRecordList reads len(buf) bytes starting at record list
// recIndex's first child into buf; the caller sizes buf to cover the
// list's full on-disk span (headers, payloads, and padding). It then
// returns, for each
// child chunk, a sub-slice of buf covering exactly that chunk's
// payload. The returned slices alias buf and are valid only as long as
// the caller retains it.
func (r *Reader) ReadRecordList(recIndex int, buf []byte) ([][]byte, error) {
	if recIndex < 0 || recIndex >= len(r.records) {
		return nil, &AVIError{Op: "read_record_list", Err: ErrInvalidRecordList}
	}
	rl := r.records[recIndex]
	if _, err := r.src.ReadAt(buf, int64(rl.Header.DataPos)); err != nil {
		return nil, errors.Wrap(err, "read_record_list")
	}

	slices := make([][]byte, len(rl.Children))
	for i, ch := range rl.Children {
		start := ch.DataPos - rl.Header.DataPos
		slices[i] = buf[start : start+uint64(ch.DataSize)]
	}
	return slices, nil
}
