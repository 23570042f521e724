package riff

import (
	"context"

	"github.com/pkg/errors"
)

const (
	listTag = "LIST"
	riffTag = "RIFF"
)

// ReadTree parses src as a single RIFF container, blocking on each read.
// It is equivalent to ReadTreeContext(context.Background(), src, nil)
// and exists so callers with no use for cancellation or cooperative
// yielding don't need to import context at all.
func ReadTree(src Source) (Tree, error) {
	return ReadTreeContext(context.Background(), src, nil)
}

// ReadTreeContext parses src as a single RIFF container. If sched is
// non-nil, it is asked to Yield before every read the walk issues,
// giving a cooperative scheduler a chance to suspend the call between
// I/O operations; the parsed result is identical either way, since both
// paths share the walker below and differ only in whether Yield does
// anything.
func ReadTreeContext(ctx context.Context, src Source, sched Scheduler) (Tree, error) {
	w := &walker{ctx: ctx, src: src, sched: sched, length: src.Len()}

	var hdr [12]byte
	if err := w.readAt(hdr[:], 0); err != nil {
		return Tree{}, errors.Wrap(err, "read RIFF header")
	}
	tag := FourCCFromBytes([4]byte(hdr[0:4]))
	fileSize := ReadU32LE(hdr[:], 4)
	fileType := FourCCFromBytes([4]byte(hdr[8:12]))

	if tag != FourCCFromString(riffTag) || fileSize < 4 {
		return Tree{}, errors.Wrap(ErrInvalidRiffHeader, "read RIFF header")
	}
	if uint64(fileSize)+8 > uint64(w.length) {
		return Tree{}, errors.Wrap(ErrInvalidRiffHeader, "read RIFF header")
	}

	children, err := w.readChildren(ctx, 12, uint64(fileSize)-4)
	if err != nil {
		return Tree{}, err
	}

	return Tree{
		Header: Header{
			FileSize: fileSize,
			FileType: fileType,
		},
		Children: children,
	}, nil
}

// walker holds the state shared across one recursive-descent parse.
// Both ReadTree and ReadTreeContext construct one and never expose it;
// it is not safe for concurrent use by design, since a single walk is
// inherently sequential (each read depends on the previous header).
type walker struct {
	ctx    context.Context
	src    Source
	sched  Scheduler
	length int64
}

func (w *walker) readAt(buf []byte, pos uint64) error {
	if w.sched != nil {
		if err := w.sched.Yield(w.ctx); err != nil {
			return err
		}
	}
	if err := w.ctx.Err(); err != nil {
		return err
	}
	_, err := w.src.ReadAt(buf, int64(pos))
	return err
}

// readChildren enumerates the records found in the region
// [regionStart, regionStart+regionSize), recursing into any LIST found.
// regionStart is the byte offset of the first child and stays fixed for
// the whole loop: each child's own bounds check is measured against the
// region's start, not its own offset, matching the reference
// implementation's algorithm.
func (w *walker) readChildren(ctx context.Context, regionStart uint64, regionSize uint64) ([]Node, error) {
	var nodes []Node
	pos := regionStart
	end := regionStart + regionSize

	for pos+8 <= end {
		var hdr [8]byte
		if err := w.readAt(hdr[:], pos); err != nil {
			return nil, errors.Wrap(err, "read chunk header")
		}
		id := FourCCFromBytes([4]byte(hdr[0:4]))
		size := ReadU32LE(hdr[:], 4)

		if id == FourCCFromString(listTag) {
			if regionStart+8+uint64(size) > uint64(w.length) {
				return nil, errors.Wrap(ErrInvalidListHeader, "read LIST header")
			}
			if size < 4 {
				return nil, errors.Wrap(ErrInvalidListHeader, "read LIST header")
			}
			var listType [4]byte
			if err := w.readAt(listType[:], pos+8); err != nil {
				return nil, errors.Wrap(err, "read LIST type")
			}
			lh := ListHeader{
				ListType: FourCCFromBytes(listType),
				ListSize: size,
				DataPos:  pos + 12,
			}
			children, err := w.readChildren(ctx, pos+12, uint64(size)-4)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Node{Kind: KindList, List: lh, Children: children})
			pos += 8 + uint64(size)
		} else {
			if regionStart+8+uint64(size) > uint64(w.length) {
				return nil, errors.Wrap(ErrInvalidChunkHeader, "read chunk header")
			}
			ch := ChunkHeader{ID: id, DataSize: size, DataPos: pos + 8}
			nodes = append(nodes, Node{Kind: KindChunk, Chunk: ch})
			pos += 8 + uint64(size) + uint64(size&1)
		}
	}

	return nodes, nil
}
