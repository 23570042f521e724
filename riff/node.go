package riff

import "fmt"

// ChunkHeader describes a leaf RIFF record: an id, a declared payload
// size, and the absolute offset of its payload in the byte source.
type ChunkHeader struct {
	ID       FourCC
	DataSize uint32
	DataPos  uint64
}

// Padding is 1 when DataSize is odd (chunks are padded to an even
// length on disk), 0 otherwise. The pad byte is not counted in DataSize.
func (c ChunkHeader) Padding() uint32 {
	return c.DataSize & 1
}

// ListHeader describes a RIFF container record: a list type, the
// on-disk size including the 4-byte list type, and the absolute offset
// of its first child.
type ListHeader struct {
	ListType FourCC
	ListSize uint32
	DataPos  uint64
}

// DataSize is the payload size available to children, i.e. ListSize
// minus the 4 bytes occupied by ListType itself.
func (l ListHeader) DataSize() uint32 {
	return l.ListSize - 4
}

// Kind discriminates a Node's two cases.
type Kind int

const (
	KindChunk Kind = iota
	KindList
)

// Node is a tagged variant over the two RIFF record shapes: a leaf
// Chunk, or a List with its own children. A single struct carrying both
// header variants avoids a heap-allocated interface per node and makes
// AsChunk/AsList total rather than runtime type assertions.
type Node struct {
	Kind     Kind
	Chunk    ChunkHeader // valid when Kind == KindChunk
	List     ListHeader  // valid when Kind == KindList
	Children []Node      // non-empty only when Kind == KindList
}

// ID returns the chunk's id, or the list's list_type (never the
// literal "LIST" tag) for a list node.
func (n Node) ID() FourCC {
	if n.Kind == KindList {
		return n.List.ListType
	}
	return n.Chunk.ID
}

// DataPos returns the absolute offset of the node's payload.
func (n Node) DataPos() uint64 {
	if n.Kind == KindList {
		return n.List.DataPos
	}
	return n.Chunk.DataPos
}

// DataSize returns the payload size available to the node (its own
// data for a chunk, the space available to children for a list).
func (n Node) DataSize() uint32 {
	if n.Kind == KindList {
		return n.List.DataSize()
	}
	return n.Chunk.DataSize
}

// Padding returns the trailing pad byte count: always 0 for a list,
// 0 or 1 for a chunk depending on parity.
func (n Node) Padding() uint32 {
	if n.Kind == KindList {
		return 0
	}
	return n.Chunk.Padding()
}

// AsChunk returns the node's ChunkHeader, or ErrInvalidChunkCast if the
// node is a list.
func (n Node) AsChunk() (ChunkHeader, error) {
	if n.Kind != KindChunk {
		return ChunkHeader{}, ErrInvalidChunkCast
	}
	return n.Chunk, nil
}

// AsList returns the node's ListHeader and children, or
// ErrInvalidListCast if the node is a chunk.
func (n Node) AsList() (ListHeader, []Node, error) {
	if n.Kind != KindList {
		return ListHeader{}, nil, ErrInvalidListCast
	}
	return n.List, n.Children, nil
}

// Header is the top-level RIFF header: the on-disk size field as stored
// (it counts the 4 bytes of FileType, so the children occupy FileSize-4
// bytes) and the file type tag (e.g. "AVI ", "WAVE").
type Header struct {
	FileSize uint32
	FileType FourCC
}

// Tree is a fully parsed RIFF container: its top header plus the
// top-level children (the payload of the RIFF chunk).
type Tree struct {
	Header   Header
	Children []Node
}

func (c ChunkHeader) String() string {
	return fmt.Sprintf("chunk(%s, size=%d, pos=%d)", c.ID, c.DataSize, c.DataPos)
}

func (l ListHeader) String() string {
	return fmt.Sprintf("list(%s, size=%d, pos=%d)", l.ListType, l.ListSize, l.DataPos)
}

func (n Node) String() string {
	if n.Kind == KindList {
		return fmt.Sprintf("%s [%d children]", n.List, len(n.Children))
	}
	return n.Chunk.String()
}
