package riff

import "errors"

// Structural errors produced by the tree reader. Callers compare with
// errors.Is; op-level context is attached by the caller with
// github.com/pkg/errors.Wrap.
var (
	ErrInvalidRiffHeader  = errors.New("riff: invalid RIFF header")
	ErrInvalidListHeader  = errors.New("riff: invalid LIST header")
	ErrInvalidChunkHeader = errors.New("riff: invalid chunk header")
	ErrInvalidChunkCast   = errors.New("riff: node is not a chunk")
	ErrInvalidListCast    = errors.New("riff: node is not a list")
)
