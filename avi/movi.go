package avi

import "github.com/rifftree/avireader/riff"

// parseStreamIndex decodes the 2-ASCII-digit stream index embedded in
// a movi chunk's FourCC (e.g. "00wb" -> 0, "19dc" -> 19). It fails if
// either of the first two bytes isn't a decimal digit.
func parseStreamIndex(id riff.FourCC) (int, error) {
	b := id.Bytes()
	d0, d1 := b[0], b[1]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' {
		return 0, ErrInvalidMoviList
	}
	return int(d0-'0')*10 + int(d1-'0'), nil
}

// indexMovi walks the children of the movi list, classifying each as a
// standalone chunk or a rec record list, and appends a StreamChunk to
// the matching stream's Chunks for every leaf chunk encountered. It
// returns the record-list catalog in file order.
func indexMovi(children []riff.Node, streams []Stream) ([]RecordList, error) {
	var records []RecordList

	streamByIndex := func(i int) (*Stream, error) {
		if i < 0 || i >= len(streams) {
			return nil, ErrInvalidMoviList
		}
		return &streams[i], nil
	}

	for _, node := range children {
		switch node.Kind {
		case riff.KindChunk:
			si, err := parseStreamIndex(node.Chunk.ID)
			if err != nil {
				return nil, err
			}
			s, err := streamByIndex(si)
			if err != nil {
				return nil, err
			}
			s.Chunks = append(s.Chunks, StreamChunk{
				RecIndex:    -1,
				ChunkIndex:  len(s.Chunks),
				StreamIndex: si,
				Chunk:       node.Chunk,
			})

		case riff.KindList:
			if node.List.ListType != fccRec {
				return nil, ErrInvalidMoviList
			}
			recIndex := len(records)
			rl := RecordList{Header: node.List}
			for ord, child := range node.Children {
				if child.Kind != riff.KindChunk {
					return nil, ErrChunkInRecordList
				}
				rl.Children = append(rl.Children, child.Chunk)

				si, err := parseStreamIndex(child.Chunk.ID)
				if err != nil {
					return nil, err
				}
				s, err := streamByIndex(si)
				if err != nil {
					return nil, err
				}
				s.Chunks = append(s.Chunks, StreamChunk{
					RecIndex:    recIndex,
					ChunkIndex:  ord,
					StreamIndex: si,
					Chunk:       child.Chunk,
				})
			}
			records = append(records, rl)
		}
	}

	return records, nil
}
