// Package png assembles chunk frames into a whole PNG stream: the fixed
// 8-byte signature followed by an ordered chunk sequence. It is the lookup
// layer the facade consults by chunk type; pixel data is opaque to it.
package png

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/anirudhraja/pnglite/wire"
)

// Signature is the fixed 8-byte prefix of every PNG stream.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// iendType tags the image trailer, which must stay the last chunk.
const iendType = "IEND"

var (
	// ErrBadSignature reports a stream that does not start with Signature.
	ErrBadSignature = errors.New("missing or corrupt signature")
	// ErrChunkNotFound reports a lookup or removal for an absent chunk type.
	ErrChunkNotFound = errors.New("chunk not found")
)

// PNG is an ordered chunk sequence behind the PNG signature.
type PNG struct {
	chunks []*wire.Chunk
}

// FromChunks builds a PNG from chunks, kept in the given order.
func FromChunks(chunks []*wire.Chunk) *PNG {
	return &PNG{chunks: append([]*wire.Chunk(nil), chunks...)}
}

// Parse decodes a full PNG byte stream: signature check, then chunk frames
// until the buffer is exhausted. Any malformed frame aborts the parse with
// the codec's error, wrapped with the chunk index.
func Parse(data []byte) (*PNG, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, fmt.Errorf("png: %w", ErrBadSignature)
	}

	d := wire.NewDecoder(data[len(Signature):])
	var chunks []*wire.Chunk
	for d.Remaining() > 0 {
		chunk, err := d.DecodeChunk()
		if err != nil {
			return nil, fmt.Errorf("png: chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, chunk)
	}
	return &PNG{chunks: chunks}, nil
}

// Chunks returns the chunk sequence in stream order.
func (p *PNG) Chunks() []*wire.Chunk {
	return p.chunks
}

// ChunkByType returns the first chunk whose tag renders as tag, or nil.
func (p *PNG) ChunkByType(tag string) *wire.Chunk {
	for _, c := range p.chunks {
		if typeText(c) == tag {
			return c
		}
	}
	return nil
}

// AppendChunk adds a chunk to the sequence. When the stream already ends
// with an IEND trailer the chunk goes in front of it, so the trailer stays
// last.
func (p *PNG) AppendChunk(c *wire.Chunk) {
	n := len(p.chunks)
	if n > 0 && typeText(p.chunks[n-1]) == iendType {
		last := p.chunks[n-1]
		p.chunks = append(p.chunks[:n-1], c, last)
		return
	}
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk whose tag renders as
// tag. It fails with ErrChunkNotFound when no chunk matches.
func (p *PNG) RemoveFirstChunk(tag string) (*wire.Chunk, error) {
	for i, c := range p.chunks {
		if typeText(c) == tag {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("png: no %q chunk: %w", tag, ErrChunkNotFound)
}

// Bytes serializes the stream: signature, then every chunk's wire frame.
func (p *PNG) Bytes() []byte {
	e := wire.NewEncoder()
	for _, c := range p.chunks {
		e.EncodeChunk(c)
	}
	out := make([]byte, 0, len(Signature)+len(e.Bytes()))
	out = append(out, Signature[:]...)
	return append(out, e.Bytes()...)
}

// typeText renders a chunk's tag, or "" for a tag that is not text. Chunks
// that came through Parse always render, since the decoder rejects
// non-alphabetic tag bytes.
func typeText(c *wire.Chunk) string {
	text, err := c.ChunkType().Text()
	if err != nil {
		return ""
	}
	return text
}
