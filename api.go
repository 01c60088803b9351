// Package pnglite hides, recovers, and removes byte payloads carried as
// extra chunks of a PNG stream, without touching the image data. All
// operations take and return in-memory byte slices; reading and writing
// files is the caller's business.
package pnglite

import (
	"fmt"

	"github.com/anirudhraja/pnglite/png"
	"github.com/anirudhraja/pnglite/wire"
)

// ChunkInfo describes one chunk of a stream for listing purposes.
type ChunkInfo struct {
	Type             string
	Length           uint32
	CRC              uint32
	Critical         bool
	Public           bool
	ReservedBitValid bool
	SafeToCopy       bool
}

// Embed hides message inside image under a chunk tagged tag, placed ahead
// of the IEND trailer when one exists. It returns the rewritten stream.
func Embed(image []byte, tag string, message []byte) ([]byte, error) {
	chunkType, err := wire.ChunkTypeFromString(tag)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	p, err := png.Parse(image)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	p.AppendChunk(wire.NewChunk(chunkType, message))
	return p.Bytes(), nil
}

// Extract returns the text payload of the first chunk tagged tag. A chunk
// holding non-text bytes fails with the codec's data-not-text error.
func Extract(image []byte, tag string) (string, error) {
	p, err := png.Parse(image)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	c := p.ChunkByType(tag)
	if c == nil {
		return "", fmt.Errorf("extract: no %q chunk: %w", tag, png.ErrChunkNotFound)
	}
	message, err := c.DataAsString()
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	return message, nil
}

// Remove deletes the first chunk tagged tag and returns the rewritten
// stream.
func Remove(image []byte, tag string) ([]byte, error) {
	p, err := png.Parse(image)
	if err != nil {
		return nil, fmt.Errorf("remove: %w", err)
	}
	if _, err := p.RemoveFirstChunk(tag); err != nil {
		return nil, fmt.Errorf("remove: %w", err)
	}
	return p.Bytes(), nil
}

// ListChunks reports every chunk of the stream in order, with the four
// case-bit properties of each tag.
func ListChunks(image []byte) ([]ChunkInfo, error) {
	p, err := png.Parse(image)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	infos := make([]ChunkInfo, 0, len(p.Chunks()))
	for _, c := range p.Chunks() {
		chunkType := c.ChunkType()
		text, err := chunkType.Text()
		if err != nil {
			return nil, fmt.Errorf("list chunks: %w", err)
		}
		infos = append(infos, ChunkInfo{
			Type:             text,
			Length:           c.Length(),
			CRC:              c.CRC(),
			Critical:         chunkType.IsCritical(),
			Public:           chunkType.IsPublic(),
			ReservedBitValid: chunkType.IsReservedBitValid(),
			SafeToCopy:       chunkType.IsSafeToCopy(),
		})
	}
	return infos, nil
}
