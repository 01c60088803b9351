// Package wire implements the chunk wire format: length-prefixed,
// type-tagged, CRC-checked byte records laid out big-endian as used by the
// PNG container. The codec is pure computation over in-memory buffers;
// decoded chunks copy their payload out of the caller's buffer, so callers
// keep ownership of what they pass in.
package wire

import (
	"hash/crc32"
	"unicode/utf8"
)

// chunkOverhead is the non-payload part of a chunk frame: 4-byte length,
// 4-byte type tag, 4-byte CRC.
const chunkOverhead = 12

// Chunk is one length-prefixed, type-tagged, CRC-checked record. Immutable
// once built; the length field of the frame is always derived from the
// payload, never stored where it could drift.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk from a type tag and payload. The payload is
// copied and the CRC is computed over the tag bytes followed by the
// payload. The tag is stored as given: an invalid tag is not rejected here,
// only the length and checksum invariants are enforced by construction.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	payload := make([]byte, len(data))
	copy(payload, data)
	return &Chunk{
		chunkType: chunkType,
		data:      payload,
		crc:       checksum(chunkType, payload),
	}
}

// Length returns the payload byte count, recomputed from the payload.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Data returns the raw payload bytes.
func (c *Chunk) Data() []byte {
	return c.data
}

// DataAsString interprets the payload as text. Binary payloads are normal
// for many chunk types; those fail with KindDataNotText and callers should
// use Data instead.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", newDataNotTextError()
	}
	return string(c.data), nil
}

// ChunkType returns the chunk's type tag.
func (c *Chunk) ChunkType() ChunkType {
	return c.chunkType
}

// CRC returns the stored checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Bytes serializes the chunk into its wire frame: big-endian length, the 4
// tag bytes, the payload, big-endian CRC.
func (c *Chunk) Bytes() []byte {
	e := NewEncoder()
	e.EncodeChunk(c)
	return e.Bytes()
}

// checksum computes CRC-32/ISO-HDLC over the tag bytes followed by the
// payload, the exact range the frame's CRC field covers. The length field
// is never part of the checksum.
func checksum(chunkType ChunkType, data []byte) uint32 {
	tag := chunkType.Bytes()
	return crc32.Update(crc32.ChecksumIEEE(tag[:]), crc32.IEEETable, data)
}
