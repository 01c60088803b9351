package wire

import "encoding/binary"

// Decoder handles low-level chunk frame decoding off a byte buffer.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new wire format decoder.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// DecodeUint32 decodes a big-endian 32-bit value.
func (d *Decoder) DecodeUint32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, newInsufficientDataError(4, d.Remaining())
	}
	value := binary.BigEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return value, nil
}

// decodeTypeBytes reads the 4 tag bytes at the current position. The tag is
// always constructed, but a non-letter byte fails with KindInvalidTypeBytes
// so malformed frames are rejected at parse time.
func (d *Decoder) decodeTypeBytes() (ChunkType, error) {
	if d.pos+4 > len(d.buf) {
		return ChunkType{}, newInsufficientDataError(4, d.Remaining())
	}
	var tag [4]byte
	copy(tag[:], d.buf[d.pos:])
	d.pos += 4
	for i, b := range tag {
		if !isASCIILetter(b) {
			return NewChunkType(tag), newInvalidTypeBytesError(b, i)
		}
	}
	return NewChunkType(tag), nil
}

// DecodeChunk decodes the next chunk frame at the current position and
// advances past it. The declared length field is untrusted input: the frame
// it implies must fit in the remaining buffer, otherwise decoding fails with
// KindInsufficientData before any payload is touched.
func (d *Decoder) DecodeChunk() (*Chunk, error) {
	if d.Remaining() < chunkOverhead {
		return nil, newInsufficientDataError(chunkOverhead, d.Remaining())
	}
	declared := binary.BigEndian.Uint32(d.buf[d.pos:])
	frameLen := chunkOverhead + int64(declared)
	if int64(d.Remaining()) < frameLen {
		return nil, newInsufficientDataError(int(frameLen), d.Remaining())
	}
	chunk, err := ParseChunk(d.buf[d.pos : d.pos+int(frameLen)])
	if err != nil {
		return nil, err
	}
	d.pos += int(frameLen)
	return chunk, nil
}

// ParseChunk decodes a single chunk occupying the whole buffer - main entry
// point for one-frame buffers. The payload is everything between the tag and
// the trailing CRC; the declared length must agree with it, and the declared
// CRC must agree with the one recomputed over tag+payload. The two checks
// are independent: a corrupt length and a corrupt CRC are distinct failures.
func ParseChunk(buf []byte) (*Chunk, error) {
	if len(buf) < chunkOverhead {
		return nil, newInsufficientDataError(chunkOverhead, len(buf))
	}
	d := NewDecoder(buf)

	declared, err := d.DecodeUint32()
	if err != nil {
		return nil, err
	}
	chunkType, err := d.decodeTypeBytes()
	if err != nil {
		return nil, err
	}

	payload := buf[8 : len(buf)-4]
	declaredCRC := binary.BigEndian.Uint32(buf[len(buf)-4:])

	if uint64(declared) != uint64(len(payload)) {
		return nil, newLengthMismatchError(declared, uint32(len(payload)))
	}
	if computed := checksum(chunkType, payload); computed != declaredCRC {
		return nil, newChecksumMismatchError(declaredCRC, computed)
	}

	// Copy the payload to avoid sharing the caller's buffer.
	data := make([]byte, len(payload))
	copy(data, payload)

	return &Chunk{
		chunkType: chunkType,
		data:      data,
		crc:       declaredCRC,
	}, nil
}
