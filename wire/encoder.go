package wire

import "encoding/binary"

// Encoder handles low-level chunk frame encoding into an internal buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new wire format encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeUint32 appends a big-endian 32-bit value.
func (e *Encoder) EncodeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// EncodeChunk appends the chunk's wire frame: big-endian length, the 4 tag
// bytes, the payload, big-endian CRC. Serialization never fails; whatever
// chunk was built or parsed round-trips byte for byte.
func (e *Encoder) EncodeChunk(c *Chunk) {
	e.EncodeUint32(c.Length())
	tag := c.ChunkType().Bytes()
	e.buf = append(e.buf, tag[:]...)
	e.buf = append(e.buf, c.Data()...)
	e.EncodeUint32(c.CRC())
}
