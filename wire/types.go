package wire

import "unicode/utf8"

// ===== CHUNK TYPE TAG =====

// ChunkType is the 4-byte chunk type tag. The case of each byte encodes one
// independent property bit; see the predicate methods. Two tags are equal
// iff their bytes are equal, so values compare with ==.
type ChunkType struct {
	data [4]byte
}

// NewChunkType builds a ChunkType from 4 raw bytes. It never fails: a
// bitwise-malformed tag stays representable so corrupt input can round-trip,
// and IsValid reports well-formedness as a separate query.
func NewChunkType(data [4]byte) ChunkType {
	return ChunkType{data: data}
}

// ChunkTypeFromString builds a ChunkType from its textual form. The input
// must be exactly 4 bytes of ASCII letters; shorter or longer input fails
// with KindInvalidLength (trailing bytes are an error, not ignored), and a
// non-letter fails with KindInvalidCharacter.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, newInvalidLengthError(len(s))
	}
	var data [4]byte
	for i := 0; i < 4; i++ {
		if !isASCIILetter(s[i]) {
			return ChunkType{}, newInvalidCharacterError(s[i], i)
		}
		data[i] = s[i]
	}
	return ChunkType{data: data}, nil
}

// Bytes returns the 4 raw tag bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.data
}

// IsValid reports whether the tag is well formed: all 4 bytes are ASCII
// letters and the reserved bit is valid. A tag with any non-letter byte is
// never valid, regardless of its case bits.
func (t ChunkType) IsValid() bool {
	for _, b := range t.data {
		if !isASCIILetter(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether byte 0 is uppercase: the chunk is required for
// correct interpretation of the stream.
func (t ChunkType) IsCritical() bool {
	return isASCIIUpper(t.data[0])
}

// IsPublic reports whether byte 1 is uppercase: the tag belongs to the
// registered vocabulary.
func (t ChunkType) IsPublic() bool {
	return isASCIIUpper(t.data[1])
}

// IsReservedBitValid reports whether byte 2 is uppercase. Conforming data
// always has it uppercase; lowercase marks a reserved tag.
func (t ChunkType) IsReservedBitValid() bool {
	return isASCIIUpper(t.data[2])
}

// IsSafeToCopy reports whether byte 3 is lowercase: editors that do not
// recognize the tag may still copy the chunk unmodified.
func (t ChunkType) IsSafeToCopy() bool {
	return isASCIILower(t.data[3])
}

// Text renders the tag bytes as a string. Tags built from raw bytes can
// hold arbitrary values, so this fails with KindEncodingError when the
// bytes are not valid UTF-8.
func (t ChunkType) Text() (string, error) {
	if !utf8.Valid(t.data[:]) {
		return "", newEncodingError()
	}
	return string(t.data[:]), nil
}

func isASCIILetter(b byte) bool {
	return isASCIIUpper(b) || isASCIILower(b)
}

func isASCIIUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isASCIILower(b byte) bool {
	return b >= 'a' && b <= 'z'
}
