package wire

import "fmt"

// ErrorKind selects the failure class of a ChunkError.
type ErrorKind int

const (
	// KindInvalidCharacter - textual chunk type contains a non-alphabetic byte
	KindInvalidCharacter ErrorKind = iota
	// KindInvalidLength - textual chunk type is not exactly 4 bytes long
	KindInvalidLength
	// KindEncodingError - chunk type bytes are not renderable as text
	KindEncodingError
	// KindInsufficientData - buffer too short to hold the expected bytes
	KindInsufficientData
	// KindInvalidTypeBytes - parsed chunk type bytes are not all ASCII letters
	KindInvalidTypeBytes
	// KindLengthMismatch - declared length disagrees with the observed payload
	KindLengthMismatch
	// KindChecksumMismatch - declared CRC disagrees with the recomputed CRC
	KindChecksumMismatch
	// KindDataNotText - payload requested as text is not valid text
	KindDataNotText
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid character"
	case KindInvalidLength:
		return "invalid length"
	case KindEncodingError:
		return "encoding error"
	case KindInsufficientData:
		return "insufficient data"
	case KindInvalidTypeBytes:
		return "invalid type bytes"
	case KindLengthMismatch:
		return "length mismatch"
	case KindChecksumMismatch:
		return "checksum mismatch"
	case KindDataNotText:
		return "data not text"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// ChunkError is the error type for every codec failure. Kind selects the
// failure class; Expected and Actual carry the disagreeing values where the
// class has them (lengths, checksums, byte counts), and Byte/Pos identify
// the offending byte for character-level failures.
type ChunkError struct {
	Kind     ErrorKind
	Expected uint32
	Actual   uint32
	Byte     byte
	Pos      int
}

// Error implements the error interface.
func (e *ChunkError) Error() string {
	switch e.Kind {
	case KindInvalidCharacter:
		return fmt.Sprintf("chunk type byte %d is not an ASCII letter: 0x%02X", e.Pos, e.Byte)
	case KindInvalidLength:
		return fmt.Sprintf("chunk type text must be exactly 4 bytes, got %d", e.Actual)
	case KindEncodingError:
		return "chunk type bytes are not valid UTF-8 text"
	case KindInsufficientData:
		return fmt.Sprintf("buffer truncated: need %d bytes, have %d", e.Expected, e.Actual)
	case KindInvalidTypeBytes:
		return fmt.Sprintf("chunk type byte %d is not an ASCII letter: 0x%02X", e.Pos, e.Byte)
	case KindLengthMismatch:
		return fmt.Sprintf("declared length %d does not match payload length %d", e.Expected, e.Actual)
	case KindChecksumMismatch:
		return fmt.Sprintf("declared crc %08x does not match computed crc %08x", e.Expected, e.Actual)
	case KindDataNotText:
		return "chunk payload is not valid UTF-8 text"
	default:
		return e.Kind.String()
	}
}

// Is reports kind equality, so callers can branch on failure class with
// errors.Is(err, &ChunkError{Kind: ...}).
func (e *ChunkError) Is(target error) bool {
	t, ok := target.(*ChunkError)
	return ok && t.Kind == e.Kind
}

func newInvalidCharacterError(b byte, pos int) *ChunkError {
	return &ChunkError{Kind: KindInvalidCharacter, Byte: b, Pos: pos}
}

func newInvalidLengthError(n int) *ChunkError {
	return &ChunkError{Kind: KindInvalidLength, Expected: 4, Actual: uint32(n)}
}

func newEncodingError() *ChunkError {
	return &ChunkError{Kind: KindEncodingError}
}

func newInsufficientDataError(need, have int) *ChunkError {
	return &ChunkError{Kind: KindInsufficientData, Expected: uint32(need), Actual: uint32(have)}
}

func newInvalidTypeBytesError(b byte, pos int) *ChunkError {
	return &ChunkError{Kind: KindInvalidTypeBytes, Byte: b, Pos: pos}
}

func newLengthMismatchError(declared, observed uint32) *ChunkError {
	return &ChunkError{Kind: KindLengthMismatch, Expected: declared, Actual: observed}
}

func newChecksumMismatchError(declared, computed uint32) *ChunkError {
	return &ChunkError{Kind: KindChecksumMismatch, Expected: declared, Actual: computed}
}

func newDataNotTextError() *ChunkError {
	return &ChunkError{Kind: KindDataNotText}
}
