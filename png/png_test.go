package png

import (
	"bytes"
	"errors"
	"testing"

	"github.com/anirudhraja/pnglite/wire"
)

func chunkFromStrings(t *testing.T, tag, message string) *wire.Chunk {
	t.Helper()
	ct, err := wire.ChunkTypeFromString(tag)
	if err != nil {
		t.Fatalf("ChunkTypeFromString(%q) failed: %v", tag, err)
	}
	return wire.NewChunk(ct, []byte(message))
}

func testingChunks(t *testing.T) []*wire.Chunk {
	t.Helper()
	return []*wire.Chunk{
		chunkFromStrings(t, "FrSt", "I am the first chunk"),
		chunkFromStrings(t, "miDl", "I am another chunk"),
		chunkFromStrings(t, "LASt", "I am the last chunk"),
	}
}

func TestFromChunks(t *testing.T) {
	p := FromChunks(testingChunks(t))
	if len(p.Chunks()) != 3 {
		t.Errorf("Chunks() has %d entries, want 3", len(p.Chunks()))
	}
}

func TestBytesLayout(t *testing.T) {
	chunks := testingChunks(t)
	p := FromChunks(chunks)

	var want []byte
	want = append(want, Signature[:]...)
	for _, c := range chunks {
		want = append(want, c.Bytes()...)
	}
	if got := p.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := FromChunks(testingChunks(t))

	parsed, err := Parse(original.Bytes())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !bytes.Equal(parsed.Bytes(), original.Bytes()) {
		t.Error("round trip changed the stream")
	}
	if len(parsed.Chunks()) != 3 {
		t.Errorf("parsed %d chunks, want 3", len(parsed.Chunks()))
	}
}

func TestParseBadSignature(t *testing.T) {
	stream := FromChunks(testingChunks(t)).Bytes()
	stream[0] = 'P'

	if _, err := Parse(stream); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Parse = %v, want ErrBadSignature", err)
	}

	if _, err := Parse(nil); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Parse(nil) = %v, want ErrBadSignature", err)
	}
}

func TestParseCorruptChunk(t *testing.T) {
	stream := FromChunks(testingChunks(t)).Bytes()
	stream[len(stream)-1] ^= 0xFF // trailing CRC byte

	_, err := Parse(stream)
	if !errors.Is(err, &wire.ChunkError{Kind: wire.KindChecksumMismatch}) {
		t.Errorf("Parse = %v, want a checksum mismatch", err)
	}
}

func TestParseTruncatedStream(t *testing.T) {
	stream := FromChunks(testingChunks(t)).Bytes()

	_, err := Parse(stream[:len(stream)-5])
	if !errors.Is(err, &wire.ChunkError{Kind: wire.KindInsufficientData}) {
		t.Errorf("Parse = %v, want insufficient data", err)
	}
}

func TestChunkByType(t *testing.T) {
	p := FromChunks(testingChunks(t))

	c := p.ChunkByType("miDl")
	if c == nil {
		t.Fatal("ChunkByType(miDl) = nil")
	}
	if s, _ := c.DataAsString(); s != "I am another chunk" {
		t.Errorf("payload = %q", s)
	}

	if p.ChunkByType("noNe") != nil {
		t.Error("ChunkByType(noNe) found a chunk")
	}
}

func TestAppendChunk(t *testing.T) {
	p := FromChunks(testingChunks(t))
	p.AppendChunk(chunkFromStrings(t, "TeSt", "Message"))

	c := p.ChunkByType("TeSt")
	if c == nil {
		t.Fatal("appended chunk not found")
	}
	if s, _ := c.DataAsString(); s != "Message" {
		t.Errorf("payload = %q", s)
	}
}

func TestAppendChunkKeepsTrailerLast(t *testing.T) {
	p := FromChunks([]*wire.Chunk{
		chunkFromStrings(t, "FrSt", "I am the first chunk"),
		chunkFromStrings(t, "IEND", ""),
	})
	p.AppendChunk(chunkFromStrings(t, "ruSt", "hidden"))

	chunks := p.Chunks()
	if len(chunks) != 3 {
		t.Fatalf("have %d chunks, want 3", len(chunks))
	}
	if text, _ := chunks[1].ChunkType().Text(); text != "ruSt" {
		t.Errorf("chunk 1 is %q, want ruSt", text)
	}
	if text, _ := chunks[2].ChunkType().Text(); text != "IEND" {
		t.Errorf("chunk 2 is %q, want the IEND trailer", text)
	}
}

func TestRemoveFirstChunk(t *testing.T) {
	p := FromChunks(testingChunks(t))

	removed, err := p.RemoveFirstChunk("miDl")
	if err != nil {
		t.Fatalf("RemoveFirstChunk failed: %v", err)
	}
	if s, _ := removed.DataAsString(); s != "I am another chunk" {
		t.Errorf("removed payload = %q", s)
	}
	if p.ChunkByType("miDl") != nil {
		t.Error("chunk still present after removal")
	}

	if _, err := p.RemoveFirstChunk("miDl"); !errors.Is(err, ErrChunkNotFound) {
		t.Errorf("second removal = %v, want ErrChunkNotFound", err)
	}
}
