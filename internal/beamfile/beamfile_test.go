package beamfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// buildContainer assembles a minimal synthetic IFF BEAM container
// from a list of (name, body) chunks, applying 4-byte padding the
// same way a real compiler output would.
func buildContainer(chunks [][2]any) []byte {
	var body bytes.Buffer
	for _, chunk := range chunks {
		name := chunk[0].(string)
		data := chunk[1].([]byte)
		body.WriteString(name)
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(data)))
		body.Write(length[:])
		body.Write(data)
		for i := 0; i < paddingLength(len(data)); i++ {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer
	out.WriteString("FOR1")
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(4+body.Len())) // "BEAM" + body
	out.Write(size[:])
	out.WriteString("BEAM")
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestParseLocatesChunks(t *testing.T) {
	data := buildContainer([][2]any{
		{"Atom", []byte{0, 0, 0, 1}},
		{"Code", []byte{1, 2, 3}}, // 3 bytes, needs 1 byte padding
		{"AtU8", []byte{9, 9}},
	})

	module, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := module.Names(); len(got) != 3 || got[0] != "Atom" || got[1] != "Code" || got[2] != "AtU8" {
		t.Fatalf("Names() = %v", got)
	}

	code, err := module.Chunk("Code")
	if err != nil {
		t.Fatalf("Chunk(Code): %v", err)
	}
	if !bytes.Equal(code, []byte{1, 2, 3}) {
		t.Fatalf("Code chunk body = %v, want [1 2 3]", code)
	}
}

func TestParseRejectsNonBeam(t *testing.T) {
	_, err := Parse([]byte("not a beam file at all"))
	if !errors.Is(err, ErrNotBeamFile) {
		t.Fatalf("err = %v, want ErrNotBeamFile", err)
	}
}

func TestParseRejectsTruncated(t *testing.T) {
	// The 5-byte body is followed by 3 padding bytes; dropping 6
	// bytes cuts 3 bytes off the body itself.
	data := buildContainer([][2]any{{"Code", []byte{1, 2, 3, 4, 5}}})
	_, err := Parse(data[:len(data)-6])
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestChunkNotFound(t *testing.T) {
	module, err := Parse(buildContainer([][2]any{{"Atom", []byte{0}}}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := module.Chunk("Code"); !errors.Is(err, ErrChunkNotFound) {
		t.Fatalf("err = %v, want ErrChunkNotFound", err)
	}
}

func TestSplitCode(t *testing.T) {
	var header [20]byte
	binary.BigEndian.PutUint32(header[0:4], 16) // SubSize
	binary.BigEndian.PutUint32(header[4:8], 0)  // InstructionSet
	binary.BigEndian.PutUint32(header[8:12], 169)
	binary.BigEndian.PutUint32(header[12:16], 5)
	binary.BigEndian.PutUint32(header[16:20], 2)
	instructions := []byte{0x12, 0x34, 0x56}
	chunk := append(append([]byte{}, header[:]...), instructions...)

	got, rest, err := SplitCode(chunk)
	if err != nil {
		t.Fatalf("SplitCode: %v", err)
	}
	if got.SubSize != 16 || got.OpcodeMax != 169 || got.LabelCount != 5 || got.FunctionCount != 2 {
		t.Fatalf("header = %+v", got)
	}
	if !bytes.Equal(rest, instructions) {
		t.Fatalf("rest = %v, want %v", rest, instructions)
	}
}

func TestSplitCodeTruncated(t *testing.T) {
	_, _, err := SplitCode([]byte{0, 0, 0, 20})
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestSplitCodeWiderSubHeader(t *testing.T) {
	// A hypothetical future instruction set widens the sub-header by
	// 4 bytes; SplitCode must still land exactly after SubSize bytes.
	var header [24]byte
	binary.BigEndian.PutUint32(header[0:4], 20)
	instructions := []byte{0xAB}
	chunk := append(append([]byte{}, header[:]...), instructions...)

	_, rest, err := SplitCode(chunk)
	if err != nil {
		t.Fatalf("SplitCode: %v", err)
	}
	if !bytes.Equal(rest, instructions) {
		t.Fatalf("rest = %v, want %v", rest, instructions)
	}
}
