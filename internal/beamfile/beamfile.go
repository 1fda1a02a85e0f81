// Package beamfile locates named chunks inside a compiled BEAM module
// (the IFF container produced by erlc/asm and read by beam_lib on the
// Erlang side) and strips the Code chunk's own sub-header so callers
// land directly on the instruction stream that codec.DecodeAll walks.
//
// Parsing stops at chunk boundaries: nothing here understands atom
// tables, export tables, or instruction encoding beyond the Code
// chunk's fixed-width header fields.
package beamfile

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrNotBeamFile is returned when the input does not start with the
// "FOR1" IFF signature and "BEAM" form type.
var ErrNotBeamFile = errors.New("beamfile: not an IFF BEAM container")

// ErrChunkNotFound is returned by Chunk when no chunk with the
// requested name exists in the container.
var ErrChunkNotFound = errors.New("beamfile: chunk not found")

// ErrTruncated is returned when a chunk header or body runs past the
// end of the input.
var ErrTruncated = errors.New("beamfile: truncated container")

// Chunk describes one IFF chunk's location within the container.
type Chunk struct {
	Name string
	Data []byte
}

// Module is a parsed BEAM container: an ordered list of its chunks,
// in the order they appear on disk.
type Module struct {
	Chunks []Chunk
}

const (
	formHeaderSize  = 12 // "FOR1" + 4-byte size + "BEAM"
	chunkHeaderSize = 8  // 4-byte name + 4-byte length
)

// Parse reads the IFF chunk table of a BEAM module binary. It does
// not validate the declared form size against len(data); a module
// produced by a well-behaved compiler always agrees, and tooling that
// wants to catch a lying size field can compare Module against
// len(data) itself.
func Parse(data []byte) (Module, error) {
	if len(data) < formHeaderSize {
		return Module{}, ErrTruncated
	}
	if string(data[0:4]) != "FOR1" || string(data[8:12]) != "BEAM" {
		return Module{}, ErrNotBeamFile
	}

	var module Module
	offset := formHeaderSize
	for offset < len(data) {
		if offset+chunkHeaderSize > len(data) {
			return Module{}, fmt.Errorf("beamfile: %w: chunk header at offset %d", ErrTruncated, offset)
		}
		name := string(data[offset : offset+4])
		length := int(binary.BigEndian.Uint32(data[offset+4 : offset+8]))
		bodyStart := offset + chunkHeaderSize
		bodyEnd := bodyStart + length
		if length < 0 || bodyEnd > len(data) {
			return Module{}, fmt.Errorf("beamfile: %w: chunk %q body at offset %d", ErrTruncated, name, bodyStart)
		}

		module.Chunks = append(module.Chunks, Chunk{Name: name, Data: data[bodyStart:bodyEnd]})

		// Chunk bodies are padded to a 4-byte boundary; the padding
		// bytes are not part of any chunk's reported length.
		offset = bodyEnd + paddingLength(length)
	}
	return module, nil
}

// paddingLength returns the number of zero-padding bytes following a
// chunk body of the given length, to realign on a 4-byte boundary.
func paddingLength(length int) int {
	if remainder := length % 4; remainder != 0 {
		return 4 - remainder
	}
	return 0
}

// Chunk returns the body of the named chunk (e.g. "Code", "Atom",
// "AtU8"), or ErrChunkNotFound if the module has none by that name.
func (module Module) Chunk(name string) ([]byte, error) {
	for _, chunk := range module.Chunks {
		if chunk.Name == name {
			return chunk.Data, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrChunkNotFound, name)
}

// Names returns the chunk names in on-disk order, including
// duplicates if the container is malformed enough to have any.
func (module Module) Names() []string {
	names := make([]string, len(module.Chunks))
	for i, chunk := range module.Chunks {
		names[i] = chunk.Name
	}
	return names
}

// CodeHeader is the fixed-width header at the front of a Code chunk,
// preceding its instruction stream.
type CodeHeader struct {
	// SubSize is the header's own declared size in bytes, not
	// counting the SubSize field itself. A well-formed Code chunk
	// sets this to 16 (the width of the four fields below); tooling
	// that encounters a different value should skip SubSize bytes
	// rather than assume the four named fields below are present.
	SubSize        uint32
	InstructionSet uint32
	OpcodeMax      uint32
	LabelCount     uint32
	FunctionCount  uint32
}

const codeHeaderFieldsSize = 16 // InstructionSet, OpcodeMax, LabelCount, FunctionCount

// SplitCode parses a Code chunk's sub-header and returns it alongside
// the remaining bytes, which are the compact-term instruction stream
// that codec.DecodeAll walks.
//
// SubSize need not equal codeHeaderFieldsSize: a future instruction
// set may widen the header. Instructions always start at offset
// 4+SubSize regardless, since SubSize excludes itself but includes
// everything else before the code proper.
func SplitCode(data []byte) (CodeHeader, []byte, error) {
	if len(data) < 4 {
		return CodeHeader{}, nil, fmt.Errorf("beamfile: %w: Code chunk has no sub-header", ErrTruncated)
	}
	subSize := binary.BigEndian.Uint32(data[0:4])
	headerEnd := 4 + int(subSize)
	if headerEnd > len(data) {
		return CodeHeader{}, nil, fmt.Errorf("beamfile: %w: Code sub-header declares %d bytes, chunk has %d", ErrTruncated, subSize, len(data)-4)
	}

	header := CodeHeader{SubSize: subSize}
	fields := data[4:headerEnd]
	if len(fields) >= codeHeaderFieldsSize {
		header.InstructionSet = binary.BigEndian.Uint32(fields[0:4])
		header.OpcodeMax = binary.BigEndian.Uint32(fields[4:8])
		header.LabelCount = binary.BigEndian.Uint32(fields[8:12])
		header.FunctionCount = binary.BigEndian.Uint32(fields[12:16])
	}

	return header, data[headerEnd:], nil
}
