// Package codec implements the compact term format used to serialize
// instruction operands inside a BEAM Code chunk: Decode/Encode convert
// between a byte prefix and a term.Term, and DecodeAll/Roundtrip are
// convenience drivers over a full buffer.
//
// The codec is a pure data transformation with no state beyond the
// current byte position: every exported function here is
// safe to call concurrently on distinct or shared-but-immutable
// inputs.
package codec
