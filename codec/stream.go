package codec

import (
	"bytes"

	"github.com/diodechain/beamterms/term"
)

// DecodeAll decodes input as a sequence of back-to-back compact
// terms, returning them in decoding order. An empty input
// yields an empty, non-nil slice.
func DecodeAll(input []byte) ([]term.Term, error) {
	terms := make([]term.Term, 0)
	for len(input) > 0 {
		t, rest, err := Decode(input)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
		input = rest
	}
	return terms, nil
}

// Roundtrip reports whether decoding input and re-encoding the result
// reproduces input exactly, with nothing left over. It
// returns false on any decode failure rather than propagating the
// error.
func Roundtrip(input []byte) bool {
	t, rest, err := Decode(input)
	if err != nil || len(rest) != 0 {
		return false
	}
	encoded, err := Encode(t)
	if err != nil {
		return false
	}
	return bytes.Equal(encoded, input)
}
