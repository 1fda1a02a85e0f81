package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/diodechain/beamterms/term"
)

// Encode produces the canonical, minimal-length byte sequence for t.
// Encode is total over the Term variants listed in term.go when their
// payloads satisfy the non-negativity invariants; it returns an error
// only for a Term value that violates those invariants (for example,
// a negative index on a non-Integer variant), which indicates a
// broken caller rather than a malformed input.
func Encode(t term.Term) ([]byte, error) {
	switch v := t.(type) {
	case term.XReg:
		return encodeIndex(term.XRegTag, v.Index)
	case term.YReg:
		return encodeIndex(term.YRegTag, v.Index)
	case term.Label:
		return encodeIndex(term.LabelTag, v.ID)
	case term.Atom:
		return encodeIndex(term.AtomTag, v.Index)
	case term.Literal:
		return encodeIndex(term.LiteralTag, v.Index)
	case term.Char:
		return encodeIndex(term.CharTag, v.CodePoint)

	case term.Integer:
		if v.Value.Sign() < 0 {
			return encodeNegativeInteger(v.Value), nil
		}
		return encodeTaggedNonNegative(term.IntegerTag, v.Value), nil

	case term.Float:
		out := make([]byte, 9)
		out[0] = term.FloatExtTag
		binary.BigEndian.PutUint64(out[1:], v.Bits)
		return out, nil

	case term.FloatReg:
		return encodeExtendedWithInteger(term.FloatRegExtTag, v.Index)

	case term.TypedReg:
		registerBytes, err := Encode(v.Register)
		if err != nil {
			return nil, err
		}
		typeBytes, err := Encode(term.Integer{Value: v.Type})
		if err != nil {
			return nil, err
		}
		out := make([]byte, 0, 1+len(registerBytes)+len(typeBytes))
		out = append(out, term.TypedRegExtTag)
		out = append(out, registerBytes...)
		out = append(out, typeBytes...)
		return out, nil

	case term.List:
		lengthBytes, err := Encode(term.NewInteger(int64(len(v.Items))))
		if err != nil {
			return nil, err
		}
		out := append([]byte{term.ListExtTag}, lengthBytes...)
		for _, item := range v.Items {
			itemBytes, err := Encode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, itemBytes...)
		}
		return out, nil

	case term.Alloc:
		lengthBytes, err := Encode(term.NewInteger(int64(len(v.Pairs))))
		if err != nil {
			return nil, err
		}
		out := append([]byte{term.AllocListExtTag}, lengthBytes...)
		for _, pair := range v.Pairs {
			typeBytes, err := Encode(pair.Type)
			if err != nil {
				return nil, err
			}
			valueBytes, err := Encode(pair.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, typeBytes...)
			out = append(out, valueBytes...)
		}
		return out, nil

	case term.Extended:
		return encodeExtendedPassthrough(v)

	default:
		return nil, fmt.Errorf("codec: unsupported term type %T", t)
	}
}

// encodeIndex encodes a non-negative index-bearing term under the
// given primary tag, rejecting the precondition violation of a
// negative index.
func encodeIndex(tag byte, v *big.Int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("codec: index term has negative payload %s", v)
	}
	return encodeTaggedNonNegative(tag, v), nil
}

// encodeExtendedWithInteger encodes one of the extended forms whose
// payload is itself encode(Integer(n)) (FloatReg today).
func encodeExtendedWithInteger(subTag byte, n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("codec: extended term has negative payload %s", n)
	}
	inner, err := Encode(term.Integer{Value: n})
	if err != nil {
		return nil, err
	}
	return append([]byte{subTag}, inner...), nil
}

// encodeTaggedNonNegative implements the canonical tagged
// non-negative encoding: the shortest of the small,
// medium, and large forms for (tag, v).
func encodeTaggedNonNegative(tag byte, v *big.Int) []byte {
	switch {
	case v.Cmp(big.NewInt(16)) < 0:
		return []byte{byte(v.Int64()<<4) | tag}

	case v.Cmp(big.NewInt(2048)) < 0:
		n := v.Int64()
		high := byte((n>>8)&0x07)<<5 | 0x08 | tag
		low := byte(n & 0xFF)
		return []byte{high, low}

	default:
		return emitLargeForm(tag, unsignedMinimalPadded(v))
	}
}

// encodeNegativeInteger implements the canonical
// two's-complement encoding of a negative Integer. The minimal
// two's-complement width of a value like -1 or -128 is one byte, but
// the wire format's large form can only embed widths of two bytes or
// more (N = S+2, S in [0,6]), so the width is
// floored at two. Widening a minimal two's-complement rendering by one
// sign-extension byte is exactly equivalent to rendering the value
// directly at the wider width, which is what this does.
func encodeNegativeInteger(n *big.Int) []byte {
	width := minimalSignedWidth(n)
	if width < 2 {
		width = 2
	}
	return emitLargeForm(term.IntegerTag, signedBytesOfWidth(n, width))
}

// emitLargeForm packages a byte field m under the large form:
// embedded size when len(m) <= 8, escape size (itself an
// encoded Integer) otherwise.
func emitLargeForm(tag byte, m []byte) []byte {
	n := len(m)
	if n <= 8 {
		starter := byte(n-2)<<5 | 0x18 | tag
		return append([]byte{starter}, m...)
	}
	starter := byte(7)<<5 | 0x18 | tag
	escapeSize, err := Encode(term.NewInteger(int64(n - 9)))
	if err != nil {
		// n-9 is always a small non-negative int64 for any buffer
		// this codec will ever be asked to produce in practice.
		panic(err)
	}
	out := append([]byte{starter}, escapeSize...)
	return append(out, m...)
}

// encodeExtendedPassthrough re-emits a decoded Extended term
// bit-identically. SubTag's own bits (mirroring the small/medium/large
// dispatch decodeLengthForm reads from a starter byte) fix the layout
// first; Value is then placed into exactly that layout, never used to
// pick a layout of its own the way encodeTaggedNonNegative would.
func encodeExtendedPassthrough(e term.Extended) ([]byte, error) {
	if e.Value.Sign() < 0 {
		return nil, fmt.Errorf("codec: extended term has negative payload %s", e.Value)
	}
	starter := e.SubTag | term.ExtendedTag

	switch {
	case e.SubTag&0x08 == 0:
		// Small form: the value lives entirely in the starter's top
		// nibble, so it must fit in four bits.
		if e.Value.Cmp(big.NewInt(16)) >= 0 {
			return nil, fmt.Errorf("codec: extended value %s does not fit the small form its sub-tag selects", e.Value)
		}
		return []byte{byte(e.Value.Int64()<<4) | term.ExtendedTag}, nil

	case e.SubTag&0x18 == 0x08:
		// Medium form: 11 bits, three in the starter and eight trailing.
		if e.Value.Cmp(big.NewInt(2048)) >= 0 {
			return nil, fmt.Errorf("codec: extended value %s does not fit the medium form its sub-tag selects", e.Value)
		}
		n := e.Value.Int64()
		high := byte((n>>8)&0x07)<<5 | 0x08 | term.ExtendedTag
		low := byte(n & 0xFF)
		return []byte{high, low}, nil

	default:
		s := (e.SubTag & 0xE0) >> 5
		if s < 7 {
			// Embedded large form: the sub-tag fixes the field width at
			// s+2 bytes, unsigned (decodeExtended never sign-extends an
			// unrecognized sub-tag's payload).
			fixed, err := fixedWidthUnsigned(e.Value, int(s)+2)
			if err != nil {
				return nil, fmt.Errorf("codec: extended value %s does not fit the large form its sub-tag selects: %w", e.Value, err)
			}
			return append([]byte{starter}, fixed...), nil
		}

		// Escape large form: the sub-tag only fixes "this is an escape",
		// not a width, so the field is Value's own unsigned bytes
		// (no sign padding: decodeExtended never sign-extends an
		// unrecognized sub-tag's payload), widened to the 9-byte floor
		// the escape-size field's non-negativity requires.
		m := e.Value.Bytes()
		if len(m) < 9 {
			padded := make([]byte, 9)
			copy(padded[9-len(m):], m)
			m = padded
		}
		escapeSize, err := Encode(term.NewInteger(int64(len(m) - 9)))
		if err != nil {
			panic(err)
		}
		out := append([]byte{starter}, escapeSize...)
		return append(out, m...), nil
	}
}
