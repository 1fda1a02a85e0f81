package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/diodechain/beamterms/term"
)

// Decode reads a single compact term from the front of input and
// returns it along with the unconsumed remainder. It fails with
// ErrUnexpectedEOF when any read would exceed the buffer, and with
// ErrMalformedFraming when an extended format's inner term violates
// its shape requirement.
func Decode(input []byte) (term.Term, []byte, error) {
	if len(input) == 0 {
		return nil, nil, ErrUnexpectedEOF
	}
	starter := input[0]
	tag := starter & 0x07
	if tag == term.ExtendedTag {
		return decodeExtended(starter, input[1:])
	}

	v, rest, err := decodeLengthForm(starter, input[1:], tag == term.IntegerTag)
	if err != nil {
		return nil, nil, err
	}
	return mapPrimary(tag, v), rest, nil
}

// mapPrimary builds the Term variant bound to a primary tag, given
// the already-decoded value.
func mapPrimary(tag byte, v *big.Int) term.Term {
	switch tag {
	case term.LiteralTag:
		return term.Literal{Index: v}
	case term.IntegerTag:
		return term.Integer{Value: v}
	case term.AtomTag:
		return term.Atom{Index: v}
	case term.XRegTag:
		return term.XReg{Index: v}
	case term.YRegTag:
		return term.YReg{Index: v}
	case term.LabelTag:
		return term.Label{ID: v}
	case term.CharTag:
		return term.Char{CodePoint: v}
	default:
		// Unreachable: Decode dispatches ExtendedTag separately and
		// the primary tag is always one of the seven values above.
		panic("codec: unknown primary tag")
	}
}

// decodeLengthForm decodes the small/medium/large length-discriminated
// value that follows a starter byte. starter is the
// already-consumed first byte; rest is everything after it.
// allowSignExtend gates the tag-conditional sign rule: it is true
// only for the Integer primary tag, and is always false when called
// from the "other extended sub-tag" fallback, which
// never sign-extends regardless of which bits the sub-tag shares with
// the Integer tag.
func decodeLengthForm(starter byte, rest []byte, allowSignExtend bool) (*big.Int, []byte, error) {
	switch {
	case starter&0x08 == 0:
		// Small form: the value is the top nibble.
		return big.NewInt(int64(starter >> 4)), rest, nil

	case starter&0x18 == 0x08:
		// Medium form: 11 bits, never negative.
		if len(rest) < 1 {
			return nil, nil, ErrUnexpectedEOF
		}
		hi := uint64(starter&0xE0) >> 5
		v := hi<<8 | uint64(rest[0])
		return new(big.Int).SetUint64(v), rest[1:], nil

	case starter&0x18 == 0x18:
		s := (starter & 0xE0) >> 5
		if s < 7 {
			n := int(s) + 2
			if len(rest) < n {
				return nil, nil, ErrUnexpectedEOF
			}
			return bytesToValue(rest[:n], allowSignExtend), rest[n:], nil
		}

		// Escape size: the byte count is itself a compact term,
		// constrained to a non-negative Integer.
		sizeTerm, remainder, err := Decode(rest)
		if err != nil {
			return nil, nil, err
		}
		sizeInt, ok := sizeTerm.(term.Integer)
		if !ok || sizeInt.Value.Sign() < 0 {
			return nil, nil, ErrMalformedFraming
		}
		n, ok := intFromBig(new(big.Int).Add(sizeInt.Value, big.NewInt(9)))
		if !ok || n < 0 || len(remainder) < n {
			return nil, nil, ErrUnexpectedEOF
		}
		return bytesToValue(remainder[:n], allowSignExtend), remainder[n:], nil

	default:
		// starter&0x18 can only be 0x00, 0x08, or 0x18; every case is
		// handled above.
		panic("codec: unreachable length-form dispatch")
	}
}

// bytesToValue interprets a large-form byte field per the sign rule
// two's complement only when allowSignExtend is true
// and the high bit of the first byte is set, unsigned otherwise.
func bytesToValue(raw []byte, allowSignExtend bool) *big.Int {
	if allowSignExtend && len(raw) > 0 && raw[0]&0x80 != 0 {
		return bigFromTwosComplement(raw)
	}
	return bigFromUnsigned(raw)
}

// intFromBig converts a non-negative *big.Int to an int, reporting
// false if it does not fit. Used only for length fields, which are
// always bounded above by the remaining buffer size in practice; a
// value that does not fit an int can never be satisfied by a real
// buffer anyway.
func intFromBig(v *big.Int) (int, bool) {
	if !v.IsInt64() {
		return 0, false
	}
	i64 := v.Int64()
	if i64 < 0 || int64(int(i64)) != i64 {
		return 0, false
	}
	return int(i64), true
}

// decodeExtended dispatches on the full starter byte once the primary
// tag is ExtendedTag.
func decodeExtended(starter byte, rest []byte) (term.Term, []byte, error) {
	switch starter {
	case term.FloatExtTag:
		if len(rest) < 8 {
			return nil, nil, ErrUnexpectedEOF
		}
		bits := binary.BigEndian.Uint64(rest[:8])
		return term.Float{Bits: bits}, rest[8:], nil

	case term.ListExtTag:
		length, remainder, err := decodeNonNegativeLength(rest)
		if err != nil {
			return nil, nil, err
		}
		var items []term.Term
		for i := 0; i < length; i++ {
			var item term.Term
			item, remainder, err = Decode(remainder)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, item)
		}
		return term.List{Items: items}, remainder, nil

	case term.FloatRegExtTag:
		inner, remainder, err := Decode(rest)
		if err != nil {
			return nil, nil, err
		}
		innerInt, ok := inner.(term.Integer)
		if !ok {
			return nil, nil, ErrMalformedFraming
		}
		return term.FloatReg{Index: innerInt.Value}, remainder, nil

	case term.AllocListExtTag:
		length, remainder, err := decodeNonNegativeLength(rest)
		if err != nil {
			return nil, nil, err
		}
		var pairs []term.AllocPair
		for i := 0; i < length; i++ {
			var typ, val term.Term
			typ, remainder, err = Decode(remainder)
			if err != nil {
				return nil, nil, err
			}
			val, remainder, err = Decode(remainder)
			if err != nil {
				return nil, nil, err
			}
			pairs = append(pairs, term.AllocPair{Type: typ, Value: val})
		}
		return term.Alloc{Pairs: pairs}, remainder, nil

	case term.LiteralExtTag:
		inner, remainder, err := Decode(rest)
		if err != nil {
			return nil, nil, err
		}
		numeric, ok := term.NumericPayload(inner)
		if !ok {
			return nil, nil, ErrMalformedFraming
		}
		return term.Literal{Index: numeric}, remainder, nil

	case term.TypedRegExtTag:
		register, remainder, err := Decode(rest)
		if err != nil {
			return nil, nil, err
		}
		typeTerm, remainder2, err := Decode(remainder)
		if err != nil {
			return nil, nil, err
		}
		typeInt, ok := typeTerm.(term.Integer)
		if !ok {
			return nil, nil, ErrMalformedFraming
		}
		return term.TypedReg{Register: register, Type: typeInt.Value}, remainder2, nil

	default:
		// Unknown extended sub-tag: decode its value using the same
		// length-form rules, sign extension suppressed, and preserve
		// the sub-tag for bit-identical re-encoding.
		v, remainder, err := decodeLengthForm(starter, rest, false)
		if err != nil {
			return nil, nil, err
		}
		return term.Extended{SubTag: starter & 0xF8, Value: v}, remainder, nil
	}
}

// decodeNonNegativeLength decodes a compact term constrained to a
// non-negative Integer, used for the length prefix of List and Alloc
// .
func decodeNonNegativeLength(input []byte) (int, []byte, error) {
	lengthTerm, remainder, err := Decode(input)
	if err != nil {
		return 0, nil, err
	}
	lengthInt, ok := lengthTerm.(term.Integer)
	if !ok || lengthInt.Value.Sign() < 0 {
		return 0, nil, ErrMalformedFraming
	}
	n, ok := intFromBig(lengthInt.Value)
	if !ok {
		return 0, nil, ErrMalformedFraming
	}
	return n, remainder, nil
}
