package codec

import (
	"fmt"
	"math/big"
)

// This file holds the signed/unsigned minimal big-endian byte
// conversions shared by the decoder and the encoder, so they are not
// scattered across decode.go and encode.go. The tag-conditional sign
// rule itself is applied in one place, decode.go's bytesToValue.

// bigFromUnsigned interprets raw as an unsigned big-endian magnitude.
func bigFromUnsigned(raw []byte) *big.Int {
	return new(big.Int).SetBytes(raw)
}

// bigFromTwosComplement interprets raw as a two's-complement signed
// big-endian integer of width len(raw) bytes. Only called when the
// high bit of raw[0] is set; callers must check that first.
func bigFromTwosComplement(raw []byte) *big.Int {
	u := new(big.Int).SetBytes(raw)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(raw)))
	return u.Sub(u, mod)
}

// unsignedMinimalPadded returns the minimum-length unsigned
// big-endian encoding of v, with a leading 0x00 prepended when the
// natural minimal encoding's high bit would otherwise be set. This
// keeps the large-form bytes of a non-negative Integer from ever being
// misread as a sign-extended negative number by the decoder's
// tag-conditional sign rule; the decoder never sign-extends the other
// tags, so for them the extra byte is applied the same way but is not
// needed to keep the value non-negative.
func unsignedMinimalPadded(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	if b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		b = padded
	}
	return b
}

// minimalSignedWidth returns the smallest byte width w such that n
// fits in a signed two's-complement integer of w*8 bits.
func minimalSignedWidth(n *big.Int) int {
	w := 1
	for {
		bits := uint(8*w - 1)
		lo := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits))
		hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
		if n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0 {
			return w
		}
		w++
	}
}

// signedBytesOfWidth renders n as a two's-complement big-endian value
// occupying exactly width bytes. Callers must ensure width is at
// least minimalSignedWidth(n) or the result will not decode back to
// n.
func signedBytesOfWidth(n *big.Int, width int) []byte {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*width))
	val := new(big.Int).Mod(n, mod)
	b := val.Bytes()
	if len(b) == width {
		return b
	}
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	return padded
}

// fixedWidthUnsigned renders v as an unsigned big-endian value
// occupying exactly width bytes, left-padded with zero bytes. It
// errors when v's natural magnitude does not fit in width bytes,
// since the caller has a width fixed by something other than v (a
// sub-tag's own embedded width field) and cannot widen it.
func fixedWidthUnsigned(v *big.Int, width int) ([]byte, error) {
	b := v.Bytes()
	if len(b) > width {
		return nil, fmt.Errorf("codec: value %s does not fit a %d-byte field", v, width)
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out, nil
}
