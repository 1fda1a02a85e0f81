package term

import (
	"math"
	"math/big"
)

// The New* constructors build terms from native Go integers. They
// exist so callers (and tests) rarely have to reach for math/big
// directly; the struct fields remain *big.Int to stay correct for the
// arbitrarily large indices the large escape-size form can produce.

func NewXReg(n uint64) XReg { return XReg{Index: new(big.Int).SetUint64(n)} }
func NewYReg(n uint64) YReg { return YReg{Index: new(big.Int).SetUint64(n)} }
func NewLabel(n uint64) Label { return Label{ID: new(big.Int).SetUint64(n)} }
func NewAtom(n uint64) Atom { return Atom{Index: new(big.Int).SetUint64(n)} }
func NewLiteral(n uint64) Literal { return Literal{Index: new(big.Int).SetUint64(n)} }
func NewChar(n uint64) Char { return Char{CodePoint: new(big.Int).SetUint64(n)} }
func NewFloatReg(n uint64) FloatReg { return FloatReg{Index: new(big.Int).SetUint64(n)} }

// NewInteger builds an Integer from a signed native int64.
func NewInteger(n int64) Integer { return Integer{Value: big.NewInt(n)} }

// NewFloat builds a Float from a float64.
func NewFloat(f float64) Float { return Float{Bits: math.Float64bits(f)} }
