package term

import "math/big"

// Equal reports whether a and b denote the same term. Equality is
// structural: integer payloads compare by value, Float payloads
// compare by bit pattern (so two NaNs with different bit patterns are
// not Equal), and List/Alloc compare element-wise in order.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case XReg:
		bv, ok := b.(XReg)
		return ok && eqBig(av.Index, bv.Index)
	case YReg:
		bv, ok := b.(YReg)
		return ok && eqBig(av.Index, bv.Index)
	case Label:
		bv, ok := b.(Label)
		return ok && eqBig(av.ID, bv.ID)
	case Atom:
		bv, ok := b.(Atom)
		return ok && eqBig(av.Index, bv.Index)
	case Literal:
		bv, ok := b.(Literal)
		return ok && eqBig(av.Index, bv.Index)
	case Integer:
		bv, ok := b.(Integer)
		return ok && eqBig(av.Value, bv.Value)
	case Char:
		bv, ok := b.(Char)
		return ok && eqBig(av.CodePoint, bv.CodePoint)
	case Float:
		bv, ok := b.(Float)
		return ok && av.Bits == bv.Bits
	case FloatReg:
		bv, ok := b.(FloatReg)
		return ok && eqBig(av.Index, bv.Index)
	case TypedReg:
		bv, ok := b.(TypedReg)
		return ok && Equal(av.Register, bv.Register) && eqBig(av.Type, bv.Type)
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case Alloc:
		bv, ok := b.(Alloc)
		if !ok || len(av.Pairs) != len(bv.Pairs) {
			return false
		}
		for i := range av.Pairs {
			if !Equal(av.Pairs[i].Type, bv.Pairs[i].Type) || !Equal(av.Pairs[i].Value, bv.Pairs[i].Value) {
				return false
			}
		}
		return true
	case Extended:
		bv, ok := b.(Extended)
		return ok && av.SubTag == bv.SubTag && eqBig(av.Value, bv.Value)
	default:
		return false
	}
}

func eqBig(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
