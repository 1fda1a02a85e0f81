package term

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Term
		equal bool
	}{
		{"same xreg", NewXReg(5), NewXReg(5), true},
		{"different xreg", NewXReg(5), NewXReg(6), false},
		{"xreg vs yreg", NewXReg(5), NewYReg(5), false},
		{"same integer", NewInteger(-1), NewInteger(-1), true},
		{"different integer sign", NewInteger(1), NewInteger(-1), false},
		{"float bit pattern", NewFloat(3.14159), NewFloat(3.14159), true},
		{"float nan bit patterns differ", Float{Bits: 0x7ff8000000000001}, Float{Bits: 0x7ff8000000000002}, false},
		{
			"typed reg",
			TypedReg{Register: NewXReg(5), Type: NewInteger(42).Value},
			TypedReg{Register: NewXReg(5), Type: NewInteger(42).Value},
			true,
		},
		{
			"list order matters",
			List{Items: []Term{NewAtom(1), NewInteger(2)}},
			List{Items: []Term{NewInteger(2), NewAtom(1)}},
			false,
		},
		{
			"alloc pairs",
			Alloc{Pairs: []AllocPair{{Type: NewAtom(1), Value: NewInteger(2)}}},
			Alloc{Pairs: []AllocPair{{Type: NewAtom(1), Value: NewInteger(2)}}},
			true,
		},
		{"extended subtag", Extended{SubTag: 0x0F, Value: NewInteger(3).Value}, Extended{SubTag: 0x0F, Value: NewInteger(3).Value}, true},
		{"extended different subtag", Extended{SubTag: 0x0F, Value: NewInteger(3).Value}, Extended{SubTag: 0x1F, Value: NewInteger(3).Value}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.equal {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.equal)
			}
		})
	}
}

func TestNumericPayload(t *testing.T) {
	if v, ok := NumericPayload(NewAtom(7)); !ok || v.Int64() != 7 {
		t.Errorf("NumericPayload(Atom) = %v, %v", v, ok)
	}
	if _, ok := NumericPayload(NewFloat(1.0)); ok {
		t.Errorf("NumericPayload(Float) should report false")
	}
}
