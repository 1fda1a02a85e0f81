package codec

import (
	"testing"

	"github.com/diodechain/beamterms/term"
)

func TestRoundtripPredicate(t *testing.T) {
	encoded, err := Encode(term.List{Items: []term.Term{term.NewAtom(1), term.NewInteger(2)}})
	if err != nil {
		t.Fatalf("Encode returned error %v", err)
	}
	if !Roundtrip(encoded) {
		t.Errorf("Roundtrip(% x) = false, want true", encoded)
	}
}

func TestRoundtripPredicateRejectsTrailingBytes(t *testing.T) {
	encoded, err := Encode(term.NewXReg(0))
	if err != nil {
		t.Fatalf("Encode returned error %v", err)
	}
	withTrailer := append(encoded, 0xFF)
	if Roundtrip(withTrailer) {
		t.Errorf("Roundtrip with trailing bytes should be false")
	}
}

func TestRoundtripPredicateRejectsTruncated(t *testing.T) {
	if Roundtrip([]byte{0x0B}) {
		t.Errorf("Roundtrip of a truncated medium form should be false")
	}
	if Roundtrip(nil) {
		t.Errorf("Roundtrip of empty input should be false")
	}
}

func TestDecodeAllMatchesSequenceOfEncodes(t *testing.T) {
	terms := []term.Term{term.NewXReg(0), term.NewYReg(1), term.NewLabel(2)}
	var buf []byte
	for _, tm := range terms {
		encoded, err := Encode(tm)
		if err != nil {
			t.Fatalf("Encode returned error %v", err)
		}
		buf = append(buf, encoded...)
	}

	decoded, err := DecodeAll(buf)
	if err != nil {
		t.Fatalf("DecodeAll returned error %v", err)
	}
	for i := range terms {
		if !term.Equal(decoded[i], terms[i]) {
			t.Errorf("term %d = %#v, want %#v", i, decoded[i], terms[i])
		}
	}
}
