package scan

import (
	"math/big"
	"testing"

	"github.com/diodechain/beamterms/codec"
	"github.com/diodechain/beamterms/term"
)

func encodeOrFatal(t *testing.T, value term.Term) []byte {
	t.Helper()
	out, err := codec.Encode(value)
	if err != nil {
		t.Fatalf("Encode(%v): %v", value, err)
	}
	return out
}

func TestScanFindsBackToBackTerms(t *testing.T) {
	var data []byte
	data = append(data, encodeOrFatal(t, term.NewXReg(3))...)
	data = append(data, encodeOrFatal(t, term.NewInteger(-42))...)
	data = append(data, encodeOrFatal(t, term.NewAtom(7))...)

	report := Scan(data)

	if len(report.Findings) != 3 {
		t.Fatalf("len(Findings) = %d, want 3", len(report.Findings))
	}
	if report.SkippedBytes != 0 {
		t.Fatalf("SkippedBytes = %d, want 0", report.SkippedBytes)
	}
	if report.CanonicalCount() != 3 {
		t.Fatalf("CanonicalCount() = %d, want 3", report.CanonicalCount())
	}

	if report.Findings[1].Term.(term.Integer).Value.Cmp(big.NewInt(-42)) != 0 {
		t.Fatalf("second finding = %v, want Integer(-42)", report.Findings[1].Term)
	}
}

func TestScanResynchronizesAfterOpcodeBytes(t *testing.T) {
	// A single opaque opcode byte (0xFF) followed by a real term. The
	// scanner has no arity table, so it will attempt to decode
	// starting at the opcode byte itself; whether that succeeds
	// depends on how the byte happens to parse, but it must always
	// make forward progress and eventually find the trailing term.
	opcode := []byte{0xFF} // unknown sub-tag 0xF8 with the large-form escape size: the following Label is not an Integer size, so the decode fails and the byte is skipped
	term1 := encodeOrFatal(t, term.NewLabel(5))

	data := append(append([]byte{}, opcode...), term1...)
	report := Scan(data)

	found := false
	for _, finding := range report.Findings {
		if finding.Offset == len(opcode) {
			if label, ok := finding.Term.(term.Label); ok && label.ID.Int64() == 5 {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("did not resynchronize onto the trailing Label term: %+v", report.Findings)
	}
}

func TestScanEmptyInput(t *testing.T) {
	report := Scan(nil)
	if len(report.Findings) != 0 || report.SkippedBytes != 0 {
		t.Fatalf("Scan(nil) = %+v, want zero value", report)
	}
}

func TestScanAllGarbage(t *testing.T) {
	// Each 0x3F is a large-form starter declaring a three-byte
	// payload; no offset has three bytes after it, so every decode
	// runs out of input and every byte is skipped individually.
	data := []byte{0x3F, 0x3F, 0x3F}
	report := Scan(data)
	if len(report.Findings) != 0 {
		t.Fatalf("Findings = %+v, want none", report.Findings)
	}
	if report.SkippedBytes != len(data) {
		t.Fatalf("SkippedBytes = %d, want %d", report.SkippedBytes, len(data))
	}
}
