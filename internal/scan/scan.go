// Package scan implements a best-effort resynchronizing walk over a
// byte buffer that interleaves BEAM opcode bytes with compact terms
// (the shape of a real Code chunk's instruction stream, where each
// opcode is followed by zero or more operand terms). It has no opcode
// arity table: rather than knowing how many operands follow a given
// opcode, it simply tries to decode a term at every offset that the
// previous attempt didn't consume, and reports what it found.
package scan

import (
	"bytes"

	"github.com/diodechain/beamterms/codec"
	"github.com/diodechain/beamterms/term"
)

// Finding is one successfully decoded term at a given offset.
type Finding struct {
	Offset int
	Length int
	Term   term.Term

	// Canonical reports whether re-encoding Term reproduces the exact
	// bytes consumed. A non-canonical finding at an opcode-stream
	// offset usually means the scanner got lucky on a byte pattern
	// that happens to parse as a term but isn't one — encode/decode
	// is only guaranteed to round-trip for bytes a real encoder
	// produced.
	Canonical bool
}

// Report is the result of scanning one buffer.
type Report struct {
	Findings     []Finding
	SkippedBytes int
}

// Scan walks data from offset 0, attempting codec.Decode at each
// position it has not yet consumed. A successful decode is recorded
// as a Finding and advances by the number of bytes consumed; a failed
// decode advances by a single byte and is counted in SkippedBytes.
//
// Scan never returns an error: an unparseable buffer simply produces
// a Report with zero Findings and SkippedBytes equal to len(data).
func Scan(data []byte) Report {
	var report Report
	offset := 0
	for offset < len(data) {
		t, rest, err := codec.Decode(data[offset:])
		if err != nil {
			offset++
			report.SkippedBytes++
			continue
		}

		consumed := len(data[offset:]) - len(rest)
		window := data[offset : offset+consumed]
		canonical := false
		if encoded, encErr := codec.Encode(t); encErr == nil {
			canonical = bytes.Equal(encoded, window)
		}

		report.Findings = append(report.Findings, Finding{
			Offset:    offset,
			Length:    consumed,
			Term:      t,
			Canonical: canonical,
		})
		offset += consumed
	}
	return report
}

// CanonicalCount returns the number of findings whose encoding
// round-tripped exactly.
func (report Report) CanonicalCount() int {
	count := 0
	for _, finding := range report.Findings {
		if finding.Canonical {
			count++
		}
	}
	return count
}
