package scancache

import (
	"path/filepath"
	"testing"

	"github.com/diodechain/beamterms/internal/scan"
)

func TestPutGetRoundtrip(t *testing.T) {
	dir := t.TempDir()
	cache, err := Open(filepath.Join(dir, "scans"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	report := scan.Scan([]byte{0x30, 0x51})
	record := NewRecord(report)
	digest := Digest([]byte{0x30, 0x51})

	if err := cache.Put(digest, record); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := cache.Get(digest)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("Get: entry not found after Put")
	}
	if len(got.Findings) != len(record.Findings) || got.SkippedBytes != record.SkippedBytes {
		t.Fatalf("Get() = %+v, want %+v", got, record)
	}
}

func TestGetMissingEntry(t *testing.T) {
	cache, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	_, ok, err := cache.Get(Digest([]byte("absent")))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("Get reported a hit for an entry that was never stored")
	}
}

func TestDigestIsStableAndDomainSeparated(t *testing.T) {
	a := Digest([]byte("same bytes"))
	b := Digest([]byte("same bytes"))
	if a != b {
		t.Fatalf("Digest is not deterministic: %x != %x", a, b)
	}

	c := Digest([]byte("different bytes"))
	if a == c {
		t.Fatalf("distinct inputs produced the same digest")
	}
}
