// Package scancache persists internal/scan reports on disk, keyed by
// a domain-separated BLAKE3 digest of the scanned bytes, so that
// re-running `beamterms scan` over an unchanged corpus is a cache hit
// instead of a full re-scan. Entries are stored CBOR-encoded and
// zstd-compressed.
package scancache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/diodechain/beamterms/internal/scan"
)

// digestDomainKey separates scan-cache digests from any other use of
// BLAKE3 keyed hashing that might be added to this module later, so
// the same input bytes never collide across unrelated domains.
var digestDomainKey = [32]byte{
	'b', 'e', 'a', 'm', 't', 'e', 'r', 'm', 's', '.', 's', 'c', 'a', 'n', 'c', 'a',
	'c', 'h', 'e', '.', 'v', '1',
}

// Digest computes the cache key for a scan of data.
func Digest(data []byte) [32]byte {
	hasher, err := blake3.NewKeyed(digestDomainKey[:])
	if err != nil {
		panic("scancache: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// FindingRecord is the serializable projection of a scan.Finding:
// enough to report a scan's shape without round-tripping the full
// term.Term tree (which holds *big.Int fields that would need custom
// CBOR tag handling to survive storage as an interface value).
type FindingRecord struct {
	Offset    int64  `cbor:"offset"`
	Length    int64  `cbor:"length"`
	Kind      string `cbor:"kind"`
	Canonical bool   `cbor:"canonical"`
}

// Record is the cached, serializable form of a scan.Report.
type Record struct {
	Findings     []FindingRecord `cbor:"findings"`
	SkippedBytes int64           `cbor:"skipped_bytes"`
}

// NewRecord projects a live scan.Report into its cacheable form.
func NewRecord(report scan.Report) Record {
	record := Record{SkippedBytes: int64(report.SkippedBytes)}
	record.Findings = make([]FindingRecord, len(report.Findings))
	for i, finding := range report.Findings {
		record.Findings[i] = FindingRecord{
			Offset:    int64(finding.Offset),
			Length:    int64(finding.Length),
			Kind:      fmt.Sprintf("%T", finding.Term),
			Canonical: finding.Canonical,
		}
	}
	return record
}

// Cache is a directory of zstd-compressed, CBOR-encoded scan records,
// one file per digest.
type Cache struct {
	dir string
}

// Open prepares a cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scancache: creating cache directory %s: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(digest [32]byte) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x.zst", digest))
}

// Get returns the cached record for digest, reporting false if no
// entry exists.
func (c *Cache) Get(digest [32]byte) (Record, bool, error) {
	compressed, err := os.ReadFile(c.path(digest))
	if os.IsNotExist(err) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("scancache: reading entry: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return Record{}, false, fmt.Errorf("scancache: initializing zstd reader: %w", err)
	}
	defer decoder.Close()

	raw, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return Record{}, false, fmt.Errorf("scancache: decompressing entry: %w", err)
	}

	var record Record
	if err := cbor.Unmarshal(raw, &record); err != nil {
		return Record{}, false, fmt.Errorf("scancache: decoding entry: %w", err)
	}
	return record, true, nil
}

// Put stores record under digest, overwriting any existing entry.
func (c *Cache) Put(digest [32]byte, record Record) error {
	raw, err := cbor.Marshal(record)
	if err != nil {
		return fmt.Errorf("scancache: encoding entry: %w", err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("scancache: initializing zstd writer: %w", err)
	}
	defer encoder.Close()
	compressed := encoder.EncodeAll(raw, nil)

	destination := c.path(digest)
	tmp := destination + ".tmp"
	if err := os.WriteFile(tmp, compressed, 0o644); err != nil {
		return fmt.Errorf("scancache: writing entry: %w", err)
	}
	if err := os.Rename(tmp, destination); err != nil {
		return fmt.Errorf("scancache: installing entry: %w", err)
	}
	return nil
}
