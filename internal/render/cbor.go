package render

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/diodechain/beamterms/term"
)

// encMode is configured for Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest-form integers, no indefinite-length
// items. The same Node value always produces identical bytes, which
// matters for a dump format meant to be diffed across tool runs.
var encMode cbor.EncMode

func init() {
	options := cbor.CoreDetEncOptions()
	mode, err := options.EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
	encMode = mode
}

// MarshalCBOR encodes t's Node projection as a deterministic CBOR
// document.
func MarshalCBOR(t term.Term) ([]byte, error) {
	return encMode.Marshal(Build(t))
}

// EncodeNode encodes a Node tree directly, for callers that already
// built one (e.g. a whole scan report's findings).
func EncodeNode(node Node) ([]byte, error) {
	return encMode.Marshal(node)
}
