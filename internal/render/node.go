// Package render turns a decoded term.Term tree into two output
// surfaces: styled text for a human reading a terminal, and a
// deterministic CBOR document for a tool consuming the tree
// programmatically. The wire format the codec package implements is
// already the canonical interchange encoding, so render never
// produces JSON — CBOR is the only machine-facing surface, and it
// exists for tools that would rather decode a self-describing
// document than re-parse the compact term format themselves.
package render

import (
	"math/big"

	"github.com/diodechain/beamterms/term"
)

// Node is the CBOR-serializable projection of a term.Term. Unlike
// term.Term itself, Node carries an explicit Kind discriminator
// instead of relying on Go's concrete type, so it survives encoding
// as a plain value without needing custom CBOR tag registration for
// an interface field.
type Node struct {
	Kind string `cbor:"kind"`

	Value *big.Int `cbor:"value,omitempty"`
	Bits  uint64   `cbor:"bits,omitempty"`

	Items []Node `cbor:"items,omitempty"`
	Pairs []Pair `cbor:"pairs,omitempty"`

	Register *Node    `cbor:"register,omitempty"`
	Type     *big.Int `cbor:"type,omitempty"`

	SubTag byte `cbor:"sub_tag,omitempty"`
}

// Pair is one (type, value) entry of an Alloc node.
type Pair struct {
	Type  Node `cbor:"type"`
	Value Node `cbor:"value"`
}

// Build converts a term.Term into its Node projection.
func Build(t term.Term) Node {
	switch v := t.(type) {
	case term.XReg:
		return Node{Kind: "xreg", Value: v.Index}
	case term.YReg:
		return Node{Kind: "yreg", Value: v.Index}
	case term.Label:
		return Node{Kind: "label", Value: v.ID}
	case term.Atom:
		return Node{Kind: "atom", Value: v.Index}
	case term.Literal:
		return Node{Kind: "literal", Value: v.Index}
	case term.Integer:
		return Node{Kind: "integer", Value: v.Value}
	case term.Char:
		return Node{Kind: "char", Value: v.CodePoint}
	case term.Float:
		return Node{Kind: "float", Bits: v.Bits}
	case term.FloatReg:
		return Node{Kind: "floatreg", Value: v.Index}
	case term.TypedReg:
		register := Build(v.Register)
		return Node{Kind: "typedreg", Register: &register, Type: v.Type}
	case term.List:
		items := make([]Node, len(v.Items))
		for i, item := range v.Items {
			items[i] = Build(item)
		}
		return Node{Kind: "list", Items: items}
	case term.Alloc:
		pairs := make([]Pair, len(v.Pairs))
		for i, pair := range v.Pairs {
			pairs[i] = Pair{Type: Build(pair.Type), Value: Build(pair.Value)}
		}
		return Node{Kind: "alloc", Pairs: pairs}
	case term.Extended:
		return Node{Kind: "extended", SubTag: v.SubTag, Value: v.Value}
	default:
		return Node{Kind: "unknown"}
	}
}
