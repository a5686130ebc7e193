// Package bls implements Boneh-Lynn-Shacham signatures over the BLS12-381
// Type-3 pairing-friendly curve.
//
// Public keys live on G2 (Generator, VerKey; a SignKey is a scalar), signatures live on G1
// (Signature, MultiSignature, ProofOfPossession), and verification reduces
// to a single pairing equality evaluated in GT. Aggregation sums signatures
// on G1; aggregate verification sums verification keys on G2. A verification
// key admitted into an aggregate from an untrusted party must first pass
// VerifyPoP, otherwise the aggregate is subject to a rogue-key attack.
//
// The curve arithmetic itself (field and group operations, the pairing) is
// not implemented here: it is delegated to github.com/consensys/gnark-crypto,
// treated as a reusable arithmetic kernel. This package owns the signature
// scheme, the canonical fixed-width byte encodings, and the two
// domain-separated hash-to-curve functions used for signing and for
// proof-of-possession.
package bls

// MODBYTES is the byte width of the BLS12-381 base field element, and the
// unit the fixed-width wire encodings in this package are expressed in.
const MODBYTES = 48

const (
	scalarBytesLen = MODBYTES
	g1BytesLen     = 4 * MODBYTES
	g2BytesLen     = 4 * MODBYTES
	gtBytesLen     = 16 * MODBYTES
)
