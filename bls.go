package bls

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// hSig maps a message into G1 under the signing domain, using SHA-256.
func hSig(msg []byte) *PointG1 {
	digest := sha256.Sum256(msg)
	return g1FromHash(digest[:])
}

// hPop maps a verification key's bytes into G1 under the proof-of-possession
// domain, using Keccak-256. Using a distinct hash function from hSig (rather
// than merely a distinct prefix) keeps the two domains separated even if a
// future caller feeds the same domain-tag convention into both: no secret
// scalar can produce the same G1 point under hSig and hPop.
func hPop(vkBytes []byte) *PointG1 {
	digest := sha3.NewLegacyKeccak256()
	digest.Write(vkBytes)
	return g1FromHash(digest.Sum(nil))
}

// Sign produces a signature over msg under sk.
func Sign(msg []byte, sk *SignKey) *Signature {
	return newSignature(hSig(msg).Mul(sk.Scalar()))
}

// Verify reports whether sig is a valid signature over msg under vk,
// relative to generator g: e(sig, g) == e(H(msg), vk).
func Verify(sig *Signature, msg []byte, vk *VerKey, g *Generator) bool {
	lhs, err := Pair(sig.Point(), g.Point())
	if err != nil {
		return false
	}
	rhs, err := Pair(hSig(msg), vk.Point())
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// NewPoP produces a proof of possession binding vk to sk: proves the caller
// holds the secret scalar behind vk, without revealing it.
func NewPoP(vk *VerKey, sk *SignKey) *ProofOfPossession {
	return newProofOfPossession(hPop(vk.AsBytes()).Mul(sk.Scalar()))
}

// VerifyPoP reports whether pop is a valid proof of possession for vk under
// generator g: e(pop, g) == e(H_pop(vk), vk). A VerKey accepted from an
// untrusted party for aggregation MUST pass this check first, or the
// aggregate is subject to a rogue-key attack.
func VerifyPoP(pop *ProofOfPossession, vk *VerKey, g *Generator) bool {
	lhs, err := Pair(pop.Point(), g.Point())
	if err != nil {
		return false
	}
	rhs, err := Pair(hPop(vk.AsBytes()), vk.Point())
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// Aggregate sums sigs into a single MultiSignature. An empty input is
// rejected with InvalidStructure: the G1 identity it would otherwise
// produce only ever verifies against the trivial all-identity aggregate
// key, which is never a caller's actual intent.
func Aggregate(sigs []*Signature) (*MultiSignature, error) {
	if len(sigs) == 0 {
		return nil, invalidStructure("cannot aggregate an empty signature set")
	}
	acc := sigs[0].Point()
	for _, s := range sigs[1:] {
		acc = acc.Add(s.Point())
	}
	return newMultiSignature(acc), nil
}

// VerifyMulti reports whether msig is a valid aggregate of signatures over
// the single common message msg under the given verification keys, relative
// to generator g: e(msig, g) == e(H(msg), sum(vks)). Every vk admitted here
// from an untrusted source must already have passed VerifyPoP.
func VerifyMulti(msig *MultiSignature, msg []byte, vks []*VerKey, g *Generator) bool {
	if len(vks) == 0 {
		return false
	}
	accVK := vks[0].Point()
	for _, vk := range vks[1:] {
		accVK = accVK.Add(vk.Point())
	}
	lhs, err := Pair(msig.Point(), g.Point())
	if err != nil {
		return false
	}
	rhs, err := Pair(hSig(msg), accVK)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}
