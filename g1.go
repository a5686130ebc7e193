package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// g1CofactorHex is the BLS12-381 G1 cofactor: E(Fp) has order r*h1, and a
// point found by solving the curve equation for an arbitrary X lands on
// E(Fp), not necessarily in the prime-order subgroup G1. from_hash clears
// it by one scalar multiplication.
const g1CofactorHex = "396c8c005555e1568c00aaab0000aaab"

var g1Cofactor = mustBigIntFromHex(g1CofactorHex)

func mustBigIntFromHex(h string) *big.Int {
	n, ok := new(big.Int).SetString(h, 16)
	if !ok {
		panic("bls: invalid hex constant " + h)
	}
	return n
}

// PointG1 is a point on the BLS12-381 G1 subgroup.
type PointG1 struct {
	p bls12381.G1Affine
}

// RandomG1 returns a uniformly random point in G1.
func RandomG1() (*PointG1, error) {
	s, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	return G1Generator().Mul(s), nil
}

// InfinityG1 returns the identity element of G1.
func InfinityG1() *PointG1 {
	var p bls12381.G1Affine
	p.SetInfinity()
	return &PointG1{p: p}
}

var g1Gen = loadG1Generator()

func loadG1Generator() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// G1Generator returns the curve's canonical G1 base point. This is distinct
// from a protocol Generator, which lives on G2.
func G1Generator() *PointG1 {
	return &PointG1{p: g1Gen}
}

// Add returns p + q.
func (p *PointG1) Add(q *PointG1) *PointG1 {
	var r bls12381.G1Affine
	r.Add(&p.p, &q.p)
	return &PointG1{p: r}
}

// Sub returns p - q.
func (p *PointG1) Sub(q *PointG1) *PointG1 {
	var neg bls12381.G1Affine
	neg.Neg(&q.p)
	var r bls12381.G1Affine
	r.Add(&p.p, &neg)
	return &PointG1{p: r}
}

// Neg returns -p.
func (p *PointG1) Neg() *PointG1 {
	var r bls12381.G1Affine
	r.Neg(&p.p)
	return &PointG1{p: r}
}

// Mul returns s*p.
func (p *PointG1) Mul(s *Scalar) *PointG1 {
	var exp big.Int
	s.v.ToBigIntRegular(&exp)
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p.p, &exp)
	return &PointG1{p: r}
}

// IsInfinity reports whether p is the identity element.
func (p *PointG1) IsInfinity() bool {
	return p.p.IsInfinity()
}

// Equal reports whether p and q are the same group element.
func (p *PointG1) Equal(q *PointG1) bool {
	return p.p.Equal(&q.p)
}

// g1FromHash maps digest to a point in G1 via try-and-increment: interpret
// digest as a candidate X coordinate, solve the curve equation for Y, and if
// no solution exists (X does not lie on the curve) increment X and retry.
// The resulting on-curve point is cofactor-cleared into the prime-order
// subgroup. This is deterministic given digest and MUST stay bit-identical
// across implementations on this curve, or signatures produced by one
// implementation will not verify under another.
func g1FromHash(digest []byte) *PointG1 {
	s, err := ScalarFromBytes(digest)
	if err != nil {
		// digest is never longer than MODBYTES in this package's callers
		// (SHA-256 and Keccak-256 both produce 32-byte digests); a longer
		// input here is a caller bug, not a runtime condition.
		panic(err)
	}
	var x big.Int
	s.v.ToBigIntRegular(&x)

	var candidate fp.Element
	var y fp.Element
	for {
		candidate.SetBigInt(&x)
		rhs := curveRHS(candidate)
		if y.Sqrt(&rhs) != nil {
			break
		}
		x.Add(&x, big.NewInt(1))
	}

	var onCurve bls12381.G1Affine
	onCurve.X = candidate
	onCurve.Y = y

	var cleared bls12381.G1Affine
	cleared.ScalarMultiplication(&onCurve, g1Cofactor)
	return &PointG1{p: cleared}
}

// curveRHS computes x^3 + b for the BLS12-381 short Weierstrass equation
// y^2 = x^3 + 4.
func curveRHS(x fp.Element) fp.Element {
	var rhs, b fp.Element
	b.SetUint64(4)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	rhs.Add(&rhs, &b)
	return rhs
}

// ToBytes renders p in the canonical 4*MODBYTES G1 encoding: infinity is
// the all-zero string; otherwise each affine coordinate occupies a
// zero-padded 2*MODBYTES slot, X then Y.
func (p *PointG1) ToBytes() []byte {
	if p.p.IsInfinity() {
		return make([]byte, g1BytesLen)
	}
	out := make([]byte, 0, g1BytesLen)
	out = append(out, padCoordinate(fixedBytes(p.p.X, MODBYTES))...)
	out = append(out, padCoordinate(fixedBytes(p.p.Y, MODBYTES))...)
	return out
}

// G1FromBytes decodes the canonical G1 encoding, validating length, padding,
// and subgroup membership.
func G1FromBytes(b []byte) (*PointG1, error) {
	if len(b) != g1BytesLen {
		return nil, invalidStructure("G1 point must be %d bytes, got %d", g1BytesLen, len(b))
	}
	if isAllZero(b) {
		return InfinityG1(), nil
	}
	xBytes, err := stripCoordinate(b[:2*MODBYTES])
	if err != nil {
		return nil, err
	}
	yBytes, err := stripCoordinate(b[2*MODBYTES:])
	if err != nil {
		return nil, err
	}
	var x, y fp.Element
	x.SetBigInt(new(big.Int).SetBytes(xBytes))
	y.SetBigInt(new(big.Int).SetBytes(yBytes))

	var p bls12381.G1Affine
	p.X = x
	p.Y = y
	if !p.IsOnCurve() {
		return nil, invalidStructure("G1 point is not on the curve")
	}
	if !p.IsInSubGroup() {
		return nil, invalidStructure("G1 point is not in the prime-order subgroup")
	}
	return &PointG1{p: p}, nil
}
