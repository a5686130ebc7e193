package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// PointG2 is a point on the BLS12-381 G2 subgroup.
type PointG2 struct {
	p bls12381.G2Affine
}

// RandomG2 returns a uniformly random point in G2.
func RandomG2() (*PointG2, error) {
	s, err := RandomScalar()
	if err != nil {
		return nil, err
	}
	return G2Generator().Mul(s), nil
}

// InfinityG2 returns the identity element of G2.
func InfinityG2() *PointG2 {
	var p bls12381.G2Affine
	p.SetInfinity()
	return &PointG2{p: p}
}

var g2Gen = loadG2Generator()

func loadG2Generator() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// G2Generator returns the curve's canonical G2 base point — the fixed
// point every deployment's protocol Generator is a random nonzero scalar
// multiple of.
func G2Generator() *PointG2 {
	return &PointG2{p: g2Gen}
}

// Add returns p + q.
func (p *PointG2) Add(q *PointG2) *PointG2 {
	var r bls12381.G2Affine
	r.Add(&p.p, &q.p)
	return &PointG2{p: r}
}

// Sub returns p - q.
func (p *PointG2) Sub(q *PointG2) *PointG2 {
	var neg bls12381.G2Affine
	neg.Neg(&q.p)
	var r bls12381.G2Affine
	r.Add(&p.p, &neg)
	return &PointG2{p: r}
}

// Neg returns -p.
func (p *PointG2) Neg() *PointG2 {
	var r bls12381.G2Affine
	r.Neg(&p.p)
	return &PointG2{p: r}
}

// Mul returns s*p.
func (p *PointG2) Mul(s *Scalar) *PointG2 {
	var exp big.Int
	s.v.ToBigIntRegular(&exp)
	var r bls12381.G2Affine
	r.ScalarMultiplication(&p.p, &exp)
	return &PointG2{p: r}
}

// IsInfinity reports whether p is the identity element.
func (p *PointG2) IsInfinity() bool {
	return p.p.IsInfinity()
}

// Equal reports whether p and q are the same group element.
func (p *PointG2) Equal(q *PointG2) bool {
	return p.p.Equal(&q.p)
}

// ToBytes renders p in the canonical 4*MODBYTES G2 encoding: infinity is
// the all-zero string; otherwise X then Y, each an Fp2
// coordinate stored as its two Fp limbs (A0 then A1) with no further
// padding — G2's native coordinate width already matches 2*MODBYTES.
func (p *PointG2) ToBytes() []byte {
	if p.p.IsInfinity() {
		return make([]byte, g2BytesLen)
	}
	out := make([]byte, 0, g2BytesLen)
	out = append(out, fixedBytes(p.p.X.A0, MODBYTES)...)
	out = append(out, fixedBytes(p.p.X.A1, MODBYTES)...)
	out = append(out, fixedBytes(p.p.Y.A0, MODBYTES)...)
	out = append(out, fixedBytes(p.p.Y.A1, MODBYTES)...)
	return out
}

// G2FromBytes decodes the canonical G2 encoding, validating length and
// curve membership. No subgroup check is performed; callers admitting
// untrusted verification keys into an aggregate MUST validate them with
// VerifyPoP first.
func G2FromBytes(b []byte) (*PointG2, error) {
	if len(b) != g2BytesLen {
		return nil, invalidStructure("G2 point must be %d bytes, got %d", g2BytesLen, len(b))
	}
	if isAllZero(b) {
		return InfinityG2(), nil
	}
	var x0, x1, y0, y1 fp.Element
	x0.SetBigInt(new(big.Int).SetBytes(b[0*MODBYTES : 1*MODBYTES]))
	x1.SetBigInt(new(big.Int).SetBytes(b[1*MODBYTES : 2*MODBYTES]))
	y0.SetBigInt(new(big.Int).SetBytes(b[2*MODBYTES : 3*MODBYTES]))
	y1.SetBigInt(new(big.Int).SetBytes(b[3*MODBYTES : 4*MODBYTES]))

	var p bls12381.G2Affine
	p.X.A0, p.X.A1 = x0, x1
	p.Y.A0, p.Y.A1 = y0, y1
	if !p.IsOnCurve() {
		return nil, invalidStructure("G2 point is not on the curve")
	}
	return &PointG2{p: p}, nil
}
