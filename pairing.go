package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// GT is an element of the pairing target group.
type GT struct {
	v bls12381.GT
}

// Pair evaluates the optimal ate pairing e(p, q).
func Pair(p *PointG1, q *PointG2) (*GT, error) {
	v, err := bls12381.Pair([]bls12381.G1Affine{p.p}, []bls12381.G2Affine{q.p})
	if err != nil {
		return nil, wrapError(InvalidState, "evaluating pairing", err)
	}
	return &GT{v: v}, nil
}

// Mul returns g * o in GT.
func (g *GT) Mul(o *GT) *GT {
	var r bls12381.GT
	r.Mul(&g.v, &o.v)
	return &GT{v: r}
}

// Pow returns g^s in GT, s interpreted as an unsigned big integer exponent.
func (g *GT) Pow(s *Scalar) *GT {
	var exp big.Int
	s.v.ToBigIntRegular(&exp)
	var r bls12381.GT
	r.Exp(g.v, &exp)
	return &GT{v: r}
}

// Inverse returns g^-1 in GT.
func (g *GT) Inverse() *GT {
	var r bls12381.GT
	r.Inverse(&g.v)
	return &GT{v: r}
}

// Equal reports whether g and o are the same element of GT.
func (g *GT) Equal(o *GT) bool {
	return g.v.Equal(&o.v)
}

// gtCoords lists the 12 Fp12-tower coefficients of a GT element in the
// canonical order used by ToBytes/GTFromBytes, following the tower layout
// C0/C1 -> B0/B1/B2 -> A0/A1 that the kernel's Fp12 type exposes.
func gtCoords(v *bls12381.GT) [12]fp.Element {
	return [12]fp.Element{
		v.C0.B0.A0, v.C0.B0.A1,
		v.C0.B1.A0, v.C0.B1.A1,
		v.C0.B2.A0, v.C0.B2.A1,
		v.C1.B0.A0, v.C1.B0.A1,
		v.C1.B1.A0, v.C1.B1.A1,
		v.C1.B2.A0, v.C1.B2.A1,
	}
}

// ToBytes renders g as 16*MODBYTES bytes: the 12 Fp12-tower coefficients,
// each MODBYTES wide, followed by 4*MODBYTES of reserved zero bytes padding
// the encoding out to the same limb width convention as G1/G2's padded
// coordinates.
func (g *GT) ToBytes() []byte {
	out := make([]byte, 0, gtBytesLen)
	for _, c := range gtCoords(&g.v) {
		out = append(out, fixedBytes(c, MODBYTES)...)
	}
	out = append(out, make([]byte, gtBytesLen-12*MODBYTES)...)
	return out
}

// GTFromBytes decodes the encoding produced by ToBytes.
func GTFromBytes(b []byte) (*GT, error) {
	if len(b) != gtBytesLen {
		return nil, invalidStructure("GT element must be %d bytes, got %d", gtBytesLen, len(b))
	}
	if !isAllZero(b[12*MODBYTES:]) {
		return nil, invalidStructure("GT element has non-zero reserved padding")
	}
	var coeffs [12]fp.Element
	for i := range coeffs {
		coeffs[i].SetBigInt(new(big.Int).SetBytes(b[i*MODBYTES : (i+1)*MODBYTES]))
	}
	var v bls12381.GT
	v.C0.B0.A0, v.C0.B0.A1 = coeffs[0], coeffs[1]
	v.C0.B1.A0, v.C0.B1.A1 = coeffs[2], coeffs[3]
	v.C0.B2.A0, v.C0.B2.A1 = coeffs[4], coeffs[5]
	v.C1.B0.A0, v.C1.B0.A1 = coeffs[6], coeffs[7]
	v.C1.B1.A0, v.C1.B1.A1 = coeffs[8], coeffs[9]
	v.C1.B2.A0, v.C1.B2.A1 = coeffs[10], coeffs[11]
	return &GT{v: v}, nil
}
