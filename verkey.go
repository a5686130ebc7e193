package bls

// VerKey is a BLS verification key: sk*g on G2.
type VerKey struct {
	p     *PointG2
	bytes []byte
}

func newVerKey(p *PointG2) *VerKey {
	return &VerKey{p: p, bytes: p.ToBytes()}
}

// NewVerKey derives the verification key for sk under generator g.
func NewVerKey(g *Generator, sk *SignKey) *VerKey {
	return newVerKey(g.Point().Mul(sk.Scalar()))
}

// VerKeyFromBytes decodes a verification key from its canonical G2
// encoding. No subgroup check is performed: a VerKey accepted from an
// untrusted source must be screened with VerifyPoP before it is trusted
// for aggregation.
func VerKeyFromBytes(b []byte) (*VerKey, error) {
	p, err := G2FromBytes(b)
	if err != nil {
		return nil, err
	}
	return newVerKey(p), nil
}

// AsBytes returns the key's canonical encoding, cached at construction.
func (k *VerKey) AsBytes() []byte {
	return k.bytes
}

// Point exposes the underlying G2 point for use by the verification
// equations in bls.go.
func (k *VerKey) Point() *PointG2 {
	return k.p
}
