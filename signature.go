package bls

// Signature is a BLS signature over a single message, living on G1. There
// is no exported constructor taking a raw G1 point: a Signature only comes
// from Sign, or from decoding bytes produced by a prior Signature.
type Signature struct {
	p     *PointG1
	bytes []byte
}

func newSignature(p *PointG1) *Signature {
	return &Signature{p: p, bytes: p.ToBytes()}
}

// SignatureFromBytes decodes a signature from its canonical G1 encoding.
func SignatureFromBytes(b []byte) (*Signature, error) {
	p, err := G1FromBytes(b)
	if err != nil {
		return nil, err
	}
	return newSignature(p), nil
}

// AsBytes returns the signature's canonical encoding, cached at
// construction.
func (s *Signature) AsBytes() []byte {
	return s.bytes
}

// Point exposes the underlying G1 point for use by the verification
// equations in bls.go.
func (s *Signature) Point() *PointG1 {
	return s.p
}

// Copy returns an independent copy of s.
func (s *Signature) Copy() *Signature {
	p := *s.p
	b := make([]byte, len(s.bytes))
	copy(b, s.bytes)
	return &Signature{p: &p, bytes: b}
}

// MultiSignature is the aggregate of one or more Signatures, still a
// single G1 point.
type MultiSignature struct {
	p     *PointG1
	bytes []byte
}

func newMultiSignature(p *PointG1) *MultiSignature {
	return &MultiSignature{p: p, bytes: p.ToBytes()}
}

// MultiSignatureFromBytes decodes an aggregate signature from its
// canonical G1 encoding.
func MultiSignatureFromBytes(b []byte) (*MultiSignature, error) {
	p, err := G1FromBytes(b)
	if err != nil {
		return nil, err
	}
	return newMultiSignature(p), nil
}

// AsBytes returns the aggregate signature's canonical encoding, cached at
// construction.
func (m *MultiSignature) AsBytes() []byte {
	return m.bytes
}

// Point exposes the underlying G1 point for use by VerifyMulti.
func (m *MultiSignature) Point() *PointG1 {
	return m.p
}

// Copy returns an independent copy of m.
func (m *MultiSignature) Copy() *MultiSignature {
	p := *m.p
	b := make([]byte, len(m.bytes))
	copy(b, m.bytes)
	return &MultiSignature{p: &p, bytes: b}
}

// ProofOfPossession binds a VerKey to its SignKey holder, on G1. It is
// verified against a VerKey's bytes under the Keccak-256 PoP domain, never
// the SHA-256 signing domain, so a PoP can never double as a signature
// over the key's own encoding.
type ProofOfPossession struct {
	p     *PointG1
	bytes []byte
}

func newProofOfPossession(p *PointG1) *ProofOfPossession {
	return &ProofOfPossession{p: p, bytes: p.ToBytes()}
}

// ProofOfPossessionFromBytes decodes a PoP from its canonical G1 encoding.
func ProofOfPossessionFromBytes(b []byte) (*ProofOfPossession, error) {
	p, err := G1FromBytes(b)
	if err != nil {
		return nil, err
	}
	return newProofOfPossession(p), nil
}

// AsBytes returns the PoP's canonical encoding, cached at construction.
func (pop *ProofOfPossession) AsBytes() []byte {
	return pop.bytes
}

// Point exposes the underlying G1 point for use by VerifyPoP.
func (pop *ProofOfPossession) Point() *PointG1 {
	return pop.p
}

// Copy returns an independent copy of pop.
func (pop *ProofOfPossession) Copy() *ProofOfPossession {
	p := *pop.p
	b := make([]byte, len(pop.bytes))
	copy(b, pop.bytes)
	return &ProofOfPossession{p: &p, bytes: b}
}
