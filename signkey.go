package bls

// SignKey is a BLS signing key: a secret scalar. A SignKey must never be
// logged or embedded in an error message; this package never does either.
type SignKey struct {
	s     *Scalar
	bytes []byte
}

func newSignKey(s *Scalar) *SignKey {
	return &SignKey{s: s, bytes: s.ToBytes()}
}

// NewSignKey creates a signing key. With no seed it draws fresh OS entropy;
// with a seed it derives deterministically, so the same seed always
// produces the same key.
func NewSignKey(seed ...[]byte) (*SignKey, error) {
	if len(seed) > 1 {
		return nil, invalidStructure("NewSignKey accepts at most one seed")
	}
	var s *Scalar
	var err error
	if len(seed) == 1 {
		s, err = ScalarFromSeed(seed[0])
	} else {
		s, err = RandomScalar()
	}
	if err != nil {
		return nil, err
	}
	return newSignKey(s), nil
}

// SignKeyFromBytes decodes a signing key from its canonical MODBYTES
// encoding.
func SignKeyFromBytes(b []byte) (*SignKey, error) {
	if len(b) != scalarBytesLen {
		return nil, invalidStructure("sign key must be %d bytes, got %d", scalarBytesLen, len(b))
	}
	s, err := ScalarFromBytes(b)
	if err != nil {
		return nil, err
	}
	return newSignKey(s), nil
}

// AsBytes returns the key's canonical encoding, cached at construction.
func (k *SignKey) AsBytes() []byte {
	return k.bytes
}

// Scalar exposes the underlying secret scalar for use by the signing and
// PoP operations in bls.go.
func (k *SignKey) Scalar() *Scalar {
	return k.s
}

// Zeroize overwrites the key's in-memory scalar. Go provides no destructor
// hook, so callers that must guarantee key material does not linger in
// memory need to call this explicitly once the key is no longer needed.
func (k *SignKey) Zeroize() {
	k.s.zeroize()
	for i := range k.bytes {
		k.bytes[i] = 0
	}
}
