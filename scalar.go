package bls

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// entropyBytes is the amount of OS entropy drawn to seed a random scalar,
// matching the AMCL-style RNG convention the original kernel documents:
// "AMCL recommends to initialise from at least 128 bytes".
const entropyBytes = 128

// Scalar is an integer modulo the BLS12-381 subgroup order r.
type Scalar struct {
	v fr.Element
}

// RandomScalar samples a scalar uniformly from [0, r) using OS entropy.
func RandomScalar() (*Scalar, error) {
	seed := make([]byte, entropyBytes)
	if _, err := rand.Read(seed); err != nil {
		return nil, wrapError(IO, "reading OS entropy", err)
	}
	bi := new(big.Int).SetBytes(seed)
	bi.Mod(bi, fr.Modulus())
	var v fr.Element
	v.SetBigInt(bi)
	return &Scalar{v: v}, nil
}

// ScalarFromSeed derives a scalar deterministically from a caller-supplied
// seed of exactly MODBYTES bytes. Identical seeds MUST yield identical
// scalars, including across independent implementations of this curve.
func ScalarFromSeed(seed []byte) (*Scalar, error) {
	if len(seed) != scalarBytesLen {
		return nil, invalidStructure("seed must be %d bytes, got %d", scalarBytesLen, len(seed))
	}
	bi := new(big.Int).SetBytes(seed)
	bi.Mod(bi, fr.Modulus())
	var v fr.Element
	v.SetBigInt(bi)
	return &Scalar{v: v}, nil
}

// ScalarFromInt64 builds a scalar from a small well-known integer. Used by
// tests, where pulling in OS entropy or a seed would be overkill.
func ScalarFromInt64(n int64) *Scalar {
	var v fr.Element
	v.SetInt64(n)
	return &Scalar{v: v}
}

// ScalarFromBytes decodes a big-endian scalar. Inputs shorter than MODBYTES
// are accepted and treated as left-padded with zeros; longer inputs are
// rejected.
func ScalarFromBytes(b []byte) (*Scalar, error) {
	if len(b) > scalarBytesLen {
		return nil, invalidStructure("scalar must be at most %d bytes, got %d", scalarBytesLen, len(b))
	}
	bi := new(big.Int).SetBytes(b)
	bi.Mod(bi, fr.Modulus())
	var v fr.Element
	v.SetBigInt(bi)
	return &Scalar{v: v}, nil
}

// ToBytes renders the scalar as MODBYTES big-endian bytes.
func (s *Scalar) ToBytes() []byte {
	var bi big.Int
	s.v.ToBigIntRegular(&bi)
	buf := make([]byte, scalarBytesLen)
	bi.FillBytes(buf)
	return buf
}

// ToString renders the scalar as uppercase hex of its canonical bytes.
func (s *Scalar) ToString() string {
	return strings.ToUpper(hex.EncodeToString(s.ToBytes()))
}

// ScalarFromString parses the output of ToString.
func ScalarFromString(h string) (*Scalar, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, invalidStructureCause(err, "invalid scalar hex")
	}
	return ScalarFromBytes(b)
}

// AddMod returns s + o mod r.
func (s *Scalar) AddMod(o *Scalar) *Scalar {
	var v fr.Element
	v.Add(&s.v, &o.v)
	return &Scalar{v: v}
}

// SubMod returns s - o mod r, always in [0, r).
func (s *Scalar) SubMod(o *Scalar) *Scalar {
	var v fr.Element
	v.Sub(&s.v, &o.v)
	return &Scalar{v: v}
}

// MulMod returns s * o mod r.
func (s *Scalar) MulMod(o *Scalar) *Scalar {
	var v fr.Element
	v.Mul(&s.v, &o.v)
	return &Scalar{v: v}
}

// PowMod returns s^o mod r, where o is interpreted as a regular big integer
// exponent (not reduced mod r, since exponents live in ℤ, not ℤ_r).
func (s *Scalar) PowMod(o *Scalar) *Scalar {
	var exp big.Int
	o.v.ToBigIntRegular(&exp)
	var v fr.Element
	v.Exp(s.v, &exp)
	return &Scalar{v: v}
}

// NegMod returns -s mod r.
func (s *Scalar) NegMod() *Scalar {
	var v fr.Element
	v.Neg(&s.v)
	return &Scalar{v: v}
}

// Inverse returns s^-1 mod r. Fails with InvalidStructure if s is zero.
func (s *Scalar) Inverse() (*Scalar, error) {
	if s.v.IsZero() {
		return nil, invalidStructure("cannot invert zero scalar")
	}
	var v fr.Element
	v.Inverse(&s.v)
	return &Scalar{v: v}, nil
}

// Equal reports whether two scalars are the same element of Z_r.
func (s *Scalar) Equal(o *Scalar) bool {
	return s.v.Equal(&o.v)
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.v.IsZero()
}

// zeroize overwrites the scalar's internal representation. Called by
// SignKey on drop paths where the host permits it; Go offers no destructor
// hook, so callers that need this guarantee must call it explicitly.
func (s *Scalar) zeroize() {
	s.v.SetZero()
}
