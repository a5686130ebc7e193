package bls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestG1RoundTrip(t *testing.T) {
	p, err := RandomG1()
	require.NoError(t, err)

	b := p.ToBytes()
	assert.Len(t, b, g1BytesLen)

	decoded, err := G1FromBytes(b)
	require.NoError(t, err)
	assert.True(t, p.Equal(decoded))
	assert.Equal(t, b, decoded.ToBytes())
}

func TestG1InfinityRoundTrip(t *testing.T) {
	inf := InfinityG1()
	b := inf.ToBytes()
	assert.True(t, isAllZero(b))

	decoded, err := G1FromBytes(b)
	require.NoError(t, err)
	assert.True(t, decoded.IsInfinity())
}

func TestG1AddSubNeg(t *testing.T) {
	p, err := RandomG1()
	require.NoError(t, err)
	q, err := RandomG1()
	require.NoError(t, err)

	sum := p.Add(q)
	back := sum.Sub(q)
	assert.True(t, p.Equal(back))

	assert.True(t, p.Add(p.Neg()).IsInfinity())
}

func TestG1MulDistributesOverAdd(t *testing.T) {
	p, err := RandomG1()
	require.NoError(t, err)
	a := ScalarFromInt64(3)
	b := ScalarFromInt64(4)

	lhs := p.Mul(a.AddMod(b))
	rhs := p.Mul(a).Add(p.Mul(b))
	assert.True(t, lhs.Equal(rhs))
}

func TestG1FromHashDeterministic(t *testing.T) {
	digest := []byte("some 32 byte message digest!!!!!")
	a := g1FromHash(digest)
	b := g1FromHash(digest)
	assert.True(t, a.Equal(b))
	assert.False(t, a.IsInfinity())
}

func TestG1FromBytesWrongLength(t *testing.T) {
	_, err := G1FromBytes(make([]byte, g1BytesLen-1))
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidStructure))
}
