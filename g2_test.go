package bls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestG2RoundTrip(t *testing.T) {
	p, err := RandomG2()
	require.NoError(t, err)

	b := p.ToBytes()
	assert.Len(t, b, g2BytesLen)

	decoded, err := G2FromBytes(b)
	require.NoError(t, err)
	assert.True(t, p.Equal(decoded))
	assert.Equal(t, b, decoded.ToBytes())
}

func TestG2InfinityRoundTrip(t *testing.T) {
	inf := InfinityG2()
	b := inf.ToBytes()
	assert.True(t, isAllZero(b))

	decoded, err := G2FromBytes(b)
	require.NoError(t, err)
	assert.True(t, decoded.IsInfinity())
}

func TestG2AddSubNeg(t *testing.T) {
	p, err := RandomG2()
	require.NoError(t, err)
	q, err := RandomG2()
	require.NoError(t, err)

	sum := p.Add(q)
	back := sum.Sub(q)
	assert.True(t, p.Equal(back))
	assert.True(t, p.Add(p.Neg()).IsInfinity())
}

func TestG2FromBytesWrongWidth(t *testing.T) {
	// A 31-byte input, far short of the canonical encoding, must be
	// rejected, not silently accepted as a shorter valid form.
	_, err := G2FromBytes(make([]byte, 31))
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidStructure))
}
