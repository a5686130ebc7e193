package bls

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// fixedBytes renders a field element as a big-endian byte string of exactly
// width bytes, left-padded with zeros. It never truncates: callers choose a
// width wide enough for the field in play.
func fixedBytes(e fp.Element, width int) []byte {
	var bi big.Int
	e.ToBigIntRegular(&bi)
	buf := make([]byte, width)
	bi.FillBytes(buf)
	return buf
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// padCoordinate left-pads a MODBYTES-wide field element encoding out to
// 2*MODBYTES, and stripCoordinate reverses it. G1's affine coordinates live
// in Fp (MODBYTES wide); this padding gives G1 the same per-coordinate slot
// width as G2's native Fp2 coordinates, so both groups share one
// 4*MODBYTES-wide canonical point encoding.
func padCoordinate(b []byte) []byte {
	out := make([]byte, 2*MODBYTES)
	copy(out[MODBYTES:], b)
	return out
}

func stripCoordinate(b []byte) ([]byte, error) {
	if len(b) != 2*MODBYTES {
		return nil, invalidStructure("coordinate slot must be %d bytes, got %d", 2*MODBYTES, len(b))
	}
	if !isAllZero(b[:MODBYTES]) {
		return nil, invalidStructure("coordinate slot has non-zero padding")
	}
	return b[MODBYTES:], nil
}
