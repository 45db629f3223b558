package babyjubjub

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

// ScalarWords is the number of 64-bit words ScalarMulBig encodes a scalar
// into. The subgroup order is 251 bits long.
const ScalarWords = 4

// Indirections so the operation count of the ladder can be observed.
var (
	swapPoints  = conditionalSwap
	selectPoint = conditionalSelect
)

// ScalarMul returns scalar·base using a Montgomery ladder. scalar is read as
// a big-endian sequence of 64-bit words (scalar[0] is the most significant).
//
// Every bit of every word is processed, leading zeros included: each step
// performs one conditional swap, one addition and one doubling, followed by a
// single conditional select at the end. Running time depends on len(scalar)
// only.
func ScalarMul(base *Point, scalar []uint64) Point {
	var r0 twistededwards.PointExtended
	r0.X.SetZero()
	r0.Y.SetOne()
	r0.Z.SetOne()
	r0.T.SetZero()
	r1 := base.reduced()

	var prev uint64
	for _, w := range scalar {
		for i := 63; i >= 0; i-- {
			b := (w >> uint(i)) & 1
			swapPoints(&r0, &r1, prev^b)

			var sum, dbl twistededwards.PointExtended
			sum.Add(&r1, &r0)
			dbl.Double(&r0)
			r0, r1 = dbl, sum

			prev = b
		}
	}
	selectPoint(&r0, &r1, prev)
	return fromReduced(&r0)
}

// ScalarMulAffine is ScalarMul for an affine base point.
func ScalarMulAffine(base *PointAffine, scalar []uint64) Point {
	var p Point
	p.FromAffine(base)
	return ScalarMul(&p, scalar)
}

// ScalarMulBig reduces k modulo the subgroup order and multiplies with a
// fixed ScalarWords-word encoding, so the timing does not depend on the bit
// length of k. base should lie in the prime-order subgroup.
func ScalarMulBig(base *Point, k *big.Int) Point {
	r := new(big.Int).Mod(k, order)
	w := scalarWords(r)
	return ScalarMul(base, w[:])
}

// scalarWords encodes k, which must be below 2^256, as big-endian words.
func scalarWords(k *big.Int) [ScalarWords]uint64 {
	var buf [8 * ScalarWords]byte
	k.FillBytes(buf[:])
	var w [ScalarWords]uint64
	for i := range w {
		w[i] = binary.BigEndian.Uint64(buf[8*i:])
	}
	return w
}
