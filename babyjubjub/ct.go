package babyjubjub

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

// The masked primitives below read and write the limbs of fr.Element
// directly. They rely on fr.Element being [4]uint64 holding the little-endian
// limbs of a fully reduced Montgomery-form value. Every output limb vector is
// copied whole from one of two valid elements, so the result is always a
// canonical element.

// mask returns all ones when c is 1 and zero when c is 0. c must be 0 or 1.
func mask(c uint64) uint64 {
	return -(c & 1)
}

// selectElement sets a to b when m is all ones and leaves it unchanged when m
// is zero.
func selectElement(a, b *fr.Element, m uint64) {
	for i := range a {
		a[i] ^= m & (a[i] ^ b[i])
	}
}

// swapElements exchanges a and b when m is all ones.
func swapElements(a, b *fr.Element, m uint64) {
	for i := range a {
		s := m & (a[i] ^ b[i])
		a[i] ^= s
		b[i] ^= s
	}
}

// conditionalSelect sets a to b if c == 1, without branching on c.
func conditionalSelect(a, b *twistededwards.PointExtended, c uint64) {
	m := mask(c)
	selectElement(&a.X, &b.X, m)
	selectElement(&a.Y, &b.Y, m)
	selectElement(&a.Z, &b.Z, m)
	selectElement(&a.T, &b.T, m)
}

// conditionalSwap exchanges a and b if c == 1, without branching on c.
func conditionalSwap(a, b *twistededwards.PointExtended, c uint64) {
	m := mask(c)
	swapElements(&a.X, &b.X, m)
	swapElements(&a.Y, &b.Y, m)
	swapElements(&a.Z, &b.Z, m)
	swapElements(&a.T, &b.T, m)
}
