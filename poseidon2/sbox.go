package poseidon2

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// sbox raises x to the S-box degree in place.
func (p *Permutation) sbox(x *fr.Element) {
	switch p.params.Degree {
	case 3:
		var x2 fr.Element
		x2.Square(x)
		x.Mul(x, &x2)
	case 5:
		var x2, x4 fr.Element
		x2.Square(x)
		x4.Square(&x2)
		x.Mul(x, &x4)
	case 7:
		var x2, x4 fr.Element
		x2.Square(x)
		x4.Square(&x2)
		x.Mul(x, &x4)
		x.Mul(x, &x2)
	default:
		x.Exp(*x, p.exp)
	}
}

func (p *Permutation) fullSBox(state []fr.Element) {
	for i := range state {
		p.sbox(&state[i])
	}
}
