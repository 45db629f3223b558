package poseidon2

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// matMulM4 multiplies s by the 4x4 MDS matrix
//
//	5 7 1 3
//	4 6 1 1
//	1 3 5 7
//	1 1 4 6
//
// using the addition chain from the Poseidon2 paper.
func matMulM4(s *[4]fr.Element) {
	var t0, t1, t2, t3, t4, t5, t6, t7 fr.Element
	t0.Add(&s[0], &s[1]) // A + B
	t1.Add(&s[2], &s[3]) // C + D
	t2.Double(&s[1])
	t2.Add(&t2, &t1) // 2B + C + D
	t3.Double(&s[3])
	t3.Add(&t3, &t0) // A + B + 2D
	t4.Double(&t1)
	t4.Double(&t4)
	t4.Add(&t4, &t3) // A + B + 4C + 6D
	t5.Double(&t0)
	t5.Double(&t5)
	t5.Add(&t5, &t2) // 4A + 6B + C + D
	t6.Add(&t3, &t5) // 5A + 7B + C + 3D
	t7.Add(&t2, &t4) // A + 3B + 5C + 7D
	s[0], s[1], s[2], s[3] = t6, t5, t7, t4
}

// matMulExternal applies the external linear layer, selected by the width.
func matMulExternal(state []fr.Element) {
	switch len(state) {
	case 2:
		// circ(2, 1)
		var sum fr.Element
		sum.Add(&state[0], &state[1])
		state[0].Add(&state[0], &sum)
		state[1].Add(&state[1], &sum)
	case 3:
		// circ(2, 1, 1)
		var sum fr.Element
		sum.Add(&state[0], &state[1])
		sum.Add(&sum, &state[2])
		state[0].Add(&state[0], &sum)
		state[1].Add(&state[1], &sum)
		state[2].Add(&state[2], &sum)
	case 4:
		matMulM4((*[4]fr.Element)(state))
	case 8, 12, 16, 20, 24:
		for i := 0; i < len(state); i += 4 {
			matMulM4((*[4]fr.Element)(state[i : i+4]))
		}
		// Column sums across the 4-element blocks.
		var stored [4]fr.Element
		for l := range stored {
			stored[l] = state[l]
			for j := l + 4; j < len(state); j += 4 {
				stored[l].Add(&stored[l], &state[j])
			}
		}
		for i := range state {
			state[i].Add(&state[i], &stored[i%4])
		}
	default:
		panic(fmt.Sprintf("poseidon2: invalid state width %d", len(state)))
	}
}

// matMulInternal applies the internal linear layer. For widths above 3 the
// matrix is ones everywhere except the diagonal, so each output is the state
// sum plus diagM1[i]*x_i.
func matMulInternal(state, diagM1 []fr.Element) {
	switch len(state) {
	case 2:
		// [[2, 1], [1, 3]]
		var sum fr.Element
		sum.Add(&state[0], &state[1])
		state[0].Add(&state[0], &sum)
		state[1].Double(&state[1])
		state[1].Add(&state[1], &sum)
	case 3:
		// [[2, 1, 1], [1, 2, 1], [1, 1, 3]]
		var sum fr.Element
		sum.Add(&state[0], &state[1])
		sum.Add(&sum, &state[2])
		state[0].Add(&state[0], &sum)
		state[1].Add(&state[1], &sum)
		state[2].Double(&state[2])
		state[2].Add(&state[2], &sum)
	default:
		var sum fr.Element
		for i := range state {
			sum.Add(&sum, &state[i])
		}
		for i := range state {
			state[i].Mul(&state[i], &diagM1[i])
			state[i].Add(&state[i], &sum)
		}
	}
}
