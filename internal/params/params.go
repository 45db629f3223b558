// Package params holds the Poseidon2 parameter sets for the BN254 scalar
// field and the construction-time checks shared by the native permutation
// and the circuit gadgets.
//
// Round constants follow the Poseidon2 reference generator: a Grain LFSR
// seeded with (prime field, x^d S-box, 254 bits, t, R_F, R_P) yields
// R_F*t + R_P elements consumed in round order (R_F/2 full rows, R_P
// partial scalars, R_F/2 full rows).
package params

import "fmt"

// AllParameters maps a state width to its parameter set.
var AllParameters = mustLoad(&t2Table, &t3Table, &t4Table, &t8Table, &t12Table, &t16Table)

func mustLoad(tables ...*table) map[int]*Parameters {
	out := make(map[int]*Parameters, len(tables))
	for _, t := range tables {
		p, err := t.parameters()
		if err != nil {
			panic(fmt.Sprintf("poseidon2: width %d table: %v", t.width, err))
		}
		if err := Validate(p); err != nil {
			panic(err)
		}
		out[p.Width] = p
	}
	return out
}
