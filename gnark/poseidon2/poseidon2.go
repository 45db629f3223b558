// Package poseidon2 is the gnark gadget for the BN254 Poseidon2 permutation.
// It must be compiled over the BN254 scalar field and shares its parameter
// tables with the native implementation.
package poseidon2

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/zkkernels/internal/params"
)

// circuitPermutation mirrors the native permutation but emits gnark constraints.
type circuitPermutation struct {
	params     *params.Parameters
	diagM1     []*big.Int
	rcExternal [][]*big.Int
	rcInternal []*big.Int
}

// newCircuitPermutation builds a circuit gadget for the provided width.
func newCircuitPermutation(width int) (*circuitPermutation, error) {
	p, ok := params.AllParameters[width]
	if !ok {
		return nil, fmt.Errorf("poseidon2: unsupported width %d: %w", width, params.ErrInvalidWidth)
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	g := &circuitPermutation{
		params:     p,
		diagM1:     toBig(p.DiagM1),
		rcExternal: make([][]*big.Int, len(p.RCExternal)),
		rcInternal: toBig(p.RCInternal),
	}
	for i, row := range p.RCExternal {
		g.rcExternal[i] = toBig(row)
	}
	return g, nil
}

// Permute applies the permutation to state in place. The width is len(state).
func Permute(api frontend.API, state []frontend.Variable) error {
	gadget, err := newCircuitPermutation(len(state))
	if err != nil {
		return err
	}
	gadget.permute(api, state)
	return nil
}

// Permutation returns the permuted state, leaving the input slice untouched.
func Permutation(api frontend.API, state []frontend.Variable) ([]frontend.Variable, error) {
	out := make([]frontend.Variable, len(state))
	copy(out, state)
	if err := Permute(api, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *circuitPermutation) permute(api frontend.API, state []frontend.Variable) {
	circuitMatMulExternal(api, state)

	rF := p.params.FullRounds / 2
	for r := 0; r < rF; r++ {
		p.externalRound(api, state, p.rcExternal[r])
	}
	for _, rc := range p.rcInternal {
		state[0] = api.Add(state[0], rc)
		state[0] = p.sbox(api, state[0])
		p.matMulInternal(api, state)
	}
	for r := rF; r < p.params.FullRounds; r++ {
		p.externalRound(api, state, p.rcExternal[r])
	}
}

func (p *circuitPermutation) externalRound(api frontend.API, state []frontend.Variable, rc []*big.Int) {
	for i := range state {
		state[i] = api.Add(state[i], rc[i])
		state[i] = p.sbox(api, state[i])
	}
	circuitMatMulExternal(api, state)
}

func (p *circuitPermutation) sbox(api frontend.API, v frontend.Variable) frontend.Variable {
	switch p.params.Degree {
	case 3:
		return api.Mul(v, api.Mul(v, v))
	case 5:
		v2 := api.Mul(v, v)
		v4 := api.Mul(v2, v2)
		return api.Mul(v, v4)
	case 7:
		v2 := api.Mul(v, v)
		v4 := api.Mul(v2, v2)
		return api.Mul(v, v2, v4)
	}
	// square-and-multiply, most significant bit first
	d := p.params.Degree
	res := v
	for i := 62 - bits.LeadingZeros64(d); i >= 0; i-- {
		res = api.Mul(res, res)
		if (d>>uint(i))&1 == 1 {
			res = api.Mul(res, v)
		}
	}
	return res
}

func circuitMatMulM4(api frontend.API, s []frontend.Variable) {
	t0 := api.Add(s[0], s[1])
	t1 := api.Add(s[2], s[3])
	t2 := api.Add(api.Mul(s[1], 2), t1)
	t3 := api.Add(api.Mul(s[3], 2), t0)
	t4 := api.Add(api.Mul(t1, 4), t3)
	t5 := api.Add(api.Mul(t0, 4), t2)
	t6 := api.Add(t3, t5)
	t7 := api.Add(t2, t4)
	s[0], s[1], s[2], s[3] = t6, t5, t7, t4
}

func circuitMatMulExternal(api frontend.API, state []frontend.Variable) {
	switch len(state) {
	case 2, 3:
		sum := api.Add(state[0], state[1], state[2:]...)
		for i := range state {
			state[i] = api.Add(state[i], sum)
		}
	case 4:
		circuitMatMulM4(api, state)
	default:
		for i := 0; i < len(state); i += 4 {
			circuitMatMulM4(api, state[i:i+4])
		}
		var stored [4]frontend.Variable
		for l := range stored {
			stored[l] = state[l]
			for j := l + 4; j < len(state); j += 4 {
				stored[l] = api.Add(stored[l], state[j])
			}
		}
		for i := range state {
			state[i] = api.Add(state[i], stored[i%4])
		}
	}
}

func (p *circuitPermutation) matMulInternal(api frontend.API, state []frontend.Variable) {
	sum := api.Add(state[0], state[1], state[2:]...)
	switch len(state) {
	case 2:
		state[0] = api.Add(state[0], sum)
		state[1] = api.Add(api.Mul(state[1], 2), sum)
	case 3:
		state[0] = api.Add(state[0], sum)
		state[1] = api.Add(state[1], sum)
		state[2] = api.Add(api.Mul(state[2], 2), sum)
	default:
		for i := range state {
			state[i] = api.Add(api.Mul(state[i], p.diagM1[i]), sum)
		}
	}
}

func toBig(es []fr.Element) []*big.Int {
	out := make([]*big.Int, len(es))
	for i := range es {
		out[i] = es[i].BigInt(new(big.Int))
	}
	return out
}
