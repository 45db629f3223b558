// Package poseidon2 evaluates the BN254 Poseidon2 permutation over emulated
// field elements, for circuits whose native field is not BN254's scalar field.
package poseidon2

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/vocdoni/zkkernels/internal/params"
)

// Permutation returns the permutation of state over emulated BN254 scalars.
// The width is len(state).
func Permutation(api frontend.API, state []emulated.Element[FrParams]) ([]emulated.Element[FrParams], error) {
	p, err := nativeParams(len(state))
	if err != nil {
		return nil, err
	}
	field, err := emulated.NewField[FrParams](api)
	if err != nil {
		return nil, err
	}

	ptrState := make([]*emulated.Element[FrParams], len(state))
	for i := range state {
		ptrState[i] = field.NewElement(state[i])
	}
	permute(field, p, ptrState)

	out := make([]emulated.Element[FrParams], len(state))
	for i := range ptrState {
		// Ensure canonical output.
		out[i] = *field.Reduce(ptrState[i])
	}
	return out, nil
}

// permute mutates the state in place.
func permute(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams]) {
	matMulExternal(field, state)

	rF := p.FullRounds / 2
	for r := range rF {
		externalRound(field, p, state, r)
	}
	for r := range p.PartialRounds {
		c := constElement(field, p.RCInternal[r])
		state[0] = field.Add(state[0], c)
		state[0] = sbox(field, state[0])
		matMulInternal(field, p, state)
	}
	for r := rF; r < p.FullRounds; r++ {
		externalRound(field, p, state, r)
	}
}

func externalRound(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams], round int) {
	for i := range state {
		c := constElement(field, p.RCExternal[round][i])
		state[i] = sbox(field, field.Add(state[i], c))
	}
	matMulExternal(field, state)
}

// sbox computes x^5; every built-in table uses degree 5.
func sbox(field *emulated.Field[FrParams], x *emulated.Element[FrParams]) *emulated.Element[FrParams] {
	x2 := field.Mul(x, x)
	x4 := field.Mul(x2, x2)
	return field.Mul(x, x4)
}

func double(field *emulated.Field[FrParams], x *emulated.Element[FrParams]) *emulated.Element[FrParams] {
	return field.Add(x, x)
}

func matMulM4(field *emulated.Field[FrParams], s []*emulated.Element[FrParams]) {
	t0 := field.Add(s[0], s[1])
	t1 := field.Add(s[2], s[3])
	t2 := field.Add(double(field, s[1]), t1)
	t3 := field.Add(double(field, s[3]), t0)
	t4 := field.Add(double(field, double(field, t1)), t3)
	t5 := field.Add(double(field, double(field, t0)), t2)
	t6 := field.Add(t3, t5)
	t7 := field.Add(t2, t4)
	s[0], s[1], s[2], s[3] = t6, t5, t7, t4
}

func sum(field *emulated.Field[FrParams], state []*emulated.Element[FrParams]) *emulated.Element[FrParams] {
	acc := state[0]
	for _, v := range state[1:] {
		acc = field.Add(acc, v)
	}
	return acc
}

func matMulExternal(field *emulated.Field[FrParams], state []*emulated.Element[FrParams]) {
	switch len(state) {
	case 2, 3:
		s := sum(field, state)
		for i := range state {
			state[i] = field.Add(state[i], s)
		}
	case 4:
		matMulM4(field, state)
	default:
		for i := 0; i < len(state); i += 4 {
			matMulM4(field, state[i:i+4])
		}
		var stored [4]*emulated.Element[FrParams]
		for l := range stored {
			stored[l] = state[l]
			for j := l + 4; j < len(state); j += 4 {
				stored[l] = field.Add(stored[l], state[j])
			}
		}
		for i := range state {
			state[i] = field.Add(state[i], stored[i%4])
		}
	}
}

func matMulInternal(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams]) {
	s := sum(field, state)
	switch len(state) {
	case 2:
		state[0] = field.Add(state[0], s)
		state[1] = field.Add(double(field, state[1]), s)
	case 3:
		state[0] = field.Add(state[0], s)
		state[1] = field.Add(state[1], s)
		state[2] = field.Add(double(field, state[2]), s)
	default:
		for i := range state {
			d := p.DiagM1[i].BigInt(new(big.Int))
			state[i] = field.Add(field.MulConst(state[i], d), s)
		}
	}
}
