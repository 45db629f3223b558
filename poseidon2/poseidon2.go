// Package poseidon2 implements the Poseidon2 permutation over the BN254
// scalar field (https://eprint.iacr.org/2023/323).
//
// Only the permutation is provided. Sponge or compression modes are left to
// the caller.
package poseidon2

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/zkkernels/internal/params"
)

// Degree is the S-box exponent used by the built-in BN254 parameter sets.
const Degree = params.Degree

var (
	ErrInvalidWidth     = params.ErrInvalidWidth
	ErrInvalidDegree    = params.ErrInvalidDegree
	ErrInvalidRounds    = params.ErrInvalidRounds
	ErrShapeMismatch    = params.ErrShapeMismatch
	ErrInternalDiagonal = params.ErrInternalDiagonal
)

// Permutation is a validated Poseidon2 instance. It is immutable and safe for
// concurrent use.
type Permutation struct {
	params *params.Parameters
	// exp is the S-box exponent for degrees without a fixed addition chain.
	exp *big.Int
}

// New builds a permutation from its internal diagonal (each entry minus one),
// external round constants (R_F rows of width elements) and internal round
// constants (R_P elements). The width is len(diagM1). Inputs are copied.
func New(degree uint64, diagM1 []fr.Element, rcExternal [][]fr.Element, rcInternal []fr.Element) (*Permutation, error) {
	p := &params.Parameters{
		Width:         len(diagM1),
		Degree:        degree,
		FullRounds:    len(rcExternal),
		PartialRounds: len(rcInternal),
		DiagM1:        append([]fr.Element(nil), diagM1...),
		RCExternal:    make([][]fr.Element, len(rcExternal)),
		RCInternal:    append([]fr.Element(nil), rcInternal...),
	}
	for i, row := range rcExternal {
		p.RCExternal[i] = append([]fr.Element(nil), row...)
	}
	return fromParameters(p)
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(degree uint64, diagM1 []fr.Element, rcExternal [][]fr.Element, rcInternal []fr.Element) *Permutation {
	p, err := New(degree, diagM1, rcExternal, rcInternal)
	if err != nil {
		panic(err)
	}
	return p
}

// ForWidth returns the built-in BN254 permutation for the given state width.
func ForWidth(width int) (*Permutation, error) {
	p, ok := params.AllParameters[width]
	if !ok {
		return nil, fmt.Errorf("poseidon2: no parameter set for width %d: %w", width, ErrInvalidWidth)
	}
	return fromParameters(p)
}

func fromParameters(p *params.Parameters) (*Permutation, error) {
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	return &Permutation{
		params: p,
		exp:    new(big.Int).SetUint64(p.Degree),
	}, nil
}

// Width returns the number of field elements in the state.
func (p *Permutation) Width() int { return p.params.Width }

// Permute applies the permutation to state in place.
// It panics if len(state) differs from the width.
func (p *Permutation) Permute(state []fr.Element) {
	if len(state) != p.params.Width {
		panic(fmt.Sprintf("poseidon2: state has %d elements, want %d", len(state), p.params.Width))
	}
	p.permute(state)
}

// Permutation returns the permutation of state, leaving state untouched.
func (p *Permutation) Permutation(state []fr.Element) []fr.Element {
	out := append([]fr.Element(nil), state...)
	p.Permute(out)
	return out
}
