package poseidon2

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fixed-width wrappers. Each type pins the state to an array so callers get
// value semantics and the width is checked by the compiler. The package-level
// TnPermutation functions use the built-in BN254 tables.

// rows exposes fixed-size constant rows as slices without copying; New copies
// them afterwards.
func rows[R any](rc []R, view func(*R) []fr.Element) [][]fr.Element {
	out := make([][]fr.Element, len(rc))
	for i := range rc {
		out[i] = view(&rc[i])
	}
	return out
}

func builtin(width int) *Permutation {
	p, err := ForWidth(width)
	if err != nil {
		panic(err)
	}
	return p
}

// T2 is a Poseidon2 permutation over two elements.
type T2 struct{ perm *Permutation }

// NewT2 validates and builds a width-2 permutation.
func NewT2(degree uint64, diagM1 [2]fr.Element, rcExternal [][2]fr.Element, rcInternal []fr.Element) (*T2, error) {
	p, err := New(degree, diagM1[:], rows(rcExternal, func(r *[2]fr.Element) []fr.Element { return r[:] }), rcInternal)
	if err != nil {
		return nil, err
	}
	return &T2{p}, nil
}

func (t *T2) PermutationInPlace(state *[2]fr.Element) { t.perm.permute(state[:]) }

func (t *T2) Permutation(state [2]fr.Element) [2]fr.Element {
	t.perm.permute(state[:])
	return state
}

var defaultT2 = sync.OnceValue(func() *T2 { return &T2{builtin(2)} })

// T2Permutation permutes a width-2 state with the BN254 parameters.
func T2Permutation(state [2]fr.Element) [2]fr.Element { return defaultT2().Permutation(state) }

// T2PermutationInPlace is the in-place form of T2Permutation.
func T2PermutationInPlace(state *[2]fr.Element) { defaultT2().PermutationInPlace(state) }

// T3 is a Poseidon2 permutation over three elements.
type T3 struct{ perm *Permutation }

// NewT3 validates and builds a width-3 permutation.
func NewT3(degree uint64, diagM1 [3]fr.Element, rcExternal [][3]fr.Element, rcInternal []fr.Element) (*T3, error) {
	p, err := New(degree, diagM1[:], rows(rcExternal, func(r *[3]fr.Element) []fr.Element { return r[:] }), rcInternal)
	if err != nil {
		return nil, err
	}
	return &T3{p}, nil
}

func (t *T3) PermutationInPlace(state *[3]fr.Element) { t.perm.permute(state[:]) }

func (t *T3) Permutation(state [3]fr.Element) [3]fr.Element {
	t.perm.permute(state[:])
	return state
}

var defaultT3 = sync.OnceValue(func() *T3 { return &T3{builtin(3)} })

// T3Permutation permutes a width-3 state with the BN254 parameters.
func T3Permutation(state [3]fr.Element) [3]fr.Element { return defaultT3().Permutation(state) }

// T3PermutationInPlace is the in-place form of T3Permutation.
func T3PermutationInPlace(state *[3]fr.Element) { defaultT3().PermutationInPlace(state) }

// T4 is a Poseidon2 permutation over four elements.
type T4 struct{ perm *Permutation }

// NewT4 validates and builds a width-4 permutation.
func NewT4(degree uint64, diagM1 [4]fr.Element, rcExternal [][4]fr.Element, rcInternal []fr.Element) (*T4, error) {
	p, err := New(degree, diagM1[:], rows(rcExternal, func(r *[4]fr.Element) []fr.Element { return r[:] }), rcInternal)
	if err != nil {
		return nil, err
	}
	return &T4{p}, nil
}

func (t *T4) PermutationInPlace(state *[4]fr.Element) { t.perm.permute(state[:]) }

func (t *T4) Permutation(state [4]fr.Element) [4]fr.Element {
	t.perm.permute(state[:])
	return state
}

var defaultT4 = sync.OnceValue(func() *T4 { return &T4{builtin(4)} })

// T4Permutation permutes a width-4 state with the BN254 parameters.
func T4Permutation(state [4]fr.Element) [4]fr.Element { return defaultT4().Permutation(state) }

// T4PermutationInPlace is the in-place form of T4Permutation.
func T4PermutationInPlace(state *[4]fr.Element) { defaultT4().PermutationInPlace(state) }

// T8 is a Poseidon2 permutation over eight elements.
type T8 struct{ perm *Permutation }

// NewT8 validates and builds a width-8 permutation.
func NewT8(degree uint64, diagM1 [8]fr.Element, rcExternal [][8]fr.Element, rcInternal []fr.Element) (*T8, error) {
	p, err := New(degree, diagM1[:], rows(rcExternal, func(r *[8]fr.Element) []fr.Element { return r[:] }), rcInternal)
	if err != nil {
		return nil, err
	}
	return &T8{p}, nil
}

func (t *T8) PermutationInPlace(state *[8]fr.Element) { t.perm.permute(state[:]) }

func (t *T8) Permutation(state [8]fr.Element) [8]fr.Element {
	t.perm.permute(state[:])
	return state
}

var defaultT8 = sync.OnceValue(func() *T8 { return &T8{builtin(8)} })

// T8Permutation permutes a width-8 state with the BN254 parameters.
func T8Permutation(state [8]fr.Element) [8]fr.Element { return defaultT8().Permutation(state) }

// T8PermutationInPlace is the in-place form of T8Permutation.
func T8PermutationInPlace(state *[8]fr.Element) { defaultT8().PermutationInPlace(state) }

// T12 is a Poseidon2 permutation over twelve elements.
type T12 struct{ perm *Permutation }

// NewT12 validates and builds a width-12 permutation.
func NewT12(degree uint64, diagM1 [12]fr.Element, rcExternal [][12]fr.Element, rcInternal []fr.Element) (*T12, error) {
	p, err := New(degree, diagM1[:], rows(rcExternal, func(r *[12]fr.Element) []fr.Element { return r[:] }), rcInternal)
	if err != nil {
		return nil, err
	}
	return &T12{p}, nil
}

func (t *T12) PermutationInPlace(state *[12]fr.Element) { t.perm.permute(state[:]) }

func (t *T12) Permutation(state [12]fr.Element) [12]fr.Element {
	t.perm.permute(state[:])
	return state
}

var defaultT12 = sync.OnceValue(func() *T12 { return &T12{builtin(12)} })

// T12Permutation permutes a width-12 state with the BN254 parameters.
func T12Permutation(state [12]fr.Element) [12]fr.Element { return defaultT12().Permutation(state) }

// T12PermutationInPlace is the in-place form of T12Permutation.
func T12PermutationInPlace(state *[12]fr.Element) { defaultT12().PermutationInPlace(state) }

// T16 is a Poseidon2 permutation over sixteen elements.
type T16 struct{ perm *Permutation }

// NewT16 validates and builds a width-16 permutation.
func NewT16(degree uint64, diagM1 [16]fr.Element, rcExternal [][16]fr.Element, rcInternal []fr.Element) (*T16, error) {
	p, err := New(degree, diagM1[:], rows(rcExternal, func(r *[16]fr.Element) []fr.Element { return r[:] }), rcInternal)
	if err != nil {
		return nil, err
	}
	return &T16{p}, nil
}

func (t *T16) PermutationInPlace(state *[16]fr.Element) { t.perm.permute(state[:]) }

func (t *T16) Permutation(state [16]fr.Element) [16]fr.Element {
	t.perm.permute(state[:])
	return state
}

var defaultT16 = sync.OnceValue(func() *T16 { return &T16{builtin(16)} })

// T16Permutation permutes a width-16 state with the BN254 parameters.
func T16Permutation(state [16]fr.Element) [16]fr.Element { return defaultT16().Permutation(state) }

// T16PermutationInPlace is the in-place form of T16Permutation.
func T16PermutationInPlace(state *[16]fr.Element) { defaultT16().PermutationInPlace(state) }
