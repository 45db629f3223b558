package poseidon2

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/zkkernels/internal/params"
)

// Reference bigint implementation with dense matrices, to sanity-check the
// addition chains and the round schedule.
func bigIntPermutation(p *params.Parameters, input []fr.Element) []*big.Int {
	mod := fr.Modulus()
	t := p.Width
	state := elemsToBig(input)
	external := externalMatrix(t)
	internal := internalMatrix(p)
	exp := new(big.Int).SetUint64(p.Degree)

	state = matVecBig(external, state, mod)
	rF := p.FullRounds / 2
	for r := 0; r < rF; r++ {
		state = fullRoundBig(state, elemsToBig(p.RCExternal[r]), external, exp, mod)
	}
	for r := 0; r < p.PartialRounds; r++ {
		state[0].Add(state[0], p.RCInternal[r].BigInt(new(big.Int))).Mod(state[0], mod)
		state[0].Exp(state[0], exp, mod)
		state = matVecBig(internal, state, mod)
	}
	for r := rF; r < p.FullRounds; r++ {
		state = fullRoundBig(state, elemsToBig(p.RCExternal[r]), external, exp, mod)
	}
	return state
}

func fullRoundBig(state, rc []*big.Int, m [][]*big.Int, exp, mod *big.Int) []*big.Int {
	for i := range state {
		state[i].Add(state[i], rc[i]).Mod(state[i], mod)
		state[i].Exp(state[i], exp, mod)
	}
	return matVecBig(m, state, mod)
}

func elemsToBig(es []fr.Element) []*big.Int {
	out := make([]*big.Int, len(es))
	for i := range es {
		out[i] = es[i].BigInt(new(big.Int))
	}
	return out
}

func matVecBig(m [][]*big.Int, v []*big.Int, mod *big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i := range m {
		sum := big.NewInt(0)
		for j := range v {
			sum.Add(sum, new(big.Int).Mul(m[i][j], v[j]))
		}
		out[i] = sum.Mod(sum, mod)
	}
	return out
}

func bigMatrix(rows [][]int64) [][]*big.Int {
	out := make([][]*big.Int, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Int, len(row))
		for j, v := range row {
			out[i][j] = big.NewInt(v)
		}
	}
	return out
}

// externalMatrix builds the external layer as a dense matrix: circ(2,1) and
// circ(2,1,1) for small widths, M4 for width 4, and for larger widths the
// block matrix with 2*M4 on the diagonal and M4 elsewhere.
func externalMatrix(t int) [][]*big.Int {
	m4 := [][]int64{{5, 7, 1, 3}, {4, 6, 1, 1}, {1, 3, 5, 7}, {1, 1, 4, 6}}
	switch t {
	case 2:
		return bigMatrix([][]int64{{2, 1}, {1, 2}})
	case 3:
		return bigMatrix([][]int64{{2, 1, 1}, {1, 2, 1}, {1, 1, 2}})
	case 4:
		return bigMatrix(m4)
	}
	rows := make([][]int64, t)
	for i := range rows {
		rows[i] = make([]int64, t)
		for j := range rows[i] {
			v := m4[i%4][j%4]
			if i/4 == j/4 {
				v *= 2
			}
			rows[i][j] = v
		}
	}
	return bigMatrix(rows)
}

// internalMatrix is all ones with diag(DiagM1 + 1).
func internalMatrix(p *params.Parameters) [][]*big.Int {
	out := make([][]*big.Int, p.Width)
	for i := range out {
		out[i] = make([]*big.Int, p.Width)
		for j := range out[i] {
			if i == j {
				d := p.DiagM1[i].BigInt(new(big.Int))
				out[i][j] = d.Add(d, big.NewInt(1))
			} else {
				out[i][j] = big.NewInt(1)
			}
		}
	}
	return out
}

func TestNativeMatchesBigIntReference(t *testing.T) {
	for _, width := range []int{2, 3, 4, 8, 12, 16} {
		p := params.AllParameters[width]
		perm, err := ForWidth(width)
		if err != nil {
			t.Fatal(err)
		}
		for _, in := range [][]fr.Element{sequence(width), randomState(t, width)} {
			ref := bigIntPermutation(p, in)
			got := perm.Permutation(in)
			for i := range ref {
				var refEl fr.Element
				refEl.SetBigInt(ref[i])
				if !got[i].Equal(&refEl) {
					t.Fatalf("width %d element %d: native %s, reference %s", width, i, got[i].String(), refEl.String())
				}
			}
		}
	}
}

func TestGenericDegreeMatchesReference(t *testing.T) {
	// Degree 7 and 11 exercise the fixed chain and the generic exponentiation.
	for _, degree := range []uint64{3, 7, 11} {
		base := params.AllParameters[4]
		perm, err := New(degree, base.DiagM1, base.RCExternal, base.RCInternal)
		if err != nil {
			t.Fatal(err)
		}
		p := *base
		p.Degree = degree
		in := randomState(t, 4)
		ref := bigIntPermutation(&p, in)
		got := perm.Permutation(in)
		for i := range ref {
			var refEl fr.Element
			refEl.SetBigInt(ref[i])
			if !got[i].Equal(&refEl) {
				t.Fatalf("degree %d element %d mismatch", degree, i)
			}
		}
	}
}
