package poseidon2

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"

	"github.com/vocdoni/zkkernels/poseidon2"
)

// Circuit that permutes a state and checks it against the native result.
type permCircuit struct {
	State    []frontend.Variable
	Expected []frontend.Variable `gnark:",public"`
}

func (c *permCircuit) Define(api frontend.API) error {
	out, err := Permutation(api, c.State)
	if err != nil {
		return err
	}
	for i := range out {
		api.AssertIsEqual(out[i], c.Expected[i])
	}
	return nil
}

func newPermCircuit(width int) *permCircuit {
	return &permCircuit{
		State:    make([]frontend.Variable, width),
		Expected: make([]frontend.Variable, width),
	}
}

func nativeWitness(t *testing.T, width int) *permCircuit {
	t.Helper()
	perm, err := poseidon2.ForWidth(width)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]fr.Element, width)
	for i := range in {
		in[i].SetUint64(uint64(i))
	}
	out := perm.Permutation(in)

	w := newPermCircuit(width)
	for i := range in {
		w.State[i] = in[i]
		w.Expected[i] = out[i]
	}
	return w
}

func TestCircuitMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)
	assert.ProverSucceeded(
		newPermCircuit(3),
		nativeWitness(t, 3),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestCircuitAllWidths(t *testing.T) {
	for _, width := range []int{2, 3, 4, 8, 12, 16} {
		if err := test.IsSolved(newPermCircuit(width), nativeWitness(t, width), ecc.BN254.ScalarField()); err != nil {
			t.Fatalf("width %d: %v", width, err)
		}
	}
}

func TestCircuitRejectsWrongOutput(t *testing.T) {
	w := nativeWitness(t, 4)
	w.Expected[0] = 0
	if err := test.IsSolved(newPermCircuit(4), w, ecc.BN254.ScalarField()); err == nil {
		t.Fatal("expected unsatisfied constraints")
	}
}

func TestUnsupportedWidth(t *testing.T) {
	_, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, newPermCircuit(5))
	if err == nil {
		t.Fatal("expected compile error for width 5")
	}
}

func TestConstraintCounts(t *testing.T) {
	for _, width := range []int{2, 3, 4, 8, 12, 16} {
		ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, newPermCircuit(width))
		if err != nil {
			t.Fatalf("compile width %d: %v", width, err)
		}
		t.Logf("poseidon2 t=%d constraints (bn254, r1cs): %d", width, ccs.GetNbConstraints())
	}
}
