package babyjubjub

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"

	"github.com/vocdoni/zkkernels/babyjubjub"
)

type scalarMulCircuit struct {
	P        Point
	K        frontend.Variable
	Expected Point `gnark:",public"`
}

func (c *scalarMulCircuit) Define(api frontend.API) error {
	r, err := ScalarMul(api, c.P, c.K)
	if err != nil {
		return err
	}
	api.AssertIsEqual(r.X, c.Expected.X)
	api.AssertIsEqual(r.Y, c.Expected.Y)
	return nil
}

type addCircuit struct {
	P, Q     Point
	Expected Point `gnark:",public"`
}

func (c *addCircuit) Define(api frontend.API) error {
	r, err := Add(api, c.P, c.Q)
	if err != nil {
		return err
	}
	api.AssertIsEqual(r.X, c.Expected.X)
	api.AssertIsEqual(r.Y, c.Expected.Y)
	return nil
}

func nativeMul(t *testing.T, base *babyjubjub.PointAffine, k *big.Int) babyjubjub.PointAffine {
	t.Helper()
	var p babyjubjub.Point
	p.FromAffine(base)
	r := babyjubjub.ScalarMulBig(&p, k)
	return r.Affine()
}

func TestCircuitScalarMulMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	order := babyjubjub.Curve.Params().Order
	k, err := rand.Int(rand.Reader, order)
	if err != nil {
		t.Fatal(err)
	}
	g := babyjubjub.Generator()
	// a base other than the generator
	base := nativeMul(t, &g, big.NewInt(0x1234567))
	want := nativeMul(t, &base, k)

	witness := scalarMulCircuit{
		P:        FromNative(&base),
		K:        k,
		Expected: FromNative(&want),
	}
	assert.ProverSucceeded(
		&scalarMulCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestCircuitRejectsWrongResult(t *testing.T) {
	assert := test.NewAssert(t)
	g := babyjubjub.Generator()
	want := nativeMul(t, &g, big.NewInt(42))

	witness := scalarMulCircuit{
		P:        FromNative(&g),
		K:        43,
		Expected: FromNative(&want),
	}
	assert.ProverFailed(
		&scalarMulCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestCircuitAdd(t *testing.T) {
	assert := test.NewAssert(t)
	g := babyjubjub.Generator()
	p := nativeMul(t, &g, big.NewInt(5))
	q := nativeMul(t, &g, big.NewInt(9))
	want := nativeMul(t, &g, big.NewInt(14))

	witness := addCircuit{P: FromNative(&p), Q: FromNative(&q), Expected: FromNative(&want)}
	assert.SolvingSucceeded(&addCircuit{}, &witness, test.WithCurves(ecc.BN254))
}

func TestScalarMulConstraintCount(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &scalarMulCircuit{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	t.Logf("babyjubjub scalar mul constraints (bn254, r1cs): %d", ccs.GetNbConstraints())
}
