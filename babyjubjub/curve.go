// Package babyjubjub implements constant-time scalar multiplication on the
// BabyJubJub twisted Edwards curve defined over the BN254 scalar field:
//
//	168700·x² + y² = 1 + 168696·x²·y²
//
// Field arithmetic comes from gnark-crypto's bn254/fr package. The group law
// is delegated to gnark-crypto's bn254/twistededwards package, which uses the
// isomorphic a = -1 model; points are moved between the two models by scaling
// the x coordinate with a square root of -168700.
package babyjubjub

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
)

// Params holds the constants of the curve.
type Params struct {
	// Twisted Edwards coefficients.
	A, D fr.Element
	// Montgomery coefficients of the birationally equivalent curve
	// B·v² = u³ + A·u² + u.
	MontA, MontB fr.Element
	// Cofactor, order of the prime subgroup and the inverse of the cofactor
	// modulo that order.
	Cofactor, Order, CofactorInv *big.Int
	// Generator of the prime subgroup.
	Generator PointAffine
}

// Config is the BabyJubJub curve descriptor. It carries no state; use Curve.
type Config struct{}

// Curve is the process-wide BabyJubJub configuration.
var Curve Config

var (
	curveA = mustElement("168700")
	curveD = mustElement("168696")
	montA  = mustElement("168698")
	montB  = mustElement("1")

	cofactor    = mustBig("8")
	order       = mustBig("2736030358979909402780800718157159386076813972158567259200215660948447373041")
	cofactorInv = mustBig("2394026564107420727433200628387514462817212225638746351800188703329891451411")

	generator = PointAffine{
		X: mustElement("5299619240641551281634865583518297030282874472190772894086521144482721001553"),
		Y: mustElement("16950150798460657717958625567821834550301663161624707787222815936182638968203"),
	}

	// orderWords is the unreduced order, used for subgroup checks.
	orderWords = scalarWords(order)

	// scale maps x to gnark-crypto's model (x' = scale·x); scaleInv maps back.
	scale, scaleInv = isomorphism()
)

// Params returns a copy of the curve constants.
func (Config) Params() Params {
	return Params{
		A:           curveA,
		D:           curveD,
		MontA:       montA,
		MontB:       montB,
		Cofactor:    new(big.Int).Set(cofactor),
		Order:       new(big.Int).Set(order),
		CofactorInv: new(big.Int).Set(cofactorInv),
		Generator:   generator,
	}
}

// MulProjective returns scalar·p using the constant-time ladder.
func (Config) MulProjective(p *Point, scalar []uint64) Point {
	return ScalarMul(p, scalar)
}

// MulAffine returns scalar·p using the constant-time ladder.
func (Config) MulAffine(p *PointAffine, scalar []uint64) Point {
	return ScalarMulAffine(p, scalar)
}

// TwistScale returns s such that (s·x, y) is the image of (x, y) in
// gnark-crypto's a = -1 model.
func TwistScale() fr.Element {
	return scale
}

// isomorphism derives the scaling factor from the two generators and checks
// that it relates the curve coefficients of both models.
func isomorphism() (s, sInv fr.Element) {
	ref := twistededwards.GetEdwardsCurve()
	if !ref.Base.Y.Equal(&generator.Y) {
		panic("babyjubjub: generator does not match gnark-crypto base point")
	}
	var gxInv fr.Element
	gxInv.Inverse(&generator.X)
	s.Mul(&ref.Base.X, &gxInv)

	// s² = -a and d = -a·d'
	var s2, negA, d fr.Element
	s2.Square(&s)
	negA.Neg(&curveA)
	d.Mul(&ref.D, &negA)
	if !s2.Equal(&negA) || !d.Equal(&curveD) {
		panic("babyjubjub: curve models are not isomorphic")
	}
	sInv.Inverse(&s)
	return s, sInv
}

func mustElement(s string) fr.Element {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		panic(err)
	}
	return e
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("babyjubjub: invalid constant " + s)
	}
	return n
}
