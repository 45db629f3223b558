// Package babyjubjub provides BabyJubJub scalar multiplication inside gnark
// circuits compiled over BN254. Points use the same a = 168700 coordinates as
// the native babyjubjub package; the group law is gnark's twisted Edwards
// gadget, reached through the x-scaling isomorphism.
package babyjubjub

import (
	"math/big"

	ecc_tweds "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/vocdoni/zkkernels/babyjubjub"
)

// Point is an affine BabyJubJub point in circuit variables.
type Point struct {
	X, Y frontend.Variable
}

var scale, scaleInv = func() (*big.Int, *big.Int) {
	s := babyjubjub.TwistScale()
	var sInv = s
	sInv.Inverse(&s)
	return s.BigInt(new(big.Int)), sInv.BigInt(new(big.Int))
}()

// FromNative lifts a native point into circuit constants or witness values.
func FromNative(p *babyjubjub.PointAffine) Point {
	return Point{
		X: p.X.BigInt(new(big.Int)),
		Y: p.Y.BigInt(new(big.Int)),
	}
}

// ScalarMul returns scalar·p and asserts that p is on the curve. scalar must
// be below the subgroup order.
func ScalarMul(api frontend.API, p Point, scalar frontend.Variable) (Point, error) {
	curve, err := twistededwards.NewEdCurve(api, ecc_tweds.BN254)
	if err != nil {
		return Point{}, err
	}
	tp := twistededwards.Point{X: api.Mul(p.X, scale), Y: p.Y}
	curve.AssertIsOnCurve(tp)
	r := curve.ScalarMul(tp, scalar)
	return Point{X: api.Mul(r.X, scaleInv), Y: r.Y}, nil
}

// Add returns p + q.
func Add(api frontend.API, p, q Point) (Point, error) {
	curve, err := twistededwards.NewEdCurve(api, ecc_tweds.BN254)
	if err != nil {
		return Point{}, err
	}
	tp := twistededwards.Point{X: api.Mul(p.X, scale), Y: p.Y}
	tq := twistededwards.Point{X: api.Mul(q.X, scale), Y: q.Y}
	r := curve.Add(tp, tq)
	return Point{X: api.Mul(r.X, scaleInv), Y: r.Y}, nil
}
