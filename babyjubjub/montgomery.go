package babyjubjub

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrExceptionalPoint is returned for points the birational map between the
// Edwards and Montgomery forms is undefined at.
var ErrExceptionalPoint = errors.New("babyjubjub: exceptional point for the montgomery map")

// ToMontgomery maps p to the Montgomery curve v² = u³ + 168698·u² + u with
// u = (1+y)/(1-y) and v = u/x. It fails for x = 0 or y = 1, which covers the
// identity and the point of order two.
func (p *PointAffine) ToMontgomery() (u, v fr.Element, err error) {
	var one, num, den fr.Element
	one.SetOne()
	if p.X.IsZero() || p.Y.Equal(&one) {
		return u, v, ErrExceptionalPoint
	}
	num.Add(&one, &p.Y)
	den.Sub(&one, &p.Y)
	u.Div(&num, &den)
	v.Div(&u, &p.X)
	return u, v, nil
}

// FromMontgomery sets p to the Edwards point for (u, v): x = u/v and
// y = (u-1)/(u+1). It fails for v = 0 or u = -1.
func (p *PointAffine) FromMontgomery(u, v *fr.Element) error {
	var one, num, den fr.Element
	one.SetOne()
	den.Add(u, &one)
	if v.IsZero() || den.IsZero() {
		return ErrExceptionalPoint
	}
	num.Sub(u, &one)
	p.X.Div(u, v)
	p.Y.Div(&num, &den)
	return nil
}

// OnMontgomeryCurve reports whether B·v² = u³ + A·u² + u.
func OnMontgomeryCurve(u, v *fr.Element) bool {
	var l, r, u2 fr.Element
	l.Square(v).Mul(&l, &montB)
	u2.Square(u)
	r.Add(u, &montA).Mul(&r, &u2).Add(&r, u)
	return l.Equal(&r)
}
